package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/artemaweirro/library-api/internal/api/handler"
	"github.com/artemaweirro/library-api/internal/api/middleware"
	"github.com/artemaweirro/library-api/internal/core/domain"
	"github.com/artemaweirro/library-api/internal/core/ports"
	"github.com/artemaweirro/library-api/internal/core/service"
	"github.com/artemaweirro/library-api/internal/infrastructure/config"
	mongodb "github.com/artemaweirro/library-api/internal/infrastructure/db/mongo"
	redisdb "github.com/artemaweirro/library-api/internal/infrastructure/db/redis"
	"github.com/artemaweirro/library-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// The route table encodes the static authorization rules; registration order
// follows most-specific-first, with anything unmatched falling through to
// echo's default (public) handling:
//
//	POST /auth/login, /auth/register          public
//	GET  /books/**                            public
//	POST/PUT/PATCH/DELETE /books/**           MODERATOR or ADMIN
//	/orders/**                                any authenticated identity
//	GET  /users/me                            any authenticated identity
//	/users/** (the rest)                      ADMIN
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("library"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	// Leave the cache interface nil when Redis is not configured so the book
	// service skips caching entirely.
	var bookCache ports.BookCache
	if rdb != nil {
		bookCache = redisdb.NewBookCache(rdb, log)
	}

	tokens := service.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	bookService := service.NewBookService(bookRepo, bookCache, log)
	orderService := service.NewOrderService(orderRepo, bookRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)

	// Identity resolution runs once per request, before any route rule.
	e.Use(middleware.Identify(tokens, userRepo))

	authed := middleware.RequireAuth()
	staff := middleware.RequireRoles(domain.RoleModerator, domain.RoleAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Books: reads public, writes staff-only ---
	e.GET("/books", bookHandler.List)
	e.GET("/books/by-title", bookHandler.SearchByTitle)
	e.GET("/books/:id", bookHandler.Get)
	e.POST("/books", bookHandler.Create, staff)
	e.PUT("/books/:id", bookHandler.Replace, staff)
	e.PATCH("/books/:id", bookHandler.Patch, staff)
	e.DELETE("/books/:id", bookHandler.Delete, staff)

	// --- Orders: any authenticated role; ownership is checked per order ---
	orders := e.Group("/orders", authed)
	orders.GET("", orderHandler.List)
	orders.GET("/my", orderHandler.ListMine)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Replace)
	orders.DELETE("/:id", orderHandler.Delete)

	// --- Users: /me for any authenticated identity, the rest admin-only ---
	e.GET("/users/me", userHandler.Me, authed)
	e.GET("/users", userHandler.List, adminOnly)
	e.GET("/users/:id", userHandler.Get, adminOnly)
	e.PATCH("/users/:id", userHandler.Patch, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, adminOnly)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

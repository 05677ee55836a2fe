package handler

import (
	"time"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type authRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
}

// --- Books ---

type bookRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Author      string  `json:"author"      validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

// bookPatchRequest has no validate tags: any subset of fields is allowed,
// only the fully empty patch is rejected (by the service, with 400).
type bookPatchRequest struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

type bookResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// --- Orders ---

type orderRequest struct {
	BookIDs []string `json:"book_ids" validate:"required,min=1"`
}

type orderResponse struct {
	ID         string         `json:"id"`
	User       string         `json:"user"`
	Books      []bookResponse `json:"books"`
	TotalPrice float64        `json:"total_price"`
	CreatedAt  time.Time      `json:"created_at"`
}

// --- Users ---

type userResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type userPatchRequest struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
}

// --- Mappers ---

func toBookResponse(b domain.Book) bookResponse {
	return bookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		Description: b.Description,
	}
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:         o.ID,
		User:       o.Username,
		Books:      toBookResponses(o.Books),
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}

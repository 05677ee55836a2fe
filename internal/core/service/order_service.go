package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/artemaweirro/library-api/internal/core/domain"
	"github.com/artemaweirro/library-api/internal/core/ports"
)

// OrderService implements order operations with per-resource ownership
// checks. The order is always loaded first: a nonexistent id yields
// ErrOrderNotFound before ownership is evaluated.
type OrderService struct {
	orders ports.OrderRepository
	books  ports.BookRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, books ports.BookRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, books: books, logger: logger}
}

// List returns every order for privileged callers and only the caller's own
// orders otherwise. Scoping here is a filter, not a denial.
func (s *OrderService) List(ctx context.Context, caller domain.Identity) ([]domain.Order, error) {
	if caller.Role.Privileged() {
		return s.orders.FindAll(ctx)
	}
	return s.orders.FindByUserID(ctx, caller.AccountID)
}

// ListMine returns the caller's own orders regardless of role.
func (s *OrderService) ListMine(ctx context.Context, caller domain.Identity) ([]domain.Order, error) {
	return s.orders.FindByUserID(ctx, caller.AccountID)
}

func (s *OrderService) Get(ctx context.Context, id string, caller domain.Identity) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.AccessibleBy(caller) {
		return nil, domain.ErrNotOwner
	}
	return order, nil
}

// Create places an order owned by the caller. Book prices are read fresh from
// the catalog and summed; unknown ids resolving to an empty set is an error.
func (s *OrderService) Create(ctx context.Context, caller domain.Identity, bookIDs []string) (*domain.Order, error) {
	books, err := s.books.FindByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, domain.ErrBooksNotFound
	}

	order := &domain.Order{
		UserID:     caller.AccountID,
		Username:   caller.Username,
		Books:      books,
		TotalPrice: totalPrice(books),
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", created.ID).Str("username", caller.Username).Msg("order created")
	return created, nil
}

// Replace swaps the order's book set and recomputes the total. The owner is
// never reassigned.
func (s *OrderService) Replace(ctx context.Context, id string, caller domain.Identity, bookIDs []string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.AccessibleBy(caller) {
		return nil, domain.ErrNotOwner
	}

	books, err := s.books.FindByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, domain.ErrBooksNotFound
	}

	order.Books = books
	order.TotalPrice = totalPrice(books)

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string, caller domain.Identity) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !order.AccessibleBy(caller) {
		return domain.ErrNotOwner
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("order_id", id).Str("username", caller.Username).Msg("order deleted")
	return nil
}

func totalPrice(books []domain.Book) float64 {
	var total float64
	for _, b := range books {
		total += b.Price
	}
	return total
}

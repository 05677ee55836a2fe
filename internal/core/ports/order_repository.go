package ports

import (
	"context"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// OrderRepository persists orders and their owner relation.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}

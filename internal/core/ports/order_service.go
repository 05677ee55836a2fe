package ports

import (
	"context"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// OrderService implements order operations with resource-level authorization.
//
// Get, Replace and Delete check ownership after a successful existence check:
// a nonexistent order yields ErrOrderNotFound even for callers who would not
// have been allowed to see it. List filters by caller instead of denying.
type OrderService interface {
	List(ctx context.Context, caller domain.Identity) ([]domain.Order, error)
	ListMine(ctx context.Context, caller domain.Identity) ([]domain.Order, error)
	Get(ctx context.Context, id string, caller domain.Identity) (*domain.Order, error)
	Create(ctx context.Context, caller domain.Identity, bookIDs []string) (*domain.Order, error)
	Replace(ctx context.Context, id string, caller domain.Identity, bookIDs []string) (*domain.Order, error)
	Delete(ctx context.Context, id string, caller domain.Identity) error
}

package ports

import (
	"context"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// UserRepository is the user directory. Account existence here is the source
// of truth for soft revocation: the authentication middleware re-checks it on
// every authenticated request.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

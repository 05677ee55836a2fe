package ports

import (
	"context"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// UserPatch carries the optional fields of a user profile update.
type UserPatch struct {
	Username *string
	Role     *domain.Role
}

// UserService implements account administration and the /users/me lookup.
// All operations except Me are reachable only by admins (route-level rule).
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Me(ctx context.Context, caller domain.Identity) (*domain.User, error)
	Patch(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

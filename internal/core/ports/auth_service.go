package ports

import (
	"context"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// AuthService implements registration and login. Both return a freshly issued
// bearer token and the account it was issued for. Login failures are always
// ErrInvalidCredentials, regardless of whether the username or the password
// was wrong.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

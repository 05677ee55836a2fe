package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/artemaweirro/library-api/internal/core/domain"
	"github.com/artemaweirro/library-api/internal/core/ports"
)

// UserService implements account administration and the current-user lookup.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Me re-reads the caller's account from the directory. The account can vanish
// between the middleware's existence check and this lookup; that race
// surfaces as ErrIdentityRevoked, same as the middleware's own rejection.
func (s *UserService) Me(ctx context.Context, caller domain.Identity) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, caller.Username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrIdentityRevoked
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Patch(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user updated")
	return user, nil
}

// Delete removes the account. All tokens issued for it become unusable on the
// next request through the authentication middleware's existence check.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user deleted")
	return nil
}

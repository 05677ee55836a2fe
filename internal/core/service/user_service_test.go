package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artemaweirro/library-api/internal/core/domain"
	"github.com/artemaweirro/library-api/internal/core/ports"
)

func TestUserService_Me(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, _ := repo.Create(context.Background(), &domain.User{Username: "alice", Role: domain.RoleUser})

	user, err := svc.Me(context.Background(), domain.FromUser(created))
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Me_DeletedAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	// The account disappeared after the token was validated.
	caller := domain.Identity{AccountID: "gone", Username: "ghost", Role: domain.RoleUser}
	if _, err := svc.Me(context.Background(), caller); !errors.Is(err, domain.ErrIdentityRevoked) {
		t.Fatalf("expected ErrIdentityRevoked, got %v", err)
	}
}

func TestUserService_Patch(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, _ := repo.Create(context.Background(), &domain.User{Username: "bob", Role: domain.RoleUser})

	role := domain.RoleModerator
	user, err := svc.Patch(context.Background(), created.ID, ports.UserPatch{Role: &role})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if user.Role != domain.RoleModerator {
		t.Fatalf("expected promoted role, got %s", user.Role)
	}
	if user.Username != "bob" {
		t.Fatalf("username must be untouched, got %s", user.Username)
	}
}

func TestUserService_Patch_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	name := "new-name"
	if _, err := svc.Patch(context.Background(), "missing", ports.UserPatch{Username: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, _ := repo.Create(context.Background(), &domain.User{Username: "carol", Role: domain.RoleUser})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

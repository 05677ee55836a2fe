package ports

import (
	"context"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// BookInput carries the full set of book fields for create and replace.
type BookInput struct {
	Title       string
	Author      string
	Price       float64
	Description string
}

// BookService implements catalog operations. Authorization for writes is
// enforced at the route level; the service itself is role-agnostic.
type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]domain.Book, error)
	Create(ctx context.Context, in BookInput) (*domain.Book, error)
	Replace(ctx context.Context, id string, in BookInput) (*domain.Book, error)
	Patch(ctx context.Context, id string, patch domain.BookPatch) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

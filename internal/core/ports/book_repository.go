package ports

import (
	"context"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// BookRepository persists the global book catalog.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Book, error)
	FindAll(ctx context.Context) ([]domain.Book, error)
	FindByTitle(ctx context.Context, title string) ([]domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
}

// BookCache is an optional read-through cache for the full catalog listing.
// A miss is reported via ok=false, never via an error the caller must handle.
type BookCache interface {
	GetList(ctx context.Context) ([]domain.Book, bool)
	SetList(ctx context.Context, books []domain.Book)
	Invalidate(ctx context.Context)
}

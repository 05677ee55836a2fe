package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/artemaweirro/library-api/internal/core/domain"
	"github.com/artemaweirro/library-api/internal/core/ports"
)

// BookService implements catalog operations. The full listing is served
// through an optional read-through cache; every write invalidates it.
type BookService struct {
	repo   ports.BookRepository
	cache  ports.BookCache
	logger zerolog.Logger
}

// NewBookService creates a BookService. cache may be nil, in which case every
// listing goes to the repository.
func NewBookService(repo ports.BookRepository, cache ports.BookCache, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, cache: cache, logger: logger}
}

func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	if s.cache != nil {
		if books, ok := s.cache.GetList(ctx); ok {
			return books, nil
		}
	}

	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, books)
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return s.repo.FindByTitle(ctx, title)
}

func (s *BookService) Create(ctx context.Context, in ports.BookInput) (*domain.Book, error) {
	book := &domain.Book{
		Title:       in.Title,
		Author:      in.Author,
		Price:       in.Price,
		Description: in.Description,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return created, nil
}

func (s *BookService) Replace(ctx context.Context, id string, in ports.BookInput) (*domain.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Title = in.Title
	book.Author = in.Author
	book.Price = in.Price
	book.Description = in.Description

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return book, nil
}

// Patch applies a partial update. An all-empty patch is rejected before the
// existence lookup, so a bad request on a missing book is 400, not 404.
func (s *BookService) Patch(ctx context.Context, id string, patch domain.BookPatch) (*domain.Book, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(book)
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

func (s *BookService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

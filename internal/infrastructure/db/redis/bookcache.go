package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

const (
	bookListKey = "books:list"
	bookListTTL = 5 * time.Minute
)

// BookCache caches the full book list in Redis. Cache failures are logged and
// treated as misses so a Redis outage never takes the catalog down with it.
type BookCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewBookCache creates a BookCache wrapping the given Redis client.
func NewBookCache(client *redis.Client, logger zerolog.Logger) *BookCache {
	return &BookCache{client: client, logger: logger}
}

// GetList returns the cached book list and whether the cache held one.
func (c *BookCache) GetList(ctx context.Context) ([]domain.Book, bool) {
	raw, err := c.client.Get(ctx, bookListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("book cache read failed")
		}
		return nil, false
	}

	var books []domain.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		c.logger.Warn().Err(err).Msg("book cache entry corrupted, dropping")
		_ = c.client.Del(ctx, bookListKey).Err()
		return nil, false
	}
	return books, true
}

// SetList stores the book list with a short TTL.
func (c *BookCache) SetList(ctx context.Context, books []domain.Book) {
	raw, err := json.Marshal(books)
	if err != nil {
		c.logger.Warn().Err(err).Msg("book cache encode failed")
		return
	}
	if err := c.client.Set(ctx, bookListKey, raw, bookListTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("book cache write failed")
	}
}

// Invalidate drops the cached list. Called after any catalog write.
func (c *BookCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, bookListKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("book cache invalidation failed")
	}
}

package embedding

import (
	"context"

	"github.com/jonathan/skill-gap/internal/db"
)

// embeddingStore is the subset of *db.DB the Postgres cache needs.
type embeddingStore interface {
	GetEmbedding(ctx context.Context, contentHash string) (*db.CachedEmbedding, error)
	SaveEmbedding(ctx context.Context, e *db.CachedEmbedding) error
	CountEmbeddings(ctx context.Context) (int, error)
}

// PostgresCache stores entries in the embedding_cache table.
type PostgresCache struct {
	store embeddingStore
}

// NewPostgresCache wraps a connected database. Call db.Migrate first.
func NewPostgresCache(store embeddingStore) *PostgresCache {
	return &PostgresCache{store: store}
}

// Get implements Cache.
func (c *PostgresCache) Get(ctx context.Context, key string) (*Entry, error) {
	row, err := c.store.GetEmbedding(ctx, key)
	if err != nil {
		return nil, &CacheError{Op: "get", Key: key, Cause: err}
	}
	if row == nil {
		return nil, nil
	}
	return &Entry{
		Model:       row.Model,
		ContentHash: row.ContentHash,
		Vector:      row.Vector,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// Count implements Counter.
func (c *PostgresCache) Count(ctx context.Context) (int, error) {
	n, err := c.store.CountEmbeddings(ctx)
	if err != nil {
		return 0, &CacheError{Op: "count", Cause: err}
	}
	return n, nil
}

// Put implements Cache.
func (c *PostgresCache) Put(ctx context.Context, key string, entry Entry) error {
	err := c.store.SaveEmbedding(ctx, &db.CachedEmbedding{
		ContentHash: key,
		Model:       entry.Model,
		Vector:      entry.Vector,
		CreatedAt:   entry.CreatedAt,
	})
	if err != nil {
		return &CacheError{Op: "put", Key: key, Cause: err}
	}
	return nil
}

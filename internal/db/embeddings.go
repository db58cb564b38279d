package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetEmbedding retrieves a cached embedding by content hash.
// Returns nil, nil when no row exists.
func (db *DB) GetEmbedding(ctx context.Context, contentHash string) (*CachedEmbedding, error) {
	var e CachedEmbedding
	err := db.pool.QueryRow(ctx,
		`SELECT content_hash, model, vector, created_at
		 FROM embedding_cache WHERE content_hash = $1`,
		contentHash,
	).Scan(&e.ContentHash, &e.Model, &e.Vector, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get embedding %s: %w", contentHash, err)
	}
	return &e, nil
}

// SaveEmbedding upserts a cached embedding. The latest write wins.
func (db *DB) SaveEmbedding(ctx context.Context, e *CachedEmbedding) error {
	if e == nil || e.ContentHash == "" {
		return fmt.Errorf("embedding content hash is required")
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO embedding_cache (content_hash, model, vector, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (content_hash) DO UPDATE SET model = $2, vector = $3, created_at = $4`,
		e.ContentHash, e.Model, e.Vector, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save embedding %s: %w", e.ContentHash, err)
	}
	return nil
}

// CountEmbeddings returns the number of cached embeddings
func (db *DB) CountEmbeddings(ctx context.Context) (int, error) {
	var n int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM embedding_cache`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count embeddings: %w", err)
	}
	return n, nil
}

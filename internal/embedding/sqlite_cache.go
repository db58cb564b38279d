package embedding

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SQLiteCache stores entries in a single-file SQLite database.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (or creates) the database at path.
func OpenSQLiteCache(ctx context.Context, path string) (*SQLiteCache, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("sqlite cache: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite cache: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS embedding_cache (
		key        TEXT PRIMARY KEY,
		model      TEXT NOT NULL,
		vector     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite cache: init schema: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

// Get implements Cache.
func (c *SQLiteCache) Get(ctx context.Context, key string) (*Entry, error) {
	var model, vector, created string
	err := c.db.QueryRowContext(ctx,
		`SELECT model, vector, created_at FROM embedding_cache WHERE key = ?`, key,
	).Scan(&model, &vector, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &CacheError{Op: "get", Key: key, Cause: err}
	}

	entry := Entry{Model: model, ContentHash: key}
	if err := json.Unmarshal([]byte(vector), &entry.Vector); err != nil {
		return nil, &CacheError{Op: "get", Key: key, Cause: fmt.Errorf("corrupt entry: %w", err)}
	}
	entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return &entry, nil
}

// Put implements Cache.
func (c *SQLiteCache) Put(ctx context.Context, key string, entry Entry) error {
	vector, err := json.Marshal(entry.Vector)
	if err != nil {
		return &CacheError{Op: "put", Key: key, Cause: err}
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO embedding_cache (key, model, vector, created_at) VALUES (?, ?, ?, ?)`,
		key, entry.Model, string(vector), entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return &CacheError{Op: "put", Key: key, Cause: err}
	}
	return nil
}

// Count implements Counter.
func (c *SQLiteCache) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM embedding_cache`).Scan(&n); err != nil {
		return 0, &CacheError{Op: "count", Cause: err}
	}
	return n, nil
}

// Close closes the database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

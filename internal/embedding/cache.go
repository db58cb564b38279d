package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Entry is one cached embedding.
type Entry struct {
	Model       string    `json:"model"`
	ContentHash string    `json:"content_hash"`
	Vector      []float32 `json:"vector"`
	CreatedAt   time.Time `json:"created_at"`
}

// Cache stores embeddings by content hash. Entries are never invalidated;
// a Put for an existing key replaces it (last writer wins, which is harmless
// because values are derived from the key's content).
type Cache interface {
	// Get returns the entry for key, or nil when there is none.
	Get(ctx context.Context, key string) (*Entry, error)
	Put(ctx context.Context, key string, entry Entry) error
}

// Key returns the content address of normalized text: hex SHA-256.
func Key(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// CacheError represents a failed cache operation
type CacheError struct {
	Op    string // "get", "put" or "count"
	Key   string
	Cause error
}

func (e *CacheError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("embedding cache %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("embedding cache %s %s: %v", e.Op, e.Key, e.Cause)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// Counter is implemented by caches that can report how many entries they hold.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// NopCache never stores anything.
type NopCache struct{}

// Get implements Cache.
func (NopCache) Get(context.Context, string) (*Entry, error) { return nil, nil }

// Put implements Cache.
func (NopCache) Put(context.Context, string, Entry) error { return nil }

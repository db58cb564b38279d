package db

import "time"

// CachedEmbedding is a row of the embedding_cache table
type CachedEmbedding struct {
	ContentHash string    `json:"content_hash"`
	Model       string    `json:"model"`
	Vector      []float32 `json:"vector"`
	CreatedAt   time.Time `json:"created_at"`
}

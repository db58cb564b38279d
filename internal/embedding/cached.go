package embedding

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jonathan/skill-gap/internal/logging"
)

// CachedEmbedder memoizes an Embedder in a Cache keyed by Key(text).
//
// Cache failures never fail a request: a read error or corrupt entry falls
// through to the embedder, and a write error is logged and dropped. Embedder
// errors are returned unchanged; there is no retry and no zero-vector default.
type CachedEmbedder struct {
	inner Embedder
	cache Cache
	now   func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedEmbedder wraps inner with cache. A nil cache disables caching.
func NewCachedEmbedder(inner Embedder, cache Cache) *CachedEmbedder {
	if cache == nil {
		cache = NopCache{}
	}
	return &CachedEmbedder{inner: inner, cache: cache, now: time.Now}
}

// Model implements Embedder.
func (e *CachedEmbedder) Model() string {
	return e.inner.Model()
}

// Embed implements Embedder. text is expected to be normalized already.
func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := Key(text)

	if vec, ok := e.lookup(ctx, key); ok {
		e.hits.Add(1)
		return vec, nil
	}
	e.misses.Add(1)

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	entry := Entry{
		Model:       e.inner.Model(),
		ContentHash: key,
		Vector:      vec,
		CreatedAt:   e.now().UTC(),
	}
	if err := e.cache.Put(ctx, key, entry); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("failed to write embedding cache, continuing")
	} else {
		logging.Debug().Str("key", key).Msg("saved embedding to cache")
	}

	return vec, nil
}

// lookup returns a usable cached vector. Entries written by a different model
// live in another vector space and count as misses.
func (e *CachedEmbedder) lookup(ctx context.Context, key string) ([]float32, bool) {
	entry, err := e.cache.Get(ctx, key)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("failed to read embedding cache, recomputing")
		return nil, false
	}
	if entry == nil || len(entry.Vector) == 0 {
		return nil, false
	}
	if entry.Model != "" && entry.Model != e.inner.Model() {
		logging.Debug().Str("key", key).Str("cached_model", entry.Model).Str("model", e.inner.Model()).
			Msg("cached embedding from another model, recomputing")
		return nil, false
	}
	logging.Debug().Str("key", key).Msg("loaded embedding from cache")
	return entry.Vector, true
}

// Stats returns the cache hit and miss counts since construction.
func (e *CachedEmbedder) Stats() (hits, misses int64) {
	return e.hits.Load(), e.misses.Load()
}

package embedding

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmbedder struct {
	model string
	vec   []float32
	err   error
	calls int
}

func (e *countingEmbedder) Embed(context.Context, string) ([]float32, error) {
	e.calls++
	return e.vec, e.err
}

func (e *countingEmbedder) Model() string { return e.model }

type brokenCache struct{}

func (brokenCache) Get(_ context.Context, key string) (*Entry, error) {
	return nil, &CacheError{Op: "get", Key: key, Cause: errors.New("disk on fire")}
}

func (brokenCache) Put(_ context.Context, key string, _ Entry) error {
	return &CacheError{Op: "put", Key: key, Cause: errors.New("disk full")}
}

func TestCachedEmbedder_HitAfterMiss(t *testing.T) {
	inner := &countingEmbedder{model: "m", vec: []float32{1, 2}}
	e := NewCachedEmbedder(inner, NewFileCache(t.TempDir()))
	ctx := context.Background()

	first, err := e.Embed(ctx, "python sql")
	require.NoError(t, err)
	second, err := e.Embed(ctx, "python sql")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
	hits, misses := e.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, "m", e.Model())
}

func TestCachedEmbedder_CacheFailuresDegrade(t *testing.T) {
	inner := &countingEmbedder{model: "m", vec: []float32{1}}
	e := NewCachedEmbedder(inner, brokenCache{})

	vec, err := e.Embed(context.Background(), "python")
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, vec)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedEmbedder_CorruptEntryRecomputed(t *testing.T) {
	dir := t.TempDir()
	key := Key("python")
	require.NoError(t, os.WriteFile(filepath.Join(dir, key+".json"), []byte("garbage"), 0644))

	inner := &countingEmbedder{model: "m", vec: []float32{3}}
	e := NewCachedEmbedder(inner, NewFileCache(dir))

	vec, err := e.Embed(context.Background(), "python")
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, vec)

	// The recomputed value replaced the corrupt file
	got, err := NewFileCache(dir).Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, got.Vector)
}

func TestCachedEmbedder_EmbedderErrorPropagates(t *testing.T) {
	inner := &countingEmbedder{model: "m", err: errors.New("model failed to load")}
	cache := NewFileCache(t.TempDir())
	e := NewCachedEmbedder(inner, cache)

	vec, err := e.Embed(context.Background(), "python")
	require.Error(t, err)
	assert.Nil(t, vec)

	got, err := cache.Get(context.Background(), Key("python"))
	require.NoError(t, err)
	assert.Nil(t, got, "failures are not cached")
}

func TestCachedEmbedder_OtherModelIsMiss(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, Key("python"), Entry{Model: "old", Vector: []float32{9}}))

	inner := &countingEmbedder{model: "new", vec: []float32{1}}
	vec, err := NewCachedEmbedder(inner, cache).Embed(ctx, "python")
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, vec)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedEmbedder_NilCache(t *testing.T) {
	inner := &countingEmbedder{model: "m", vec: []float32{1}}
	e := NewCachedEmbedder(inner, nil)
	_, _ = e.Embed(context.Background(), "a")
	_, _ = e.Embed(context.Background(), "a")
	assert.Equal(t, 2, inner.calls)
}

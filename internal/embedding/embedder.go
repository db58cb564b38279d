// Package embedding turns normalized text into fixed-length vectors and
// memoizes them in a content-addressed cache.
package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/jonathan/skill-gap/internal/llm"
)

// DefaultHashDimension matches the width of common small sentence encoders.
const DefaultHashDimension = 384

// Embedder maps text to a vector. Implementations must be deterministic for
// a given model.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	// Model identifies the vector space; vectors from different models are not comparable.
	Model() string
}

// GeminiEmbedder embeds text with a Gemini embedding model.
type GeminiEmbedder struct {
	client llm.EmbeddingClient
	model  string
}

// NewGeminiEmbedder creates an embedder backed by client. An empty model uses
// llm.DefaultEmbeddingModel.
func NewGeminiEmbedder(client llm.EmbeddingClient, model string) *GeminiEmbedder {
	if model == "" {
		model = llm.DefaultEmbeddingModel
	}
	return &GeminiEmbedder{client: client, model: model}
}

// Embed implements Embedder.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.client.EmbedContent(ctx, e.model, text)
	if err != nil {
		return nil, fmt.Errorf("gemini embedding failed: %w", err)
	}
	return vec, nil
}

// Model implements Embedder.
func (e *GeminiEmbedder) Model() string {
	return e.model
}

// HashEmbedder is an offline embedder that feature-hashes words and word
// bigrams into a signed bag and L2-normalizes it. Texts sharing vocabulary
// get a positive cosine similarity.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates a HashEmbedder of the given dimension.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = DefaultHashDimension
	}
	return &HashEmbedder{dim: dim}
}

// Embed implements Embedder. Empty text yields the zero vector.
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float64, e.dim)
	words := strings.Fields(text)
	for i, w := range words {
		e.add(vec, w, 1.0)
		if i > 0 {
			e.add(vec, words[i-1]+" "+w, 0.5)
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	out := make([]float32, e.dim)
	if norm == 0 {
		return out, nil
	}
	for i, v := range vec {
		out[i] = float32(v / norm)
	}
	return out, nil
}

func (e *HashEmbedder) add(vec []float64, feature string, weight float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(feature))
	sum := h.Sum64()
	idx := int(sum % uint64(e.dim))
	// The top bit picks the sign so collisions tend to cancel.
	if sum>>63 == 1 {
		weight = -weight
	}
	vec[idx] += weight
}

// Model implements Embedder.
func (e *HashEmbedder) Model() string {
	return fmt.Sprintf("hash-%d", e.dim)
}

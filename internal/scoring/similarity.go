// Package scoring compares a resume with a job: embedding similarity, skill
// overlap and the qualitative band for a similarity score.
package scoring

import (
	"math"

	"github.com/jonathan/skill-gap/internal/logging"
)

// ComputeSimilarity returns the cosine similarity of a and b clipped to [0,1].
// Missing, mismatched or zero vectors score 0.
func ComputeSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		logging.Warn().Msg("one or both embeddings are missing, similarity is 0")
		return 0.0
	}
	if len(a) != len(b) {
		logging.Warn().Int("len_a", len(a)).Int("len_b", len(b)).Msg("embedding dimensions differ, similarity is 0")
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, score))
}

package scoring

import (
	"math"

	"github.com/jonathan/skill-gap/internal/types"
)

// Band lower bounds, inclusive.
const (
	ExcellentThreshold = 0.8
	GoodThreshold      = 0.65
	PartialThreshold   = 0.5

	// DefaultSemanticWeight balances similarity and skill score in CombinedScore.
	DefaultSemanticWeight = 0.5
)

// InterpretSimilarity maps a similarity score to its band.
func InterpretSimilarity(score float64) types.Label {
	switch {
	case score >= ExcellentThreshold:
		return types.LabelExcellent
	case score >= GoodThreshold:
		return types.LabelGood
	case score >= PartialThreshold:
		return types.LabelPartial
	default:
		return types.LabelWeak
	}
}

// CombinedScore blends similarity and skill score into a 0-100 match
// percentage rounded to one decimal. semanticWeight is clamped to [0,1].
func CombinedScore(similarity, skillScore, semanticWeight float64) float64 {
	w := math.Max(0, math.Min(1, semanticWeight))
	return round(100*(w*similarity+(1-w)*skillScore), 1)
}

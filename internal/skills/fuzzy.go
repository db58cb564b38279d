package skills

import (
	"sort"
	"strings"
)

// Ratio returns the normalized indel similarity of a and b on a 0-100 scale:
// 100 * (1 - distance/(len(a)+len(b))), where distance counts insertions and
// deletions only. Two empty strings are identical.
func Ratio(a, b string) float64 {
	return ratioRunes([]rune(a), []rune(b))
}

// TokenSortRatio is Ratio applied after sorting each string's whitespace
// separated tokens, so word order does not affect the score.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func ratioRunes(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 200 * float64(lcsLength(a, b)) / float64(total)
}

// lcsLength is the longest common subsequence length, using two DP rows.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// fuzzyIndex buckets dictionary entries by the rune length of their
// token-sorted form. A candidate of length m can score at most
// 200*min(m,n)/(m+n) against an entry of length n, so most buckets are skipped.
type fuzzyIndex struct {
	lengths []int // ascending
	buckets map[int][]indexEntry
}

type indexEntry struct {
	phrase string
	sorted []rune
}

func newFuzzyIndex(phrases []string) *fuzzyIndex {
	idx := &fuzzyIndex{buckets: make(map[int][]indexEntry)}
	for _, phrase := range phrases {
		sorted := []rune(sortTokens(phrase))
		n := len(sorted)
		if _, ok := idx.buckets[n]; !ok {
			idx.lengths = append(idx.lengths, n)
		}
		idx.buckets[n] = append(idx.buckets[n], indexEntry{phrase: phrase, sorted: sorted})
	}
	sort.Ints(idx.lengths)
	return idx
}

func ratioUpperBound(m, n int) float64 {
	if m+n == 0 {
		return 100
	}
	return 200 * float64(min(m, n)) / float64(m+n)
}

func (idx *fuzzyIndex) best(candidate string, threshold float64) (string, float64, bool) {
	query := []rune(sortTokens(candidate))
	m := len(query)

	bestPhrase := ""
	bestScore := -1.0
	for _, n := range idx.lengths {
		bound := ratioUpperBound(m, n)
		if bound < threshold || bound < bestScore {
			continue
		}
		for _, entry := range idx.buckets[n] {
			score := ratioRunes(query, entry.sorted)
			if score > bestScore || (score == bestScore && entry.phrase < bestPhrase) {
				bestPhrase = entry.phrase
				bestScore = score
			}
		}
	}

	if bestScore < 0 || bestScore < threshold {
		return "", max(bestScore, 0), false
	}
	return bestPhrase, bestScore, true
}

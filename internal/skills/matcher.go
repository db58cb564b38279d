package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/skill-gap/internal/logging"
	"github.com/jonathan/skill-gap/internal/parsing"
	"github.com/jonathan/skill-gap/internal/types"
)

const (
	// DefaultFuzzyThreshold is the minimum token-sort ratio for a fuzzy hit.
	DefaultFuzzyThreshold = 88

	minPhraseChars = 2
	maxPhraseChars = 40
)

// Matcher finds dictionary skills in text.
type Matcher struct {
	dict      *Dictionary
	chunker   Chunker
	threshold float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithFuzzyThreshold sets the 0-100 fuzzy acceptance threshold.
func WithFuzzyThreshold(threshold int) Option {
	return func(m *Matcher) {
		m.threshold = float64(threshold)
	}
}

// NewMatcher creates a Matcher over dict. A nil chunker uses WhitespaceChunker.
func NewMatcher(dict *Dictionary, chunker Chunker, opts ...Option) *Matcher {
	if dict == nil {
		dict = NewDictionary(nil)
	}
	if chunker == nil {
		chunker = WhitespaceChunker{}
	}
	m := &Matcher{
		dict:      dict,
		chunker:   chunker,
		threshold: DefaultFuzzyThreshold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dictionary returns the dictionary the matcher searches.
func (m *Matcher) Dictionary() *Dictionary {
	return m.dict
}

// Threshold returns the fuzzy acceptance threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Extract returns the skills found in text. Exact entries land in
// DictSkills; near misses are recorded under the dictionary's spelling in
// FuzzySkills.
func (m *Matcher) Extract(text string) types.SkillSet {
	text = parsing.CleanText(text)
	if text == "" {
		return types.NewSkillSet(nil, nil)
	}

	var dictHits, fuzzyHits []string
	for _, cand := range m.candidates(text) {
		if m.dict.Contains(cand) {
			dictHits = append(dictHits, cand)
			continue
		}
		if match, score, ok := m.dict.BestMatch(cand, m.threshold); ok {
			logging.Debug().Str("candidate", cand).Str("skill", match).Float64("score", score).Msg("fuzzy skill match")
			fuzzyHits = append(fuzzyHits, match)
		}
	}

	return types.NewSkillSet(dictHits, fuzzyHits)
}

// candidates returns the distinct alphabetic non-stopword tokens and noun
// phrases of text.
func (m *Matcher) candidates(text string) []string {
	chunks, err := m.chunker.Chunk(text)
	if err != nil {
		logging.Warn().Err(err).Msg("chunker failed, falling back to whitespace tokens")
		chunks, _ = WhitespaceChunker{}.Chunk(text)
	}

	seen := make(map[string]struct{}, len(chunks.Tokens)+len(chunks.Phrases))
	out := make([]string, 0, len(chunks.Tokens)+len(chunks.Phrases))
	add := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, tok := range chunks.Tokens {
		tok = strings.ToLower(tok)
		if isAlpha(tok) && !IsStopword(tok) {
			add(tok)
		}
	}
	for _, phrase := range chunks.Phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if n := utf8.RuneCountInString(phrase); n >= minPhraseChars && n <= maxPhraseChars {
			add(phrase)
		}
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

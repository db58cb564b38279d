// Package skills extracts known skills from normalized resume and job text
// using a phrase dictionary, exact lookup and fuzzy matching.
package skills

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skill-gap/internal/logging"
)

// minPhraseLen is the exclusive lower bound on phrase length; "r" and "go" are dropped.
const minPhraseLen = 2

// Dictionary is an immutable, sorted set of lowercase skill phrases.
type Dictionary struct {
	phrases []string
	set     map[string]struct{}
	index   *fuzzyIndex
}

// NewDictionary builds a Dictionary from raw phrases. Phrases are trimmed,
// lowercased and kept only when longer than two characters and not a stopword.
func NewDictionary(phrases []string) *Dictionary {
	set := make(map[string]struct{}, len(phrases))
	for _, raw := range phrases {
		phrase := strings.ToLower(strings.TrimSpace(raw))
		if utf8.RuneCountInString(phrase) <= minPhraseLen || IsStopword(phrase) {
			continue
		}
		set[phrase] = struct{}{}
	}

	sorted := make([]string, 0, len(set))
	for phrase := range set {
		sorted = append(sorted, phrase)
	}
	sort.Strings(sorted)

	return &Dictionary{
		phrases: sorted,
		set:     set,
		index:   newFuzzyIndex(sorted),
	}
}

// ReadDictionary reads a headerless CSV file where every cell may hold a
// comma-separated list of phrases.
func ReadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DictionaryError{Path: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	phrases, err := readCells(f)
	if err != nil {
		return nil, &DictionaryError{Path: path, Cause: err}
	}
	return NewDictionary(phrases), nil
}

// LoadDictionary is ReadDictionary that degrades to an empty dictionary on
// any failure. An empty dictionary means "no known skills", not an error.
func LoadDictionary(path string) *Dictionary {
	dict, err := ReadDictionary(path)
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("skill dictionary unavailable, continuing with no known skills")
		return NewDictionary(nil)
	}
	logging.Debug().Str("path", path).Int("skills", dict.Len()).Msg("loaded skill dictionary")
	return dict
}

func readCells(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var phrases []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, cell := range record {
			phrases = append(phrases, strings.Split(cell, ",")...)
		}
	}
	return phrases, nil
}

// Contains reports whether phrase is an exact dictionary entry.
func (d *Dictionary) Contains(phrase string) bool {
	_, ok := d.set[phrase]
	return ok
}

// Phrases returns the sorted entries. The slice must not be modified.
func (d *Dictionary) Phrases() []string {
	return d.phrases
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.phrases)
}

// IsEmpty reports whether the dictionary has no entries.
func (d *Dictionary) IsEmpty() bool {
	return len(d.phrases) == 0
}

// BestMatch returns the entry with the highest token-sort ratio to candidate,
// provided it reaches threshold. Ties go to the alphabetically first entry.
func (d *Dictionary) BestMatch(candidate string, threshold float64) (string, float64, bool) {
	if d.IsEmpty() {
		return "", 0, false
	}
	return d.index.best(candidate, threshold)
}

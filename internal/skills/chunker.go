package skills

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Chunks is the linguistic breakdown of a text: its word tokens and its
// noun-phrase spans.
type Chunks struct {
	Tokens  []string
	Phrases []string
}

// Chunker splits text into tokens and noun phrases.
type Chunker interface {
	Chunk(text string) (Chunks, error)
}

// ChunkerKind names a Chunker implementation for configuration.
type ChunkerKind string

// Supported chunkers
const (
	ChunkerProse  ChunkerKind = "prose"
	ChunkerSimple ChunkerKind = "simple"
)

// NewChunker returns the chunker for kind, defaulting to prose.
func NewChunker(kind ChunkerKind) Chunker {
	if kind == ChunkerSimple {
		return WhitespaceChunker{}
	}
	return ProseChunker{}
}

// ProseChunker tags text with the prose averaged-perceptron POS tagger and
// groups maximal adjective/noun runs that end in a noun into phrases.
type ProseChunker struct{}

// Chunk implements Chunker.
func (ProseChunker) Chunk(text string) (Chunks, error) {
	if strings.TrimSpace(text) == "" {
		return Chunks{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return Chunks{}, fmt.Errorf("failed to tag text: %w", err)
	}

	tokens := doc.Tokens()
	out := Chunks{Tokens: make([]string, 0, len(tokens))}

	var run []prose.Token
	flush := func() {
		if phrase := nounPhrase(run); phrase != "" {
			out.Phrases = append(out.Phrases, phrase)
		}
		run = run[:0]
	}

	for _, tok := range tokens {
		out.Tokens = append(out.Tokens, tok.Text)
		if isNounModifier(tok.Tag) || isNoun(tok.Tag) {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return out, nil
}

// nounPhrase joins run up to and including its last noun.
func nounPhrase(run []prose.Token) string {
	last := -1
	for i, tok := range run {
		if isNoun(tok.Tag) {
			last = i
		}
	}
	if last < 0 {
		return ""
	}
	words := make([]string, 0, last+1)
	for _, tok := range run[:last+1] {
		words = append(words, tok.Text)
	}
	return strings.Join(words, " ")
}

func isNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isNounModifier(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS", "VBG":
		return true
	}
	return false
}

// WhitespaceChunker splits on whitespace and finds no phrases. It needs no
// model and suits already-normalized text when POS tagging is unwanted.
type WhitespaceChunker struct{}

// Chunk implements Chunker.
func (WhitespaceChunker) Chunk(text string) (Chunks, error) {
	return Chunks{Tokens: strings.Fields(text)}, nil
}

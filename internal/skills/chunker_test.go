package skills

import (
	"testing"

	"github.com/jdkato/prose/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNounPhrase(t *testing.T) {
	tok := func(text, tag string) prose.Token { return prose.Token{Text: text, Tag: tag} }

	tests := []struct {
		name string
		run  []prose.Token
		want string
	}{
		{"empty", nil, ""},
		{"modifiers only", []prose.Token{tok("statistical", "JJ")}, ""},
		{"adjective noun", []prose.Token{tok("statistical", "JJ"), tok("analysis", "NN")}, "statistical analysis"},
		{"trailing modifier dropped", []prose.Token{tok("machine", "NN"), tok("learning", "NN"), tok("scalable", "JJ")}, "machine learning"},
		{"gerund modifier", []prose.Token{tok("computing", "VBG"), tok("clusters", "NNS")}, "computing clusters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nounPhrase(tt.run))
		})
	}
}

func TestProseChunker(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tokens []string
	}{
		{"resume line", "experienced data scientist skilled in python and sql",
			[]string{"experienced", "data", "scientist", "skilled", "in", "python", "and", "sql"}},
		{"adjective phrase", "experienced analyst with strong python skills",
			[]string{"experienced", "analyst", "with", "strong", "python", "skills"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := ProseChunker{}.Chunk(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, chunks.Tokens)
			assert.NotEmpty(t, chunks.Phrases)
			for _, phrase := range chunks.Phrases {
				assert.NotEmpty(t, phrase)
			}
		})
	}
}

func TestProseChunker_Blank(t *testing.T) {
	chunks, err := ProseChunker{}.Chunk("   ")
	require.NoError(t, err)
	assert.Empty(t, chunks.Tokens)
	assert.Empty(t, chunks.Phrases)
}

func TestNewChunker(t *testing.T) {
	assert.IsType(t, WhitespaceChunker{}, NewChunker(ChunkerSimple))
	assert.IsType(t, ProseChunker{}, NewChunker(ChunkerProse))
	assert.IsType(t, ProseChunker{}, NewChunker("unknown"))
	assert.IsType(t, ProseChunker{}, NewChunker(""))
}

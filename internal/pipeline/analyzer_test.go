package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/skill-gap/internal/embedding"
	"github.com/jonathan/skill-gap/internal/skills"
	"github.com/jonathan/skill-gap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleResume = `Experienced Data Scientist skilled in Python, SQL, machine learning, Tableau,
		and cloud platforms like AWS and Azure. Contact: jane@example.com`
	exampleJob = `We are hiring a Data Scientist with strong skills in Python, SQL, cloud (AWS),
		and visualization tools such as Tableau or Power BI.`
)

func testAnalyzer(t *testing.T, embedder embedding.Embedder, opts ...Option) *Analyzer {
	t.Helper()
	dict := skills.NewDictionary([]string{
		"python", "sql", "machine learning", "tableau", "aws", "azure", "cloud", "visualization",
	})
	a, err := NewAnalyzer(skills.NewMatcher(dict, skills.WhitespaceChunker{}), embedder, opts...)
	require.NoError(t, err)
	return a
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("model unavailable")
}

func (failingEmbedder) Model() string { return "broken" }

func TestNewAnalyzer_RequiresDependencies(t *testing.T) {
	_, err := NewAnalyzer(nil, embedding.NewHashEmbedder(8))
	assert.Error(t, err)

	_, err = NewAnalyzer(skills.NewMatcher(nil, nil), nil)
	assert.Error(t, err)
}

func TestProcess(t *testing.T) {
	a := testAnalyzer(t, embedding.NewHashEmbedder(128))

	result, err := a.Process(context.Background(), exampleResume, exampleJob)
	require.NoError(t, err)

	assert.NotContains(t, result.ResumeClean, "@")
	assert.Equal(t, []string{"aws", "azure", "cloud", "python", "sql", "tableau"}, result.ResumeSkills.DictSkills)
	assert.Equal(t, []string{"aws", "cloud", "python", "sql", "tableau", "visualization"}, result.JobSkills.DictSkills)
	assert.Len(t, result.ResumeEmbedding, 128)
	assert.Len(t, result.JobEmbedding, 128)
}

func TestScore(t *testing.T) {
	a := testAnalyzer(t, embedding.NewHashEmbedder(128))

	result, err := a.Process(context.Background(), exampleResume, exampleJob)
	require.NoError(t, err)
	report := a.Score(result)

	assert.Equal(t, []string{"aws", "cloud", "python", "sql", "tableau"}, report.SkillMatch.Overlap)
	assert.Equal(t, []string{"visualization"}, report.SkillMatch.Missing)
	assert.Equal(t, 0.83, report.SkillMatch.SkillScore)
	assert.Greater(t, report.Similarity, 0.0)
	assert.Less(t, report.Similarity, 1.0)
	assert.True(t, report.Label.Valid())
	assert.Equal(t, report.Label.Message(), report.Advice)
	assert.InDelta(t, 100*(0.5*report.Similarity+0.5*0.83), report.MatchPercent, 0.06)
	assert.Contains(t, report.Warnings[0], "resume has only")
}

func TestScore_NilResult(t *testing.T) {
	a := testAnalyzer(t, embedding.NewHashEmbedder(8))

	report := a.Score(nil)
	assert.Equal(t, 0.0, report.Similarity)
	assert.Equal(t, types.LabelWeak, report.Label)
	assert.Equal(t, 0.0, report.SkillMatch.SkillScore)
}

func TestAnalyze_StampsReport(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := testAnalyzer(t, embedding.NewHashEmbedder(32))
	a.now = func() time.Time { return fixed }

	report, err := a.Analyze(context.Background(), exampleResume, exampleJob)
	require.NoError(t, err)
	assert.Len(t, report.ID, 36)
	assert.Equal(t, fixed, report.CreatedAt)
}

func TestAnalyze_EmptyResume(t *testing.T) {
	a := testAnalyzer(t, embedding.NewHashEmbedder(32))

	report, err := a.Analyze(context.Background(), "", exampleJob)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.Similarity)
	assert.Equal(t, 0.0, report.SkillMatch.SkillScore)
	assert.Contains(t, report.Warnings, "The resume is empty; its similarity is 0.")
}

func TestAnalyze_EmbedderFailurePropagates(t *testing.T) {
	a := testAnalyzer(t, failingEmbedder{})

	report, err := a.Analyze(context.Background(), exampleResume, exampleJob)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestAnalyze_EmptyDictionaryWarning(t *testing.T) {
	a, err := NewAnalyzer(skills.NewMatcher(skills.NewDictionary(nil), nil), embedding.NewHashEmbedder(8))
	require.NoError(t, err)

	report, err := a.Analyze(context.Background(), exampleResume, exampleJob)
	require.NoError(t, err)
	assert.Contains(t, report.Warnings, "The skill dictionary is empty; no skills can be matched.")
	assert.Empty(t, report.SkillMatch.Overlap)
}

func TestAnalyze_Progress(t *testing.T) {
	var mu sync.Mutex
	var steps []string
	a := testAnalyzer(t, embedding.NewHashEmbedder(8), WithProgress(func(e ProgressEvent) {
		mu.Lock()
		steps = append(steps, e.Step)
		mu.Unlock()
	}))

	_, err := a.Analyze(context.Background(), exampleResume, exampleJob)
	require.NoError(t, err)
	assert.Equal(t, []string{
		StepNormalize, StepSkills, StepEmbed,
		StepNormalize, StepSkills, StepEmbed,
		StepScore,
	}, steps)
}

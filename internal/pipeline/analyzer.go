// Package pipeline wires normalization, skill matching, embeddings and
// scoring into the resume-versus-job analysis.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skill-gap/internal/embedding"
	"github.com/jonathan/skill-gap/internal/logging"
	"github.com/jonathan/skill-gap/internal/parsing"
	"github.com/jonathan/skill-gap/internal/scoring"
	"github.com/jonathan/skill-gap/internal/skills"
	"github.com/jonathan/skill-gap/internal/types"
)

// Progress steps
const (
	StepNormalize = "normalize"
	StepSkills    = "extract_skills"
	StepEmbed     = "embed"
	StepScore     = "score"
)

// ProgressEvent represents a progress update during an analysis
type ProgressEvent struct {
	Step    string `json:"step"`
	Side    string `json:"side,omitempty"` // "resume" or "job"
	Message string `json:"message"`
}

// ProgressCallback is called when analysis progress occurs
type ProgressCallback func(event ProgressEvent)

// Analyzer holds the loaded dictionary, matcher and embedder. Build one at
// startup and share it; it has no mutable state of its own.
type Analyzer struct {
	matcher        *skills.Matcher
	embedder       embedding.Embedder
	semanticWeight float64
	concurrency    int
	onProgress     ProgressCallback
	now            func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSemanticWeight sets the similarity weight used for MatchPercent.
func WithSemanticWeight(w float64) Option {
	return func(a *Analyzer) { a.semanticWeight = w }
}

// WithConcurrency bounds how many resumes Rank scores at once.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithProgress registers a progress callback. Rank invokes it from several
// goroutines, so it must be safe for concurrent use.
func WithProgress(cb ProgressCallback) Option {
	return func(a *Analyzer) { a.onProgress = cb }
}

// NewAnalyzer creates an Analyzer. matcher and embedder are required.
func NewAnalyzer(matcher *skills.Matcher, embedder embedding.Embedder, opts ...Option) (*Analyzer, error) {
	if matcher == nil {
		return nil, fmt.Errorf("skill matcher is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	a := &Analyzer{
		matcher:        matcher,
		embedder:       embedder,
		semanticWeight: scoring.DefaultSemanticWeight,
		concurrency:    4,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// WithProgressCallback returns a copy of a that reports progress to cb. It
// lets a shared Analyzer stream progress for a single request.
func (a *Analyzer) WithProgressCallback(cb ProgressCallback) *Analyzer {
	c := *a
	c.onProgress = cb
	return &c
}

// Matcher returns the skill matcher.
func (a *Analyzer) Matcher() *skills.Matcher {
	return a.matcher
}

func (a *Analyzer) emit(step, side, message string) {
	if a.onProgress != nil {
		a.onProgress(ProgressEvent{Step: step, Side: side, Message: message})
	}
}

// side is one processed text.
type side struct {
	clean     string
	skills    types.SkillSet
	embedding []float32
}

func (a *Analyzer) processSide(ctx context.Context, name, raw string) (*side, error) {
	s := &side{clean: parsing.CleanText(raw)}
	a.emit(StepNormalize, name, fmt.Sprintf("%d characters after cleaning", len(s.clean)))

	s.skills = a.matcher.Extract(s.clean)
	a.emit(StepSkills, name, fmt.Sprintf("%d skills found", s.skills.Len()))

	if s.clean == "" {
		logging.Warn().Str("side", name).Msg("text is empty after cleaning, skipping embedding")
		return s, nil
	}

	vec, err := a.embedder.Embed(ctx, s.clean)
	if err != nil {
		return nil, fmt.Errorf("failed to embed %s text: %w", name, err)
	}
	s.embedding = vec
	a.emit(StepEmbed, name, fmt.Sprintf("%d-dimensional embedding from %s", len(vec), a.embedder.Model()))
	return s, nil
}

// Process cleans both texts, extracts their skills and embeds them.
// Embedding failures are returned; an empty text gets no embedding.
func (a *Analyzer) Process(ctx context.Context, resumeText, jobText string) (*types.ProcessResult, error) {
	resume, err := a.processSide(ctx, "resume", resumeText)
	if err != nil {
		return nil, err
	}
	job, err := a.processSide(ctx, "job", jobText)
	if err != nil {
		return nil, err
	}
	return combine(resume, job), nil
}

func combine(resume, job *side) *types.ProcessResult {
	return &types.ProcessResult{
		ResumeClean:     resume.clean,
		JobClean:        job.clean,
		ResumeSkills:    resume.skills,
		JobSkills:       job.skills,
		ResumeEmbedding: resume.embedding,
		JobEmbedding:    job.embedding,
	}
}

// Score turns a ProcessResult into a report. It never fails: missing
// embeddings score 0 and an empty job skill set gives a skill score of 0.
func (a *Analyzer) Score(result *types.ProcessResult) types.Report {
	if result == nil {
		result = &types.ProcessResult{}
	}

	similarity := scoring.ComputeSimilarity(result.ResumeEmbedding, result.JobEmbedding)
	match := scoring.ComputeSkillMatch(result.ResumeSkills, result.JobSkills)
	label := scoring.InterpretSimilarity(similarity)
	a.emit(StepScore, "", fmt.Sprintf("similarity %.2f, skill score %.2f", similarity, match.SkillScore))

	return types.Report{
		Similarity:   similarity,
		SkillMatch:   match,
		Label:        label,
		Advice:       label.Message(),
		MatchPercent: scoring.CombinedScore(similarity, match.SkillScore, a.semanticWeight),
		ResumeSkills: result.ResumeSkills,
		JobSkills:    result.JobSkills,
		Warnings:     a.warnings(result),
	}
}

func (a *Analyzer) warnings(result *types.ProcessResult) []string {
	var w []string
	for _, t := range []struct{ name, text string }{
		{"resume", result.ResumeClean},
		{"job description", result.JobClean},
	} {
		switch {
		case t.text == "":
			w = append(w, fmt.Sprintf("The %s is empty; its similarity is 0.", t.name))
		case parsing.IsSuspiciouslyShort(t.text):
			w = append(w, fmt.Sprintf("The %s has only %d characters; text extraction may have failed.", t.name, parsing.CharCount(t.text)))
		}
	}
	if a.matcher.Dictionary().IsEmpty() {
		w = append(w, "The skill dictionary is empty; no skills can be matched.")
	}
	return w
}

// Analyze runs Process and Score and stamps the report with an ID and time.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*types.Report, error) {
	result, err := a.Process(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}
	report := a.Score(result)
	a.stamp(&report)
	return &report, nil
}

func (a *Analyzer) stamp(r *types.Report) {
	r.ID = uuid.NewString()
	r.CreatedAt = a.now().UTC()
}

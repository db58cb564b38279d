// Package feedback turns an analysis report into tailoring suggestions,
// using Gemini when a client is configured and fixed rules otherwise.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/skill-gap/internal/llm"
	"github.com/jonathan/skill-gap/internal/logging"
	"github.com/jonathan/skill-gap/internal/prompts"
	"github.com/jonathan/skill-gap/internal/types"
)

// Feedback sources
const (
	SourceLLM   = "llm"
	SourceRules = "rules"
)

// maxJobChars caps how much of the job description goes into the prompt.
const maxJobChars = 4000

type llmResponse struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// Generate asks the model for feedback on report. jobClean is the normalized
// job description.
func Generate(ctx context.Context, client llm.Client, report *types.Report, jobClean string) (*types.Feedback, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}
	if report == nil {
		return nil, fmt.Errorf("report is required")
	}

	description, err := prompts.Get(prompts.FeedbackFile, "coach-description")
	if err != nil {
		return nil, err
	}
	input, err := prompts.Render(prompts.FeedbackFile, "feedback-input", map[string]string{
		"Similarity": fmt.Sprintf("%.2f", report.Similarity),
		"Label":      string(report.Label),
		"SkillScore": fmt.Sprintf("%.0f%%", report.SkillMatch.SkillScore*100),
		"Overlap":    joinOrNone(report.SkillMatch.Overlap),
		"Missing":    joinOrNone(report.SkillMatch.Missing),
		"Job":        truncate(jobClean, maxJobChars),
	})
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildStructuredPrompt(llm.FeedbackSchema(description), input)
	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate feedback", Cause: err}
	}

	var resp llmResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, &ParseError{Message: "feedback is not valid JSON", Cause: err}
	}
	if strings.TrimSpace(resp.Summary) == "" {
		return nil, &ParseError{Message: "feedback response has no summary"}
	}

	suggestions := make([]string, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		if s = strings.TrimSpace(s); s != "" {
			suggestions = append(suggestions, s)
		}
	}

	return &types.Feedback{
		Summary:     strings.TrimSpace(resp.Summary),
		Suggestions: suggestions,
		Source:      SourceLLM,
	}, nil
}

// Fallback builds rule-based feedback: the band advice as the summary and
// one suggestion per missing skill.
func Fallback(report *types.Report) *types.Feedback {
	if report == nil {
		return &types.Feedback{Summary: types.Label("").Message(), Suggestions: []string{}, Source: SourceRules}
	}

	suggestions := make([]string, 0, len(report.SkillMatch.Missing)+1)
	switch {
	case report.JobSkills.IsEmpty():
		suggestions = append(suggestions, prompts.MustGet(prompts.FeedbackFile, "rule-no-job-skills"))
	case len(report.SkillMatch.Missing) == 0:
		suggestions = append(suggestions, prompts.MustGet(prompts.FeedbackFile, "rule-no-missing"))
	default:
		tmpl := prompts.MustGet(prompts.FeedbackFile, "rule-missing-skill")
		for _, skill := range report.SkillMatch.Missing {
			suggestions = append(suggestions, prompts.Format(tmpl, map[string]string{"Skill": skill}))
		}
	}

	return &types.Feedback{
		Summary:     report.Label.Message(),
		Suggestions: suggestions,
		Source:      SourceRules,
	}
}

// GenerateOrFallback returns LLM feedback when client is non-nil and the call
// succeeds, and rule-based feedback otherwise.
func GenerateOrFallback(ctx context.Context, client llm.Client, report *types.Report, jobClean string) *types.Feedback {
	if client == nil {
		return Fallback(report)
	}
	fb, err := Generate(ctx, client, report, jobClean)
	if err != nil {
		logging.Warn().Err(err).Msg("LLM feedback failed, using rule-based feedback")
		return Fallback(report)
	}
	return fb
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

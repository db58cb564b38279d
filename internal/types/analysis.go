package types

import "time"

// ProcessResult is the output of running both texts through normalization,
// skill extraction and embedding.
type ProcessResult struct {
	ResumeClean     string    `json:"resume_clean"`
	JobClean        string    `json:"job_clean"`
	ResumeSkills    SkillSet  `json:"resume_skills"`
	JobSkills       SkillSet  `json:"job_skills"`
	ResumeEmbedding []float32 `json:"-"`
	JobEmbedding    []float32 `json:"-"`
}

// Report is the scored comparison handed to presentation layers.
type Report struct {
	ID           string      `json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	Similarity   float64     `json:"similarity"`
	SkillMatch   MatchResult `json:"skill_match"`
	Label        Label       `json:"label"`
	Advice       string      `json:"advice"`
	MatchPercent float64     `json:"match_percent"` // blended 0-100 score
	ResumeSkills SkillSet    `json:"resume_skills"`
	JobSkills    SkillSet    `json:"job_skills"`
	Warnings     []string    `json:"warnings,omitempty"`
	Feedback     *Feedback   `json:"feedback,omitempty"`
}

// RankedResume is one entry of a multi-resume ranking against a single job.
type RankedResume struct {
	Name   string `json:"name"`
	Report Report `json:"report"`
}

// Feedback holds tailoring suggestions derived from a report.
type Feedback struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
	Source      string   `json:"source"` // "llm" or "rules"
}

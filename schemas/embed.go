// Package schemas bundles the JSON Schemas for the CLI's output documents.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names
const (
	AnalysisReport = "analysis_report.schema.json"
	SkillSet       = "skill_set.schema.json"
	Ranking        = "ranking.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the content of a bundled schema.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return string(data), nil
}

// Names lists the bundled schemas.
func Names() []string {
	return []string{AnalysisReport, SkillSet, Ranking}
}

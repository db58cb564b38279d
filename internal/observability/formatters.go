// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-gap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow bulleted items and a remainder line.
func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintSkillSet outputs the skills extracted from one text.
func (p *Printer) PrintSkillSet(title string, skills types.SkillSet) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Dictionary matches: %d\n", len(skills.DictSkills)))
	writeList(&sb, skills.DictSkills)

	if len(skills.FuzzySkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nFuzzy matches: %d\n", len(skills.FuzzySkills)))
		writeList(&sb, skills.FuzzySkills)
	}

	p.printBox(strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the scores, band and skill gap of a comparison.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Similarity:   %.2f\n", report.Similarity))
	sb.WriteString(fmt.Sprintf("Skill match:  %.2f\n", report.SkillMatch.SkillScore))
	sb.WriteString(fmt.Sprintf("Match:        %.1f%%\n", report.MatchPercent))
	sb.WriteString(fmt.Sprintf("Label:        %s\n", report.Label))
	sb.WriteString(fmt.Sprintf("Advice:       %s\n", report.Advice))
	sb.WriteString("\n")

	if len(report.SkillMatch.Overlap) > 0 {
		sb.WriteString(fmt.Sprintf("Matched skills (%d):\n", len(report.SkillMatch.Overlap)))
		writeList(&sb, report.SkillMatch.Overlap)
	}
	if len(report.SkillMatch.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing skills (%d):\n", len(report.SkillMatch.Missing)))
		writeList(&sb, report.SkillMatch.Missing)
	}

	if len(report.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range report.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", w))
		}
	}

	p.printBox("SKILL GAP REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N resumes ranked against one job.
func (p *Printer) PrintRanking(ranked []types.RankedResume) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.Name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%% (%s)\n", r.Report.MatchPercent, r.Report.Label))
		if missing := r.Report.SkillMatch.Missing; len(missing) > 0 {
			skills := strings.Join(missing, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(ranked)-maxItemsToShow))
	}

	p.printBox("RESUME RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs tailoring suggestions.
func (p *Printer) PrintFeedback(fb *types.Feedback) {
	if fb == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n\n", fb.Source))
	if fb.Summary != "" {
		sb.WriteString(fb.Summary + "\n\n")
	}
	for i, s := range fb.Suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
	}

	p.printBox("TAILORING FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProgress outputs a single progress line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(step, side, message string) {
	if side != "" {
		fmt.Fprintf(p.out, "  [%s/%s] %s\n", step, side, message)
		return
	}
	fmt.Fprintf(p.out, "  [%s] %s\n", step, message)
}

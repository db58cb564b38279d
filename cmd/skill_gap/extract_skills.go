package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap/internal/observability"
	"github.com/jonathan/skill-gap/internal/skills"
	bundled "github.com/jonathan/skill-gap/schemas"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract dictionary skills from a text file",
	Long:  "Normalize a text file and print the dictionary and fuzzy skills found in it as JSON.",
	RunE:  runExtractSkills,
}

var (
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to input text file")
	extractSkillsCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = extractSkillsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	text, err := readText(extractInputFile)
	if err != nil {
		return err
	}

	// No embeddings needed, so the cache and embedder are not opened
	matcher := skills.NewMatcher(
		skills.LoadDictionary(settings.SkillsCSV),
		skills.NewChunker(skills.ChunkerKind(settings.Chunker)),
		skills.WithFuzzyThreshold(settings.FuzzyThreshold),
	)
	found := matcher.Extract(text)

	if settings.Verbose {
		observability.NewPrinter(os.Stderr).PrintSkillSet("Skills", found)
	}

	return writeJSON(found, bundled.SkillSet, extractOutputFile)
}

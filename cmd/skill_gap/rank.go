package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	bundled "github.com/jonathan/skill-gap/schemas"
)

var rankCmd = &cobra.Command{
	Use:   "rank --job FILE RESUME...",
	Short: "Rank several resumes against one job description",
	Long:  "Score every resume file against the job description and print them ordered by blended match score.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

var (
	rankJobFile    string
	rankOutputFile string
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to the job description text file")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = rankCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	jobText, err := readText(rankJobFile)
	if err != nil {
		return err
	}

	resumes := make(map[string]string, len(args))
	for _, path := range args {
		name := filepath.Base(path)
		if _, dup := resumes[name]; dup {
			return fmt.Errorf("duplicate resume file name: %s", name)
		}
		text, err := readText(path)
		if err != nil {
			return err
		}
		resumes[name] = text
	}

	ctx := cmd.Context()
	sess, err := newSession(ctx, settings)
	if err != nil {
		return err
	}
	defer sess.Close()

	ranked, err := sess.analyzer.Rank(ctx, jobText, resumes)
	if err != nil {
		return err
	}

	if settings.Verbose {
		sess.printer.PrintRanking(ranked)
	}

	return writeJSON(ranked, bundled.Ranking, rankOutputFile)
}

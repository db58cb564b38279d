package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap/internal/observability"
)

const (
	exampleResume = `Experienced Data Scientist skilled in Python, SQL, machine learning, Tableau,
and cloud platforms like AWS and Azure.`
	exampleJob = `We are hiring a Data Scientist with strong skills in Python, SQL, cloud (AWS),
and visualization tools such as Tableau or Power BI.`
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Run the built-in Data Scientist example",
	Long:  "Analyze a short built-in Data Scientist resume against a matching job description and print the report.",
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sess, err := newSession(ctx, settings)
	if err != nil {
		return err
	}
	defer sess.Close()

	result, err := sess.analyzer.Process(ctx, exampleResume, exampleJob)
	if err != nil {
		return err
	}
	report := sess.analyzer.Score(result)

	p := observability.NewPrinter(os.Stdout)
	p.PrintSkillSet("Resume skills", result.ResumeSkills)
	p.PrintSkillSet("Job skills", result.JobSkills)
	p.PrintReport(&report)

	_, _ = fmt.Fprintf(os.Stdout, "Cosine Similarity Score: %.4f\n", report.Similarity)
	_, _ = fmt.Fprintf(os.Stdout, "Skill Match: %.2f (overlap %v, missing %v)\n",
		report.SkillMatch.SkillScore, report.SkillMatch.Overlap, report.SkillMatch.Missing)
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap/internal/feedback"
	"github.com/jonathan/skill-gap/internal/parsing"
	bundled "github.com/jonathan/skill-gap/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a resume with a job description",
	Long:  "Extract skills from a resume and a job description, score their similarity and report the skill gap as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeOutputFile string
	analyzeFeedback   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to the resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to the job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeFeedback, "feedback", false, "Add tailoring suggestions (Gemini when an API key is set)")

	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resumeText, err := readText(analyzeResumeFile)
	if err != nil {
		return err
	}
	jobText, err := readText(analyzeJobFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, err := newSession(ctx, settings)
	if err != nil {
		return err
	}
	defer sess.Close()

	report, err := sess.analyzer.Analyze(ctx, resumeText, jobText)
	if err != nil {
		return err
	}

	if analyzeFeedback {
		report.Feedback = feedback.GenerateOrFallback(ctx, sess.feedbackClient(), report, parsing.CleanText(jobText))
	}

	if settings.Verbose {
		sess.printer.PrintSkillSet("Resume skills", report.ResumeSkills)
		sess.printer.PrintSkillSet("Job skills", report.JobSkills)
		sess.printer.PrintReport(report)
		sess.printer.PrintFeedback(report.Feedback)
	}

	return writeJSON(report, bundled.AnalysisReport, analyzeOutputFile)
}

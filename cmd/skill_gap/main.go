// Package main provides the entry point for the skill-gap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skill_gap",
	Short: "Resume vs. job description skill-gap analyzer",
	Long: "skill_gap compares a resume with a job description: it extracts known skills from both, " +
		"scores their semantic similarity with embeddings and reports which job skills the resume is missing.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Persistent flags shared by every command
var (
	configFile     string
	skillsCSV      string
	fuzzyThreshold int
	cacheBackend   string
	embedderName   string
	apiKey         string
	verbose        bool
	logLevel       string
	semanticWeight float64
)

func init() {
	registerPersistentFlags(rootCmd)
}

func registerPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a JSON or YAML config file")
	flags.StringVar(&skillsCSV, "skills", "", "Path to the skill dictionary CSV (overrides config)")
	flags.IntVar(&fuzzyThreshold, "threshold", 0, "Fuzzy match threshold 0-100 (overrides config)")
	flags.Float64Var(&semanticWeight, "semantic-weight", 0.5, "Weight of embedding similarity in the match percentage, 0-1 (0 scores skills only)")
	flags.StringVar(&cacheBackend, "cache", "", "Embedding cache: file, redis, sqlite, postgres or none")
	flags.StringVar(&embedderName, "embedder", "", "Embedder: auto, gemini or hash")
	flags.StringVar(&apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print progress and formatted summaries to stderr")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

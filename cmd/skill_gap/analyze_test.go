package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/skill-gap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testResume = "Experienced Data Scientist skilled in Python, SQL, machine learning, Tableau, " +
		"and cloud platforms like AWS and Azure. Contact: jane@example.com, https://jane.dev"
	testJob = "We are hiring a Data Scientist with strong skills in Python, SQL, cloud (AWS), " +
		"and visualization tools such as Tableau or Power BI."
)

func TestAnalyzeCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --resume flag",
			args:        []string{"analyze", "--job", "job.txt"},
			errorString: "required",
		},
		{
			name:        "Missing --job flag",
			args:        []string{"analyze", "--resume", "resume.txt"},
			errorString: "required",
		},
		{
			name:        "Invalid threshold",
			args:        []string{"analyze", "--resume", "r.txt", "--job", "j.txt", "--threshold", "150"},
			errorString: "fuzzy_threshold",
		},
		{
			name:        "Unknown cache backend",
			args:        []string{"analyze", "--resume", "r.txt", "--job", "j.txt", "--cache", "memcached"},
			errorString: "cache_backend",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestAnalyzeCommand_WritesValidReport(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath := writeTemp(t, "resume.txt", testResume)
	jobPath := writeTemp(t, "job.txt", testJob)
	outPath := filepath.Join(t.TempDir(), "report.json")

	cmd := exec.Command(binaryPath, "analyze",
		"--resume", resumePath, "--job", jobPath, "--out", outPath,
		"--skills", skillsCSVPath(), "--embedder", "hash", "--cache", "none", "--feedback")
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Output:")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal(data, &report))

	assert.NotEmpty(t, report.ID)
	assert.Contains(t, report.SkillMatch.Overlap, "python")
	assert.Contains(t, report.SkillMatch.Overlap, "sql")
	assert.Contains(t, report.SkillMatch.Missing, "visualization")
	assert.True(t, report.Label.Valid())
	require.NotNil(t, report.Feedback)
	assert.Equal(t, "rules", report.Feedback.Source)
}

func TestAnalyzeCommand_FileCacheReused(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath := writeTemp(t, "resume.txt", testResume)
	jobPath := writeTemp(t, "job.txt", testJob)
	configPath := writeTemp(t, "config.yaml", "cache_backend: file\ncache_dir: "+filepath.Join(t.TempDir(), "emb")+"\n")

	for i := 0; i < 2; i++ {
		cmd := exec.Command(binaryPath, "analyze", "--config", configPath,
			"--resume", resumePath, "--job", jobPath, "--skills", skillsCSVPath(), "--embedder", "hash")
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, string(output))
		assert.Contains(t, string(output), `"similarity"`)
	}
}

func TestAnalyzeCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze", "--resume", "/nonexistent/resume.txt", "--job", "/nonexistent/job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read input file")
}

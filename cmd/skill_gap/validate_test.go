package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	schemaPath := filepath.Join("..", "..", "schemas", "analysis_report.schema.json")
	jsonPath := filepath.Join("..", "..", "internal", "schemas", "testdata", "report_valid.json")

	cmd := exec.Command(binaryPath, "validate", "--schema", schemaPath, "--json", jsonPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.Contains(t, string(output), "Validation passed", "output should indicate success")
}

func TestValidateCommand_Failure(t *testing.T) {
	binaryPath := getBinaryPath(t)

	schemaPath := filepath.Join("..", "..", "schemas", "analysis_report.schema.json")
	jsonPath := filepath.Join("..", "..", "internal", "schemas", "testdata", "report_missing_field.json")

	cmd := exec.Command(binaryPath, "validate", "--schema", schemaPath, "--json", jsonPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "Validation failed", "output should indicate failure")
	// Check exit code
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode(), "should exit with code 1 on validation failure")
	}
}

func TestValidateCommand_MissingSchemaFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "validate", "--json", "report.json").CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

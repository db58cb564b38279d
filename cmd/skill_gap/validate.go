package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long:  "Validate a report, skill set or ranking JSON file against one of the schemas in schemas/.",
	// Validation needs no analyzer settings
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runValidate,
}

var (
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON file to validate")

	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	err := schemas.ValidateJSON(validateSchemaPath, validateJSONPath)
	if err == nil {
		_, _ = fmt.Fprintln(os.Stdout, "Validation passed")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed\n%s", validationErr.Error())
		return fmt.Errorf("%d validation error(s)", len(validationErr.Errors))
	}
	return err
}

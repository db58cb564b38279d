// Package schemas validates the CLI's JSON documents against JSON Schemas.
package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	bundled "github.com/jonathan/skill-gap/schemas"
)

// FieldError is one schema violation at a dotted field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation of a document that parsed but did not
// match its schema.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError reports a schema that could not be found or compiled.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON validates the JSON file at jsonPath against the schema at
// schemaPath. When schemaPath does not exist but names a bundled schema
// (e.g. "analysis_report.schema.json") the bundled copy is used.
func ValidateJSON(schemaPath, jsonPath string) error {
	schema, err := readSchema(schemaPath)
	if err != nil {
		return err
	}

	doc, err := os.ReadFile(jsonPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("JSON file not found: %s", jsonPath)
		}
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if !json.Valid(doc) {
		return fmt.Errorf("%s is not valid JSON", jsonPath)
	}

	return validate(schemaPath, schema, doc)
}

func readSchema(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, &SchemaLoadError{Path: path, Message: "unreadable", Cause: err}
	}
	if content, bErr := bundled.Load(filepath.Base(path)); bErr == nil {
		return []byte(content), nil
	}
	return nil, fmt.Errorf("schema file not found: %s", path)
}

// ValidateJSONString validates jsonContent against schemaContent.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)", []byte(schemaContent), []byte(jsonContent))
}

// ValidateDocument marshals doc and validates it against a bundled schema,
// e.g. bundled.AnalysisReport.
func ValidateDocument(schemaName string, doc any) error {
	schema, err := bundled.Load(schemaName)
	if err != nil {
		return &SchemaLoadError{Path: schemaName, Message: "bundled schema not found", Cause: err}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return validate(schemaName, []byte(schema), data)
}

func validate(schemaName string, schema, doc []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &SchemaLoadError{Path: schemaName, Message: "schema could not be compiled", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

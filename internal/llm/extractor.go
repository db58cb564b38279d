// Package llm - extractor.go builds prompts that ask for a fixed JSON structure.
package llm

import (
	"fmt"
	"strings"
)

// OutputSchema describes the JSON object a prompt asks the model to return.
type OutputSchema struct {
	Name        string        // Schema name (e.g., "Feedback")
	Description string        // Preamble describing the task
	Fields      []SchemaField // Expected output fields
	Rules       []string      // Extra instructions appended after the structure
}

// SchemaField defines a single field in the output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool
}

// BuildStructuredPrompt constructs a prompt from schema and input text.
func BuildStructuredPrompt(schema OutputSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	for _, rule := range schema.Rules {
		sb.WriteString("- ")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// FeedbackSchema is the output structure for resume tailoring feedback.
func FeedbackSchema(description string) OutputSchema {
	return OutputSchema{
		Name:        "Feedback",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "Two or three sentences on how well the resume fits the job",
				Required:    true,
			},
			{
				Name:        "suggestions",
				Type:        "[\"string\"]",
				Description: "Concrete edits to the resume, most important first",
				Required:    true,
			},
		},
		Rules: []string{
			"Only suggest skills the candidate could plausibly claim; never invent experience.",
			"Mention missing skills by the exact names given in the input.",
		},
	}
}

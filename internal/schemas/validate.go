// Package schemas provides JSON Schema validation for profile and job
// documents supplied to the CLI as files.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema file locations relative to the repository root.
const (
	JobPostingSchema  = "schemas/job_posting.schema.json"
	UserProfileSchema = "schemas/user_profile.schema.json"
)

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions: relative to the working directory, then one and two
// levels up. Useful when CLI commands run from different working directory
// contexts (e.g., tests). Returns empty string when none exist.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateDocument validates JSON document content against a schema file
// identified by its repo-relative path.
func ValidateDocument(schemaRelPath, jsonContent string) error {
	schemaPath := ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", schemaRelPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// ValidateJobPosting validates one job posting document.
func ValidateJobPosting(jsonContent string) error {
	return ValidateDocument(JobPostingSchema, jsonContent)
}

// ValidateUserProfile validates one user match profile document.
func ValidateUserProfile(jsonContent string) error {
	return ValidateDocument(UserProfileSchema, jsonContent)
}

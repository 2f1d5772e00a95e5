// Package schemas provides JSON Schema validation for dictionary
// override files.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed dictionary.schema.json
var dictionarySchema string

// ValidationError reports per-field schema violations.
type ValidationError struct {
	Path   string
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation failed for %s:\n", ve.Path)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// ValidateDictionaryFile checks a single override file against the
// dictionary table schema.
func ValidateDictionaryFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return validateDocument(path, string(data))
}

// ValidateDictionaryDir checks every .json file in a directory against
// the dictionary table schema, returning the first failure.
func ValidateDictionaryDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read dictionary dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := ValidateDictionaryFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func validateDocument(path, content string) error {
	schemaLoader := gojsonschema.NewStringLoader(dictionarySchema)
	documentLoader := gojsonschema.NewStringLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", path, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{
		Path:   path,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

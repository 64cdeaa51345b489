// Package schemas validates JSON documents against the embedded JSON Schemas.
package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	embedded "github.com/jonathan/resume-matcher/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedDocument is returned when the document is not JSON at all.
var ErrMalformedDocument = errors.New("malformed JSON document")

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError is a single violation; Field is "(root)" for the whole document.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		fmt.Fprintf(&sb, "validation against %s failed:\n", ve.Schema)
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema itself could not be found or compiled.
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

// compiled caches embedded schemas by file name.
var compiled sync.Map

func embeddedSchema(name string) (*gojsonschema.Schema, error) {
	if s, ok := compiled.Load(name); ok {
		return s.(*gojsonschema.Schema), nil
	}

	content, err := embedded.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "embedded schema not found", Cause: err}
	}
	s, err := compile(name, gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, err
	}

	actual, _ := compiled.LoadOrStore(name, s)
	return actual.(*gojsonschema.Schema), nil
}

func compile(name string, loader gojsonschema.JSONLoader) (*gojsonschema.Schema, error) {
	s, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	return s, nil
}

// ValidateBytes validates a JSON document against one of the embedded schemas.
func ValidateBytes(schemaName string, document []byte) error {
	s, err := embeddedSchema(schemaName)
	if err != nil {
		return err
	}
	return check(schemaName, s, gojsonschema.NewBytesLoader(document))
}

// ValidateValue marshals v to JSON and validates it against an embedded schema.
func ValidateValue(schemaName string, v any) error {
	document, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for validation: %w", err)
	}
	return ValidateBytes(schemaName, document)
}

// ValidateFile validates a JSON file on disk against an embedded schema.
func ValidateFile(schemaName, jsonPath string) error {
	document, err := os.ReadFile(jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("JSON file not found: %s", jsonPath)
		}
		return fmt.Errorf("failed to read JSON file %s: %w", jsonPath, err)
	}
	return ValidateBytes(schemaName, document)
}

// ValidateJSONString validates a document against an ad-hoc schema. The schema is not cached.
func ValidateJSONString(schemaContent, jsonContent string) error {
	s, err := compile("(string schema)", gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return err
	}
	return check("", s, gojsonschema.NewStringLoader(jsonContent))
}

func check(schemaName string, s *gojsonschema.Schema, document gojsonschema.JSONLoader) error {
	result, err := s.Validate(document)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		violations = append(violations, FieldError{Field: field, Message: desc.Description()})
	}
	return &ValidationError{Schema: schemaName, Errors: violations}
}

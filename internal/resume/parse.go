// Package resume holds the JSON resume document and its boundary checks.
package resume

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidFormat is returned for documents that are not JSON or do not
// match the resume shape.
var ErrInvalidFormat = errors.New("invalid resume format")

//go:embed resume.schema.json
var schemaSource string

//go:embed example.json
var exampleSource []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaSource))
})

// ValidationError lists the fields that broke the resume schema.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrInvalidFormat.Error())
	sb.WriteString(":")
	for i, fe := range e.Errors {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(fmt.Sprintf(" %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFormat
}

// Parse validates data against the resume schema and decodes it.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidFormat)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidFormat)
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return &doc, nil
}

// Validate checks data against the embedded resume schema.
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}

	return verr
}

// Read parses a resume from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	return Parse(data)
}

// Load parses the resume stored at path. "-" reads from stdin.
func Load(path string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("resume path is required")
	}

	if path == "-" {
		return Read(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume from file %q: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Example returns a fresh copy of the bundled sample resume.
func Example() *Document {
	var doc Document
	if err := json.Unmarshal(exampleSource, &doc); err != nil {
		panic(fmt.Sprintf("bundled example resume is broken: %v", err))
	}
	return &doc
}

// ExampleJSON returns the raw bundled sample resume.
func ExampleJSON() []byte {
	return bytes.Clone(exampleSource)
}

package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

// SchemaValidator validates JSON or YAML documents against registered JSON schemas
type SchemaValidator interface {
	RegisterSchema(name string, schema []byte) error
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
	ValidateYAML(data []byte, schemaName string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// RegisterSchema compiles schema and stores it under name.
// Schemas are usually embedded next to the package that owns the document.
func (v *validator) RegisterSchema(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = compiled
	return nil
}

// ValidateFile validates a JSON or YAML file against a registered schema.
// The format is chosen by file extension.
func (v *validator) ValidateFile(dataPath, schemaName string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	if strings.HasSuffix(dataPath, ".yaml") || strings.HasSuffix(dataPath, ".yml") {
		return v.ValidateYAML(data, schemaName)
	}
	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data bytes against a registered schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.lookup(schemaName)
	if err != nil {
		return err
	}

	jsonData, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: failed to parse JSON data: %v", domain.ErrInvalidInput, err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateYAML converts YAML to its JSON form and validates that
func (v *validator) ValidateYAML(data []byte, schemaName string) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: failed to parse YAML data: %v", domain.ErrInvalidInput, err)
	}

	// yaml.v3 decodes string-keyed mappings to map[string]interface{}, so this
	// round trip only fails for documents with non-string keys
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: YAML is not representable as JSON: %v", domain.ErrInvalidInput, err)
	}
	return v.ValidateBytes(jsonData, schemaName)
}

func (v *validator) lookup(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	schema, ok := v.schemas[name]
	if !ok {
		return nil, fmt.Errorf("failed to load schema %s: not registered", name)
	}
	return schema, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var errs []string
		collectErrors(validationErr, &errs)
		return fmt.Errorf("%w: schema validation failed:\n%s", domain.ErrInvalidInput, strings.Join(errs, "\n"))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errs *[]string) {
	if msg := formatError(err); msg != "" {
		*errs = append(*errs, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errs)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

package validation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func newPersonValidator(t *testing.T) SchemaValidator {
	t.Helper()
	v := NewSchemaValidator()
	if err := v.RegisterSchema("person.schema.json", []byte(personSchema)); err != nil {
		t.Fatalf("Failed to register schema: %v", err)
	}
	return v
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := newPersonValidator(t)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid data",
			data: `{"name": "John", "age": 30}`,
		},
		{
			name: "valid data without optional field",
			data: `{"name": "Jane"}`,
		},
		{
			name:      "missing required field",
			data:      `{"age": 25}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"name": "John", "age": "thirty"}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "constraint violation",
			data:      `{"name": "John", "age": -5}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "invalid JSON",
			data:      `{"name": "John", "age": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "person.schema.json")

			if tt.wantError {
				if err == nil {
					t.Fatalf("Expected error but got none")
				}
				if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("Expected a validation category error, got: %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateYAML(t *testing.T) {
	validator := newPersonValidator(t)

	if err := validator.ValidateYAML([]byte("name: Freddy\nage: 40\n"), "person.schema.json"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	err := validator.ValidateYAML([]byte("age: -1\n"), "person.schema.json")
	if err == nil {
		t.Fatal("Expected error for invalid YAML document")
	}

	err = validator.ValidateYAML([]byte("name: [unterminated\n"), "person.schema.json")
	if err == nil || !strings.Contains(err.Error(), "parse YAML") {
		t.Errorf("Expected YAML parse error, got: %v", err)
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := newPersonValidator(t)
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "person.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name": "Bonnie"}`), 0600); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}
	yamlPath := filepath.Join(tmpDir, "person.yaml")
	if err := os.WriteFile(yamlPath, []byte("age: 3\n"), 0600); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}

	if err := validator.ValidateFile(jsonPath, "person.schema.json"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := validator.ValidateFile(yamlPath, "person.schema.json"); err == nil {
		t.Error("Expected error for YAML file missing name")
	}
	if err := validator.ValidateFile(filepath.Join(tmpDir, "missing.json"), "person.schema.json"); err == nil {
		t.Error("Expected error for non-existent data file")
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	if err == nil {
		t.Fatal("Expected error for unregistered schema")
	}
	if !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	validator := NewSchemaValidator()

	if err := validator.RegisterSchema("broken.schema.json", []byte(`{"type": `)); err == nil {
		t.Error("Expected error for malformed schema")
	}
}

func TestSchemaValidator_RegisterIsIdempotent(t *testing.T) {
	validator := newPersonValidator(t)

	if err := validator.RegisterSchema("person.schema.json", []byte(personSchema)); err != nil {
		t.Errorf("Re-registering the same schema should be a no-op, got: %v", err)
	}
}

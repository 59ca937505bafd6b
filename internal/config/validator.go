package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// requiredEnvVars lists the variables that must be set for a storage driver
func requiredEnvVars(driver string) []string {
	vars := []string{"ENV_SCHEMA_VERSION", "API_KEY"}
	if driver != StorageMemory {
		vars = append(vars, "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME")
	}
	return vars
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range requiredEnvVars(strings.ToLower(os.Getenv("STORAGE_DRIVER"))) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv("ADMIN_HANDLES") == "" {
		warnings = append(warnings, "ADMIN_HANDLES is empty - only handles stored in the admins table can run admin commands")
	}

	if strings.ToLower(os.Getenv("STORAGE_DRIVER")) == StorageMemory {
		warnings = append(warnings, "STORAGE_DRIVER=memory - accounts are lost on restart")
	}

	return warnings, nil
}

package main

import "fmt"

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required local tooling"
}

type toolCheck struct {
	name     string
	args     []string
	required bool
	hint     string
}

var toolChecks = []toolCheck{
	{"go", []string{"version"}, true, "Install from: https://go.dev/dl/"},
	{"docker", []string{"--version"}, false, "Needed for integration tests (testcontainers)"},
	{"make", []string{"--version"}, false, "Install via package manager"},
	{"mockery", []string{"--version"}, false, "go install github.com/vektra/mockery/v2@v2.53.5"},
	{"swag", []string{"--version"}, false, "go install github.com/swaggo/swag/cmd/swag@v1.16.6"},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	missing := 0
	for _, tc := range toolChecks {
		version, err := commandVersion(tc.name, tc.args...)
		switch {
		case err == nil:
			PrintSuccess("%s: %s", tc.name, version)
		case tc.required:
			PrintError("%s not found. %s", tc.name, tc.hint)
			missing++
		default:
			PrintWarning("%s not found (optional). %s", tc.name, tc.hint)
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	PrintSuccess("Environment check complete")
	return nil
}

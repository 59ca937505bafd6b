package main

import (
	"fmt"
	"net/http"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server (API_URL or first arg)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := getEnv("API_URL", defaultAPIURL)
	if len(args) > 0 {
		base = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		resp, err := client.Get(base + path)
		if err != nil {
			PrintError("%s: %v", path, err)
			return err
		}
		resp.Body.Close()
		duration := time.Since(start)

		if resp.StatusCode != http.StatusOK {
			PrintError("%s: status code %d", path, resp.StatusCode)
			return fmt.Errorf("%s returned %d", path, resp.StatusCode)
		}
		if duration > time.Second {
			PrintWarning("%s: slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

// Package pgtest starts a throwaway PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Image is the postgres image used by integration tests
const Image = "postgres:15-alpine"

// Start runs a container and returns its connection string and a terminate
// func. A missing Docker daemon surfaces as an error, never a panic.
func Start(ctx context.Context) (connStr string, terminate func(), err error) {
	defer func() {
		// testcontainers panics when no Docker provider can be found
		if r := recover(); r != nil {
			err = fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	container, err := postgres.Run(ctx,
		Image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return connStr, func() {
		if err := container.Terminate(context.Background()); err != nil {
			fmt.Printf("failed to terminate container: %v\n", err)
		}
	}, nil
}

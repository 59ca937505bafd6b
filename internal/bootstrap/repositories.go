package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FNTDWorld_Go/internal/config"
	"github.com/osse101/FNTDWorld_Go/internal/database"
	"github.com/osse101/FNTDWorld_Go/internal/database/memory"
	"github.com/osse101/FNTDWorld_Go/internal/database/postgres"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
)

// Storage is the account store selected by STORAGE_DRIVER together with its
// connection pool, if any.
type Storage struct {
	Accounts repository.Account
	Pool     database.Pool
}

// Ping reports whether the store is reachable
func (s *Storage) Ping(ctx context.Context) error {
	return s.Accounts.Ping(ctx)
}

// Close releases the connection pool
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeStorage opens the configured account store. For PostgreSQL it
// connects the pool and applies pending migrations unless RUN_MIGRATIONS=false.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		slog.Warn(LogMsgUsingMemoryStore)
		return &Storage{Accounts: memory.NewStore()}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if cfg.RunMigrations {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
			}
		} else {
			slog.Info(LogMsgMigrationsSkipped)
		}
		slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "db", cfg.DBName)
		return &Storage{Accounts: postgres.NewAccountRepository(pool), Pool: pool}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StorageDriver)
	}
}

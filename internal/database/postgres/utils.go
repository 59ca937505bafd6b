package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
	"github.com/osse101/FNTDWorld_Go/internal/metrics"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// wrapErr classifies a driver error. Constraint violations become validation
// errors, everything else is a transient I/O failure.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeCheckViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrInsufficientFunds)
		case PgErrorCodeUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidInput, pgErr.Detail)
		}
	}
	metrics.RecordPersistenceError(op)
	return domain.NewIOError(op, err)
}

func scanProfile(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Name, &a.Handle, &a.Avatar, &a.Currency,
		&a.Stats.TotalSpins, &a.Stats.ItemsOwned, &a.Stats.DaysActive, &a.Stats.TradeCount,
		&a.Banned, &a.CreatedAt, &a.UpdatedAt, &a.LastSeenAt,
	)
	if err != nil {
		return nil, err
	}
	a.Inventory = []string{}
	return &a, nil
}

// querier is satisfied by both the pool and a transaction
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func loadInventory(ctx context.Context, q querier, userID int64) ([]string, error) {
	rows, err := q.Query(ctx,
		`SELECT item_id FROM user_inventory WHERE user_id = $1 ORDER BY entry_id`, userID)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

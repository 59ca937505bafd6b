package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
)

var _ repository.Account = (*AccountRepository)(nil)

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Ping(ctx context.Context) error {
	return wrapErr(OpPing, r.db.Ping(ctx))
}

// GetProfile loads a profile and its inventory
func (r *AccountRepository) GetProfile(ctx context.Context, userID int64) (*domain.Account, error) {
	acc, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
		}
		return nil, wrapErr(OpGetProfile, err)
	}
	if acc.Inventory, err = loadInventory(ctx, r.db, userID); err != nil {
		return nil, wrapErr(OpGetInventory, err)
	}
	return acc, nil
}

// GetProfileByHandle loads the profile whose handle matches after Unicode case folding
func (r *AccountRepository) GetProfileByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	acc, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = `+userIDByHandle, utils.FoldHandle(handle)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: handle %s", domain.ErrAccountNotFound, handle)
		}
		return nil, wrapErr(OpGetProfileByHandle, err)
	}
	if acc.Inventory, err = loadInventory(ctx, r.db, acc.ID); err != nil {
		return nil, wrapErr(OpGetInventory, err)
	}
	return acc, nil
}

// CreateProfile inserts a new profile with its initial inventory in one transaction
func (r *AccountRepository) CreateProfile(ctx context.Context, initial domain.Account) (*domain.Account, error) {
	if initial.Currency < 0 {
		return nil, fmt.Errorf("%w: negative starting balance", domain.ErrInvalidAmount)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr(OpCreateProfile, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO user_profiles (user_id, name, username, avatar, currency,
			total_spins, items_owned, days_active, trade_count, banned, last_seen_at, username_folded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11::timestamptz, NOW()), $12)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING ` + profileColumns

	var lastSeen any
	if !initial.LastSeenAt.IsZero() {
		lastSeen = initial.LastSeenAt
	}
	acc, err := scanProfile(tx.QueryRow(ctx, query,
		initial.ID, initial.Name, initial.Handle, initial.Avatar, initial.Currency,
		initial.Stats.TotalSpins, len(initial.Inventory), initial.Stats.DaysActive, initial.Stats.TradeCount,
		initial.Banned, lastSeen, utils.FoldHandle(initial.Handle),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d already exists", domain.ErrInvalidInput, initial.ID)
		}
		return nil, wrapErr(OpCreateProfile, err)
	}

	for _, itemID := range initial.Inventory {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_inventory (user_id, item_id) VALUES ($1, $2)`, acc.ID, itemID); err != nil {
			return nil, wrapErr(OpAddInventoryItem, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapErr(OpCreateProfile, err)
	}

	acc.Inventory = append([]string{}, initial.Inventory...)
	return acc, nil
}

// UpdateProfile applies the non-nil fields of update. items_owned is never
// written here; it follows the inventory table.
func (r *AccountRepository) UpdateProfile(ctx context.Context, userID int64, update domain.AccountUpdate) (*domain.Account, error) {
	if update.IsEmpty() {
		return r.GetProfile(ctx, userID)
	}
	if update.Currency != nil && *update.Currency < 0 {
		return nil, fmt.Errorf("%w: balance cannot be negative", domain.ErrInsufficientFunds)
	}

	sets := make([]string, 0, 10)
	args := make([]any, 0, 11)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Handle != nil {
		add("username", *update.Handle)
		add("username_folded", utils.FoldHandle(*update.Handle))
	}
	if update.Avatar != nil {
		add("avatar", *update.Avatar)
	}
	if update.Currency != nil {
		add("currency", *update.Currency)
	}
	if update.Stats != nil {
		add("total_spins", update.Stats.TotalSpins)
		add("days_active", update.Stats.DaysActive)
		add("trade_count", update.Stats.TradeCount)
	}
	if update.Banned != nil {
		add("banned", *update.Banned)
	}
	if update.LastSeenAt != nil {
		add("last_seen_at", *update.LastSeenAt)
	}
	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE user_profiles SET %s, updated_at = NOW() WHERE user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), profileColumns)

	acc, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
		}
		return nil, wrapErr(OpUpdateProfile, err)
	}
	if acc.Inventory, err = loadInventory(ctx, r.db, userID); err != nil {
		return nil, wrapErr(OpGetInventory, err)
	}
	return acc, nil
}

func (r *AccountRepository) GetInventory(ctx context.Context, userID int64) ([]string, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_profiles WHERE user_id = $1)`, userID).Scan(&exists); err != nil {
		return nil, wrapErr(OpGetInventory, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
	}
	inv, err := loadInventory(ctx, r.db, userID)
	if err != nil {
		return nil, wrapErr(OpGetInventory, err)
	}
	return inv, nil
}

// AddInventoryItem appends one entry and bumps items_owned in the same transaction
func (r *AccountRepository) AddInventoryItem(ctx context.Context, userID int64, itemID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapErr(OpAddInventoryItem, err)
	}
	defer SafeRollback(ctx, tx)

	if err := addItemTx(ctx, tx, userID, itemID); err != nil {
		return err
	}
	return wrapErr(OpAddInventoryItem, tx.Commit(ctx))
}

func addItemTx(ctx context.Context, tx pgx.Tx, userID int64, itemID string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE user_profiles SET items_owned = items_owned + 1, updated_at = NOW() WHERE user_id = $1`, userID)
	if err != nil {
		return wrapErr(OpAddInventoryItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO user_inventory (user_id, item_id) VALUES ($1, $2)`, userID, itemID); err != nil {
		return wrapErr(OpAddInventoryItem, err)
	}
	return nil
}

// RemoveInventoryItem deletes the oldest matching entry
func (r *AccountRepository) RemoveInventoryItem(ctx context.Context, userID int64, itemID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapErr(OpRemoveInventoryItem, err)
	}
	defer SafeRollback(ctx, tx)

	// lock the profile row first so concurrent removals serialize
	var owned int
	err = tx.QueryRow(ctx,
		`SELECT items_owned FROM user_profiles WHERE user_id = $1 FOR UPDATE`, userID).Scan(&owned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
		}
		return wrapErr(OpRemoveInventoryItem, err)
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM user_inventory
		WHERE entry_id = (
			SELECT entry_id FROM user_inventory
			WHERE user_id = $1 AND item_id = $2
			ORDER BY entry_id
			LIMIT 1
		)`, userID, itemID)
	if err != nil {
		return wrapErr(OpRemoveInventoryItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotInInventory, itemID)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE user_profiles
		SET items_owned = (SELECT COUNT(*) FROM user_inventory WHERE user_id = $1), updated_at = NOW()
		WHERE user_id = $1`, userID); err != nil {
		return wrapErr(OpRemoveInventoryItem, err)
	}

	return wrapErr(OpRemoveInventoryItem, tx.Commit(ctx))
}

func (r *AccountRepository) IsAdmin(ctx context.Context, handle string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE username_folded = $1)`,
		utils.FoldHandle(handle)).Scan(&ok)
	if err != nil {
		return false, wrapErr(OpIsAdmin, err)
	}
	return ok, nil
}

func (r *AccountRepository) ListAdminHandles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT username FROM admins ORDER BY created_at, username`)
	if err != nil {
		return nil, wrapErr(OpListAdmins, err)
	}
	handles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapErr(OpListAdmins, err)
	}
	return handles, nil
}

// AddAdminHandle inserts a handle into the allow-list. Only an identical
// handle counts as a duplicate; case variants are stored separately.
func (r *AccountRepository) AddAdminHandle(ctx context.Context, handle string) error {
	h := utils.NormalizeHandle(handle)
	if h == "" {
		return domain.ErrEmptyHandle
	}
	_, err := r.db.Exec(ctx, `INSERT INTO admins (username, username_folded) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
		h, utils.FoldHandle(h))
	return wrapErr(OpAddAdmin, err)
}

// AdjustCurrency applies delta atomically, refusing to go below zero
func (r *AccountRepository) AdjustCurrency(ctx context.Context, handle string, delta int) (*domain.Account, error) {
	acc, err := scanProfile(r.db.QueryRow(ctx, `
		UPDATE user_profiles
		SET currency = currency + $2, updated_at = NOW()
		WHERE user_id = `+userIDByHandle+` AND currency + $2 >= 0
		RETURNING `+profileColumns, utils.FoldHandle(handle), delta))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, wrapErr(OpAdjustCurrency, err)
		}
		// either no such handle or the balance would go negative
		current, lookupErr := r.GetProfileByHandle(ctx, handle)
		if lookupErr != nil {
			return nil, lookupErr
		}
		return nil, fmt.Errorf("%w: balance %d, delta %d", domain.ErrInsufficientFunds, current.Currency, delta)
	}
	if acc.Inventory, err = loadInventory(ctx, r.db, acc.ID); err != nil {
		return nil, wrapErr(OpGetInventory, err)
	}
	return acc, nil
}

func (r *AccountRepository) SetBanned(ctx context.Context, handle string, banned bool) (*domain.Account, error) {
	acc, err := scanProfile(r.db.QueryRow(ctx, `
		UPDATE user_profiles SET banned = $2, updated_at = NOW()
		WHERE user_id = `+userIDByHandle+`
		RETURNING `+profileColumns, utils.FoldHandle(handle), banned))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: handle %s", domain.ErrAccountNotFound, handle)
		}
		return nil, wrapErr(OpSetBanned, err)
	}
	if acc.Inventory, err = loadInventory(ctx, r.db, acc.ID); err != nil {
		return nil, wrapErr(OpGetInventory, err)
	}
	return acc, nil
}

// AddInventoryItemToAll appends itemID to every account, one transaction per
// account. A failure stops the loop and reports how many accounts were updated.
func (r *AccountRepository) AddInventoryItemToAll(ctx context.Context, itemID string) (int, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM user_profiles ORDER BY user_id`)
	if err != nil {
		return 0, wrapErr(OpAddInventoryItemToAll, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return 0, wrapErr(OpAddInventoryItemToAll, err)
	}

	log := logger.FromContext(ctx)
	count := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return count, domain.NewIOError(OpAddInventoryItemToAll, err)
		}
		if err := r.AddInventoryItem(ctx, id, itemID); err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				// account vanished between listing and update
				continue
			}
			log.Error("Bulk item grant stopped", "item_id", itemID, "user_id", id, "updated", count, "error", err)
			return count, err
		}
		count++
	}
	return count, nil
}

package repository

import (
	"context"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

// Profiles defines profile persistence
type Profiles interface {
	GetProfile(ctx context.Context, userID int64) (*domain.Account, error)
	GetProfileByHandle(ctx context.Context, handle string) (*domain.Account, error)
	CreateProfile(ctx context.Context, initial domain.Account) (*domain.Account, error)
	UpdateProfile(ctx context.Context, userID int64, update domain.AccountUpdate) (*domain.Account, error)
}

// Inventory defines inventory persistence. Implementations keep
// Stats.ItemsOwned equal to the inventory length in the same write.
type Inventory interface {
	GetInventory(ctx context.Context, userID int64) ([]string, error)
	AddInventoryItem(ctx context.Context, userID int64, itemID string) error
	// RemoveInventoryItem removes exactly one occurrence or returns domain.ErrNotInInventory
	RemoveInventoryItem(ctx context.Context, userID int64, itemID string) error
}

// Admin defines the handle-addressed operations used by administrators
type Admin interface {
	// IsAdmin matches the allow-list case-insensitively
	IsAdmin(ctx context.Context, handle string) (bool, error)
	ListAdminHandles(ctx context.Context) ([]string, error)
	AddAdminHandle(ctx context.Context, handle string) error
	// AdjustCurrency applies delta. The balance never goes below zero.
	AdjustCurrency(ctx context.Context, handle string, delta int) (*domain.Account, error)
	SetBanned(ctx context.Context, handle string, banned bool) (*domain.Account, error)
	// AddInventoryItemToAll appends itemID to every account and returns how many were
	// updated. On failure the count of accounts already updated is returned with the error.
	AddInventoryItemToAll(ctx context.Context, itemID string) (int, error)
}

// Account is the full persistence port
type Account interface {
	Profiles
	Inventory
	Admin
	Ping(ctx context.Context) error
}

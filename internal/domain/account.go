package domain

import "time"

// Stats holds the per-account counters shown on the profile page.
// All counters only grow, except ItemsOwned which follows the inventory size.
type Stats struct {
	TotalSpins int `json:"total_spins"`
	ItemsOwned int `json:"items_owned"`
	DaysActive int `json:"days_active"`
	TradeCount int `json:"trade_count"`
}

// Account is the persisted user profile together with its inventory.
type Account struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Handle     string    `json:"handle"`
	Avatar     string    `json:"avatar"`
	Currency   int       `json:"currency"`
	Stats      Stats     `json:"stats"`
	Inventory  []string  `json:"inventory"`
	Banned     bool      `json:"banned"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Clone returns a deep copy so callers can't alias the inventory slice.
func (a Account) Clone() Account {
	c := a
	c.Inventory = append([]string(nil), a.Inventory...)
	return c
}

// CountItem returns how many times itemID appears in the inventory.
func (a Account) CountItem(itemID string) int {
	n := 0
	for _, id := range a.Inventory {
		if id == itemID {
			n++
		}
	}
	return n
}

// AccountUpdate is a partial profile update. Nil fields are left untouched.
// Inventory is not part of it: inventory changes go through the dedicated
// add/remove operations so ItemsOwned stays in sync.
type AccountUpdate struct {
	Name       *string
	Handle     *string
	Avatar     *string
	Currency   *int
	Stats      *Stats
	Banned     *bool
	LastSeenAt *time.Time
}

// IsEmpty reports whether the update would change nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.Name == nil && u.Handle == nil && u.Avatar == nil && u.Currency == nil &&
		u.Stats == nil && u.Banned == nil && u.LastSeenAt == nil
}

// Apply writes the non-nil fields onto acc.
func (u AccountUpdate) Apply(acc *Account) {
	if u.Name != nil {
		acc.Name = *u.Name
	}
	if u.Handle != nil {
		acc.Handle = *u.Handle
	}
	if u.Avatar != nil {
		acc.Avatar = *u.Avatar
	}
	if u.Currency != nil {
		acc.Currency = *u.Currency
	}
	if u.Stats != nil {
		// ItemsOwned is owned by the inventory operations
		itemsOwned := acc.Stats.ItemsOwned
		acc.Stats = *u.Stats
		acc.Stats.ItemsOwned = itemsOwned
	}
	if u.Banned != nil {
		acc.Banned = *u.Banned
	}
	if u.LastSeenAt != nil {
		acc.LastSeenAt = *u.LastSeenAt
	}
}

// Identity is what the host platform session tells us about the caller.
// It is trusted as given.
type Identity struct {
	UserID    int64
	FirstName string
	Username  string
}

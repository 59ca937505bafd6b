// Package memory is an in-process implementation of repository.Account used in
// development mode and by service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
)

var _ repository.Account = (*Store)(nil)

// Store keeps accounts and the admin allow-list in maps guarded by one mutex
type Store struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	admins   []string
	now      func() time.Time
}

// NewStore creates an empty store seeded with the given admin handles
func NewStore(adminHandles ...string) *Store {
	s := &Store{
		accounts: make(map[int64]*domain.Account),
		now:      time.Now,
	}
	for _, h := range adminHandles {
		_ = s.AddAdminHandle(context.Background(), h)
	}
	return s
}

// WithClock overrides the time source, for tests
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) GetProfile(ctx context.Context, userID int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
	}
	c := acc.Clone()
	return &c, nil
}

func (s *Store) GetProfileByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc := s.findByHandleLocked(handle)
	if acc == nil {
		return nil, fmt.Errorf("%w: handle %s", domain.ErrAccountNotFound, handle)
	}
	c := acc.Clone()
	return &c, nil
}

func (s *Store) CreateProfile(ctx context.Context, initial domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[initial.ID]; exists {
		return nil, fmt.Errorf("%w: account %d already exists", domain.ErrInvalidInput, initial.ID)
	}
	if initial.Currency < 0 {
		return nil, fmt.Errorf("%w: negative starting balance", domain.ErrInvalidAmount)
	}

	acc := initial.Clone()
	acc.Stats.ItemsOwned = len(acc.Inventory)
	now := s.now()
	acc.CreatedAt = now
	acc.UpdatedAt = now
	if acc.LastSeenAt.IsZero() {
		acc.LastSeenAt = now
	}
	s.accounts[acc.ID] = &acc

	c := acc.Clone()
	return &c, nil
}

func (s *Store) UpdateProfile(ctx context.Context, userID int64, update domain.AccountUpdate) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
	}
	if update.Currency != nil && *update.Currency < 0 {
		return nil, fmt.Errorf("%w: balance cannot be negative", domain.ErrInsufficientFunds)
	}

	update.Apply(acc)
	acc.UpdatedAt = s.now()

	c := acc.Clone()
	return &c, nil
}

func (s *Store) GetInventory(ctx context.Context, userID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
	}
	return append([]string{}, acc.Inventory...), nil
}

func (s *Store) AddInventoryItem(ctx context.Context, userID int64, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
	}
	s.appendLocked(acc, itemID)
	return nil
}

func (s *Store) RemoveInventoryItem(ctx context.Context, userID int64, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, userID)
	}
	inv, removed := utils.RemoveFirst(acc.Inventory, itemID)
	if !removed {
		return fmt.Errorf("%w: %s", domain.ErrNotInInventory, itemID)
	}
	acc.Inventory = inv
	acc.Stats.ItemsOwned = len(inv)
	acc.UpdatedAt = s.now()
	return nil
}

func (s *Store) IsAdmin(ctx context.Context, handle string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if utils.HandlesEqualFold(a, handle) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListAdminHandles(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.admins...), nil
}

func (s *Store) AddAdminHandle(ctx context.Context, handle string) error {
	h := utils.NormalizeHandle(handle)
	if h == "" {
		return domain.ErrEmptyHandle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// case variants are kept apart for exact match mode
	for _, a := range s.admins {
		if a == h {
			return nil
		}
	}
	s.admins = append(s.admins, h)
	return nil
}

func (s *Store) AdjustCurrency(ctx context.Context, handle string, delta int) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findByHandleLocked(handle)
	if acc == nil {
		return nil, fmt.Errorf("%w: handle %s", domain.ErrAccountNotFound, handle)
	}
	if acc.Currency+delta < 0 {
		return nil, fmt.Errorf("%w: balance %d, delta %d", domain.ErrInsufficientFunds, acc.Currency, delta)
	}
	acc.Currency += delta
	acc.UpdatedAt = s.now()

	c := acc.Clone()
	return &c, nil
}

func (s *Store) SetBanned(ctx context.Context, handle string, banned bool) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findByHandleLocked(handle)
	if acc == nil {
		return nil, fmt.Errorf("%w: handle %s", domain.ErrAccountNotFound, handle)
	}
	acc.Banned = banned
	acc.UpdatedAt = s.now()

	c := acc.Clone()
	return &c, nil
}

func (s *Store) AddInventoryItemToAll(ctx context.Context, itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, id := range s.sortedIDsLocked() {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		s.appendLocked(s.accounts[id], itemID)
		count++
	}
	return count, nil
}

// Len returns the number of stored accounts
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

func (s *Store) appendLocked(acc *domain.Account, itemID string) {
	acc.Inventory = append(acc.Inventory, itemID)
	acc.Stats.ItemsOwned = len(acc.Inventory)
	acc.UpdatedAt = s.now()
}

// findByHandleLocked returns the lowest-id account whose handle matches
func (s *Store) findByHandleLocked(handle string) *domain.Account {
	folded := utils.FoldHandle(handle)
	if folded == "" {
		return nil
	}
	for _, id := range s.sortedIDsLocked() {
		acc := s.accounts[id]
		if utils.FoldHandle(acc.Handle) == folded {
			return acc
		}
	}
	return nil
}

func (s *Store) sortedIDsLocked() []int64 {
	ids := make([]int64, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

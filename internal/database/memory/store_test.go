package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

func seed(t *testing.T, s *Store, id int64, handle string, currency int) *domain.Account {
	t.Helper()
	acc, err := s.CreateProfile(context.Background(), domain.Account{ID: id, Name: "User", Handle: handle, Currency: currency})
	require.NoError(t, err)
	return acc
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewStore().WithClock(func() time.Time { return fixed })

	created := seed(t, s, 42, "@freddy", 500)
	assert.Equal(t, fixed, created.CreatedAt)
	assert.Equal(t, fixed, created.LastSeenAt)

	got, err := s.GetProfile(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 500, got.Currency)
	assert.Equal(t, "@freddy", got.Handle)

	_, err = s.GetProfile(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.CreateProfile(ctx, domain.Account{ID: 42})
	assert.ErrorIs(t, err, domain.ErrValidation, "duplicate id should be rejected")
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s, 1, "@a", 0)
	require.NoError(t, s.AddInventoryItem(ctx, 1, "foxy"))

	got, err := s.GetProfile(ctx, 1)
	require.NoError(t, err)
	got.Inventory[0] = "mutated"
	got.Currency = 999

	again, err := s.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"foxy"}, again.Inventory)
	assert.Equal(t, 0, again.Currency)
}

func TestStore_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s, 1, "@a", 1500)
	require.NoError(t, s.AddInventoryItem(ctx, 1, "endo"))

	currency := 500
	stats := domain.Stats{TotalSpins: 1, ItemsOwned: 99}
	updated, err := s.UpdateProfile(ctx, 1, domain.AccountUpdate{Currency: &currency, Stats: &stats})
	require.NoError(t, err)

	assert.Equal(t, 500, updated.Currency)
	assert.Equal(t, 1, updated.Stats.TotalSpins)
	assert.Equal(t, 1, updated.Stats.ItemsOwned, "ItemsOwned follows the inventory, not the update")

	negative := -1
	_, err = s.UpdateProfile(ctx, 1, domain.AccountUpdate{Currency: &negative})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = s.UpdateProfile(ctx, 404, domain.AccountUpdate{Currency: &currency})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestStore_Inventory(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s, 1, "@a", 0)

	for _, id := range []string{"foxy", "freddy", "foxy"} {
		require.NoError(t, s.AddInventoryItem(ctx, 1, id))
	}

	acc, err := s.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, acc.Stats.ItemsOwned)

	require.NoError(t, s.RemoveInventoryItem(ctx, 1, "foxy"))
	inv, err := s.GetInventory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"freddy", "foxy"}, inv, "only the first duplicate is removed")

	acc, err = s.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, acc.Stats.ItemsOwned)

	err = s.RemoveInventoryItem(ctx, 1, "springtrap")
	assert.ErrorIs(t, err, domain.ErrNotInInventory)

	err = s.AddInventoryItem(ctx, 404, "foxy")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestStore_Admins(t *testing.T) {
	ctx := context.Background()
	s := NewStore("@ave4ge", "NAVARRLO")

	ok, err := s.IsAdmin(ctx, "@AVE4GE")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.IsAdmin(ctx, "@navarrlo")
	require.NoError(t, err)
	assert.True(t, ok, "handles without @ are normalized on insert")

	ok, err = s.IsAdmin(ctx, "@freddy")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.AddAdminHandle(ctx, "@ave4ge"))
	require.NoError(t, s.AddAdminHandle(ctx, "@Ave4ge"))
	handles, err := s.ListAdminHandles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"@ave4ge", "@NAVARRLO", "@Ave4ge"}, handles, "only identical handles are deduplicated")

	assert.ErrorIs(t, s.AddAdminHandle(ctx, " "), domain.ErrEmptyHandle)
}

func TestStore_AdjustCurrency(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s, 1, "@Freddy", 100)

	acc, err := s.AdjustCurrency(ctx, "@freddy", 500)
	require.NoError(t, err)
	assert.Equal(t, 600, acc.Currency)

	_, err = s.AdjustCurrency(ctx, "@freddy", -601)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	acc, err = s.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 600, acc.Currency, "rejected adjustment leaves balance unchanged")

	_, err = s.AdjustCurrency(ctx, "@nobody", 500)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestStore_SetBanned(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s, 1, "@chica", 0)

	acc, err := s.SetBanned(ctx, "@CHICA", true)
	require.NoError(t, err)
	assert.True(t, acc.Banned)

	acc, err = s.SetBanned(ctx, "@chica", false)
	require.NoError(t, err)
	assert.False(t, acc.Banned)

	_, err = s.SetBanned(ctx, "@nobody", true)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestStore_AddInventoryItemToAll(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s, 1, "@a", 0)
	seed(t, s, 2, "@b", 0)
	require.NoError(t, s.AddInventoryItem(ctx, 2, "endo"))

	n, err := s.AddInventoryItemToAll(ctx, "endo")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.AddInventoryItemToAll(ctx, "endo")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	inv1, _ := s.GetInventory(ctx, 1)
	inv2, _ := s.GetInventory(ctx, 2)
	assert.Equal(t, []string{"endo", "endo"}, inv1)
	assert.Equal(t, []string{"endo", "endo", "endo"}, inv2, "bulk grant never dedups")

	acc, _ := s.GetProfile(ctx, 2)
	assert.Equal(t, 3, acc.Stats.ItemsOwned)
}

func TestStore_AddInventoryItemToAll_Cancelled(t *testing.T) {
	s := NewStore()
	seed(t, s, 1, "@a", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := s.AddInventoryItemToAll(ctx, "endo")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)
}

func TestStore_HandleLookupPrefersLowestID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s, 9, "@twin", 0)
	seed(t, s, 3, "@TWIN", 0)

	acc, err := s.GetProfileByHandle(ctx, "@twin")
	require.NoError(t, err)
	assert.Equal(t, int64(3), acc.ID)
}

func TestStore_UnicodeHandleFolding(t *testing.T) {
	ctx := context.Background()
	s := NewStore("@straße")
	seed(t, s, 1, "@Straße", 100)

	for _, h := range []string{"@straße", "@STRASSE", "@strasse"} {
		ok, err := s.IsAdmin(ctx, h)
		require.NoError(t, err)
		assert.True(t, ok, h)

		acc, err := s.GetProfileByHandle(ctx, h)
		require.NoError(t, err, h)
		assert.Equal(t, int64(1), acc.ID)
	}

	ok, err := s.IsAdmin(ctx, "@strase")
	require.NoError(t, err)
	assert.False(t, ok)
}

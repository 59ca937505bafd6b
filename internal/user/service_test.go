package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/concurrency"
	"github.com/osse101/FNTDWorld_Go/internal/database/memory"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/event"
)

type fixture struct {
	svc   *service
	store *memory.Store
	bus   *event.MemoryBus
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Default(nil)
	require.NoError(t, err)

	f := &fixture{
		store: memory.NewStore(),
		bus:   event.NewMemoryBus(),
		clock: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.store, cat, concurrency.NewLockManager(), f.bus, domain.DefaultStartingCurrency).(*service)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) seed(t *testing.T, id int64, currency int, items ...string) {
	t.Helper()
	_, err := f.store.CreateProfile(context.Background(), domain.Account{ID: id, Name: "User", Handle: "@user", Currency: currency})
	require.NoError(t, err)
	for _, it := range items {
		require.NoError(t, f.store.AddInventoryItem(context.Background(), id, it))
	}
}

func TestEnsureAccount_CreatesWithStartingGrant(t *testing.T) {
	f := newFixture(t)
	var created []event.Event
	f.bus.Subscribe(event.AccountCreated, func(ctx context.Context, e event.Event) error {
		created = append(created, e)
		return nil
	})

	acc, err := f.svc.EnsureAccount(context.Background(), domain.Identity{UserID: 42, FirstName: "mike", Username: "schmidt"})
	require.NoError(t, err)

	assert.Equal(t, 500, acc.Currency)
	assert.Equal(t, "mike", acc.Name)
	assert.Equal(t, "@schmidt", acc.Handle)
	assert.Equal(t, "M", acc.Avatar)
	assert.Equal(t, 1, acc.Stats.DaysActive)
	assert.Empty(t, acc.Inventory)
	assert.Len(t, created, 1)

	again, err := f.svc.EnsureAccount(context.Background(), domain.Identity{UserID: 42, FirstName: "mike", Username: "schmidt"})
	require.NoError(t, err)
	assert.Equal(t, 500, again.Currency, "second contact must not grant again")
	assert.Len(t, created, 1)
}

func TestEnsureAccount_DefaultsForMissingIdentity(t *testing.T) {
	f := newFixture(t)
	acc, err := f.svc.EnsureAccount(context.Background(), domain.Identity{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDisplayName, acc.Name)
	assert.Equal(t, domain.DefaultHandle, acc.Handle)
	assert.Equal(t, "U", acc.Avatar)
}

func TestEnsureAccount_RejectsInvalidID(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.EnsureAccount(context.Background(), domain.Identity{UserID: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, f.store.Len())
}

func TestEnsureAccount_RefreshesIdentityAndDaysActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.EnsureAccount(ctx, domain.Identity{UserID: 1, FirstName: "Vanessa", Username: "vanny"})
	require.NoError(t, err)

	f.clock = f.clock.Add(2 * time.Hour)
	acc, err := f.svc.EnsureAccount(ctx, domain.Identity{UserID: 1, FirstName: "Vanny", Username: "vanny2"})
	require.NoError(t, err)
	assert.Equal(t, 1, acc.Stats.DaysActive, "same UTC day")
	assert.Equal(t, "Vanny", acc.Name)
	assert.Equal(t, "@vanny2", acc.Handle)

	f.clock = f.clock.Add(24 * time.Hour)
	acc, err = f.svc.EnsureAccount(ctx, domain.Identity{UserID: 1, FirstName: "Vanny", Username: "vanny2"})
	require.NoError(t, err)
	assert.Equal(t, 2, acc.Stats.DaysActive)
	assert.Equal(t, f.clock, acc.LastSeenAt)
}

func TestIsNewDay(t *testing.T) {
	base := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.True(t, isNewDay(time.Time{}, base))
	assert.False(t, isNewDay(base, base.Add(30*time.Second)))
	assert.True(t, isNewDay(base, base.Add(2*time.Minute)))
	assert.False(t, isNewDay(base, base.Add(-48*time.Hour)))
}

func TestGetInventory_Enriched(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 1, 0, "foxy", "mystery", "foxy")

	entries, err := f.svc.GetInventory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Known)
	assert.Equal(t, "Foxy", entries[0].Item.Name)
	assert.False(t, entries[1].Known)
	assert.Equal(t, 2, entries[2].Index)

	_, err = f.svc.GetInventory(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSellItem_CreditsValueAndRemovesOneDuplicate(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 1, 200, "foxy", "endo", "foxy")
	var sold []event.Event
	f.bus.Subscribe(event.ItemSold, func(ctx context.Context, e event.Event) error {
		sold = append(sold, e)
		return nil
	})

	res, err := f.svc.SellItem(context.Background(), 1, "foxy")
	require.NoError(t, err)

	assert.Equal(t, 1000, res.MoneyGained)
	assert.Equal(t, 1200, res.Account.Currency)
	assert.Equal(t, []string{"endo", "foxy"}, res.Account.Inventory)
	assert.Equal(t, 2, res.Account.Stats.ItemsOwned)
	assert.Len(t, sold, 1)
}

func TestSellItem_Rejections(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 1, 200, "endo")
	ctx := context.Background()

	_, err := f.svc.SellItem(ctx, 1, "foxy")
	assert.ErrorIs(t, err, domain.ErrNotInInventory)

	_, err = f.svc.SellItem(ctx, 1, "not_an_item")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.svc.SellItem(ctx, 99, "endo")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = f.store.SetBanned(ctx, "@user", true)
	require.NoError(t, err)
	_, err = f.svc.SellItem(ctx, 1, "endo")
	assert.ErrorIs(t, err, domain.ErrAccountBanned)

	acc, err := f.store.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 200, acc.Currency)
	assert.Equal(t, []string{"endo"}, acc.Inventory)
}

func TestSellItem_ConcurrentSalesOfSingleCopy(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 1, 0, "chica")

	var wg sync.WaitGroup
	results := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.SellItem(context.Background(), 1, "chica")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrNotInInventory)
		}
	}
	assert.Equal(t, 1, ok)

	acc, err := f.store.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1000, acc.Currency)
}

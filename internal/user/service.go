package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/concurrency"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
)

// Service defines the interface for account operations
type Service interface {
	EnsureAccount(ctx context.Context, identity domain.Identity) (*domain.Account, error)
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error)
	SellItem(ctx context.Context, userID int64, itemID string) (*domain.SellResult, error)
}

// service implements the Service interface
type service struct {
	repo             repository.Account
	catalog          *catalog.Catalog
	locks            *concurrency.LockManager
	bus              event.Bus
	startingCurrency int
	now              func() time.Time
}

// NewService creates a new account service. bus may be nil.
func NewService(repo repository.Account, cat *catalog.Catalog, locks *concurrency.LockManager, bus event.Bus, startingCurrency int) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if startingCurrency < 0 {
		startingCurrency = domain.DefaultStartingCurrency
	}
	return &service{
		repo:             repo,
		catalog:          cat,
		locks:            locks,
		bus:              bus,
		startingCurrency: startingCurrency,
		now:              time.Now,
	}
}

// EnsureAccount returns the caller's account, creating it with the starting
// grant on first contact. Identity fields are refreshed from the host platform
// and days_active grows once per new UTC day.
func (s *service) EnsureAccount(ctx context.Context, identity domain.Identity) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	if identity.UserID <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	mu := s.locks.GetLock(concurrency.AccountKey(identity.UserID))
	mu.Lock()
	defer mu.Unlock()

	name, handle, avatar := identityFields(identity)
	now := s.now().UTC()

	acc, err := s.repo.GetProfile(ctx, identity.UserID)
	if errors.Is(err, domain.ErrAccountNotFound) {
		created, err := s.repo.CreateProfile(ctx, domain.Account{
			ID:         identity.UserID,
			Name:       name,
			Handle:     handle,
			Avatar:     avatar,
			Currency:   s.startingCurrency,
			Stats:      domain.Stats{DaysActive: 1},
			Inventory:  []string{},
			CreatedAt:  now,
			UpdatedAt:  now,
			LastSeenAt: now,
		})
		if err != nil {
			log.Error(LogMsgPersistFailed, "op", "create_profile", "user_id", identity.UserID, "error", err)
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		log.Info(LogMsgAccountCreated, "user_id", created.ID, "handle", created.Handle, "currency", created.Currency)
		s.publish(ctx, event.NewAccountCreatedEvent(created.ID, created.Handle, created.Currency))
		return created, nil
	}
	if err != nil {
		log.Error(LogMsgPersistFailed, "op", "get_profile", "user_id", identity.UserID, "error", err)
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	update := domain.AccountUpdate{LastSeenAt: &now}
	if acc.Name != name {
		update.Name = &name
	}
	if acc.Handle != handle {
		update.Handle = &handle
	}
	if acc.Avatar != avatar {
		update.Avatar = &avatar
	}
	if isNewDay(acc.LastSeenAt, now) {
		stats := acc.Stats
		stats.DaysActive++
		update.Stats = &stats
	}

	updated, err := s.repo.UpdateProfile(ctx, acc.ID, update)
	if err != nil {
		log.Error(LogMsgPersistFailed, "op", "update_profile", "user_id", acc.ID, "error", err)
		return nil, fmt.Errorf("failed to refresh account: %w", err)
	}
	log.Debug(LogMsgAccountRefreshed, "user_id", acc.ID, "days_active", updated.Stats.DaysActive)
	return updated, nil
}

// GetAccount returns the stored account
func (s *service) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	acc, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// identityFields derives display fields the way the client did: first name or
// a default, an @-prefixed username, and the upper-cased first letter as avatar.
func identityFields(id domain.Identity) (name, handle, avatar string) {
	name = strings.TrimSpace(id.FirstName)
	if name == "" {
		name = domain.DefaultDisplayName
	}

	handle = domain.DefaultHandle
	if u := strings.TrimSpace(id.Username); u != "" {
		handle = utils.NormalizeHandle(u)
	}

	avatar = domain.DefaultAvatar
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		avatar = string(unicode.ToUpper(r))
	}
	return name, handle, avatar
}

// isNewDay reports whether now falls on a later UTC calendar day than last
func isNewDay(last, now time.Time) bool {
	if last.IsZero() {
		return true
	}
	ly, lm, ld := last.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	return time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC).After(time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC))
}

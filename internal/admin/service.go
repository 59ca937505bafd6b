package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/concurrency"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/draw"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
	"github.com/osse101/FNTDWorld_Go/internal/metrics"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
)

// BulkResult reports how many accounts a give-to-all reached
type BulkResult struct {
	ItemID  string `json:"item_id"`
	Updated int    `json:"updated"`
}

// Service defines the interface for admin operations.
// Every mutating call authorizes actor before touching any account.
type Service interface {
	CheckAdmin(ctx context.Context, handle string) (bool, error)
	GrantCurrency(ctx context.Context, actor, target string, amount int) (*domain.Account, error)
	GiveItem(ctx context.Context, actor, target, itemID string) (*domain.Account, error)
	SetBanned(ctx context.Context, actor, target string, banned bool) (*domain.Account, error)
	GiveItemToAll(ctx context.Context, actor, itemID string) (BulkResult, error)
	AuditDraw(ctx context.Context, actor string, trials int) (*draw.AuditReport, error)
}

// Config holds the admin service options
type Config struct {
	DenialMode DenialMode
	MaxGrant   int
}

type service struct {
	repo     repository.Account
	auth     *Authorizer
	catalog  *catalog.Catalog
	locks    *concurrency.LockManager
	bus      event.Bus
	cfg      Config
	auditSrc draw.Source
}

// NewService creates a new admin service. bus may be nil.
func NewService(repo repository.Account, auth *Authorizer, cat *catalog.Catalog, locks *concurrency.LockManager, bus event.Bus, cfg Config) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if cfg.DenialMode == "" {
		cfg.DenialMode = DenyNotFound
	}
	if cfg.MaxGrant <= 0 {
		cfg.MaxGrant = domain.MaxAdminGrant
	}
	return &service{
		repo:     repo,
		auth:     auth,
		catalog:  cat,
		locks:    locks,
		bus:      bus,
		cfg:      cfg,
		auditSrc: utils.SecureRandomFloat,
	}
}

// CheckAdmin reports whether handle is on the allow-list
func (s *service) CheckAdmin(ctx context.Context, handle string) (bool, error) {
	return s.auth.IsAdmin(ctx, handle)
}

// authorize returns nil for admins and the configured denial error otherwise
func (s *service) authorize(ctx context.Context, actor, action string) error {
	ok, err := s.auth.IsAdmin(ctx, actor)
	if err != nil && !errors.Is(err, domain.ErrEmptyHandle) {
		metrics.RecordAdminAction(action, metrics.ResultError)
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if ok {
		return nil
	}

	metrics.RecordAdminAction(action, metrics.ResultDenied)
	logger.FromContext(ctx).Warn(LogMsgAdminDenied, "action", action, "actor", actor)
	if s.cfg.DenialMode == DenyUnauthorized {
		return domain.ErrUnauthorized
	}
	return domain.ErrAccountNotFound
}

func (s *service) finish(ctx context.Context, action string, err error, evt *event.Event) {
	log := logger.FromContext(ctx)
	if err != nil {
		metrics.RecordAdminAction(action, metrics.ResultError)
		log.Error(LogMsgAdminFailed, "action", action, "error", err)
		return
	}
	metrics.RecordAdminAction(action, metrics.ResultSuccess)
	if evt == nil {
		return
	}
	log.Info(LogMsgAdminAction, "action", action, "event", evt.Type)
	if s.bus != nil {
		if perr := s.bus.Publish(ctx, *evt); perr != nil {
			log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", perr)
		}
	}
}

// resolveTarget finds the account a handle refers to and locks it
func (s *service) resolveTarget(ctx context.Context, target string) (*domain.Account, func(), error) {
	target = utils.NormalizeHandle(target)
	if target == "" {
		return nil, nil, domain.ErrEmptyHandle
	}
	acc, err := s.repo.GetProfileByHandle(ctx, target)
	if err != nil {
		return nil, nil, err
	}
	mu := s.locks.GetLock(concurrency.AccountKey(acc.ID))
	mu.Lock()
	return acc, mu.Unlock, nil
}

// GrantCurrency adds amount to the target's balance
func (s *service) GrantCurrency(ctx context.Context, actor, target string, amount int) (*domain.Account, error) {
	const action = domain.AdminActionGrantCurrency
	if err := s.authorize(ctx, actor, action); err != nil {
		return nil, err
	}
	if amount <= 0 || amount > s.cfg.MaxGrant {
		return nil, fmt.Errorf("%w: amount must be between 1 and %d, got %d", domain.ErrInvalidAmount, s.cfg.MaxGrant, amount)
	}

	acc, unlock, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	defer unlock()

	updated, err := s.repo.AdjustCurrency(ctx, acc.Handle, amount)
	var evt *event.Event
	if err == nil {
		e := event.NewAdminActionEvent(event.CurrencyGranted, domain.AdminActionPayload{
			Action: action, Actor: actor, Target: updated.Handle, Amount: amount, Affected: 1,
		})
		evt = &e
	}
	s.finish(ctx, action, err, evt)
	if err != nil {
		return nil, fmt.Errorf("failed to grant currency: %w", err)
	}
	return updated, nil
}

// GiveItem appends one catalog item to the target's inventory
func (s *service) GiveItem(ctx context.Context, actor, target, itemID string) (*domain.Account, error) {
	const action = domain.AdminActionGiveItem
	if err := s.authorize(ctx, actor, action); err != nil {
		return nil, err
	}
	if !s.catalog.HasItem(itemID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	acc, unlock, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = s.repo.AddInventoryItem(ctx, acc.ID, itemID)
	var updated *domain.Account
	if err == nil {
		updated, err = s.repo.GetProfile(ctx, acc.ID)
	}
	var evt *event.Event
	if err == nil {
		e := event.NewAdminActionEvent(event.ItemGranted, domain.AdminActionPayload{
			Action: action, Actor: actor, Target: acc.Handle, ItemID: itemID, Affected: 1,
		})
		evt = &e
	}
	s.finish(ctx, action, err, evt)
	if err != nil {
		return nil, fmt.Errorf("failed to give item: %w", err)
	}
	return updated, nil
}

// SetBanned sets or clears the target's banned flag
func (s *service) SetBanned(ctx context.Context, actor, target string, banned bool) (*domain.Account, error) {
	action := domain.AdminActionBan
	if !banned {
		action = domain.AdminActionUnban
	}
	if err := s.authorize(ctx, actor, action); err != nil {
		return nil, err
	}

	acc, unlock, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	defer unlock()

	updated, err := s.repo.SetBanned(ctx, acc.Handle, banned)
	var evt *event.Event
	if err == nil {
		e := event.NewAdminActionEvent(event.AccountBanned, domain.AdminActionPayload{
			Action: action, Actor: actor, Target: updated.Handle, Affected: 1,
		})
		evt = &e
	}
	s.finish(ctx, action, err, evt)
	if err != nil {
		return nil, fmt.Errorf("failed to update ban: %w", err)
	}
	return updated, nil
}

// GiveItemToAll appends itemID to every account. On failure the count of
// accounts already updated is returned alongside the error.
func (s *service) GiveItemToAll(ctx context.Context, actor, itemID string) (BulkResult, error) {
	const action = domain.AdminActionGiveAll
	result := BulkResult{ItemID: itemID}
	if err := s.authorize(ctx, actor, action); err != nil {
		return result, err
	}
	if !s.catalog.HasItem(itemID) {
		return result, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	n, err := s.repo.AddInventoryItemToAll(ctx, itemID)
	result.Updated = n
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBulkGrantPartial, "item_id", itemID, "updated", n, "error", err)
		s.finish(ctx, action, err, nil)
		return result, fmt.Errorf("bulk grant stopped after %d accounts: %w", n, err)
	}

	e := event.NewAdminActionEvent(event.BulkItemGranted, domain.AdminActionPayload{
		Action: action, Actor: actor, ItemID: itemID, Affected: n,
	})
	s.finish(ctx, action, nil, &e)
	return result, nil
}

// AuditDraw runs a chi-square audit of the live roulette pool
func (s *service) AuditDraw(ctx context.Context, actor string, trials int) (*draw.AuditReport, error) {
	const action = domain.AdminActionAudit
	if err := s.authorize(ctx, actor, action); err != nil {
		return nil, err
	}
	if trials == 0 {
		trials = draw.DefaultAuditTrials
	}
	if trials > draw.MaxAuditTrials {
		return nil, fmt.Errorf("%w: at most %d trials", domain.ErrInvalidAmount, draw.MaxAuditTrials)
	}

	report, err := draw.Audit(s.catalog.Outcomes(), trials, s.auditSrc)
	s.finish(ctx, action, err, nil)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

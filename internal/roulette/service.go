package roulette

import (
	"context"
	"fmt"

	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/concurrency"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/draw"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
	"github.com/osse101/FNTDWorld_Go/internal/metrics"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
)

// Service defines the interface for roulette operations
type Service interface {
	Spin(ctx context.Context, userID int64) (*domain.SpinResult, error)
	Catalog() []catalog.OutcomeView
	Cost() int
}

type service struct {
	repo    repository.Account
	engine  *draw.Engine
	catalog *catalog.Catalog
	locks   *concurrency.LockManager
	bus     event.Bus
	cost    int
}

// NewService creates a new roulette service. bus may be nil.
func NewService(repo repository.Account, engine *draw.Engine, cat *catalog.Catalog, locks *concurrency.LockManager, bus event.Bus, cost int) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if cost <= 0 {
		cost = domain.DefaultSpinCost
	}
	return &service{
		repo:    repo,
		engine:  engine,
		catalog: cat,
		locks:   locks,
		bus:     bus,
		cost:    cost,
	}
}

// Catalog returns the roulette pool with per-outcome probabilities
func (s *service) Catalog() []catalog.OutcomeView {
	return s.catalog.View()
}

// Cost returns the price of one spin
func (s *service) Cost() int {
	return s.cost
}

// Spin charges the spin cost, draws exactly once and stores the reward.
// Once the debit is persisted the remaining steps ignore caller cancellation.
func (s *service) Spin(ctx context.Context, userID int64) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)
	key := concurrency.AccountKey(userID)

	release, ok := s.locks.TryBegin(key)
	if !ok {
		metrics.RecordSpinRejection(RejectInProgress)
		log.Info(LogMsgSpinRejected, "user_id", userID, "reason", RejectInProgress)
		return nil, domain.ErrSpinInProgress
	}
	defer release()

	mu := s.locks.GetLock(key)
	mu.Lock()
	defer mu.Unlock()

	acc, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc.Banned {
		metrics.RecordSpinRejection(RejectBanned)
		log.Info(LogMsgSpinRejected, "user_id", userID, "reason", RejectBanned)
		return nil, domain.ErrAccountBanned
	}
	if acc.Currency < s.cost {
		metrics.RecordSpinRejection(RejectInsufficientFunds)
		log.Info(LogMsgSpinRejected, "user_id", userID, "reason", RejectInsufficientFunds, "currency", acc.Currency)
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, acc.Currency, s.cost)
	}

	log.Info(LogMsgSpinStarted, "user_id", userID, "currency", acc.Currency, "cost", s.cost)

	currency := acc.Currency - s.cost
	stats := acc.Stats
	stats.TotalSpins++
	debited, err := s.repo.UpdateProfile(ctx, userID, domain.AccountUpdate{Currency: &currency, Stats: &stats})
	if err != nil {
		log.Error(LogMsgDebitFailed, "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to debit spin: %w", err)
	}

	detached := context.WithoutCancel(ctx)
	outcome := s.engine.Draw()

	if err := s.repo.AddInventoryItem(detached, userID, outcome.ID); err != nil {
		log.Error(LogMsgRewardLost, "user_id", userID, "outcome", outcome.ID, "error", err)
		return nil, fmt.Errorf("failed to store reward %s: %w", outcome.ID, err)
	}

	final, err := s.repo.GetProfile(detached, userID)
	if err != nil {
		log.Warn(LogMsgRereadFailed, "user_id", userID, "error", err)
		final = debited
		final.Inventory = append(final.Inventory, outcome.ID)
		final.Stats.ItemsOwned = len(final.Inventory)
	}

	if s.bus != nil {
		if err := s.bus.Publish(detached, event.NewSpinCompletedEvent(userID, outcome, s.cost)); err != nil {
			log.Warn(LogMsgPublishFailed, "user_id", userID, "error", err)
		}
	}

	log.Info(LogMsgSpinCompleted, "user_id", userID, "outcome", outcome.ID, "rarity", outcome.Rarity, "currency", final.Currency)

	return &domain.SpinResult{
		Outcome:      outcome,
		Tape:         s.engine.Tape(domain.TapeLength, domain.TapeWinningIndex, outcome),
		WinningIndex: domain.TapeWinningIndex,
		Cost:         s.cost,
		Account:      *final,
	}, nil
}

package user

import (
	"context"
	"fmt"

	"github.com/osse101/FNTDWorld_Go/internal/concurrency"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
)

// GetInventory returns the inventory in stored order with catalog details
func (s *service) GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error) {
	inv, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return s.catalog.Enrich(inv), nil
}

// SellItem removes one occurrence of itemID and credits exactly its catalog value
func (s *service) SellItem(ctx context.Context, userID int64, itemID string) (*domain.SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellRequested, "user_id", userID, "item_id", itemID)

	item, err := s.catalog.Item(itemID)
	if err != nil {
		return nil, err
	}

	mu := s.locks.GetLock(concurrency.AccountKey(userID))
	mu.Lock()
	defer mu.Unlock()

	acc, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc.Banned {
		return nil, domain.ErrAccountBanned
	}
	if acc.CountItem(itemID) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotInInventory, itemID)
	}

	if err := s.repo.RemoveInventoryItem(ctx, userID, itemID); err != nil {
		log.Error(LogMsgPersistFailed, "op", "remove_inventory_item", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	// The removal is persisted; finish the credit even if the caller goes away.
	detached := context.WithoutCancel(ctx)
	currency := acc.Currency + item.Value
	updated, err := s.repo.UpdateProfile(detached, userID, domain.AccountUpdate{Currency: &currency})
	if err != nil {
		log.Error(LogMsgSellCreditFailed, "user_id", userID, "item_id", itemID, "value", item.Value, "error", err)
		return nil, fmt.Errorf("failed to credit sale: %w", err)
	}

	log.Info(LogMsgItemSold, "user_id", userID, "item_id", itemID, "value", item.Value, "currency", updated.Currency)
	s.publish(detached, event.NewItemSoldEvent(userID, itemID, item.Value))

	return &domain.SellResult{
		ItemID:      item.ID,
		ItemName:    item.Name,
		MoneyGained: item.Value,
		Account:     *updated,
	}, nil
}

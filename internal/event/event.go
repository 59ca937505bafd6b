package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"`
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	RequestID string      `json:"request_id,omitempty"`
}

// Event types
const (
	AccountCreated  Type = domain.EventTypeAccountCreated
	SpinCompleted   Type = domain.EventTypeSpinCompleted
	ItemSold        Type = domain.EventTypeItemSold
	CurrencyGranted Type = domain.EventTypeCurrencyGranted
	ItemGranted     Type = domain.EventTypeItemGranted
	AccountBanned   Type = domain.EventTypeAccountBanned
	BulkItemGranted Type = domain.EventTypeBulkItemGranted
)

// AllTypes lists every type published by the services
var AllTypes = []Type{AccountCreated, SpinCompleted, ItemSold, CurrencyGranted, ItemGranted, AccountBanned, BulkItemGranted}

// NewAccountCreatedEvent creates an account created event
func NewAccountCreatedEvent(userID int64, handle string, startingBalance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AccountCreated,
		Payload: domain.AccountCreatedPayload{
			UserID:          userID,
			Handle:          handle,
			StartingBalance: startingBalance,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewSpinCompletedEvent creates a spin completed event
func NewSpinCompletedEvent(userID int64, outcome domain.RewardOutcome, cost int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinCompleted,
		Payload: domain.SpinCompletedPayload{
			UserID:    userID,
			OutcomeID: outcome.ID,
			Rarity:    outcome.Rarity,
			Cost:      cost,
			Value:     outcome.Value,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates an item sold event
func NewItemSoldEvent(userID int64, itemID string, moneyGained int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			UserID:      userID,
			ItemID:      itemID,
			MoneyGained: moneyGained,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewAdminActionEvent creates one of the admin event types
func NewAdminActionEvent(eventType Type, payload domain.AdminActionPayload) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

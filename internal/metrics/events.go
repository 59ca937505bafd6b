package metrics

import (
	"context"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.AccountCreated:
		AccountsCreated.Inc()

	case event.SpinCompleted:
		var p domain.SpinCompletedPayload
		if p, err = event.PayloadAs[domain.SpinCompletedPayload](evt); err == nil {
			Spins.WithLabelValues(string(p.Rarity)).Inc()
			CurrencySpent.Add(float64(p.Cost))
		}

	case event.ItemSold:
		var p domain.ItemSoldPayload
		if p, err = event.PayloadAs[domain.ItemSoldPayload](evt); err == nil {
			ItemsSold.WithLabelValues(p.ItemID).Inc()
			CurrencyEarned.WithLabelValues(SourceSale).Add(float64(p.MoneyGained))
		}

	case event.CurrencyGranted:
		var p domain.AdminActionPayload
		if p, err = event.PayloadAs[domain.AdminActionPayload](evt); err == nil {
			CurrencyEarned.WithLabelValues(SourceAdminGrant).Add(float64(p.Amount))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Warn(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

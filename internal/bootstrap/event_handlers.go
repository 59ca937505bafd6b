package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
	"github.com/osse101/FNTDWorld_Go/internal/metrics"
)

// adminEventTypes are the events written to the admin audit log
var adminEventTypes = []event.Type{
	event.CurrencyGranted,
	event.ItemGranted,
	event.AccountBanned,
	event.BulkItemGranted,
}

// RegisterEventHandlers subscribes the metrics collector and the admin audit
// logger to the bus.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range adminEventTypes {
		bus.Subscribe(t, logAdminAction)
	}
	slog.Info(LogMsgAdminAuditLoggerRegistered)
}

// logAdminAction writes one structured line per admin mutation
func logAdminAction(ctx context.Context, evt event.Event) error {
	p, err := event.PayloadAs[domain.AdminActionPayload](evt)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgAdminAction,
		"action", p.Action,
		"actor", p.Actor,
		"target", p.Target,
		"item_id", p.ItemID,
		"amount", p.Amount,
		"affected", p.Affected)
	return nil
}

package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Event publisher (flush pending retries to the bus or dead-letter file)
// 3. Account store (close the pool last, retries may still read it)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}

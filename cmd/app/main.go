package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/FNTDWorld_Go/docs"
	"github.com/osse101/FNTDWorld_Go/internal/bootstrap"
	"github.com/osse101/FNTDWorld_Go/internal/config"
	"github.com/osse101/FNTDWorld_Go/internal/server"
)

// @title FNTD World API
// @version 1.0
// @description Casino roulette backend for the FNTD World mini-app.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if logFile := initLogger(cfg); logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}
	bootstrap.RegisterEventHandlers(bus)

	services, err := bootstrap.InitializeServices(cfg, storage.Accounts, publisher)
	if err != nil {
		storage.Close()
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimit:      cfg.RateLimit,
	}, server.Services{
		Store:    storage,
		Users:    services.Users,
		Roulette: services.Roulette,
		Admin:    services.Admin,
		Items:    services.Catalog,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		Storage:            storage,
	})
}

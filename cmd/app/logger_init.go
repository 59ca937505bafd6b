package main

import (
	"log/slog"
	"os"

	"github.com/osse101/FNTDWorld_Go/internal/bootstrap"
	"github.com/osse101/FNTDWorld_Go/internal/config"
)

// initLogger installs the session logger, falling back to stdout only when the
// log directory is unusable.
func initLogger(cfg *config.Config) *os.File {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Warn("File logging unavailable, logging to stdout only", "error", err)
		return nil
	}
	return logFile
}

package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FNTDWorld_Go/internal/config"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/metrics"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment:      config.EnvDev,
		LogLevel:         "info",
		LogFormat:        "text",
		LogDir:           t.TempDir(),
		StorageDriver:    config.StorageMemory,
		SpinCost:         domain.DefaultSpinCost,
		StartingCurrency: domain.DefaultStartingCurrency,
		AdminHandles:     []string{"@ave4ge"},
		AdminMatchMode:   "case_insensitive",
		AdminDenialMode:  "not_found",
		AdminCacheSize:   16,
		AdminCacheTTL:    time.Minute,
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2026-01-01_00-00-00.log",
		"session_2026-01-02_00-00-00.log",
		"session_2026-01-03_00-00-00.log",
		"session_2026-01-04_00-00-00.log",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), []byte("{}"), LogFilePermission))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{names[2], names[3], "event_deadletter.jsonl"}, left)
}

func TestCleanupLogs_UnderLimitKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session_a.log"), nil, LogFilePermission))

	cleanupLogs(dir, LogFileRetentionCount)

	_, err := os.Stat(filepath.Join(dir, "session_a.log"))
	assert.NoError(t, err)
}

func TestInitializeStorage(t *testing.T) {
	cfg := memoryConfig(t)

	storage, err := InitializeStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, storage.Pool)
	assert.NoError(t, storage.Ping(context.Background()))
	storage.Close()

	cfg.StorageDriver = "sqlite"
	_, err = InitializeStorage(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownDriver)
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.EventDeadLetterPath = filepath.Join(cfg.LogDir, "events", "dead.jsonl")

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)
	defer func() { _ = publisher.Shutdown(context.Background()) }()

	info, err := os.Stat(filepath.Join(cfg.LogDir, "events"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitializeServices_EndToEnd(t *testing.T) {
	cfg := memoryConfig(t)
	ctx := context.Background()

	storage, err := InitializeStorage(ctx, cfg)
	require.NoError(t, err)
	bus := event.NewMemoryBus()

	svc, err := InitializeServices(cfg, storage.Accounts, bus)
	require.NoError(t, err)
	assert.NotEmpty(t, svc.Catalog.Outcomes())

	acc, err := svc.Users.EnsureAccount(ctx, domain.Identity{UserID: 42, FirstName: "Mike", Username: "mike"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCurrency, acc.Currency)

	_, err = svc.Roulette.Spin(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	ok, err := svc.Admin.CheckAdmin(ctx, "@AVE4GE")
	require.NoError(t, err)
	assert.True(t, ok)

	acc, err = svc.Admin.GrantCurrency(ctx, "@ave4ge", acc.Handle, 1000)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCurrency+1000, acc.Currency)

	// the exported cache metrics follow this Authorizer
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AdminCacheMisses))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AdminCacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AdminCacheSize))

	res, err := svc.Roulette.Spin(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCurrency, res.Account.Currency)
	assert.Len(t, res.Account.Inventory, 1)
}

func TestInitializeServices_BadAdminMode(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.AdminMatchMode = "fuzzy"

	_, err := InitializeServices(cfg, nil, event.NewMemoryBus())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidAdminConfig)
}

func TestInitializeServices_MissingCatalog(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := InitializeServices(cfg, nil, event.NewMemoryBus())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
}

func TestAdminAuditLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	bus := event.NewMemoryBus()
	RegisterEventHandlers(bus)

	err := bus.Publish(context.Background(), event.NewAdminActionEvent(event.CurrencyGranted, domain.AdminActionPayload{
		Action: "grant_currency",
		Actor:  "@ave4ge",
		Target: "@mike",
		Amount: 250,
	}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, LogMsgAdminAction)
	assert.Contains(t, out, "actor=@ave4ge")
	assert.Contains(t, out, "amount=250")
}

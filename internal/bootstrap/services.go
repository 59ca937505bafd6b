package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/FNTDWorld_Go/internal/admin"
	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/concurrency"
	"github.com/osse101/FNTDWorld_Go/internal/config"
	"github.com/osse101/FNTDWorld_Go/internal/draw"
	"github.com/osse101/FNTDWorld_Go/internal/event"
	"github.com/osse101/FNTDWorld_Go/internal/metrics"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
	"github.com/osse101/FNTDWorld_Go/internal/roulette"
	"github.com/osse101/FNTDWorld_Go/internal/user"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
	"github.com/osse101/FNTDWorld_Go/internal/validation"
)

// Services holds the application services built over one account store.
// All of them share a single lock manager so per-account operations
// serialize across services.
type Services struct {
	Catalog    *catalog.Catalog
	Authorizer *admin.Authorizer
	Users      user.Service
	Roulette   roulette.Service
	Admin      admin.Service
}

// InitializeServices loads the catalog and builds the services
func InitializeServices(cfg *config.Config, repo repository.Account, bus event.Bus) (*Services, error) {
	cat, err := catalog.Load(cfg.CatalogPath, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"outcomes", len(cat.Outcomes()),
		"items", len(cat.Items()))

	engine, err := draw.NewEngine(cat.Outcomes(), utils.SecureRandomFloat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedDrawEngine, err)
	}

	matchMode, err := admin.ParseMatchMode(cfg.AdminMatchMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidAdminConfig, err)
	}
	denialMode, err := admin.ParseDenialMode(cfg.AdminDenialMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidAdminConfig, err)
	}

	locks := concurrency.NewLockManager()
	auth := admin.NewAuthorizer(repo, admin.AuthorizerConfig{
		Seed:      cfg.AdminHandles,
		Mode:      matchMode,
		CacheSize: cfg.AdminCacheSize,
		CacheTTL:  cfg.AdminCacheTTL,
	})
	metrics.SetAdminCacheSource(func() metrics.AdminCacheSnapshot {
		st := auth.CacheStats()
		return metrics.AdminCacheSnapshot{Hits: st.Hits, Misses: st.Misses, Size: st.Size}
	})

	return &Services{
		Catalog:    cat,
		Authorizer: auth,
		Users:      user.NewService(repo, cat, locks, bus, cfg.StartingCurrency),
		Roulette:   roulette.NewService(repo, engine, cat, locks, bus, cfg.SpinCost),
		Admin:      admin.NewService(repo, auth, cat, locks, bus, admin.Config{DenialMode: denialMode}),
	}, nil
}

package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/repository"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
)

// ParseMatchMode validates a configured match mode. Empty means case-insensitive.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchCaseInsensitive:
		return MatchCaseInsensitive, nil
	case MatchExact:
		return MatchExact, nil
	}
	return "", fmt.Errorf("%w: unknown admin match mode %q", domain.ErrInvalidInput, s)
}

// ParseDenialMode validates a configured denial mode. Empty means not_found.
func ParseDenialMode(s string) (DenialMode, error) {
	switch DenialMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", DenyNotFound:
		return DenyNotFound, nil
	case DenyUnauthorized:
		return DenyUnauthorized, nil
	}
	return "", fmt.Errorf("%w: unknown admin denial mode %q", domain.ErrInvalidInput, s)
}

// AuthorizerConfig configures an Authorizer
type AuthorizerConfig struct {
	Seed      []string
	Mode      MatchMode
	CacheSize int
	CacheTTL  time.Duration
}

// Authorizer decides whether a handle is on the admin allow-list.
// The list is the configured seed plus whatever the store holds.
type Authorizer struct {
	repo  repository.Admin
	seed  []string
	mode  MatchMode
	cache *decisionCache
}

// NewAuthorizer creates an Authorizer backed by repo
func NewAuthorizer(repo repository.Admin, cfg AuthorizerConfig) *Authorizer {
	mode := cfg.Mode
	if mode == "" {
		mode = MatchCaseInsensitive
	}
	seed := make([]string, 0, len(cfg.Seed))
	for _, h := range cfg.Seed {
		if h = utils.NormalizeHandle(h); h != "" {
			seed = append(seed, h)
		}
	}
	return &Authorizer{
		repo:  repo,
		seed:  seed,
		mode:  mode,
		cache: newDecisionCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

// Mode returns the configured match mode
func (a *Authorizer) Mode() MatchMode {
	return a.mode
}

// IsAdmin reports whether handle is allowed to run admin operations
func (a *Authorizer) IsAdmin(ctx context.Context, handle string) (bool, error) {
	handle = utils.NormalizeHandle(handle)
	if handle == "" {
		return false, domain.ErrEmptyHandle
	}

	key := a.cacheKey(handle)
	if allowed, ok := a.cache.Get(key); ok {
		return allowed, nil
	}

	allowed, err := a.lookup(ctx, handle)
	if err != nil {
		return false, err
	}
	a.cache.Set(key, allowed)
	return allowed, nil
}

// CacheStats returns authorization cache statistics
func (a *Authorizer) CacheStats() CacheStats {
	return a.cache.Stats()
}

func (a *Authorizer) lookup(ctx context.Context, handle string) (bool, error) {
	for _, h := range a.seed {
		if a.matches(handle, h) {
			return true, nil
		}
	}

	if a.mode == MatchCaseInsensitive {
		return a.repo.IsAdmin(ctx, handle)
	}

	handles, err := a.repo.ListAdminHandles(ctx)
	if err != nil {
		return false, err
	}
	for _, h := range handles {
		if a.matches(handle, utils.NormalizeHandle(h)) {
			return true, nil
		}
	}
	return false, nil
}

func (a *Authorizer) matches(handle, allowed string) bool {
	if a.mode == MatchExact {
		return handle == allowed
	}
	return utils.HandlesEqualFold(handle, allowed)
}

func (a *Authorizer) cacheKey(handle string) string {
	if a.mode == MatchExact {
		return handle
	}
	return utils.FoldHandle(handle)
}

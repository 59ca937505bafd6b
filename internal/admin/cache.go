package admin

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheStats reports authorization cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// decisionCache remembers allow-list decisions per normalized handle
type decisionCache struct {
	lru    *expirable.LRU[string, bool]
	hits   atomic.Int64
	misses atomic.Int64
}

func newDecisionCache(size int, ttl time.Duration) *decisionCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &decisionCache{
		lru: expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

func (c *decisionCache) Get(key string) (bool, bool) {
	allowed, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return false, false
	}
	c.hits.Add(1)
	return allowed, true
}

func (c *decisionCache) Set(key string, allowed bool) {
	c.lru.Add(key, allowed)
}

func (c *decisionCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AdminCacheSnapshot is one reading of the admin decision cache
type AdminCacheSnapshot struct {
	Hits   int64
	Misses int64
	Size   int
}

// AdminCacheSource reads the live admin decision cache
type AdminCacheSource func() AdminCacheSnapshot

var adminCacheSource atomic.Pointer[AdminCacheSource]

// SetAdminCacheSource points the admin cache metrics at src. The last call wins.
func SetAdminCacheSource(src AdminCacheSource) {
	if src == nil {
		adminCacheSource.Store(nil)
		return
	}
	adminCacheSource.Store(&src)
}

func readAdminCache() AdminCacheSnapshot {
	src := adminCacheSource.Load()
	if src == nil {
		return AdminCacheSnapshot{}
	}
	return (*src)()
}

// Admin cache metrics, read at scrape time
var (
	AdminCacheHits = promauto.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAdminCacheHits,
			Help:      HelpTextAdminCacheHits,
		},
		func() float64 { return float64(readAdminCache().Hits) },
	)

	AdminCacheMisses = promauto.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAdminCacheMisses,
			Help:      HelpTextAdminCacheMisses,
		},
		func() float64 { return float64(readAdminCache().Misses) },
	)

	AdminCacheSize = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameAdminCacheSize,
			Help:      HelpTextAdminCacheSize,
		},
		func() float64 { return float64(readAdminCache().Size) },
	)
)

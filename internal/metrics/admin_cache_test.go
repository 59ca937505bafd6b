package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAdminCacheMetrics_ReadSource(t *testing.T) {
	t.Cleanup(func() { SetAdminCacheSource(nil) })

	SetAdminCacheSource(nil)
	assert.Equal(t, float64(0), testutil.ToFloat64(AdminCacheHits))

	snap := AdminCacheSnapshot{Hits: 7, Misses: 3, Size: 2}
	SetAdminCacheSource(func() AdminCacheSnapshot { return snap })

	assert.Equal(t, float64(7), testutil.ToFloat64(AdminCacheHits))
	assert.Equal(t, float64(3), testutil.ToFloat64(AdminCacheMisses))
	assert.Equal(t, float64(2), testutil.ToFloat64(AdminCacheSize))

	snap.Hits = 9
	assert.Equal(t, float64(9), testutil.ToFloat64(AdminCacheHits), "Values are read at scrape time")
}

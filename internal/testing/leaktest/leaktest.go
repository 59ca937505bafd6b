// Package leaktest provides goroutine leak checks for tests that start
// background workers (event bus, pools, servers).
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Check waits for goroutines to wind down
const DefaultSettle = 500 * time.Millisecond

// GoroutineChecker records the goroutine count at creation and compares it later
type GoroutineChecker struct {
	before int
	settle time.Duration
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		settle: DefaultSettle,
		t:      t,
	}
}

// WithSettle changes how long Check polls before failing
func (g *GoroutineChecker) WithSettle(d time.Duration) *GoroutineChecker {
	g.settle = d
	return g
}

// Check polls until at most tolerance extra goroutines remain, failing the
// test when the settle period runs out first.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	if leaked, ok := g.waitFor(tolerance); !ok {
		g.t.Errorf("goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, g.before+leaked, leaked, tolerance)
	}
}

func (g *GoroutineChecker) waitFor(tolerance int) (int, bool) {
	deadline := time.Now().Add(g.settle)
	for {
		runtime.Gosched()
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return leaked, true
		}
		if time.Now().After(deadline) {
			return leaked, false
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

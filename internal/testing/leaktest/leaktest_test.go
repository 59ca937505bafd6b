package leaktest

import (
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	NewGoroutineChecker(t).Check(0)
}

func TestGoroutineChecker_WaitsForExitingGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(done)
	}()

	checker.Check(0)
	<-done
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t).WithSettle(50 * time.Millisecond)

	stop := make(chan struct{})
	go func() { <-stop }()
	defer close(stop)

	checker.Check(1)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	checker := NewGoroutineChecker(t).WithSettle(30 * time.Millisecond)

	stop := make(chan struct{})
	go func() { <-stop }()
	defer close(stop)

	leaked, ok := checker.waitFor(0)
	if ok {
		t.Fatalf("expected leak to be detected")
	}
	if leaked < 1 {
		t.Errorf("expected at least one leaked goroutine, got %d", leaked)
	}
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

// Package leaktest spots goroutines left running after a test body.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Leaked returns how many goroutines exist beyond the baseline after
// giving finished work time to exit
func (g *GoroutineChecker) Leaked() int {
	runtime.Gosched()
	time.Sleep(drainDelay)
	runtime.GC()
	time.Sleep(drainDelay)

	return runtime.NumGoroutine() - g.baseline
}

// Check fails the test when more than tolerance goroutines leaked
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	if leaked := g.Leaked(); leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d leaked=%d tolerance=%d", g.baseline, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it left goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// Package leaktest detects goroutines left running by a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit.
const settleTimeout = 2 * time.Second

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if, after waiting up to settleTimeout, more than
// tolerance goroutines are running beyond the baseline.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if leaked, ok := g.settle(tolerance, settleTimeout); !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, leaked=%d (tolerance=%d)",
			g.before, leaked, tolerance)
	}
}

func (g *GoroutineChecker) settle(tolerance int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return leaked, true
		}
		if time.Now().After(deadline) {
			return leaked, false
		}
		runtime.Gosched()
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

// Package leaktest checks that code under test returns the goroutines it starts.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit.
const settleTimeout = 2 * time.Second

// GoroutineChecker records a goroutine baseline and reports growth past it
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines above the
// baseline are still running once the settle timeout expires.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	if settle(target, settleTimeout) {
		return
	}

	after := runtime.NumGoroutine()
	g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
		g.before, after, after-g.before, tolerance)
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines run or fails the test
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if !settle(target, timeout) {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d",
			runtime.NumGoroutine(), target)
	}
}

func settle(target int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		if runtime.NumGoroutine() <= target {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(10 * time.Millisecond)
	}
}

package testkit

import (
	"sync"
	"testing"
	"time"
)

// seamMu is held by Serial tests, which replace package level variables
var seamMu sync.Mutex

// Swap points *target at replacement until the test ends
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	prev := *target
	*target = replacement
	t.Cleanup(func() { *target = prev })
}

// Serial holds the process wide seam lock until the test ends
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// Clock returns a wall clock frozen at at
func Clock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

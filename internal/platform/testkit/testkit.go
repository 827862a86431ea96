// Package testkit holds small assertions and fixtures shared by package tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle; on failure the full
// haystack is written to a temp file so long log output stays readable
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		f := filepath.Join(t.TempDir(), "haystack.txt")
		_ = os.WriteFile(f, []byte(haystack), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, f)
	}
}

// Day returns midnight UTC of the given 2024 calendar day, plus optional hours
func Day(month time.Month, day int, hours ...int) time.Time {
	h := 0
	if len(hours) > 0 {
		h = hours[0]
	}
	return time.Date(2024, month, day, h, 0, 0, 0, time.UTC)
}

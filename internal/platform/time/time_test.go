package time

import (
	"testing"
	"time"
)

func TestPtrAndUTC(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("zero time should give nil")
	}
	if UTC(nil) != nil || UTC(&time.Time{}) != nil {
		t.Fatalf("nil and zero should give nil")
	}
	loc := time.FixedZone("UTC+2", 2*3600)
	in := time.Date(2024, 1, 2, 1, 0, 0, 0, loc)
	got := UTC(&in)
	if got == nil || got.Location() != time.UTC || got.Day() != 1 || got.Hour() != 23 {
		t.Fatalf("UTC(%v) = %v", in, got)
	}
}

func TestDateAndDaysBetween(t *testing.T) {
	created := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	merged := time.Date(2024, 1, 6, 1, 0, 0, 0, time.UTC)
	if d := Date(merged); d.Hour() != 0 || d.Day() != 6 {
		t.Fatalf("Date = %v", d)
	}
	if n := DaysBetween(created, merged); n != 5 {
		t.Fatalf("DaysBetween = %d want 5", n)
	}
	if n := DaysBetween(merged, created); n != -5 {
		t.Fatalf("DaysBetween reversed = %d want -5", n)
	}
}

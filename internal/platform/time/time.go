// Package time contains timestamp helpers shared by storage and core code
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// UTC normalises an optional timestamp, nil and zero both become nil
func UTC(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	return Ptr(p.UTC())
}

// Date truncates t to midnight UTC of its calendar day
func Date(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b, negative when b is earlier
func DaysBetween(a, b time.Time) int64 {
	return int64(Date(b).Sub(Date(a)) / (24 * time.Hour))
}

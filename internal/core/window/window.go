// Package window derives the absolute time windows a query runs over
// every window comes from one anchor instant so adjacent windows share an edge
package window

import "time"

// Day is the unit ranges are expressed in
const Day = 24 * time.Hour

// Window is the half open interval [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration is End minus Start
func (w Window) Duration() time.Duration { return w.End.Sub(w.Start) }

// Span is the union of w and o, it assumes they touch or overlap
func (w Window) Span(o Window) Window {
	out := w
	if o.Start.Before(out.Start) {
		out.Start = o.Start
	}
	if o.End.After(out.End) {
		out.End = o.End
	}
	return out
}

// Params carry the relative range a caller asked for
type Params struct {
	RangeDays int
	// OffsetDays moves the anchor that many days into the past
	OffsetDays int
	// Now overrides the wall clock, zero means time.Now
	Now time.Time
}

// DefaultRangeDays applies when a caller leaves the range unset
const DefaultRangeDays = 30

// Anchor returns the instant every window of p is measured back from
func (p Params) Anchor() time.Time {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	return Anchor(now, p.OffsetDays)
}

// Range returns the range as a duration, falling back to DefaultRangeDays
func (p Params) Range() time.Duration {
	days := p.RangeDays
	if days <= 0 {
		days = DefaultRangeDays
	}
	return time.Duration(days) * Day
}

// Anchor shifts now back by offsetDays whole days
func Anchor(now time.Time, offsetDays int) time.Time {
	now = now.UTC()
	if offsetDays <= 0 {
		return now
	}
	return now.Add(-time.Duration(offsetDays) * Day)
}

// Current is [anchor-range, anchor)
func Current(anchor time.Time, r time.Duration) Window {
	return Window{Start: anchor.Add(-r), End: anchor}
}

// Previous is [anchor-2range, anchor-range), its End is Current's Start
func Previous(anchor time.Time, r time.Duration) Window {
	return Window{Start: anchor.Add(-2 * r), End: anchor.Add(-r)}
}

// Extended is [anchor-2range, anchor), covering Previous and Current
func Extended(anchor time.Time, r time.Duration) Window {
	return Window{Start: anchor.Add(-2 * r), End: anchor}
}

// ExtendedPrevious is [anchor-4range, anchor-2range), the window before Extended
func ExtendedPrevious(anchor time.Time, r time.Duration) Window {
	return Previous(anchor, 2*r)
}

// Set bundles all windows of one request
type Set struct {
	Anchor           time.Time
	Current          Window
	Previous         Window
	Extended         Window
	ExtendedPrevious Window
}

// For computes every window of p from a single anchor
func For(p Params) Set {
	a, r := p.Anchor(), p.Range()
	return Set{
		Anchor:           a,
		Current:          Current(a, r),
		Previous:         Previous(a, r),
		Extended:         Extended(a, r),
		ExtendedPrevious: ExtendedPrevious(a, r),
	}
}

package aggregate

import (
	"math"
	"testing"
	"time"

	"prlens/internal/core/prevent"
	"prlens/internal/core/window"
)

func day(d int) time.Time { return time.Date(2024, time.January, d, 12, 0, 0, 0, time.UTC) }

func merged(id int64, created, mergedOn int) prevent.State {
	m := day(mergedOn)
	return prevent.State{
		EventID: id, PRNumber: id, RepoName: "open-sauced/app", AuthorLogin: "x",
		Action: prevent.ActionClosed, IsMerged: true,
		CreatedAt: day(created), MergedAt: &m, EventTime: m,
	}
}

func TestVelocity(t *testing.T) {
	t.Parallel()

	if got := Velocity(nil); got != 0 {
		t.Fatalf("Velocity(nil) = %d", got)
	}
	open := prevent.State{Action: prevent.ActionOpened, CreatedAt: day(1), EventTime: day(1)}
	if got := Velocity([]prevent.State{open}); got != 0 {
		t.Fatalf("Velocity(unmerged) = %d", got)
	}
	if got := Velocity([]prevent.State{merged(1, 1, 6)}); got != 5 {
		t.Fatalf("Velocity(5 days) = %d", got)
	}
	// (2 + 3) / 2 truncates to 2
	if got := Velocity([]prevent.State{merged(1, 1, 3), merged(2, 1, 4), open}); got != 2 {
		t.Fatalf("Velocity(mean) = %d", got)
	}
}

func TestHistogram_SingleMergedPullRequest(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	w := window.Current(anchor, 30*window.Day)
	states := []prevent.State{merged(1, 1, 4)}

	if got := Velocity(states); got != 3 {
		t.Fatalf("Velocity = %d want 3", got)
	}
	bs := Histogram(states, w, HistogramOptions{WidthDays: 1})
	if len(bs) != 1 {
		t.Fatalf("buckets = %d want 1", len(bs))
	}
	b := bs[0]
	if want := time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC); !b.Date.Equal(want) {
		t.Fatalf("bucket date = %v want %v", b.Date, want)
	}
	if b.Total != 1 || b.Accepted != 1 || b.Open != 0 || b.Closed != 0 || b.Velocity != 3 {
		t.Fatalf("bucket counts = %+v", b.Counts)
	}
}

func TestHistogram_HugeWidthIsOneBucket(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	w := window.Current(anchor, 30*window.Day)
	states := []prevent.State{merged(1, 1, 4), merged(2, 2, 8)}

	for _, width := range []int{MaxWidthDays, 106752, math.MaxInt} {
		bs := Histogram(states, w, HistogramOptions{WidthDays: width, Dense: true})
		if len(bs) != 1 {
			t.Fatalf("width %d: buckets = %d want 1", width, len(bs))
		}
		if !bs[0].Date.Equal(w.Start) || bs[0].Total != 2 {
			t.Fatalf("width %d: bucket = %+v", width, bs[0])
		}
	}
}

func TestHistogram_BucketsAreDisjoint(t *testing.T) {
	t.Parallel()

	w := window.Window{Start: day(1), End: day(15)}
	var states []prevent.State
	for i := 1; i <= 14; i++ {
		states = append(states, prevent.State{
			EventID: int64(i), Action: prevent.ActionOpened, EventTime: day(i).Add(time.Duration(i) * time.Minute),
		})
	}
	// outside the window
	states = append(states, prevent.State{EventID: 99, Action: prevent.ActionOpened, EventTime: day(15)})

	for _, width := range []int{1, 3, 7} {
		bs := Histogram(states, w, HistogramOptions{WidthDays: width, Order: prevent.Asc})
		total := 0
		seen := map[time.Time]bool{}
		for i, b := range bs {
			if seen[b.Date] {
				t.Fatalf("width %d: duplicate bucket %v", width, b.Date)
			}
			seen[b.Date] = true
			if i > 0 && !bs[i-1].Date.Before(b.Date) {
				t.Fatalf("width %d: buckets not ascending", width)
			}
			if off := b.Date.Sub(w.Start); off%(time.Duration(width)*window.Day) != 0 {
				t.Fatalf("width %d: bucket %v not aligned to window start", width, b.Date)
			}
			total += b.Total
		}
		if total != 14 {
			t.Fatalf("width %d: bucket totals = %d want 14", width, total)
		}
	}
}

func TestHistogram_DenseAndOrder(t *testing.T) {
	t.Parallel()

	w := window.Window{Start: day(1), End: day(8)}
	states := []prevent.State{
		{EventID: 1, Action: prevent.ActionOpened, IsDraft: true, EventTime: day(2)},
		{EventID: 2, Action: prevent.ActionReopened, ActiveLockReason: "spam", EventTime: day(5)},
	}

	sparse := Histogram(states, w, HistogramOptions{WidthDays: 1})
	if len(sparse) != 2 || !sparse[0].Date.After(sparse[1].Date) {
		t.Fatalf("sparse desc buckets = %+v", sparse)
	}
	if sparse[1].Draft != 1 || sparse[1].Active != 1 || sparse[0].Spam != 1 {
		t.Fatalf("status tallies wrong: %+v", sparse)
	}

	dense := Histogram(states, w, HistogramOptions{WidthDays: 2, Dense: true, Order: prevent.Asc})
	if len(dense) != 4 {
		t.Fatalf("dense buckets = %d want 4", len(dense))
	}
	if dense[3].Total != 0 || !dense[0].Date.Equal(w.Start) {
		t.Fatalf("dense layout wrong: %+v", dense)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	states := []prevent.State{
		merged(1, 1, 4),
		{EventID: 2, AuthorLogin: "X", Action: prevent.ActionClosed},
		{EventID: 3, AuthorLogin: "y", Action: prevent.ActionOpened},
	}
	s := Summarize(states)
	if s.Total != 3 || s.Accepted != 1 || s.Closed != 1 || s.Open != 1 || s.Contributors != 2 || s.Velocity != 3 {
		t.Fatalf("Summarize = %+v", s)
	}
	if Count(states) != 3 {
		t.Fatalf("Count mismatch")
	}
}

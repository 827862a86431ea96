// Package aggregate reduces resolved pull request states to counts, day
// buckets and merge velocity
package aggregate

import (
	"sort"
	"time"

	"prlens/internal/core/prevent"
	"prlens/internal/core/window"
	pstrings "prlens/internal/platform/strings"
)

// Count is the number of resolved states
func Count(states []prevent.State) int { return len(states) }

// Velocity is the truncated mean of whole days from creation to merge
// over merged states, 0 when nothing merged
func Velocity(states []prevent.State) int {
	var sum, n int64
	for _, s := range states {
		if d, ok := s.MergeDays(); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(sum / n)
}

// Counts are per status tallies over a set of states
type Counts struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Open     int `json:"open"`
	Closed   int `json:"closed"`
	Draft    int `json:"draft"`
	Active   int `json:"active"`
	Spam     int `json:"spam"`
	Velocity int `json:"velocity"`
}

// Tally computes Counts over states
func Tally(states []prevent.State) Counts {
	var c Counts
	for _, s := range states {
		c.add(s)
	}
	c.Velocity = Velocity(states)
	return c
}

func (c *Counts) add(s prevent.State) {
	c.Total++
	if s.IsAccepted() {
		c.Accepted++
	}
	if s.IsOpen() {
		c.Open++
	}
	if s.IsClosedUnmerged() {
		c.Closed++
	}
	if s.IsDraftOpen() {
		c.Draft++
	}
	if s.IsActive() {
		c.Active++
	}
	if s.IsSpam() {
		c.Spam++
	}
}

// Stats summarize one repository
type Stats struct {
	Counts
	Contributors int `json:"contributors"`
}

// Summarize tallies states and counts distinct folded author logins
func Summarize(states []prevent.State) Stats {
	logins := make([]string, 0, len(states))
	for _, s := range states {
		logins = append(logins, s.AuthorLogin)
	}
	return Stats{Counts: Tally(states), Contributors: len(pstrings.FoldSet(logins))}
}

// Bucket is one histogram slot starting at Date
type Bucket struct {
	Date time.Time `json:"bucket"`
	Counts
}

// MaxWidthDays caps a bucket width; wider buckets hold the whole window anyway
const MaxWidthDays = 36500

// HistogramOptions shape the bucket layout
type HistogramOptions struct {
	WidthDays int
	Order     prevent.Order
	// Dense emits zero buckets for every slot of the window
	Dense bool
}

// Histogram groups states into fixed width day buckets measured from w.Start
// states outside w are ignored
func Histogram(states []prevent.State, w window.Window, opt HistogramOptions) []Bucket {
	days := min(opt.WidthDays, MaxWidthDays)
	if days <= 0 {
		days = 1
	}
	width := time.Duration(days) * window.Day

	groups := map[int64][]prevent.State{}
	for _, s := range states {
		if !w.Contains(s.EventTime) {
			continue
		}
		idx := int64(s.EventTime.Sub(w.Start) / width)
		groups[idx] = append(groups[idx], s)
	}

	if opt.Dense {
		n := int64((w.Duration() + width - 1) / width)
		for i := int64(0); i < n; i++ {
			if _, ok := groups[i]; !ok {
				groups[i] = nil
			}
		}
	}

	idxs := make([]int64, 0, len(groups))
	for i := range groups {
		idxs = append(idxs, i)
	}
	sort.Slice(idxs, func(a, b int) bool {
		if opt.Order == prevent.Asc {
			return idxs[a] < idxs[b]
		}
		return idxs[a] > idxs[b]
	})

	out := make([]Bucket, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, Bucket{
			Date:   w.Start.Add(time.Duration(i) * width),
			Counts: Tally(groups[i]),
		})
	}
	return out
}

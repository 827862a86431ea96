package prevent

import "sort"

// Resolve reduces events to exactly one record per partition
// with Desc the winner has the greatest EventTime and ties go to the highest EventID,
// with Asc the earliest EventTime wins and ties go to the lowest EventID.
// The input is not modified and the output is sorted winners first, so
// Resolve(Resolve(x)) equals Resolve(x)
func Resolve(events []Event, k Key, o Order) []State {
	if len(events) == 0 {
		return []State{}
	}

	best := make(map[partition]int, len(events))
	for i := range events {
		p := partitionOf(events[i], k)
		j, seen := best[p]
		if !seen || wins(events[i], events[j], o) {
			best[p] = i
		}
	}

	out := make([]State, 0, len(best))
	for _, i := range best {
		out = append(out, events[i])
	}
	sort.Slice(out, func(a, b int) bool {
		if wins(out[a], out[b], o) {
			return true
		}
		if wins(out[b], out[a], o) {
			return false
		}
		pa, pb := partitionOf(out[a], k), partitionOf(out[b], k)
		if pa.repo != pb.repo {
			return pa.repo < pb.repo
		}
		return pa.pr < pb.pr
	})
	return out
}

// ResolveAuthors is Resolve keyed on author login, latest first
func ResolveAuthors(events []Event) []State { return Resolve(events, ByAuthor, Desc) }

// wins reports whether a ranks ahead of b within a partition
func wins(a, b Event, o Order) bool {
	if !a.EventTime.Equal(b.EventTime) {
		if o == Asc {
			return a.EventTime.Before(b.EventTime)
		}
		return a.EventTime.After(b.EventTime)
	}
	if o == Asc {
		return a.EventID < b.EventID
	}
	return a.EventID > b.EventID
}

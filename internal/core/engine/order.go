package engine

import (
	"sort"
	"time"

	"prlens/internal/core/prevent"
	perr "prlens/internal/platform/errors"
	pstrings "prlens/internal/platform/strings"
)

// SortField names the timestamp listings are ordered by
type SortField string

// Sortable fields
const (
	SortEventTime SortField = "event_time"
	SortCreatedAt SortField = "created_at"
	SortUpdatedAt SortField = "updated_at"
	SortMergedAt  SortField = "merged_at"
	SortClosedAt  SortField = "closed_at"
)

// Order is the listing order: Dir picks the partition winner and the output
// direction, By picks the field the output is sorted on
type Order struct {
	By  SortField
	Dir prevent.Order
}

// ParseOrder validates a sort field and direction, empty field means event_time
func ParseOrder(by, dir string) (Order, error) {
	o := Order{By: SortField(pstrings.Fold(by)), Dir: prevent.ParseOrder(dir)}
	switch o.By {
	case "":
		o.By = SortEventTime
	case SortEventTime, SortCreatedAt, SortUpdatedAt, SortMergedAt, SortClosedAt:
	default:
		return Order{}, perr.WithField(perr.Validationf("cannot order by %q", by), "orderBy")
	}
	return o, nil
}

// sort reorders resolved states by o.By, keeping the resolve order on ties
// records without the field sort last
func (o Order) sort(states []prevent.State) {
	if o.By == "" || o.By == SortEventTime {
		return
	}
	key := func(s prevent.State) (time.Time, bool) {
		switch o.By {
		case SortCreatedAt:
			return s.CreatedAt, !s.CreatedAt.IsZero()
		case SortUpdatedAt:
			return s.UpdatedAt, !s.UpdatedAt.IsZero()
		case SortMergedAt:
			if s.MergedAt == nil {
				return time.Time{}, false
			}
			return *s.MergedAt, true
		case SortClosedAt:
			if s.ClosedAt == nil {
				return time.Time{}, false
			}
			return *s.ClosedAt, true
		}
		return s.EventTime, true
	}
	sort.SliceStable(states, func(i, j int) bool {
		a, aok := key(states[i])
		b, bok := key(states[j])
		if aok != bok {
			return aok
		}
		if o.Dir == prevent.Asc {
			return a.Before(b)
		}
		return a.After(b)
	})
}

// Package cohort classifies contributors by comparing who was active in two
// adjacent windows
package cohort

import (
	"sort"
	"time"

	"prlens/internal/core/prevent"
	"prlens/internal/core/window"
	perr "prlens/internal/platform/errors"
	pstrings "prlens/internal/platform/strings"
)

// Cohort names a contributor class
type Cohort string

// Supported cohorts
const (
	Active Cohort = "active"
	New    Cohort = "new"
	Alumni Cohort = "alumni"
	Repeat Cohort = "repeat"
	Churn  Cohort = "churn"
	All    Cohort = "all"
)

// Parse maps a case insensitive name to a Cohort, empty means All
func Parse(s string) (Cohort, error) {
	c := Cohort(pstrings.Fold(s))
	if c == "" {
		return All, nil
	}
	if _, ok := rules[c]; !ok {
		return "", perr.WithField(perr.Validationf("unknown contributor cohort %q", s), "cohort")
	}
	return c, nil
}

// Presence is the membership a cohort requires in one window
type Presence uint8

const (
	Any Presence = iota
	Present
	Absent
)

func (p Presence) admits(in bool) bool {
	switch p {
	case Present:
		return in
	case Absent:
		return !in
	default:
		return true
	}
}

// Rule is one row of the classification table
type Rule struct {
	Current  Presence
	Previous Presence
	// Windows returns the (current, previous) pair compared for membership
	Windows func(s window.Set) (cur, prev window.Window)
	// Span makes the primary window the union of both windows instead of cur alone
	Span bool
}

// NeedsPrevious reports whether the previous window has to be loaded
func (r Rule) NeedsPrevious() bool { return r.Previous != Any || r.Span }

// Primary is the window the reported records are ranked in
func (r Rule) Primary(s window.Set) window.Window {
	cur, prev := r.Windows(s)
	if r.Span {
		return cur.Span(prev)
	}
	return cur
}

func adjacent(s window.Set) (window.Window, window.Window) { return s.Current, s.Previous }
func extended(s window.Set) (window.Window, window.Window) { return s.Extended, s.ExtendedPrevious }

// alumni and churn share membership, both rank within current plus previous
var rules = map[Cohort]Rule{
	Active: {Current: Present, Previous: Present, Windows: adjacent},
	New:    {Current: Present, Previous: Absent, Windows: adjacent},
	Alumni: {Current: Absent, Previous: Present, Windows: adjacent, Span: true},
	Repeat: {Current: Present, Previous: Present, Windows: extended},
	Churn:  {Current: Absent, Previous: Present, Windows: adjacent, Span: true},
	All:    {Current: Present, Previous: Any, Windows: adjacent},
}

// RuleFor returns the table row for c, unknown cohorts fall back to All
func RuleFor(c Cohort) Rule {
	if r, ok := rules[c]; ok {
		return r
	}
	return rules[All]
}

// Contributor is the projected rank 1 record of one author
type Contributor struct {
	AuthorLogin   string    `json:"author_login"`
	AuthorID      int64     `json:"author_id"`
	LastEventTime time.Time `json:"last_event_time"`
}

// Classify keeps the authors of primary whose membership in cur and prev
// matches c. Events must already be filtered, prev may be nil when the rule
// does not need it
func Classify(c Cohort, cur, prev, primary []prevent.Event) []Contributor {
	r := RuleFor(c)
	inCur, inPrev := authors(cur), authors(prev)

	out := []Contributor{}
	for _, s := range prevent.ResolveAuthors(primary) {
		login := pstrings.Fold(s.AuthorLogin)
		_, a := inCur[login]
		_, b := inPrev[login]
		if !r.Current.admits(a) || !r.Previous.admits(b) {
			continue
		}
		out = append(out, Contributor{AuthorLogin: s.AuthorLogin, AuthorID: s.AuthorID, LastEventTime: s.EventTime})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LastEventTime.Equal(out[j].LastEventTime) {
			return out[i].LastEventTime.After(out[j].LastEventTime)
		}
		return pstrings.Fold(out[i].AuthorLogin) < pstrings.Fold(out[j].AuthorLogin)
	})
	return out
}

func authors(events []prevent.Event) map[string]struct{} {
	set := make(map[string]struct{}, len(events))
	for _, e := range events {
		if l := pstrings.Fold(e.AuthorLogin); l != "" {
			set[l] = struct{}{}
		}
	}
	return set
}

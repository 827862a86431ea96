// Package prevent holds the pull request event record and reduces multi event
// partitions down to one current record per pull request or per author
package prevent

import (
	"time"

	pstrings "prlens/internal/platform/strings"
	ptime "prlens/internal/platform/time"
)

// Actions and lock reasons seen on pull request events
const (
	ActionOpened   = "opened"
	ActionClosed   = "closed"
	ActionReopened = "reopened"

	LockReasonSpam = "spam"
)

// Event is one immutable pull request lifecycle record
// several events may share a (PRNumber, RepoName) pair
type Event struct {
	EventID     int64  `json:"event_id"`
	PRNumber    int64  `json:"pr_number"`
	RepoName    string `json:"repo_name"`
	RepoID      int64  `json:"repo_id"`
	AuthorLogin string `json:"author_login"`
	AuthorID    int64  `json:"author_id"`

	EventTime time.Time `json:"event_time"`
	Action    string    `json:"action"`
	State     string    `json:"state"`
	IsDraft   bool      `json:"is_draft"`
	IsMerged  bool      `json:"is_merged"`

	CreatedAt time.Time  `json:"created_at"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`

	Additions    int64 `json:"additions"`
	Deletions    int64 `json:"deletions"`
	ChangedFiles int64 `json:"changed_files"`
	Commits      int64 `json:"commits"`

	ActiveLockReason string `json:"active_lock_reason,omitempty"`
}

// State is the derived current record of a partition, it is never persisted
type State = Event

// Key selects how events are grouped before reduction
type Key uint8

const (
	// ByPullRequest groups on (pr number, folded repo name)
	ByPullRequest Key = iota
	// ByAuthor groups on the folded author login alone
	ByAuthor
)

// Order picks which end of a partition wins
type Order uint8

const (
	// Desc keeps the latest event (default)
	Desc Order = iota
	// Asc keeps the earliest event
	Asc
)

// String renders an order the way query inputs spell it
func (o Order) String() string {
	if o == Asc {
		return "asc"
	}
	return "desc"
}

// ParseOrder maps "asc" to Asc and anything else to Desc
func ParseOrder(s string) Order {
	if pstrings.Fold(s) == "asc" {
		return Asc
	}
	return Desc
}

type partition struct {
	pr   int64
	repo string
}

// partitionOf returns the grouping key of e under k
func partitionOf(e Event, k Key) partition {
	if k == ByAuthor {
		return partition{repo: pstrings.Fold(e.AuthorLogin)}
	}
	return partition{pr: e.PRNumber, repo: pstrings.Fold(e.RepoName)}
}

// IsAccepted reports a merge close
func (e Event) IsAccepted() bool { return e.Action == ActionClosed && e.IsMerged }

// IsOpen reports an opened, non draft pull request
func (e Event) IsOpen() bool { return e.Action == ActionOpened && !e.IsDraft }

// IsClosedUnmerged reports a close without merge
func (e Event) IsClosedUnmerged() bool { return e.Action == ActionClosed && !e.IsMerged }

// IsDraftOpen reports an opened draft
func (e Event) IsDraftOpen() bool { return e.Action == ActionOpened && e.IsDraft }

// IsActive reports any opened pull request, draft or not
func (e Event) IsActive() bool { return e.Action == ActionOpened }

// IsSpam reports a pull request locked as spam
func (e Event) IsSpam() bool { return pstrings.Fold(e.ActiveLockReason) == LockReasonSpam }

// MergeDays is the whole day count between the creation and merge dates
// ok is false when the record was never merged
func (e Event) MergeDays() (days int64, ok bool) {
	if !e.IsMerged || e.MergedAt == nil {
		return 0, false
	}
	return max(ptime.DaysBetween(e.CreatedAt, *e.MergedAt), 0), true
}

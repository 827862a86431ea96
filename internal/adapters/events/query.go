// Package events reads pull request events from postgres or clickhouse for
// the analytics engine. Every value is a bound parameter
package events

import (
	"strconv"
	"strings"

	"prlens/internal/core/engine"
	"prlens/internal/core/prevent"
	"prlens/internal/platform/store"
	ptime "prlens/internal/platform/time"
)

// Table is the event table both backends share
const Table = "pull_request_events"

const columns = `event_id, pr_number, repo_name, repo_id, author_login, author_id,
	event_time, action, state, is_draft, is_merged,
	created_at, merged_at, closed_at, updated_at,
	additions, deletions, changed_files, commits, active_lock_reason`

// dialect renders the parts of the select that differ per backend
type dialect struct {
	// param returns the placeholder of the n-th argument (1 based)
	param func(n int) string
	// member renders "expr is one of the array at placeholder p"
	member func(expr, p string) string
}

var pgDialect = dialect{
	param:  func(n int) string { return "$" + strconv.Itoa(n) },
	member: func(expr, p string) string { return expr + " = ANY(" + p + ")" },
}

var chDialect = dialect{
	param:  func(int) string { return "?" },
	member: func(expr, p string) string { return "has(" + p + ", " + expr + ")" },
}

// build renders the select for q and its arguments
// the scope lists are already folded, storage compares against lower()
func (d dialect) build(q engine.Query) (string, []any) {
	var b strings.Builder
	args := []any{q.Window.Start.UTC(), q.Window.End.UTC()}

	b.WriteString("SELECT ")
	b.WriteString(columns)
	b.WriteString("\nFROM ")
	b.WriteString(Table)
	b.WriteString("\nWHERE event_time >= ")
	b.WriteString(d.param(1))
	b.WriteString(" AND event_time < ")
	b.WriteString(d.param(2))

	add := func(expr string, v any) {
		args = append(args, v)
		b.WriteString("\n  AND ")
		b.WriteString(d.member(expr, d.param(len(args))))
	}
	if s := q.Scope; len(s.RepoNames) > 0 {
		add("lower(repo_name)", s.RepoNames)
	}
	if s := q.Scope; len(s.RepoIDs) > 0 {
		add("repo_id", s.RepoIDs)
	}
	if s := q.Scope; len(s.Authors) > 0 {
		add("lower(author_login)", s.Authors)
	}
	b.WriteString("\nORDER BY event_time, event_id")
	return b.String(), args
}

// scanEvent maps one row in column order
func scanEvent(r store.Row) (prevent.Event, error) {
	var e prevent.Event
	err := r.Scan(
		&e.EventID, &e.PRNumber, &e.RepoName, &e.RepoID, &e.AuthorLogin, &e.AuthorID,
		&e.EventTime, &e.Action, &e.State, &e.IsDraft, &e.IsMerged,
		&e.CreatedAt, &e.MergedAt, &e.ClosedAt, &e.UpdatedAt,
		&e.Additions, &e.Deletions, &e.ChangedFiles, &e.Commits, &e.ActiveLockReason,
	)
	if err != nil {
		return prevent.Event{}, err
	}
	e.EventTime = e.EventTime.UTC()
	e.MergedAt, e.ClosedAt = ptime.UTC(e.MergedAt), ptime.UTC(e.ClosedAt)
	return e, nil
}

// row returns e in column order for inserts
func row(e prevent.Event) []any {
	return []any{
		e.EventID, e.PRNumber, e.RepoName, e.RepoID, e.AuthorLogin, e.AuthorID,
		e.EventTime.UTC(), e.Action, e.State, e.IsDraft, e.IsMerged,
		e.CreatedAt.UTC(), ptime.UTC(e.MergedAt), ptime.UTC(e.ClosedAt), e.UpdatedAt.UTC(),
		e.Additions, e.Deletions, e.ChangedFiles, e.Commits, e.ActiveLockReason,
	}
}

// Package search implements the repo search and list membership
// collaborators of the filter pipeline over postgres
package search

import (
	"context"
	"strings"

	"prlens/internal/core/filter"
	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/store"
)

// Repos resolves topics and free text filters to repository full names
type Repos struct {
	db    store.RowQuerier
	limit int
}

// NewRepos returns a postgres backed filter.RepoSearch
func NewRepos(db store.RowQuerier) *Repos {
	if db == nil {
		panic("search.NewRepos requires a non nil RowQuerier")
	}
	return &Repos{db: db}
}

var _ filter.RepoSearch = (*Repos)(nil)

// WithCap lowers the number of names a single lookup may return, n <= 0 keeps the query limit
func (r *Repos) WithCap(n int) *Repos {
	r.limit = n
	return r
}

const reposSQL = `SELECT full_name
FROM repos
WHERE ($1 = '' OR EXISTS (SELECT 1 FROM unnest(topics) AS t WHERE lower(t) = $1))
  AND ($2 = '' OR full_name ILIKE $2 ESCAPE '\')
  AND ($3 <= 0 OR pushed_at >= now() - make_interval(days => $3))
ORDER BY stars DESC, full_name
LIMIT $4 OFFSET $5`

// Resolve returns at most q.Limit names, an empty slice when nothing matches
func (r *Repos) Resolve(ctx context.Context, q filter.RepoQuery) ([]string, error) {
	pattern := ""
	if f := strings.TrimSpace(q.Filter); f != "" {
		pattern = "%" + escapeLike(f) + "%"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = filter.RepoSearchLimit
	}
	if r.limit > 0 && r.limit < limit {
		limit = r.limit
	}
	names, err := store.Many(ctx, r.db, scanString, reposSQL,
		strings.ToLower(strings.TrimSpace(q.Topic)), pattern, int32(q.RangeDays), int32(limit), int32(max(q.Skip, 0)))
	if err != nil {
		return nil, perr.FromPostgres(err, "search repos")
	}
	return names, nil
}

// Lists resolves a curated list id to contributor logins
type Lists struct {
	db store.RowQuerier
}

// NewLists returns a postgres backed filter.ListMembership
func NewLists(db store.RowQuerier) *Lists {
	if db == nil {
		panic("search.NewLists requires a non nil RowQuerier")
	}
	return &Lists{db: db}
}

var _ filter.ListMembership = (*Lists)(nil)

const listSQL = `SELECT login
FROM user_list_contributors
WHERE list_id = $1
ORDER BY login
OFFSET $2`

// Resolve returns every login of q.ListID from q.Skip on
func (l *Lists) Resolve(ctx context.Context, q filter.ListQuery) ([]string, error) {
	logins, err := store.Many(ctx, l.db, scanString, listSQL, strings.TrimSpace(q.ListID), int32(max(q.Skip, 0)))
	if err != nil {
		return nil, perr.FromPostgres(err, "resolve list members")
	}
	return logins, nil
}

func scanString(r store.Row) (string, error) {
	var s string
	return s, r.Scan(&s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

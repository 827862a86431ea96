// Package filter turns request criteria into one AND-combined predicate over
// pull request events plus a storage pushdown scope
package filter

import (
	"context"
	"sort"

	"prlens/internal/core/prevent"
	perr "prlens/internal/platform/errors"
	pstrings "prlens/internal/platform/strings"
)

// RepoSearchLimit caps how many repos a topic or filter lookup may expand to
const RepoSearchLimit = 50

// Criteria are the optional narrowing inputs of a query
type Criteria struct {
	Contributor string
	Repos       []string
	RepoIDs     []int64
	Topic       string
	Filter      string
	ListID      string
	Status      string
}

// Scoped reports whether any discriminating criterion is set
func (c Criteria) Scoped() bool {
	return pstrings.Fold(c.Contributor) != "" ||
		len(pstrings.FoldSet(c.Repos)) > 0 ||
		len(c.RepoIDs) > 0 ||
		pstrings.Fold(c.Topic) != "" ||
		pstrings.Fold(c.Filter) != ""
}

// RequireScope rejects aggregate queries that would scan the whole event log
func RequireScope(c Criteria) error {
	if c.Scoped() {
		return nil
	}
	return perr.Validationf("one of contributor, repo, repoIds, topic or filter is required")
}

// RepoQuery is the input handed to RepoSearch
type RepoQuery struct {
	Filter    string
	Topic     string
	RangeDays int
	Limit     int
	Skip      int
}

// RepoSearch expands a topic or free text filter into repository full names
type RepoSearch interface {
	Resolve(ctx context.Context, q RepoQuery) ([]string, error)
}

// ListQuery is the input handed to ListMembership
type ListQuery struct {
	ListID string
	Skip   int
}

// ListMembership expands a curated list into contributor logins
type ListMembership interface {
	Resolve(ctx context.Context, q ListQuery) ([]string, error)
}

// Deps are the collaborators Build may call, either may be nil when unused
type Deps struct {
	Repos RepoSearch
	Lists ListMembership
}

// Scope is the part of the predicate storage can evaluate
// nil slices mean unconstrained, None means nothing can match
type Scope struct {
	RepoNames []string
	RepoIDs   []int64
	Authors   []string
	None      bool
}

type predicate func(e prevent.Event) bool

// Pipeline is the compiled predicate list of one request
type Pipeline struct {
	preds []predicate
	scope Scope
}

// Build compiles c into a pipeline, resolving topic, filter and list criteria
// through deps. rangeDays is forwarded to repo search
func Build(ctx context.Context, c Criteria, rangeDays int, deps Deps) (*Pipeline, error) {
	p := &Pipeline{}

	if login := pstrings.Fold(c.Contributor); login != "" {
		p.preds = append(p.preds, func(e prevent.Event) bool {
			return pstrings.Fold(e.AuthorLogin) == login
		})
		p.scope.Authors = []string{login}
	}

	if repos := pstrings.FoldSet(splitRepos(c.Repos)); len(repos) > 0 {
		p.addRepoNames(repos)
	}

	if len(c.RepoIDs) > 0 {
		ids := make(map[int64]struct{}, len(c.RepoIDs))
		for _, id := range c.RepoIDs {
			ids[id] = struct{}{}
		}
		p.preds = append(p.preds, func(e prevent.Event) bool {
			_, ok := ids[e.RepoID]
			return ok
		})
		p.scope.RepoIDs = sortedIDs(ids)
	}

	topic, text := pstrings.Fold(c.Topic), pstrings.Fold(c.Filter)
	if topic != "" || text != "" {
		if deps.Repos == nil {
			return nil, perr.Internalf("filter: repo search is not configured")
		}
		names, err := deps.Repos.Resolve(ctx, RepoQuery{
			Filter:    text,
			Topic:     topic,
			RangeDays: rangeDays,
			Limit:     RepoSearchLimit,
			Skip:      0,
		})
		if err != nil {
			return nil, perr.WithOp(err, "filter.repo_search")
		}
		p.addRepoNames(pstrings.FoldSet(names))
	}

	if list := pstrings.Fold(c.ListID); list != "" {
		if deps.Lists == nil {
			return nil, perr.Internalf("filter: list membership is not configured")
		}
		logins, err := deps.Lists.Resolve(ctx, ListQuery{ListID: c.ListID, Skip: 0})
		if err != nil {
			return nil, perr.WithOp(err, "filter.list_membership")
		}
		set := pstrings.FoldSet(logins)
		p.preds = append(p.preds, func(e prevent.Event) bool {
			_, ok := set[pstrings.Fold(e.AuthorLogin)]
			return ok
		})
		p.scope.Authors = narrow(p.scope.Authors, set, &p.scope.None)
	}

	if status := pstrings.Fold(c.Status); status != "" {
		p.preds = append(p.preds, func(e prevent.Event) bool {
			return pstrings.Fold(e.State) == status
		})
	}

	return p, nil
}

// addRepoNames adds a repo name membership predicate, an empty set matches nothing
func (p *Pipeline) addRepoNames(set map[string]struct{}) {
	p.preds = append(p.preds, func(e prevent.Event) bool {
		_, ok := set[pstrings.Fold(e.RepoName)]
		return ok
	})
	p.scope.RepoNames = narrow(p.scope.RepoNames, set, &p.scope.None)
}

// Matches applies every predicate to e
func (p *Pipeline) Matches(e prevent.Event) bool {
	for _, pred := range p.preds {
		if !pred(e) {
			return false
		}
	}
	return true
}

// Apply returns the events that match, in input order
func (p *Pipeline) Apply(events []prevent.Event) []prevent.Event {
	out := make([]prevent.Event, 0, len(events))
	for _, e := range events {
		if p.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Scope returns the pushdown part of the pipeline
func (p *Pipeline) Scope() Scope { return p.scope }

// narrow intersects the current scope list with set, flagging none on an empty result
func narrow(cur []string, set map[string]struct{}, none *bool) []string {
	out := make([]string, 0, len(set))
	if cur == nil {
		for k := range set {
			out = append(out, k)
		}
	} else {
		for _, k := range cur {
			if _, ok := set[k]; ok {
				out = append(out, k)
			}
		}
	}
	if len(out) == 0 {
		*none = true
	}
	sort.Strings(out)
	return out
}

func sortedIDs(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// splitRepos expands comma separated entries, so "a/b,c/d" names two repos
func splitRepos(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, pstrings.SplitCSV(v)...)
	}
	return out
}

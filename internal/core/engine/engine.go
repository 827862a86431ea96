// Package engine answers pull request analytics queries over a read only
// event source: it loads a window, filters it, resolves current state and
// hands the result to aggregation, classification or pagination
package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"prlens/internal/core/aggregate"
	"prlens/internal/core/cohort"
	"prlens/internal/core/filter"
	"prlens/internal/core/page"
	"prlens/internal/core/prevent"
	"prlens/internal/core/window"
	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/logger"
	pstrings "prlens/internal/platform/strings"
)

// Query is what the engine asks storage for
// Scope is a pushdown hint, the engine still filters every returned row
type Query struct {
	Window window.Window
	Scope  filter.Scope
}

// Source reads raw pull request events
type Source interface {
	Events(ctx context.Context, q Query) ([]prevent.Event, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context, q Query) ([]prevent.Event, error)

// Events calls f
func (f SourceFunc) Events(ctx context.Context, q Query) ([]prevent.Event, error) { return f(ctx, q) }

// Engine holds only injected collaborators and is safe for concurrent use
type Engine struct {
	src  Source
	deps filter.Deps
	now  func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithRepoSearch sets the topic and filter collaborator
func WithRepoSearch(rs filter.RepoSearch) Option { return func(e *Engine) { e.deps.Repos = rs } }

// WithListMembership sets the list collaborator
func WithListMembership(lm filter.ListMembership) Option {
	return func(e *Engine) { e.deps.Lists = lm }
}

// WithClock overrides the wall clock used for the default anchor
func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// New constructs an engine over src
func New(src Source, opts ...Option) *Engine {
	if src == nil {
		panic("engine.New requires a non nil Source")
	}
	e := &Engine{src: src, now: time.Now}
	for _, o := range opts {
		o(e)
	}
	return e
}

// params pins the anchor of p to the engine clock when the caller left it unset
func (e *Engine) params(p window.Params) window.Params {
	if p.Now.IsZero() {
		p.Now = e.now()
	}
	return p
}

// load reads w through the pipeline scope and applies the exact predicate
func (e *Engine) load(ctx context.Context, pl *filter.Pipeline, w window.Window) ([]prevent.Event, error) {
	scope := pl.Scope()
	if scope.None {
		return []prevent.Event{}, nil
	}
	raw, err := e.src.Events(ctx, Query{Window: w, Scope: scope})
	if err != nil {
		return nil, err
	}
	out := make([]prevent.Event, 0, len(raw))
	for _, ev := range raw {
		if w.Contains(ev.EventTime) && pl.Matches(ev) {
			out = append(out, ev)
		}
	}
	logger.C(ctx).Debug().
		Str("component", "engine").
		Time("start", w.Start).
		Time("end", w.End).
		Int("loaded", len(raw)).
		Int("matched", len(out)).
		Msg("window loaded")
	return out, nil
}

// states resolves the current window of p to one record per pull request
func (e *Engine) states(ctx context.Context, c filter.Criteria, p window.Params, o prevent.Order) ([]prevent.State, window.Window, error) {
	p = e.params(p)
	pl, err := filter.Build(ctx, c, p.RangeDays, e.deps)
	if err != nil {
		return nil, window.Window{}, err
	}
	w := window.For(p).Current
	events, err := e.load(ctx, pl, w)
	if err != nil {
		return nil, w, err
	}
	return prevent.Resolve(events, prevent.ByPullRequest, o), w, nil
}

// ListPullRequestState pages the current state of every matching pull request
func (e *Engine) ListPullRequestState(ctx context.Context, c filter.Criteria, p window.Params, o Order, req page.Request) (page.Result[prevent.State], error) {
	states, _, err := e.states(ctx, c, p, o.Dir)
	if err != nil {
		return page.Result[prevent.State]{}, err
	}
	o.sort(states)
	return page.Paginate(states, req), nil
}

// ByAuthor lists the pull requests of one contributor
func (e *Engine) ByAuthor(ctx context.Context, login string, p window.Params, o Order, req page.Request) (page.Result[prevent.State], error) {
	if pstrings.Fold(login) == "" {
		return page.Result[prevent.State]{}, perr.WithField(perr.Validationf("author login is required"), "contributor")
	}
	return e.ListPullRequestState(ctx, filter.Criteria{Contributor: login}, p, o, req)
}

// ByRepoIDs lists the pull requests of a set of repositories
func (e *Engine) ByRepoIDs(ctx context.Context, ids []int64, p window.Params, o Order, req page.Request) (page.Result[prevent.State], error) {
	return e.ListPullRequestState(ctx, filter.Criteria{RepoIDs: ids}, p, o, req)
}

// Histogram buckets the current state of matching pull requests by day
func (e *Engine) Histogram(ctx context.Context, c filter.Criteria, p window.Params, opt aggregate.HistogramOptions) ([]aggregate.Bucket, error) {
	if err := filter.RequireScope(c); err != nil {
		return nil, err
	}
	states, w, err := e.states(ctx, c, p, prevent.Desc)
	if err != nil {
		return nil, err
	}
	return aggregate.Histogram(states, w, opt), nil
}

// Velocity is the average whole days to merge across matching pull requests
func (e *Engine) Velocity(ctx context.Context, c filter.Criteria, p window.Params) (int, error) {
	states, _, err := e.states(ctx, c, p, prevent.Desc)
	if err != nil {
		return 0, err
	}
	return aggregate.Velocity(states), nil
}

// RepoStats summarizes one repository, NotFound when it has no events in range
func (e *Engine) RepoStats(ctx context.Context, repo string, p window.Params) (aggregate.Stats, error) {
	if pstrings.Fold(repo) == "" {
		return aggregate.Stats{}, perr.WithField(perr.Validationf("repo is required"), "repo")
	}
	states, _, err := e.states(ctx, filter.Criteria{Repos: []string{repo}}, p, prevent.Desc)
	if err != nil {
		return aggregate.Stats{}, err
	}
	if len(states) == 0 {
		return aggregate.Stats{}, perr.NotFoundf("no pull requests for %s", repo)
	}
	return aggregate.Summarize(states), nil
}

// ClassifyContributors pages the contributors of cohort k
func (e *Engine) ClassifyContributors(ctx context.Context, c filter.Criteria, p window.Params, k cohort.Cohort, req page.Request) (page.Result[cohort.Contributor], error) {
	if err := filter.RequireScope(c); err != nil {
		return page.Result[cohort.Contributor]{}, err
	}
	return e.classify(ctx, c, p, k, req)
}

// ContributorsByRepoIDs pages the contributors of cohort k across a repo id set
func (e *Engine) ContributorsByRepoIDs(ctx context.Context, ids []int64, p window.Params, k cohort.Cohort, req page.Request) (page.Result[cohort.Contributor], error) {
	if len(ids) == 0 {
		return page.Result[cohort.Contributor]{}, perr.WithField(perr.Validationf("at least one repo id is required"), "repoIds")
	}
	return e.classify(ctx, filter.Criteria{RepoIDs: ids}, p, k, req)
}

func (e *Engine) classify(ctx context.Context, c filter.Criteria, p window.Params, k cohort.Cohort, req page.Request) (page.Result[cohort.Contributor], error) {
	p = e.params(p)
	pl, err := filter.Build(ctx, c, p.RangeDays, e.deps)
	if err != nil {
		return page.Result[cohort.Contributor]{}, err
	}

	rule := cohort.RuleFor(k)
	cw, pw := rule.Windows(window.For(p))

	var cur, prev []prevent.Event
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, err = e.load(gctx, pl, cw)
		return err
	})
	if rule.NeedsPrevious() {
		g.Go(func() error {
			var err error
			prev, err = e.load(gctx, pl, pw)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return page.Result[cohort.Contributor]{}, err
	}

	primary := cur
	if rule.Span {
		primary = make([]prevent.Event, 0, len(cur)+len(prev))
		primary = append(append(primary, cur...), prev...)
	}

	out := cohort.Classify(k, cur, prev, primary)
	logger.C(ctx).Debug().
		Str("component", "engine").
		Str("cohort", string(k)).
		Int("current", len(cur)).
		Int("previous", len(prev)).
		Int("contributors", len(out)).
		Msg("contributors classified")
	return page.Paginate(out, req), nil
}

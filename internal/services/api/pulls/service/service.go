// Package service contains pull request query workflows
package service

import (
	"context"

	"prlens/internal/core/aggregate"
	"prlens/internal/core/engine"
	"prlens/internal/core/page"
	"prlens/internal/core/prevent"
	"prlens/internal/core/window"
	perr "prlens/internal/platform/errors"
	"prlens/internal/services/api/pulls/domain"
)

// Service defines the pull request service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the pull request service over the engine
type Svc struct {
	eng domain.Engine
}

// New constructs a pull request service
func New(eng domain.Engine) *Svc {
	if eng == nil {
		panic("pulls.Service requires a non nil Engine")
	}
	return &Svc{eng: eng}
}

// List pages the current state of pull requests matching the criteria
func (s *Svc) List(ctx context.Context, in domain.ListInput) (page.Result[prevent.State], error) {
	o, err := engine.ParseOrder(in.OrderBy, in.OrderDirection)
	if err != nil {
		return page.Result[prevent.State]{}, err
	}
	return s.eng.ListPullRequestState(ctx, in.FilterCriteria(), in.Window(), o, in.Request())
}

// ByAuthor pages the pull requests of one contributor
func (s *Svc) ByAuthor(ctx context.Context, in domain.AuthorInput) (page.Result[prevent.State], error) {
	o, err := engine.ParseOrder(in.OrderBy, in.OrderDirection)
	if err != nil {
		return page.Result[prevent.State]{}, err
	}
	return s.eng.ByAuthor(ctx, in.Contributor, in.Window(), o, in.Request())
}

// ByRepoIDs pages the pull requests of a set of repository ids
func (s *Svc) ByRepoIDs(ctx context.Context, in domain.RepoIDsInput) (page.Result[prevent.State], error) {
	if len(in.RepoIDs) == 0 {
		return page.Result[prevent.State]{}, perr.WithField(perr.Validationf("at least one repo id is required"), "repoIds")
	}
	o, err := engine.ParseOrder(in.OrderBy, in.OrderDirection)
	if err != nil {
		return page.Result[prevent.State]{}, err
	}
	return s.eng.ByRepoIDs(ctx, in.RepoIDs, in.Window(), o, in.Request())
}

// Histogram buckets matching pull requests by day
func (s *Svc) Histogram(ctx context.Context, in domain.HistogramInput) ([]aggregate.Bucket, error) {
	return s.eng.Histogram(ctx, in.FilterCriteria(), in.Window(), aggregate.HistogramOptions{
		WidthDays: in.Width,
		Order:     prevent.ParseOrder(in.OrderDirection),
		Dense:     in.Dense,
	})
}

// Velocity averages whole days to merge across matching pull requests
func (s *Svc) Velocity(ctx context.Context, in domain.VelocityInput) (domain.VelocityRow, error) {
	v, err := s.eng.Velocity(ctx, in.FilterCriteria(), in.Window())
	if err != nil {
		return domain.VelocityRow{}, err
	}
	return domain.VelocityRow{Velocity: v}, nil
}

// RepoStats summarizes one repository
func (s *Svc) RepoStats(ctx context.Context, in domain.RepoStatsInput) (aggregate.Stats, error) {
	return s.eng.RepoStats(ctx, in.Repo, window.Params{RangeDays: in.Range, OffsetDays: in.PrevDaysStartDate})
}

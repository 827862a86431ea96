// Package domain holds the pull request endpoint shapes and ports
package domain

import (
	"context"

	"prlens/internal/core/aggregate"
	"prlens/internal/core/engine"
	"prlens/internal/core/filter"
	"prlens/internal/core/page"
	"prlens/internal/core/prevent"
	"prlens/internal/core/window"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, in ListInput) (page.Result[prevent.State], error)
	ByAuthor(ctx context.Context, in AuthorInput) (page.Result[prevent.State], error)
	ByRepoIDs(ctx context.Context, in RepoIDsInput) (page.Result[prevent.State], error)
	Histogram(ctx context.Context, in HistogramInput) ([]aggregate.Bucket, error)
	Velocity(ctx context.Context, in VelocityInput) (VelocityRow, error)
	RepoStats(ctx context.Context, in RepoStatsInput) (aggregate.Stats, error)
}

// Engine is the slice of the analytics engine the service calls
type Engine interface {
	ListPullRequestState(ctx context.Context, c filter.Criteria, p window.Params, o engine.Order, req page.Request) (page.Result[prevent.State], error)
	ByAuthor(ctx context.Context, login string, p window.Params, o engine.Order, req page.Request) (page.Result[prevent.State], error)
	ByRepoIDs(ctx context.Context, ids []int64, p window.Params, o engine.Order, req page.Request) (page.Result[prevent.State], error)
	Histogram(ctx context.Context, c filter.Criteria, p window.Params, opt aggregate.HistogramOptions) ([]aggregate.Bucket, error)
	Velocity(ctx context.Context, c filter.Criteria, p window.Params) (int, error)
	RepoStats(ctx context.Context, repo string, p window.Params) (aggregate.Stats, error)
}

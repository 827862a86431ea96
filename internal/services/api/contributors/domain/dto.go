// Package domain holds the contributor endpoint shapes and ports
package domain

import (
	"context"

	"prlens/internal/core/cohort"
	"prlens/internal/core/filter"
	"prlens/internal/core/page"
	"prlens/internal/core/window"
	"prlens/internal/services/api/criteria"
)

// SearchInput classifies the contributors of the matching pull requests
type SearchInput struct {
	criteria.Criteria
	criteria.Paging
	Cohort string `json:"cohort" validate:"omitempty,oneof=all active new alumni churn repeat" example:"active"`
}

// RepoIDsInput classifies the contributors of a set of repository ids
type RepoIDsInput struct {
	SearchInput
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (page.Result[cohort.Contributor], error)
	ByRepoIDs(ctx context.Context, in RepoIDsInput) (page.Result[cohort.Contributor], error)
}

// Engine is the slice of the analytics engine the service calls
type Engine interface {
	ClassifyContributors(ctx context.Context, c filter.Criteria, p window.Params, k cohort.Cohort, req page.Request) (page.Result[cohort.Contributor], error)
	ContributorsByRepoIDs(ctx context.Context, ids []int64, p window.Params, k cohort.Cohort, req page.Request) (page.Result[cohort.Contributor], error)
}

// Package service contains contributor cohort workflows
package service

import (
	"context"

	"prlens/internal/core/cohort"
	"prlens/internal/core/page"
	"prlens/internal/services/api/contributors/domain"
)

// Service defines the contributor service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the contributor service over the engine
type Svc struct {
	eng domain.Engine
}

// New constructs a contributor service
func New(eng domain.Engine) *Svc {
	if eng == nil {
		panic("contributors.Service requires a non nil Engine")
	}
	return &Svc{eng: eng}
}

// Search pages the contributors of one cohort across the matching pull requests
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (page.Result[cohort.Contributor], error) {
	k, err := cohort.Parse(in.Cohort)
	if err != nil {
		return page.Result[cohort.Contributor]{}, err
	}
	return s.eng.ClassifyContributors(ctx, in.FilterCriteria(), in.Window(), k, in.Request())
}

// ByRepoIDs pages the contributors of one cohort across a repo id set
func (s *Svc) ByRepoIDs(ctx context.Context, in domain.RepoIDsInput) (page.Result[cohort.Contributor], error) {
	k, err := cohort.Parse(in.Cohort)
	if err != nil {
		return page.Result[cohort.Contributor]{}, err
	}
	return s.eng.ContributorsByRepoIDs(ctx, in.RepoIDs, in.Window(), k, in.Request())
}

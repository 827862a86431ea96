package domain

import "prlens/internal/services/api/criteria"

// Ordering picks the field and direction listings are sorted by
type Ordering struct {
	OrderBy        string `json:"orderBy" validate:"omitempty,oneof=event_time created_at updated_at merged_at closed_at" example:"event_time"`
	OrderDirection string `json:"orderDirection" validate:"omitempty,oneof=asc desc" example:"desc"`
}

// ListInput is the body of a pull request listing
type ListInput struct {
	criteria.Criteria
	criteria.Paging
	Ordering
}

// AuthorInput lists the pull requests of Contributor, which must be set
type AuthorInput struct {
	ListInput
}

// RepoIDsInput lists the pull requests of RepoIDs, which must be non empty
type RepoIDsInput struct {
	ListInput
}

// HistogramInput buckets matching pull requests by day
type HistogramInput struct {
	criteria.Criteria
	Width          int    `json:"width" validate:"omitempty,min=1,max=365" example:"1"`
	OrderDirection string `json:"orderDirection" validate:"omitempty,oneof=asc desc" example:"asc"`
	Dense          bool   `json:"dense"`
}

// VelocityInput averages days to merge across matching pull requests
type VelocityInput struct {
	criteria.Criteria
}

// VelocityRow is the velocity response body
type VelocityRow struct {
	Velocity int `json:"velocity"`
}

// RepoStatsInput summarizes one repository
type RepoStatsInput struct {
	Repo              string `json:"repo" validate:"required,repo_name" example:"open-sauced/app"`
	Range             int    `json:"range" validate:"omitempty,min=1,max=365" example:"30"`
	PrevDaysStartDate int    `json:"prev_days_start_date" validate:"omitempty,min=0" example:"0"`
}

// Package criteria holds the request shapes shared by the pull request and
// contributor endpoints and maps them onto engine inputs
package criteria

import (
	"prlens/internal/core/filter"
	"prlens/internal/core/page"
	"prlens/internal/core/window"
)

const (
	// DefaultLimit applies when a caller leaves limit unset
	DefaultLimit = 10
	// MaxPage bounds the page a caller may ask for
	MaxPage = 1_000_000
)

// Criteria are the narrowing fields every query accepts
type Criteria struct {
	Range             int      `json:"range" validate:"omitempty,min=1,max=365" example:"30"`
	PrevDaysStartDate int      `json:"prev_days_start_date" validate:"omitempty,min=0" example:"0"`
	Contributor       string   `json:"contributor" validate:"omitempty,max=39"`
	Repos             []string `json:"repos" validate:"omitempty,max=100,dive,repo_names"`
	RepoIDs           []int64  `json:"repoIds" validate:"omitempty,max=100,dive,min=1"`
	Topic             string   `json:"topic" validate:"omitempty,max=100"`
	Filter            string   `json:"filter" validate:"omitempty,max=100"`
	ListID            string   `json:"listId" validate:"omitempty,max=64"`
	Status            string   `json:"status" validate:"omitempty,oneof=open closed"`
}

// FilterCriteria maps the DTO onto the filter pipeline input
func (c Criteria) FilterCriteria() filter.Criteria {
	return filter.Criteria{
		Contributor: c.Contributor,
		Repos:       c.Repos,
		RepoIDs:     c.RepoIDs,
		Topic:       c.Topic,
		Filter:      c.Filter,
		ListID:      c.ListID,
		Status:      c.Status,
	}
}

// Window maps the range fields; the anchor is left to the engine clock
func (c Criteria) Window() window.Params {
	return window.Params{RangeDays: c.Range, OffsetDays: c.PrevDaysStartDate}
}

// Paging is the 1 based page a caller asks for
type Paging struct {
	Page  int `json:"page" validate:"omitempty,min=1,max=1000000" example:"1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100" example:"10"`
}

// Request converts Paging to a skip and limit, filling defaults
func (p Paging) Request() page.Request {
	n, limit := p.Page, p.Limit
	if n < 1 {
		n = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page.Request{Skip: page.Skip(n, limit), Limit: limit}
}

// Package page slices a fully loaded result set and describes the slice
package page

import "math"

// Request is the caller's window into a result set
type Request struct {
	Skip  int
	Limit int
}

// Meta describes where a page sits in the full set
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	ItemCount       int  `json:"itemCount"`
	PageCount       int  `json:"pageCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// Result is one page of T plus the count of the unsliced set
type Result[T any] struct {
	Items []T  `json:"data"`
	Meta  Meta `json:"meta"`
}

// ItemCount is the size of the unsliced set
func (r Result[T]) ItemCount() int { return r.Meta.ItemCount }

// PageItems and PageMeta let transports lift the page into their own envelope
func (r Result[T]) PageItems() any { return r.Items }

// PageMeta returns the page metadata
func (r Result[T]) PageMeta() any { return r.Meta }

// Paginate counts items then slices [skip, skip+limit)
// limit <= 0 means no cap, skip past the end yields no items
func Paginate[T any](items []T, req Request) Result[T] {
	count := len(items)
	skip := req.Skip
	if skip < 0 {
		skip = 0
	}

	end := count
	if req.Limit > 0 && skip < count && req.Limit < count-skip {
		end = skip + req.Limit
	}

	out := []T{}
	if skip < count {
		out = append(out, items[skip:end]...)
	}
	return Result[T]{Items: out, Meta: metaFor(count, skip, req.Limit)}
}

func metaFor(count, skip, limit int) Meta {
	m := Meta{Limit: limit, ItemCount: count, Page: 1, PageCount: 1}
	if limit > 0 {
		m.Page = skip / limit
		if m.Page < math.MaxInt {
			m.Page++
		}
		m.PageCount = count / limit
		if count%limit != 0 {
			m.PageCount++
		}
	}
	if count == 0 {
		m.PageCount = 0
	}
	m.HasPreviousPage = m.Page > 1
	m.HasNextPage = limit > 0 && skip < count && limit < count-skip
	return m
}

// Skip returns (page-1)*limit for a 1 based page, saturating at math.MaxInt
// so a page far past the end stays past the end
func Skip(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

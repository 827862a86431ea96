package store

import (
	"context"
	"errors"

	perr "prlens/internal/platform/errors"
)

// Scalar queries the first column of the first row into T
// no rows maps to perr.ErrNotFound
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return v, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return v, err
		}
		return v, perr.ErrNotFound
	}
	if err := rows.Scan(&v); err != nil {
		return v, err
	}
	return v, rows.Err()
}

// Many maps every row with scan, an empty result is an empty non nil slice
func Many[T any](ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return Collect(rows, scan)
}

// Collect drains rows through scan
func Collect[T any](rows Rows, scan func(Row) (T, error)) ([]T, error) {
	if rows == nil {
		return nil, errors.New("store: nil rows")
	}
	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

package events

import (
	"context"

	"prlens/internal/core/engine"
	"prlens/internal/core/prevent"
	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/store"
)

// PG reads events from postgres
type PG struct {
	db store.RowQuerier
}

// NewPG returns a postgres event source
func NewPG(db store.RowQuerier) *PG {
	if db == nil {
		panic("events.NewPG requires a non nil RowQuerier")
	}
	return &PG{db: db}
}

var _ engine.Source = (*PG)(nil)

// Events loads the window and scope of q
func (s *PG) Events(ctx context.Context, q engine.Query) ([]prevent.Event, error) {
	sql, args := pgDialect.build(q)
	out, err := store.Many(ctx, s.db, scanEvent, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "load pull request events")
	}
	return out, nil
}

// CH reads events from clickhouse
type CH struct {
	db store.Clickhouse
}

// NewCH returns a clickhouse event source
func NewCH(db store.Clickhouse) *CH {
	if db == nil {
		panic("events.NewCH requires a non nil Clickhouse")
	}
	return &CH{db: db}
}

var _ engine.Source = (*CH)(nil)

// Events loads the window and scope of q
func (s *CH) Events(ctx context.Context, q engine.Query) ([]prevent.Event, error) {
	sql, args := chDialect.build(q)
	out, err := store.Many(ctx, s.db, scanEvent, sql, args...)
	if err != nil {
		return nil, perr.FromStorage(err, "load pull request events")
	}
	return out, nil
}

// Append writes events in one batch, used to seed fixtures
func (s *CH) Append(ctx context.Context, events []prevent.Event) error {
	rows := make([][]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, row(e))
	}
	return perr.FromStorage(s.db.Insert(ctx, Table, rows), "append pull request events")
}

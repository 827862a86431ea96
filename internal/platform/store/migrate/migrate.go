// Package migrate applies the embedded schema migrations with goose
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"prlens/internal/platform/logger"

	"github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/pg/*.sql migrations/ch/*.sql
var migrations embed.FS

// Target names a schema
type Target string

const (
	Postgres   Target = "pg"
	ClickHouse Target = "ch"
)

func (t Target) dialect() (string, error) {
	switch t {
	case Postgres:
		return "postgres", nil
	case ClickHouse:
		return "clickhouse", nil
	}
	return "", fmt.Errorf("migrate: unknown target %q", t)
}

// dir is the embedded directory holding t's migrations
func (t Target) dir() string { return "migrations/" + string(t) }

// goose keeps its dialect and filesystem in package globals
var mu sync.Mutex

// Up applies every pending migration of t to db
func Up(ctx context.Context, db *sql.DB, t Target) error {
	dialect, err := t.dialect()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: logger.Named("migrate")})
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, t.dir()); err != nil {
		return fmt.Errorf("migrate %s: %w", t, err)
	}
	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("migrate %s version: %w", t, err)
	}
	logger.Named("migrate").Info().Str("target", string(t)).Int64("version", v).Msg("schema up to date")
	return nil
}

// OpenPostgres opens a database/sql handle on the pgx driver
func OpenPostgres(url string) (*sql.DB, error) { return sql.Open("pgx", url) }

// OpenClickHouse opens a database/sql handle from a clickhouse dsn
func OpenClickHouse(dsn string) (*sql.DB, error) {
	opt, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return clickhouse.OpenDB(opt), nil
}

// Files lists the embedded migration names of t
func Files(t Target) ([]string, error) {
	entries, err := migrations.ReadDir(t.dir())
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out, nil
}

// gooseLogger routes goose output through zerolog
type gooseLogger struct{ log *logger.Logger }

func (g gooseLogger) Printf(format string, v ...any) { g.log.Info().Msgf(format, v...) }
func (g gooseLogger) Fatalf(format string, v ...any) { g.log.Fatal().Msgf(format, v...) }

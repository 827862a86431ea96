// Command prlens-migrate applies the embedded schema migrations
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"prlens/internal/platform/config"
	"prlens/internal/platform/logger"
	"prlens/internal/platform/store/migrate"
)

func main() {
	target := flag.String("target", "all", "schema to migrate: pg, ch or all")
	flag.Parse()

	_ = godotenv.Load()
	root := config.New()
	l := logger.Named("migrate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	type job struct {
		target migrate.Target
		open   func(string) (*sql.DB, error)
		url    func() string
	}
	jobs := []job{
		{migrate.Postgres, migrate.OpenPostgres, func() string { return root.Prefix("SERVICE_PGSQL_").MustString("DBURL") }},
		{migrate.ClickHouse, migrate.OpenClickHouse, func() string { return root.Prefix("SERVICE_CLICKHOUSE_").MustString("DBURL") }},
	}

	ran := 0
	for _, j := range jobs {
		if *target != "all" && *target != string(j.target) {
			continue
		}
		ran++
		db, err := j.open(j.url())
		if err != nil {
			l.Fatal().Err(err).Str("target", string(j.target)).Msg("open database")
		}
		err = migrate.Up(ctx, db, j.target)
		_ = db.Close()
		if err != nil {
			l.Fatal().Err(err).Str("target", string(j.target)).Msg("migrate up")
		}
		l.Info().Str("target", string(j.target)).Msg("schema up to date")
	}
	if ran == 0 {
		l.Fatal().Str("target", *target).Msg("unknown target, want pg, ch or all")
	}
}

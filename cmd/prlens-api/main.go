// @title         prlens API
// @version       0.1.0
// @description   Read only pull request analytics over the event log

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"prlens/internal/platform/config"
	"prlens/internal/platform/logger"
	phttp "prlens/internal/platform/net/http"
	"prlens/internal/platform/net/middleware"
	"prlens/internal/platform/store"

	"prlens/internal/services/api"
)

func main() {
	// optional .env, real env wins
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := apiCfg.MayEnum("EVENT_SOURCE", "ch", "ch", "pg")
	pgURL := pgCfg.MayString("DBURL", "")
	chURL := chCfg.MayString("DBURL", "")
	if source == "pg" && pgURL == "" {
		l.Fatal().Msg("SERVICE_PGSQL_DBURL is required when CORE_API_EVENT_SOURCE=pg")
	}
	if source == "ch" && chURL == "" {
		l.Fatal().Msg("SERVICE_CLICKHOUSE_DBURL is required when CORE_API_EVENT_SOURCE=ch")
	}

	st, err := store.Open(ctx,
		store.Config{
			AppName: "prlens-api",
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled:    chURL != "",
				URL:        chURL,
				ClientName: "prlens",
				ClientTag:  "api",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	srv := phttp.NewServer(phttp.ServerConfigFrom(apiCfg), func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/ping"))
	})
	if err := api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Fatal().Err(err).Msg("api.Mount failed")
	}

	l.Info().Str("addr", srv.Addr()).Str("event_source", source).Msg("prlens api listening")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}

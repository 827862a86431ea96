//go:build integration_pg
// +build integration_pg

package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"prlens/internal/adapters/search"
	"prlens/internal/core/aggregate"
	"prlens/internal/core/cohort"
	"prlens/internal/core/engine"
	"prlens/internal/core/filter"
	"prlens/internal/core/page"
	"prlens/internal/core/window"
	"prlens/internal/platform/store"
	"prlens/internal/platform/store/migrate"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "prlens",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		cancel()
		t.Fatalf("start postgres: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/prlens?sslmode=disable", host, mapped.Port())
	return dsn, func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
}

const insertEvent = `INSERT INTO pull_request_events (
	event_id, pr_number, repo_name, repo_id, author_login, author_id,
	event_time, action, state, is_draft, is_merged,
	created_at, merged_at, closed_at, updated_at,
	additions, deletions, changed_files, commits, active_lock_reason
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`

func TestEngineOverPostgres_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	sqlDB, err := migrate.OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open sql: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()
	if err := migrate.Up(ctx, sqlDB, migrate.Postgres); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st, err := store.Open(ctx, store.Config{AppName: "prlens-it", PG: store.PGConfig{Enabled: true, URL: dsn, ConnectRetries: 5}})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	defer func() { _ = st.Close(ctx) }()

	merged := time.Date(2024, time.January, 4, 9, 0, 0, 0, time.UTC)
	created := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	old := time.Date(2023, time.December, 1, 9, 0, 0, 0, time.UTC)

	var seed [][]any
	queue := func(id, pr int64, repo string, repoID int64, login string, at time.Time, action string, isMerged bool, mergedAt *time.Time) {
		seed = append(seed, []any{id, pr, repo, repoID, login, id * 10, at, action, "", false, isMerged,
			created, mergedAt, nil, at, int64(1), int64(1), int64(1), int64(1), ""})
	}
	queue(1, 1, "Open-Sauced/App", 7, "x", created, "opened", false, nil)
	queue(2, 1, "open-sauced/app", 7, "x", merged, "closed", true, &merged)
	queue(3, 2, "open-sauced/app", 7, "alum", old, "opened", false, nil)
	queue(4, 9, "other/repo", 8, "y", merged, "opened", false, nil)

	err = st.PG.Tx(ctx, func(q store.RowQuerier) error {
		for _, args := range seed {
			if _, err := q.Exec(ctx, insertEvent, args...); err != nil {
				return err
			}
		}
		_, err := q.Exec(ctx, `INSERT INTO repos (id, full_name, topics) VALUES (7, 'open-sauced/app', '{javascript}'), (8, 'other/repo', '{go}')`)
		return err
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	eng := engine.New(NewPG(st.PG),
		engine.WithRepoSearch(search.NewRepos(st.PG)),
		engine.WithListMembership(search.NewLists(st.PG)),
		engine.WithClock(func() time.Time { return time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC) }),
	)
	p := window.Params{RangeDays: 30}

	v, err := eng.Velocity(ctx, filter.Criteria{Repos: []string{"open-sauced/app"}}, p)
	if err != nil || v != 3 {
		t.Fatalf("Velocity = %d, %v want 3", v, err)
	}

	bs, err := eng.Histogram(ctx, filter.Criteria{Topic: "javascript"}, p, aggregate.HistogramOptions{WidthDays: 1})
	if err != nil || len(bs) != 1 || bs[0].Accepted != 1 {
		t.Fatalf("Histogram = %+v, %v", bs, err)
	}

	list, err := eng.ListPullRequestState(ctx, filter.Criteria{}, p, engine.Order{}, page.Request{Skip: 1000, Limit: 10})
	if err != nil || list.ItemCount() != 2 || len(list.Items) != 0 {
		t.Fatalf("List = %+v, %v", list, err)
	}

	alumni, err := eng.ClassifyContributors(ctx, filter.Criteria{RepoIDs: []int64{7}}, p, cohort.Alumni, page.Request{Limit: 10})
	if err != nil || len(alumni.Items) != 1 || alumni.Items[0].AuthorLogin != "alum" {
		t.Fatalf("Alumni = %+v, %v", alumni, err)
	}
}

// Package ch provides a clickhouse client over clickhouse-go
package ch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
)

// Config configures the clickhouse client
type Config struct {
	URL string
	// Role and Tag are reported to the server as client info
	Role string
	Tag  string

	MaxOpenConns int
	DialTimeout  time.Duration
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// conn is the part of driver.Conn the client uses
type conn interface {
	Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
	PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
	Ping(ctx context.Context) error
	Close() error
}

// CH is a clickhouse client
type CH struct {
	conn conn
}

var dial = func(opt *clickhouse.Options) (conn, error) { return clickhouse.Open(opt) }

// Open parses cfg.URL, dials and pings the server
func Open(ctx context.Context, cfg Config) (*CH, error) {
	if cfg.URL == "" {
		return nil, errors.New("ch: empty url")
	}
	opt, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	opt.ClientInfo = BuildClientInfo(cfg.Role, cfg.Tag)
	if cfg.MaxOpenConns > 0 {
		opt.MaxOpenConns = cfg.MaxOpenConns
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}

	c, err := dial(opt)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ch: ping: %w", err)
	}
	return &CH{conn: c}, nil
}

// withQueryID tags ctx with a fresh query id so server logs can be correlated
func withQueryID(ctx context.Context) context.Context {
	return clickhouse.Context(ctx, clickhouse.WithQueryID(uuid.NewString()))
}

// Query runs a query with bound positional args
func (c *CH) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	r, err := c.conn.Query(withQueryID(ctx), query, args...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Insert appends rows to table in one batch, each row in table column order
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	b, err := c.conn.PrepareBatch(withQueryID(ctx), "INSERT INTO "+table)
	if err != nil {
		return fmt.Errorf("ch: prepare batch %s: %w", table, err)
	}
	for i, r := range rows {
		if err := b.Append(r...); err != nil {
			_ = b.Abort()
			return fmt.Errorf("ch: append row %d: %w", i, err)
		}
	}
	return b.Send()
}

// Ping verifies connectivity
func (c *CH) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

// Close closes the connection pool
func (c *CH) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

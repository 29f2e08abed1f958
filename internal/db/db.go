package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Driver names accepted by Open. "postgres" is lib/pq, "pgx" is pgx's
// database/sql adapter.
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Options struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	PingTimeout  time.Duration
}

// Open opens and pings the entity store.
func Open(ctx context.Context, opt Options) (*sql.DB, error) {
	if opt.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}
	switch opt.Driver {
	case "":
		opt.Driver = DriverPostgres
	case DriverPostgres, DriverPgx:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opt.Driver)
	}
	if opt.PingTimeout == 0 {
		opt.PingTimeout = 3 * time.Second
	}

	conn, err := sql.Open(opt.Driver, opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if opt.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(opt.MaxOpenConns)
	}
	if opt.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(opt.MaxIdleConns)
	}
	conn.SetConnMaxIdleTime(5 * time.Minute)

	// Fail fast
	pingCtx, cancel := context.WithTimeout(ctx, opt.PingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return conn, nil
}

package bootstrap

import (
	"context"
	"database/sql"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/db"
)

// OpenDB opens the entity store described by cfg and verifies it answers.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	return db.Open(ctx, db.Options{
		Driver:       cfg.Driver,
		DSN:          cfg.ConnString(),
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		PingTimeout:  2 * time.Second,
	})
}

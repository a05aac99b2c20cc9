package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"bike-train-finder/config"
)

const (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// Connect opens the PostgreSQL connection pool and waits for the database to
// answer, retrying while it starts up
func Connect(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	for i := 0; i < maxRetries; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			log.Infow("connected to database", "host", cfg.DBHost, "database", cfg.DBName)
			return db, nil
		}
		log.Warnw("failed to connect to database", "attempt", i+1, "max_attempts", maxRetries, "error", err)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

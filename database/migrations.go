package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// schema mirrors the tables the data loading tooling fills. Every statement
// is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS stations (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL UNIQUE,
		city TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		id SERIAL PRIMARY KEY,
		train_number TEXT NOT NULL UNIQUE,
		train_type TEXT NOT NULL,
		has_bicycle_space BOOLEAN NOT NULL DEFAULT FALSE,
		bicycle_spaces_available INTEGER NOT NULL DEFAULT 0 CHECK (bicycle_spaces_available >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS journeys (
		id SERIAL PRIMARY KEY,
		train_id INTEGER NOT NULL REFERENCES trains(id),
		origin_station_id INTEGER NOT NULL REFERENCES stations(id),
		destination_station_id INTEGER NOT NULL REFERENCES stations(id),
		departure_time TIMESTAMPTZ NOT NULL,
		arrival_time TIMESTAMPTZ NOT NULL,
		duration_minutes INTEGER NOT NULL,
		price_cents INTEGER NOT NULL CHECK (price_cents >= 0),
		bicycle_reservation_required BOOLEAN NOT NULL DEFAULT FALSE,
		bicycle_price_cents INTEGER NOT NULL DEFAULT 0 CHECK (bicycle_price_cents >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (origin_station_id <> destination_station_id),
		CHECK (arrival_time >= departure_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stations_city ON stations(city)`,
	`CREATE INDEX IF NOT EXISTS idx_journeys_route_departure
		ON journeys(origin_station_id, destination_station_id, departure_time)`,
}

// RunMigrations ensures all required tables exist
func RunMigrations(ctx context.Context, db *sqlx.DB, log *zap.SugaredLogger) error {
	log.Info("checking database schema")

	var exists bool
	err := db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'journeys'
		)
	`)
	if err != nil {
		return fmt.Errorf("checking schema: %w", err)
	}
	if exists {
		log.Info("database schema already exists, skipping migrations")
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema: %w", err)
	}

	log.Infow("database schema created", "statements", len(schema))
	return nil
}

package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"bike-train-finder/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// JourneyRepository reads stations and journeys from Postgres
type JourneyRepository struct {
	db *sqlx.DB
}

func NewJourneyRepository(db *sqlx.DB) *JourneyRepository {
	return &JourneyRepository{db: db}
}

// FindStationsByCity returns every station whose city matches exactly
func (r *JourneyRepository) FindStationsByCity(ctx context.Context, city string) ([]models.Station, error) {
	query, args, err := stationsByCityQuery(city).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building station query: %w", err)
	}

	stations := []models.Station{}
	if err := r.db.SelectContext(ctx, &stations, query, args...); err != nil {
		return nil, fmt.Errorf("querying stations for %q: %w", city, err)
	}
	return stations, nil
}

// ListStations returns all stations ordered by name
func (r *JourneyRepository) ListStations(ctx context.Context) ([]models.Station, error) {
	query, args, err := stationColumns().OrderBy("name", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building station query: %w", err)
	}

	stations := []models.Station{}
	if err := r.db.SelectContext(ctx, &stations, query, args...); err != nil {
		return nil, fmt.Errorf("querying stations: %w", err)
	}
	return stations, nil
}

// FindJourneys returns the journeys matching the filter, joined with their
// train and both endpoint stations in a single query
func (r *JourneyRepository) FindJourneys(ctx context.Context, filter models.JourneyFilter) ([]models.JourneyWithDetails, error) {
	query, args, err := journeysQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building journey query: %w", err)
	}

	journeys := []models.JourneyWithDetails{}
	if err := r.db.SelectContext(ctx, &journeys, query, args...); err != nil {
		return nil, fmt.Errorf("querying journeys: %w", err)
	}
	return journeys, nil
}

func stationColumns() sq.SelectBuilder {
	return psql.Select("id", "name", "code", "city", "created_at").From("stations")
}

func stationsByCityQuery(city string) sq.SelectBuilder {
	return stationColumns().
		Where(sq.Eq{"city": city}).
		OrderBy("id")
}

func journeysQuery(filter models.JourneyFilter) sq.SelectBuilder {
	q := psql.Select(
		"j.id",
		"t.train_number",
		"t.train_type",
		"o.name AS origin_station_name",
		"d.name AS destination_station_name",
		"j.departure_time",
		"j.arrival_time",
		"j.duration_minutes",
		"j.price_cents",
		"t.has_bicycle_space",
		"t.bicycle_spaces_available",
		"j.bicycle_reservation_required",
		"j.bicycle_price_cents",
	).
		From("journeys j").
		Join("trains t ON j.train_id = t.id").
		Join("stations o ON j.origin_station_id = o.id").
		Join("stations d ON j.destination_station_id = d.id").
		Where(sq.Eq{"j.origin_station_id": filter.OriginStationIDs}).
		Where(sq.Eq{"j.destination_station_id": filter.DestinationStationIDs}).
		Where(sq.GtOrEq{"j.departure_time": filter.DepartureFrom})

	if filter.Inclusive {
		q = q.Where(sq.LtOrEq{"j.departure_time": filter.DepartureTo})
	} else {
		q = q.Where(sq.Lt{"j.departure_time": filter.DepartureTo})
	}

	return q.OrderBy("j.departure_time", "j.id")
}

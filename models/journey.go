package models

import (
	"fmt"
	"time"
)

// Journey represents one scheduled train run between two stations
type Journey struct {
	ID                         int       `json:"id" db:"id"`
	TrainID                    int       `json:"train_id" db:"train_id"`
	OriginStationID            int       `json:"origin_station_id" db:"origin_station_id"`
	DestinationStationID       int       `json:"destination_station_id" db:"destination_station_id"`
	DepartureTime              time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime                time.Time `json:"arrival_time" db:"arrival_time"`
	DurationMinutes            int       `json:"duration_minutes" db:"duration_minutes"`
	PriceCents                 int       `json:"price_cents" db:"price_cents"`
	BicycleReservationRequired bool      `json:"bicycle_reservation_required" db:"bicycle_reservation_required"`
	BicyclePriceCents          int       `json:"bicycle_price_cents" db:"bicycle_price_cents"`
	CreatedAt                  time.Time `json:"created_at" db:"created_at"`
}

// JourneyWithDetails is a journey flattened with its train's bicycle
// attributes and both endpoint station names
type JourneyWithDetails struct {
	ID                         int       `json:"id" db:"id"`
	TrainNumber                string    `json:"train_number" db:"train_number"`
	TrainType                  string    `json:"train_type" db:"train_type"`
	OriginStationName          string    `json:"origin_station_name" db:"origin_station_name"`
	DestinationStationName     string    `json:"destination_station_name" db:"destination_station_name"`
	DepartureTime              time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime                time.Time `json:"arrival_time" db:"arrival_time"`
	DurationMinutes            int       `json:"duration_minutes" db:"duration_minutes"`
	PriceCents                 int       `json:"price_cents" db:"price_cents"`
	HasBicycleSpace            bool      `json:"has_bicycle_space" db:"has_bicycle_space"`
	BicycleSpacesAvailable     int       `json:"bicycle_spaces_available" db:"bicycle_spaces_available"`
	BicycleReservationRequired bool      `json:"bicycle_reservation_required" db:"bicycle_reservation_required"`
	BicyclePriceCents          int       `json:"bicycle_price_cents" db:"bicycle_price_cents"`
}

// CheckBicycleIntegrity reports journeys whose train has no bicycle space
// but still advertises bicycle spaces or a bicycle price. The journey is not
// modified.
func (j JourneyWithDetails) CheckBicycleIntegrity() error {
	if j.HasBicycleSpace {
		if j.BicycleSpacesAvailable < 0 {
			return fmt.Errorf("journey %d: negative bicycle spaces (%d)", j.ID, j.BicycleSpacesAvailable)
		}
		return nil
	}
	if j.BicycleSpacesAvailable != 0 || j.BicyclePriceCents != 0 {
		return fmt.Errorf("journey %d: train %s has no bicycle space but reports %d spaces at %d cents",
			j.ID, j.TrainNumber, j.BicycleSpacesAvailable, j.BicyclePriceCents)
	}
	return nil
}

// FormatPrice renders an amount in cents as euros, e.g. 2990 -> "€29.90"
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s€%d.%02d", sign, cents/100, cents%100)
}

// FormatDuration renders minutes the way the search results show them
func FormatDuration(minutes int) string {
	hours := minutes / 60
	rest := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", rest)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}

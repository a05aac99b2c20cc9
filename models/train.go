package models

import "time"

// Train represents a train and its bicycle carriage
type Train struct {
	ID                     int       `json:"id" db:"id"`
	TrainNumber            string    `json:"train_number" db:"train_number"`
	TrainType              string    `json:"train_type" db:"train_type"` // ICE, IC, RE, etc.
	HasBicycleSpace        bool      `json:"has_bicycle_space" db:"has_bicycle_space"`
	BicycleSpacesAvailable int       `json:"bicycle_spaces_available" db:"bicycle_spaces_available"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
}

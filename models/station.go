package models

import "time"

// Station represents a train station. City is matched exactly when searching.
type Station struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	City      string    `json:"city" db:"city"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StationIDs returns the ids of the given stations in order
func StationIDs(stations []Station) []int {
	ids := make([]int, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, s.ID)
	}
	return ids
}

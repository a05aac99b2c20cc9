package services

import (
	"context"
	"fmt"

	"bike-train-finder/models"
)

// StationLister lists every known station
type StationLister interface {
	ListStations(ctx context.Context) ([]models.Station, error)
}

// StationService serves the station list used for autocomplete
type StationService struct {
	lister StationLister
}

func NewStationService(lister StationLister) *StationService {
	return &StationService{lister: lister}
}

// GetAllStations returns all stations ordered by name, never nil
func (s *StationService) GetAllStations(ctx context.Context) ([]models.Station, error) {
	stations, err := s.lister.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stations: %w", err)
	}
	if stations == nil {
		stations = []models.Station{}
	}
	return stations, nil
}

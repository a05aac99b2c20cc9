package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"bike-train-finder/models"
)

// fakeCatalog is an in-memory timetable joining journeys, trains and stations
// the way the Postgres repository does
type fakeCatalog struct {
	mu       sync.Mutex
	stations []models.Station
	trains   []models.Train
	journeys []models.Journey

	stationErr error
	journeyErr error

	stationCalls int
	journeyCalls int
	filters      []models.JourneyFilter
}

func (c *fakeCatalog) addStation(id int, name, code, city string) {
	c.stations = append(c.stations, models.Station{ID: id, Name: name, Code: code, City: city})
}

func (c *fakeCatalog) addTrain(id int, number, trainType string, bikeSpace bool, spaces int) {
	c.trains = append(c.trains, models.Train{
		ID: id, TrainNumber: number, TrainType: trainType,
		HasBicycleSpace: bikeSpace, BicycleSpacesAvailable: spaces,
	})
}

func (c *fakeCatalog) addJourney(j models.Journey) {
	if j.ID == 0 {
		j.ID = len(c.journeys) + 1
	}
	c.journeys = append(c.journeys, j)
}

func (c *fakeCatalog) FindStationsByCity(ctx context.Context, city string) ([]models.Station, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stationCalls++

	if c.stationErr != nil {
		return nil, c.stationErr
	}

	var out []models.Station
	for _, s := range c.stations {
		if s.City == city {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *fakeCatalog) FindJourneys(ctx context.Context, filter models.JourneyFilter) ([]models.JourneyWithDetails, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.journeyCalls++
	c.filters = append(c.filters, filter)

	if c.journeyErr != nil {
		return nil, c.journeyErr
	}

	var out []models.JourneyWithDetails
	for _, j := range c.journeys {
		if !slices.Contains(filter.OriginStationIDs, j.OriginStationID) ||
			!slices.Contains(filter.DestinationStationIDs, j.DestinationStationID) {
			continue
		}
		if j.DepartureTime.Before(filter.DepartureFrom) {
			continue
		}
		if filter.Inclusive && j.DepartureTime.After(filter.DepartureTo) {
			continue
		}
		if !filter.Inclusive && !j.DepartureTime.Before(filter.DepartureTo) {
			continue
		}
		out = append(out, c.details(j))
	}
	return out, nil
}

func (c *fakeCatalog) ListStations(ctx context.Context) ([]models.Station, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stationErr != nil {
		return nil, c.stationErr
	}
	return slices.Clone(c.stations), nil
}

func (c *fakeCatalog) details(j models.Journey) models.JourneyWithDetails {
	d := models.JourneyWithDetails{
		ID:                         j.ID,
		DepartureTime:              j.DepartureTime,
		ArrivalTime:                j.ArrivalTime,
		DurationMinutes:            j.DurationMinutes,
		PriceCents:                 j.PriceCents,
		BicycleReservationRequired: j.BicycleReservationRequired,
		BicyclePriceCents:          j.BicyclePriceCents,
	}
	for _, t := range c.trains {
		if t.ID == j.TrainID {
			d.TrainNumber = t.TrainNumber
			d.TrainType = t.TrainType
			d.HasBicycleSpace = t.HasBicycleSpace
			d.BicycleSpacesAvailable = t.BicycleSpacesAvailable
		}
	}
	for _, s := range c.stations {
		if s.ID == j.OriginStationID {
			d.OriginStationName = s.Name
		}
		if s.ID == j.DestinationStationID {
			d.DestinationStationName = s.Name
		}
	}
	return d
}

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(err)
	}
	return t
}

// erfurtLeipzig seeds the two-station network used by most tests
func erfurtLeipzig() *fakeCatalog {
	c := &fakeCatalog{}
	c.addStation(1, "Erfurt Hauptbahnhof", "EF", "Erfurt")
	c.addStation(2, "Leipzig Hauptbahnhof", "LE", "Leipzig")
	return c
}

func journey(train, origin, destination int, departure, arrival string, minutes, price int) models.Journey {
	return models.Journey{
		TrainID:              train,
		OriginStationID:      origin,
		DestinationStationID: destination,
		DepartureTime:        at(departure),
		ArrivalTime:          at(arrival),
		DurationMinutes:      minutes,
		PriceCents:           price,
	}
}

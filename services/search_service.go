package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"bike-train-finder/models"
)

// JourneyCatalog is the read-only timetable the searches run against
type JourneyCatalog interface {
	FindStationsByCity(ctx context.Context, city string) ([]models.Station, error)
	FindJourneys(ctx context.Context, filter models.JourneyFilter) ([]models.JourneyWithDetails, error)
}

// Defaults fill in search criteria the caller left out
type Defaults struct {
	OriginCity       string
	DestinationCity  string
	ReturnDelayHours int
}

// SearchService answers round trip and single route searches
type SearchService struct {
	catalog  JourneyCatalog
	defaults Defaults
	logger   *zap.SugaredLogger
}

// NewSearchService creates a search service over the given catalog
func NewSearchService(catalog JourneyCatalog, defaults Defaults, logger *zap.SugaredLogger) *SearchService {
	return &SearchService{
		catalog:  catalog,
		defaults: defaults,
		logger:   logger,
	}
}

// SearchRoundTrip finds outbound journeys for the route on the given day and
// return journeys on the reverse route departing no earlier than the start of
// that day plus the return delay.
func (s *SearchService) SearchRoundTrip(ctx context.Context, input models.RoundTripSearchInput) (*models.RoundTripResult, error) {
	originCity, destinationCity, err := s.cities(input.OriginCity, input.DestinationCity)
	if err != nil {
		return nil, err
	}

	delay := s.defaults.ReturnDelayHours
	if input.ReturnDelayHours != nil {
		delay = *input.ReturnDelayHours
	}
	if delay < 1 {
		return nil, invalidInput("return_delay_hours must be a positive integer, got %d", delay)
	}

	dayStart, dayEnd, err := DayWindow(input.DepartureDate)
	if err != nil {
		return nil, err
	}

	result := &models.RoundTripResult{
		OutboundJourneys: []models.JourneyWithDetails{},
		ReturnJourneys:   []models.JourneyWithDetails{},
		SearchDate:       input.DepartureDate,
		OriginCity:       originCity,
		DestinationCity:  destinationCity,
	}

	originStations, destinationStations, err := s.resolveCities(ctx, originCity, destinationCity)
	if err != nil {
		s.logger.Errorw("round trip search failed", "error", err, "origin", originCity, "destination", destinationCity)
		return nil, searchFailed(err)
	}
	if len(originStations) == 0 || len(destinationStations) == 0 {
		s.logger.Infow("no stations for route",
			"origin", originCity, "origin_stations", len(originStations),
			"destination", destinationCity, "destination_stations", len(destinationStations))
		return result, nil
	}

	originIDs := models.StationIDs(originStations)
	destinationIDs := models.StationIDs(destinationStations)
	returnStart := ReturnWindowStart(dayStart, delay)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		journeys, err := s.findJourneys(ctx, models.JourneyFilter{
			OriginStationIDs:      originIDs,
			DestinationStationIDs: destinationIDs,
			DepartureFrom:         dayStart,
			DepartureTo:           dayEnd,
			Inclusive:             true,
		})
		if err != nil {
			return fmt.Errorf("outbound journeys: %w", err)
		}
		result.OutboundJourneys = journeys
		return nil
	})
	// A delay reaching past the end of the day leaves nothing to look up
	if !returnStart.After(dayEnd) {
		p.Go(func(ctx context.Context) error {
			journeys, err := s.findJourneys(ctx, models.JourneyFilter{
				OriginStationIDs:      destinationIDs,
				DestinationStationIDs: originIDs,
				DepartureFrom:         returnStart,
				DepartureTo:           dayEnd,
				Inclusive:             true,
			})
			if err != nil {
				return fmt.Errorf("return journeys: %w", err)
			}
			result.ReturnJourneys = journeys
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		s.logger.Errorw("round trip search failed", "error", err, "origin", originCity, "destination", destinationCity)
		return nil, searchFailed(err)
	}

	s.logger.Infow("round trip search",
		"date", input.DepartureDate,
		"origin", originCity,
		"destination", destinationCity,
		"return_delay_hours", delay,
		"outbound", len(result.OutboundJourneys),
		"return", len(result.ReturnJourneys))

	return result, nil
}

// JourneysForRoute lists the journeys from originCity to destinationCity
// departing on the given day
func (s *SearchService) JourneysForRoute(ctx context.Context, originCity, destinationCity, date string) ([]models.JourneyWithDetails, error) {
	originCity, destinationCity, err := s.cities(originCity, destinationCity)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd, err := DayWindow(date)
	if err != nil {
		return nil, err
	}

	originStations, destinationStations, err := s.resolveCities(ctx, originCity, destinationCity)
	if err != nil {
		s.logger.Errorw("route lookup failed", "error", err, "origin", originCity, "destination", destinationCity)
		return nil, searchFailed(err)
	}
	if len(originStations) == 0 || len(destinationStations) == 0 {
		return []models.JourneyWithDetails{}, nil
	}

	journeys, err := s.findJourneys(ctx, models.JourneyFilter{
		OriginStationIDs:      models.StationIDs(originStations),
		DestinationStationIDs: models.StationIDs(destinationStations),
		DepartureFrom:         dayStart,
		DepartureTo:           dayEnd,
		Inclusive:             true,
	})
	if err != nil {
		s.logger.Errorw("route lookup failed", "error", err, "origin", originCity, "destination", destinationCity)
		return nil, searchFailed(err)
	}

	s.logger.Debugw("route lookup", "date", date, "origin", originCity, "destination", destinationCity, "journeys", len(journeys))

	return journeys, nil
}

func (s *SearchService) cities(origin, destination string) (string, string, error) {
	if origin == "" {
		origin = s.defaults.OriginCity
	}
	if destination == "" {
		destination = s.defaults.DestinationCity
	}
	if origin == "" {
		return "", "", invalidInput("origin_city must not be empty")
	}
	if destination == "" {
		return "", "", invalidInput("destination_city must not be empty")
	}
	return origin, destination, nil
}

// resolveCities looks up the stations of both cities concurrently
func (s *SearchService) resolveCities(ctx context.Context, originCity, destinationCity string) ([]models.Station, []models.Station, error) {
	var originStations, destinationStations []models.Station

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		stations, err := s.catalog.FindStationsByCity(ctx, originCity)
		if err != nil {
			return fmt.Errorf("stations for %q: %w", originCity, err)
		}
		originStations = stations
		return nil
	})
	p.Go(func(ctx context.Context) error {
		stations, err := s.catalog.FindStationsByCity(ctx, destinationCity)
		if err != nil {
			return fmt.Errorf("stations for %q: %w", destinationCity, err)
		}
		destinationStations = stations
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return originStations, destinationStations, nil
}

// findJourneys queries the catalog and puts the rows in departure order
func (s *SearchService) findJourneys(ctx context.Context, filter models.JourneyFilter) ([]models.JourneyWithDetails, error) {
	journeys, err := s.catalog.FindJourneys(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]models.JourneyWithDetails, 0, len(journeys))
	for _, j := range journeys {
		j.DepartureTime = j.DepartureTime.UTC()
		j.ArrivalTime = j.ArrivalTime.UTC()
		if err := j.CheckBicycleIntegrity(); err != nil {
			s.logger.Warnw("inconsistent bicycle data", "journey_id", j.ID, "error", err)
		}
		out = append(out, j)
	}

	slices.SortStableFunc(out, func(a, b models.JourneyWithDetails) int {
		if c := a.DepartureTime.Compare(b.DepartureTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}


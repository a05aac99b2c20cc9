package models

import "time"

// RoundTripSearchInput represents a round trip search query. Empty cities and
// a nil delay are replaced by the configured defaults.
type RoundTripSearchInput struct {
	DepartureDate    string `json:"departure_date" form:"departure_date" binding:"required,isodate"`
	OriginCity       string `json:"origin_city" form:"origin_city"`
	DestinationCity  string `json:"destination_city" form:"destination_city"`
	ReturnDelayHours *int   `json:"return_delay_hours" form:"return_delay_hours" binding:"omitempty,gt=0"`
}

// RouteSearchInput represents a one-way lookup for a route and date
type RouteSearchInput struct {
	DepartureDate   string `json:"departure_date" form:"departure_date" binding:"required,isodate"`
	OriginCity      string `json:"origin_city" form:"origin_city"`
	DestinationCity string `json:"destination_city" form:"destination_city"`
}

// RoundTripResult holds the outbound and return journeys of one search
type RoundTripResult struct {
	OutboundJourneys []JourneyWithDetails `json:"outbound_journeys"`
	ReturnJourneys   []JourneyWithDetails `json:"return_journeys"`
	SearchDate       string               `json:"search_date"`
	OriginCity       string               `json:"origin_city"`
	DestinationCity  string               `json:"destination_city"`
}

// JourneyFilter selects journeys by endpoint stations and a departure window.
// DepartureTo is inclusive when Inclusive is set.
type JourneyFilter struct {
	OriginStationIDs      []int
	DestinationStationIDs []int
	DepartureFrom         time.Time
	DepartureTo           time.Time
	Inclusive             bool
}

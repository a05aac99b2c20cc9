package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bike-train-finder/models"
)

// GetStations returns all available stations
func (h *Handler) GetStations(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	stations, err := h.stations.GetAllStations(ctx)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve stations")
		return
	}

	c.JSON(http.StatusOK, stations)
}

// SearchRoundTrip searches outbound and return journeys. The criteria come
// from the JSON body on POST and from the query string on GET.
func (h *Handler) SearchRoundTrip(c *gin.Context) {
	var req models.RoundTripSearchInput

	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		bindingError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.search.SearchRoundTrip(ctx, req)
	if err != nil {
		h.respondError(c, err, "Round trip search failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetJourneysByRoute returns the journeys for one direction of a route
func (h *Handler) GetJourneysByRoute(c *gin.Context) {
	var req models.RouteSearchInput

	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	journeys, err := h.search.JourneysForRoute(ctx, req.OriginCity, req.DestinationCity, req.DepartureDate)
	if err != nil {
		h.respondError(c, err, "Failed to fetch journeys by route")
		return
	}

	c.JSON(http.StatusOK, journeys)
}

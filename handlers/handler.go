package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bike-train-finder/services"
)

// Handler serves the search API
type Handler struct {
	search   *services.SearchService
	stations *services.StationService
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

// New creates a handler. A zero timeout leaves searches bounded only by the
// request context.
func New(search *services.SearchService, stations *services.StationService, timeout time.Duration, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		search:   search,
		stations: stations,
		timeout:  timeout,
		logger:   logger,
	}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// respondError maps service errors to HTTP statuses
func (h *Handler) respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Errorw(message, "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": message, "message": "the timetable did not answer in time"})
	default:
		h.logger.Errorw(message, "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
}

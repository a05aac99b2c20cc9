package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bike-train-finder/middleware"
	"bike-train-finder/services"
)

// RegisterValidators adds the isodate tag to gin's validator
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return services.IsISODate(fl.Field().String())
		})
	}
}

// SetupRouter wires the API routes. Extra middleware such as rate limiting
// runs before the /api handlers.
func SetupRouter(h *Handler, apiMiddleware ...gin.HandlerFunc) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(h.logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api", apiMiddleware...)
	{
		api.GET("/stations", h.GetStations)

		api.GET("/search/round-trip", h.SearchRoundTrip)
		api.POST("/search/round-trip", h.SearchRoundTrip)

		api.GET("/journeys", h.GetJourneysByRoute)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

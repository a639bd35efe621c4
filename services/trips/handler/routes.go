package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/trips/handler/http"
)

// Handler coordinates the HTTP handlers of the trip service
type Handler struct {
	tripHandler *http.TripHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(tripHandler *http.TripHandler) *Handler {
	return &Handler{
		tripHandler: tripHandler,
	}
}

// RegisterRoutes registers the trip and driver stats routes behind session
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	driverOnly := middleware.RequireApp(models.AppDriver)

	tripGroup := e.Group("/trips", session, middleware.ValidateIDParams("id"))
	tripGroup.POST("", h.tripHandler.CreateTrip, driverOnly)
	tripGroup.GET("", h.tripHandler.BrowseTrips)
	tripGroup.GET("/mine", h.tripHandler.ListMyTrips, driverOnly)
	tripGroup.GET("/:id", h.tripHandler.GetTripDetail)
	tripGroup.POST("/:id/complete", h.tripHandler.CompleteTrip, driverOnly)
	tripGroup.POST("/:id/cancel", h.tripHandler.CancelTrip, driverOnly)
	tripGroup.DELETE("/:id", h.tripHandler.DeleteTrip, driverOnly)

	e.GET("/drivers/stats", h.tripHandler.GetDriverStats, session, driverOnly)
}

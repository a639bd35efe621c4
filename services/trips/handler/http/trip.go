package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
	"github.com/piresc/tumpang/services/trips"
)

// TripHandler handles trip and driver stats requests
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// CreateTrip posts a new trip for the calling driver
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create trip")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// BrowseTrips lists bookable trips, optionally filtered by ?search=
func (h *TripHandler) BrowseTrips(c echo.Context) error {
	result, err := h.tripUC.BrowseTrips(c.Request().Context(), middleware.GetUserID(c), c.QueryParam("search"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

// ListMyTrips lists the calling driver's trips
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	result, err := h.tripUC.ListMyTrips(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

// GetTripDetail returns a trip with the caller's bid and booking on it
func (h *TripHandler) GetTripDetail(c echo.Context) error {
	detail, err := h.tripUC.GetTripDetail(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", detail)
}

func (h *TripHandler) CompleteTrip(c echo.Context) error {
	trip, err := h.tripUC.CompleteTrip(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to complete trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", trip)
}

func (h *TripHandler) CancelTrip(c echo.Context) error {
	trip, err := h.tripUC.CancelTrip(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to cancel trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", trip)
}

func (h *TripHandler) DeleteTrip(c echo.Context) error {
	if err := h.tripUC.DeleteTrip(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return utils.HandleError(c, err, "Failed to delete trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}

// GetDriverStats returns the calling driver's trip and earnings aggregates
func (h *TripHandler) GetDriverStats(c echo.Context) error {
	stats, err := h.tripUC.GetDriverStats(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve driver stats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver stats retrieved successfully", stats)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
	"github.com/piresc/tumpang/services/bookings"
)

// BookingHandler handles booking requests
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking books a trip at its listed price
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	booking, err := h.bookingUC.ConfirmBooking(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to confirm booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking confirmed successfully", booking)
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to cancel booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking canceled successfully", booking)
}

func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	result, err := h.bookingUC.ListMyBookings(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", result)
}

// ListReceivedBookings lists bookings on the caller's trips, optionally for ?trip_id= only
func (h *BookingHandler) ListReceivedBookings(c echo.Context) error {
	result, err := h.bookingUC.ListTripBookings(c.Request().Context(), middleware.GetUserID(c), c.QueryParam("trip_id"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", result)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/bookings/handler/http"
)

// Handler coordinates the HTTP handlers of the booking service
type Handler struct {
	bookingHandler *http.BookingHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(bookingHandler *http.BookingHandler) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
	}
}

// RegisterRoutes registers the booking routes behind session
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	riderOnly := middleware.RequireApp(models.AppPassenger)
	driverOnly := middleware.RequireApp(models.AppDriver)

	bookingGroup := e.Group("/bookings", session, middleware.ValidateIDParams("id"))
	bookingGroup.POST("", h.bookingHandler.CreateBooking, riderOnly)
	bookingGroup.GET("/mine", h.bookingHandler.ListMyBookings, riderOnly)
	bookingGroup.POST("/:id/cancel", h.bookingHandler.CancelBooking, riderOnly)

	bookingGroup.GET("/received", h.bookingHandler.ListReceivedBookings, driverOnly)
	bookingGroup.POST("/:id/confirm", h.bookingHandler.ConfirmBooking, driverOnly)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/bids/handler/http"
)

// Handler coordinates the HTTP handlers of the bid service
type Handler struct {
	bidHandler *http.BidHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(bidHandler *http.BidHandler) *Handler {
	return &Handler{
		bidHandler: bidHandler,
	}
}

// RegisterRoutes registers the bid routes behind session. Riders bid from the
// passenger app; drivers answer from the driver app.
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	riderOnly := middleware.RequireApp(models.AppPassenger)
	driverOnly := middleware.RequireApp(models.AppDriver)

	bidGroup := e.Group("/bids", session, middleware.ValidateIDParams("id"))
	bidGroup.POST("", h.bidHandler.PlaceBid, riderOnly)
	bidGroup.GET("/mine", h.bidHandler.ListMyBids, riderOnly)
	bidGroup.PATCH("/:id/amount", h.bidHandler.IncreaseBid, riderOnly)
	bidGroup.DELETE("/:id", h.bidHandler.WithdrawBid, riderOnly)

	bidGroup.GET("/received", h.bidHandler.ListReceivedBids, driverOnly)
	bidGroup.POST("/:id/accept", h.bidHandler.AcceptBid, driverOnly)
	bidGroup.POST("/:id/reject", h.bidHandler.RejectBid, driverOnly)
}

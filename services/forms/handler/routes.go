package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/services/forms/handler/http"
)

type Handler struct {
	formsHandler *http.FormsHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(formsHandler *http.FormsHandler) *Handler {
	return &Handler{
		formsHandler: formsHandler,
	}
}

// RegisterRoutes registers the form helpers. They hold no user data and
// need no session.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	formsGroup := e.Group("/forms")
	formsGroup.POST("/trip/validate", h.formsHandler.ValidateTripForm)
	formsGroup.POST("/card/format", h.formsHandler.FormatCard)
}

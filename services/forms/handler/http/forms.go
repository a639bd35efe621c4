package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

// FormsHandler exposes the client-side form checks so every app validates
// and formats input the same way
type FormsHandler struct{}

func NewFormsHandler() *FormsHandler {
	return &FormsHandler{}
}

// ValidateTripForm returns per-field errors for a raw trip form
func (h *FormsHandler) ValidateTripForm(c echo.Context) error {
	var req models.TripFormRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	errs := utils.TripFormErrors(req.Price, req.Seats, req.TripDate, req.TripTime)
	result := models.FormValidationResult{Valid: len(errs) == 0}
	if !result.Valid {
		result.Errors = errs
	}

	return utils.SuccessResponse(c, http.StatusOK, "Form validated", result)
}

// FormatCard returns the display form of a card number and expiry
func (h *FormsHandler) FormatCard(c echo.Context) error {
	var req models.CardFormatRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Card formatted", models.CardFormatResponse{
		CardNumber: utils.FormatCardNumber(req.CardNumber),
		Expiry:     utils.FormatExpiry(req.Expiry),
	})
}

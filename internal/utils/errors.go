package utils

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/database"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// HandleError maps domain errors onto HTTP responses. Anything unrecognised
// is logged and answered with a generic 500.
func HandleError(c echo.Context, err error, message string) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return ValidationErrorResponse(c, vErr.Fields)
	case errors.Is(err, models.ErrInvalidInput):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		return UnauthorizedResponse(c, err.Error())
	case errors.Is(err, models.ErrDriverProfileRequired):
		return ForbiddenResponse(c, models.ErrDriverProfileRequired.Error())
	case errors.Is(err, models.ErrForbidden):
		return ForbiddenResponse(c, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrConflict):
		return ConflictResponse(c, err.Error())
	case database.IsInvalidTextRepresentation(err):
		return BadRequestResponse(c, "Malformed value in request")
	}

	logger.Error(message,
		logger.String("method", c.Request().Method),
		logger.String("path", c.Path()),
		logger.ErrorField(err))
	return InternalServerErrorResponse(c, message)
}

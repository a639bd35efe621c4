package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/utils"
)

// ValidateIDParams answers 404 when a named path parameter is present but is
// not a UUID, so malformed ids never reach a uuid column
func ValidateIDParams(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, name := range names {
				if v := c.Param(name); v != "" && !utils.IsValidID(v) {
					return utils.NotFoundResponse(c, "")
				}
			}
			return next(c)
		}
	}
}

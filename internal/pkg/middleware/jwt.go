package middleware

import (
	"context"
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/constants"
	jwtpkg "github.com/piresc/tumpang/internal/pkg/jwt"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

var errTokenRevoked = errors.New("token has been revoked")

// RevocationChecker reports whether a session token id was signed out
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionMiddleware authenticates requests with a bearer token (or a
// ?token= query parameter for websocket upgrades) and stores the claims on
// the echo context
func SessionMiddleware(config models.JWTConfig, revocations RevocationChecker) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ,query:token",
		ContextKey:  constants.CtxClaims,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := jwtpkg.ParseClaims(auth, config.Secret)
			if err != nil {
				return nil, err
			}

			if revocations != nil && claims.TokenID != "" {
				revoked, err := revocations.IsTokenRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					logger.Warn("Failed to check token revocation",
						logger.String("user_id", claims.UserID),
						logger.ErrorField(err))
					return nil, err
				}
				if revoked {
					return nil, errTokenRevoked
				}
			}

			return claims, nil
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(constants.CtxClaims).(*models.TokenClaims)
			if !ok {
				return
			}
			c.Set(constants.CtxUserID, claims.UserID)
			c.Set(constants.CtxUserRole, claims.Role)
			c.Set(constants.CtxApp, claims.App)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, errTokenRevoked) {
				return utils.UnauthorizedResponse(c, "Session has been signed out")
			}
			return utils.UnauthorizedResponse(c, "Invalid or expired session")
		},
	})
}

// RequireApp rejects sessions that were not issued for app
func RequireApp(app models.App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return utils.UnauthorizedResponse(c, "")
			}
			if claims.App != app {
				return utils.ForbiddenResponse(c, "This action is only available in the "+string(app)+" app")
			}
			return next(c)
		}
	}
}

// GetClaims returns the session claims set by SessionMiddleware
func GetClaims(c echo.Context) *models.TokenClaims {
	claims, _ := c.Get(constants.CtxClaims).(*models.TokenClaims)
	return claims
}

// GetUserID returns the authenticated user id, or "" when unauthenticated
func GetUserID(c echo.Context) string {
	userID, _ := c.Get(constants.CtxUserID).(string)
	return userID
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/services/users/handler/http"
)

// Handler coordinates the HTTP handlers of the user service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
	}
}

// RegisterRoutes registers the auth, profile and driver profile routes.
// session authenticates the protected routes.
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.SignUp)
	authGroup.POST("/signin", h.authHandler.SignIn)
	authGroup.GET("/oauth/callback", h.authHandler.OAuthCallback)
	authGroup.GET("/oauth/:provider", h.authHandler.OAuthRedirect)

	// Protected routes
	authGroup.POST("/signout", h.authHandler.SignOut, session)
	authGroup.GET("/session", h.authHandler.GetSession, session)

	profileGroup := e.Group("/profiles", session)
	profileGroup.GET("/me", h.userHandler.GetProfile)
	profileGroup.PUT("/me", h.userHandler.UpdateProfile)
	profileGroup.POST("/me/avatar", h.userHandler.UploadAvatar)

	driverGroup := e.Group("/drivers", session)
	driverGroup.POST("/profile", h.userHandler.RegisterDriver)
	driverGroup.GET("/profile", h.userHandler.GetDriverProfile)
	driverGroup.PUT("/profile", h.userHandler.UpdateDriverProfile)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
	"github.com/piresc/tumpang/services/users"
)

// AuthHandler handles sign up, sign in and session requests
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// SignUp handles email account creation
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for sign up", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create account")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", resp)
}

// SignIn handles email and password sign in
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to sign in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", resp)
}

// OAuthRedirect sends the browser to the provider's consent screen
func (h *AuthHandler) OAuthRedirect(c echo.Context) error {
	authURL, err := h.userUC.OAuthRedirect(
		c.Request().Context(),
		c.Param("provider"),
		models.App(c.QueryParam("app")),
		c.QueryParam("redirect_to"),
	)
	if err != nil {
		return utils.HandleError(c, err, "Failed to start oauth sign in")
	}

	return c.Redirect(http.StatusFound, authURL)
}

// OAuthCallback completes the provider round trip
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	if providerErr := c.QueryParam("error"); providerErr != "" {
		logger.Warn("OAuth provider returned an error", logger.String("error", providerErr))
		return utils.UnauthorizedResponse(c, "Sign in was cancelled or denied")
	}

	resp, redirect, err := h.userUC.OAuthCallback(c.Request().Context(), c.QueryParam("state"), c.QueryParam("code"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to complete oauth sign in")
	}

	if redirect != "" {
		return c.Redirect(http.StatusFound, redirect)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", resp)
}

// SignOut revokes the caller's session token
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.userUC.SignOut(c.Request().Context(), middleware.GetClaims(c)); err != nil {
		return utils.HandleError(c, err, "Failed to sign out")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed out successfully", nil)
}

// GetSession describes the caller
func (h *AuthHandler) GetSession(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	session, err := h.userUC.GetSession(c.Request().Context(), claims)
	if err != nil {
		return utils.HandleError(c, err, "Failed to load session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", session)
}

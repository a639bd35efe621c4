package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
	"github.com/piresc/tumpang/services/users"
)

const maxAvatarSize = 5 << 20

// UserHandler handles profile and driver profile requests
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userUC.GetProfile(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile edits the caller's name and phone number
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.userUC.UpdateProfile(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

// UploadAvatar accepts a multipart "avatar" image. The content type is
// sniffed from the file itself.
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return utils.BadRequestResponse(c, "avatar file is required")
	}
	if file.Size > maxAvatarSize {
		return utils.BadRequestResponse(c, "avatar must be 5MB or smaller")
	}

	src, err := file.Open()
	if err != nil {
		return utils.HandleError(c, err, "Failed to read avatar")
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return utils.HandleError(c, err, "Failed to read avatar")
	}
	contentType := http.DetectContentType(head[:n])
	body := io.MultiReader(bytes.NewReader(head[:n]), src)

	profile, err := h.userUC.UploadAvatar(c.Request().Context(), middleware.GetUserID(c), contentType, body)
	if err != nil {
		return utils.HandleError(c, err, "Failed to upload avatar")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Avatar updated successfully", profile)
}

// RegisterDriver handles driver registration requests
func (h *UserHandler) RegisterDriver(c echo.Context) error {
	var req models.DriverProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.userUC.RegisterDriver(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to register driver")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", driver)
}

// GetDriverProfile returns the caller's driver profile
func (h *UserHandler) GetDriverProfile(c echo.Context) error {
	driver, err := h.userUC.GetDriverProfile(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve driver profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver profile retrieved successfully", driver)
}

// UpdateDriverProfile edits the caller's driver profile
func (h *UserHandler) UpdateDriverProfile(c echo.Context) error {
	var req models.DriverProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.userUC.UpdateDriverProfile(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update driver profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver profile updated successfully", driver)
}

package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// GetProfile retrieves a user's profile
func (uc *UserUC) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return uc.userRepo.GetProfile(ctx, userID)
}

// UpdateProfile applies the non-nil fields of req and returns the stored profile
func (uc *UserUC) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := uc.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	if req.FullName != nil {
		profile.FullName = utils.SanitizeString(*req.FullName)
		if profile.FullName == "" {
			fields["full_name"] = "is required"
		}
	}
	if req.PhoneNumber != nil {
		phone, err := utils.NormalizePhone(*req.PhoneNumber)
		if err != nil {
			fields["phone_number"] = err.Error()
		}
		profile.PhoneNumber = phone
	}
	if err := models.NewValidationError(fields); err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return uc.userRepo.GetProfile(ctx, userID)
}

// UploadAvatar stores a new avatar image and points the profile at it
func (uc *UserUC) UploadAvatar(ctx context.Context, userID, contentType string, body io.Reader) (*models.Profile, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, models.NewValidationError(map[string]string{"avatar": "must be a JPEG, PNG or WebP image"})
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.NewString(), ext)
	avatarURL, err := uc.userGW.UploadAvatar(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		return nil, err
	}

	return uc.userRepo.GetProfile(ctx, userID)
}

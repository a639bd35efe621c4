package users

import (
	"context"
	"io"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tumpang/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// sessions
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error)
	OAuthRedirect(ctx context.Context, provider string, app models.App, redirectTo string) (string, error)
	OAuthCallback(ctx context.Context, state, code string) (*models.AuthResponse, string, error)
	SignOut(ctx context.Context, claims *models.TokenClaims) error
	GetSession(ctx context.Context, claims *models.TokenClaims) (*models.Session, error)
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	// profiles
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.Profile, error)
	UploadAvatar(ctx context.Context, userID, contentType string, body io.Reader) (*models.Profile, error)

	// driver profiles
	RegisterDriver(ctx context.Context, userID string, req *models.DriverProfileRequest) (*models.DriverProfile, error)
	GetDriverProfile(ctx context.Context, userID string) (*models.DriverProfile, error)
	UpdateDriverProfile(ctx context.Context, userID string, req *models.DriverProfileRequest) (*models.DriverProfile, error)
}

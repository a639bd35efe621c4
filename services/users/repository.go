package users

import (
	"context"
	"time"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tumpang/services/users UserRepo,SessionRepo

// UserRepo defines the account and profile persistence interface
type UserRepo interface {
	CreateAccount(ctx context.Context, account *models.Account, profile *models.Profile) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)

	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	UpdateAvatar(ctx context.Context, id, avatarURL string) error

	CreateDriverProfile(ctx context.Context, driver *models.DriverProfile) error
	GetDriverProfile(ctx context.Context, userID string) (*models.DriverProfile, error)
	UpdateDriverProfile(ctx context.Context, driver *models.DriverProfile) error
}

// SessionRepo keeps short-lived session state in redis
type SessionRepo interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	SaveOAuthState(ctx context.Context, state string, data *models.OAuthState, ttl time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (*models.OAuthState, error)
}

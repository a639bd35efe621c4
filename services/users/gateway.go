package users

import (
	"context"
	"io"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/tumpang/services/users UserGW

// UserGW defines the outbound calls the user service makes
type UserGW interface {
	// OAuth provider
	ExchangeOAuthCode(ctx context.Context, provider models.OAuthProvider, code string) (*models.OAuthUser, error)

	// Object storage
	UploadAvatar(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

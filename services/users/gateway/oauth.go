package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	httpclient "github.com/piresc/tumpang/internal/pkg/http"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
)

type oauthTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ExchangeOAuthCode trades an authorization code for an access token and
// fetches the user's identity with it
func (g *UserGW) ExchangeOAuthCode(ctx context.Context, provider models.OAuthProvider, code string) (*models.OAuthUser, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", provider.RedirectURL)
	form.Set("client_id", provider.ClientID)
	form.Set("client_secret", provider.ClientSecret)

	var token oauthTokenResponse
	if err := g.httpClient.PostForm(ctx, provider.TokenURL, form, &token); err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode < 500 {
			logger.Warn("OAuth code rejected by provider",
				logger.String("provider", provider.Name),
				logger.Int("status", httpErr.StatusCode))
			return nil, fmt.Errorf("authorization code rejected: %w", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("provider returned no access token: %w", models.ErrUnauthorized)
	}

	var user models.OAuthUser
	if err := g.httpClient.GetJSON(ctx, provider.UserInfoURL, token.AccessToken, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch oauth user: %w", err)
	}

	return &user, nil
}

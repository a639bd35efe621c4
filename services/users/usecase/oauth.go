package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

const oauthStateLength = 32

// OAuthRedirect stores a fresh state and returns the provider's authorize URL
func (uc *UserUC) OAuthRedirect(ctx context.Context, providerName string, app models.App, redirectTo string) (string, error) {
	name := strings.ToLower(providerName)
	provider, ok := uc.cfg.OAuth.Providers[name]
	if !ok {
		return "", fmt.Errorf("oauth provider %q is not configured: %w", providerName, models.ErrNotFound)
	}

	app = defaultApp(app)
	if !app.Valid() {
		return "", models.NewValidationError(map[string]string{"app": "must be driver or passenger"})
	}

	if redirectTo != "" && !redirectAllowed(redirectTo, uc.cfg.OAuth.AllowedRedirects) {
		return "", models.NewValidationError(map[string]string{"redirect_to": "is not an allowed redirect target"})
	}

	authURL, err := url.Parse(provider.AuthURL)
	if err != nil {
		return "", fmt.Errorf("invalid auth url for provider %s: %w", name, err)
	}

	state, err := utils.GenerateRandomString(oauthStateLength)
	if err != nil {
		return "", err
	}

	data := &models.OAuthState{Provider: name, App: app, RedirectTo: redirectTo}
	ttl := time.Duration(uc.cfg.Cache.OAuthStateTTL) * time.Second
	if err := uc.sessionRepo.SaveOAuthState(ctx, state, data, ttl); err != nil {
		return "", err
	}

	q := authURL.Query()
	q.Set("client_id", provider.ClientID)
	q.Set("redirect_uri", provider.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(provider.Scopes, " "))
	q.Set("state", state)
	authURL.RawQuery = q.Encode()

	return authURL.String(), nil
}

// OAuthCallback finishes an OAuth login. It returns the session and, when the
// login started with a redirect target, the URL to send the browser to.
func (uc *UserUC) OAuthCallback(ctx context.Context, state, code string) (*models.AuthResponse, string, error) {
	if state == "" || code == "" {
		return nil, "", models.NewValidationError(map[string]string{"code": "state and code are required"})
	}

	data, err := uc.sessionRepo.ConsumeOAuthState(ctx, state)
	if err != nil {
		return nil, "", err
	}

	provider, ok := uc.cfg.OAuth.Providers[data.Provider]
	if !ok {
		return nil, "", fmt.Errorf("oauth provider %q is no longer configured: %w", data.Provider, models.ErrUnauthorized)
	}

	oauthUser, err := uc.userGW.ExchangeOAuthCode(ctx, provider, code)
	if err != nil {
		return nil, "", err
	}

	email := utils.NormalizeEmail(oauthUser.Email)
	if !utils.IsValidEmail(email) {
		return nil, "", fmt.Errorf("provider returned no usable email: %w", models.ErrUnauthorized)
	}

	account, err := uc.userRepo.GetAccountByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		account, err = uc.createOAuthAccount(ctx, data.Provider, email, oauthUser)
	}
	if err != nil {
		return nil, "", err
	}

	if err := uc.checkAppAccess(ctx, account.ID, data.App); err != nil {
		return nil, "", err
	}

	profile, err := uc.userRepo.GetProfile(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}

	resp, err := uc.issueSession(account, data.App, profile)
	if err != nil {
		return nil, "", err
	}

	if data.RedirectTo == "" {
		return resp, "", nil
	}

	fragment := url.Values{}
	fragment.Set("access_token", resp.Token)
	fragment.Set("expires_at", strconv.FormatInt(resp.ExpiresAt, 10))
	return resp, data.RedirectTo + "#" + fragment.Encode(), nil
}

func (uc *UserUC) createOAuthAccount(ctx context.Context, provider, email string, oauthUser *models.OAuthUser) (*models.Account, error) {
	account := &models.Account{Email: email, Provider: provider}
	profile := &models.Profile{
		FullName:  utils.SanitizeString(oauthUser.Name),
		AvatarURL: oauthUser.Picture,
	}

	if err := uc.userRepo.CreateAccount(ctx, account, profile); err != nil {
		return nil, err
	}

	logger.Info("Account created from oauth",
		logger.String("user_id", account.ID),
		logger.String("provider", provider))
	return account, nil
}

// redirectAllowed matches target against the allowlist by scheme, host and
// path prefix. An entry without a host ("tumpang://") admits its whole scheme.
func redirectAllowed(target string, allowed []string) bool {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Fragment != "" || u.User != nil {
		return false
	}

	for _, entry := range allowed {
		a, err := url.Parse(entry)
		if err != nil || a.Scheme == "" {
			continue
		}
		if !strings.EqualFold(a.Scheme, u.Scheme) {
			continue
		}
		if a.Host == "" {
			return true
		}
		if !strings.EqualFold(a.Host, u.Host) {
			continue
		}
		base := strings.TrimSuffix(a.Path, "/")
		if base == "" || u.Path == base || strings.HasPrefix(u.Path, base+"/") {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpang/internal/pkg/models"
)

func TestOAuthRedirect_Success(t *testing.T) {
	uc, deps := newTestUC(t)

	var savedState string
	deps.session.EXPECT().
		SaveOAuthState(gomock.Any(), gomock.Any(), &models.OAuthState{Provider: "google", App: models.AppDriver, RedirectTo: "tumpang://auth"}, 10*time.Minute).
		DoAndReturn(func(_ context.Context, state string, _ *models.OAuthState, _ time.Duration) error {
			savedState = state
			return nil
		})

	authURL, err := uc.OAuthRedirect(context.Background(), "Google", models.AppDriver, "tumpang://auth")
	require.NoError(t, err)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "accounts.example.com", u.Host)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	assert.Equal(t, "code", u.Query().Get("response_type"))
	assert.Equal(t, "openid email", u.Query().Get("scope"))
	assert.Equal(t, savedState, u.Query().Get("state"))
	assert.Len(t, savedState, 32)
}

func TestOAuthRedirect_UnknownProvider(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.OAuthRedirect(context.Background(), "myspace", models.AppPassenger, "")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOAuthCallback_NewAccount(t *testing.T) {
	uc, deps := newTestUC(t)

	deps.session.EXPECT().ConsumeOAuthState(gomock.Any(), "state-1").
		Return(&models.OAuthState{Provider: "google", App: models.AppPassenger, RedirectTo: "tumpang://auth"}, nil)
	deps.gw.EXPECT().ExchangeOAuthCode(gomock.Any(), gomock.Any(), "code-1").
		Return(&models.OAuthUser{Email: "Gita@Example.com", Name: "Gita", Picture: "https://pic"}, nil)
	deps.repo.EXPECT().GetAccountByEmail(gomock.Any(), "gita@example.com").Return(nil, models.ErrNotFound)
	deps.repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account *models.Account, profile *models.Profile) error {
			assert.Nil(t, account.PasswordHash)
			assert.Equal(t, "google", account.Provider)
			assert.Equal(t, "https://pic", profile.AvatarURL)
			account.ID = "u9"
			return nil
		})
	deps.repo.EXPECT().GetDriverProfile(gomock.Any(), "u9").Return(nil, models.ErrNotFound)
	deps.repo.EXPECT().GetProfile(gomock.Any(), "u9").Return(&models.Profile{ID: "u9", FullName: "Gita"}, nil)

	resp, redirect, err := uc.OAuthCallback(context.Background(), "state-1", "code-1")

	require.NoError(t, err)
	assert.Equal(t, "u9", resp.UserID)
	assert.True(t, strings.HasPrefix(redirect, "tumpang://auth#access_token="))
	assert.Contains(t, redirect, "expires_at=")
}

func TestOAuthCallback_ExistingDriverWithoutRedirect(t *testing.T) {
	uc, deps := newTestUC(t)

	deps.session.EXPECT().ConsumeOAuthState(gomock.Any(), "state-1").
		Return(&models.OAuthState{Provider: "google", App: models.AppDriver}, nil)
	deps.gw.EXPECT().ExchangeOAuthCode(gomock.Any(), gomock.Any(), "code-1").
		Return(&models.OAuthUser{Email: "dedi@example.com"}, nil)
	deps.repo.EXPECT().GetAccountByEmail(gomock.Any(), "dedi@example.com").
		Return(&models.Account{ID: "u1", Email: "dedi@example.com", Provider: "google"}, nil)
	deps.repo.EXPECT().GetDriverProfile(gomock.Any(), "u1").Return(&models.DriverProfile{UserID: "u1"}, nil)
	deps.repo.EXPECT().GetProfile(gomock.Any(), "u1").Return(&models.Profile{ID: "u1"}, nil)

	resp, redirect, err := uc.OAuthCallback(context.Background(), "state-1", "code-1")

	require.NoError(t, err)
	assert.Empty(t, redirect)
	assert.Equal(t, models.RoleDriver, resp.Role)
}

func TestOAuthCallback_Failures(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, _, err := uc.OAuthCallback(context.Background(), "state-1", "")
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("unknown state", func(t *testing.T) {
		uc, deps := newTestUC(t)
		deps.session.EXPECT().ConsumeOAuthState(gomock.Any(), "stale").Return(nil, models.ErrUnauthorized)

		_, _, err := uc.OAuthCallback(context.Background(), "stale", "code")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("provider without email", func(t *testing.T) {
		uc, deps := newTestUC(t)
		deps.session.EXPECT().ConsumeOAuthState(gomock.Any(), "state-1").
			Return(&models.OAuthState{Provider: "google", App: models.AppPassenger}, nil)
		deps.gw.EXPECT().ExchangeOAuthCode(gomock.Any(), gomock.Any(), "code").
			Return(&models.OAuthUser{Name: "No Mail"}, nil)

		_, _, err := uc.OAuthCallback(context.Background(), "state-1", "code")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("driver app without driver profile", func(t *testing.T) {
		uc, deps := newTestUC(t)
		deps.session.EXPECT().ConsumeOAuthState(gomock.Any(), "state-1").
			Return(&models.OAuthState{Provider: "google", App: models.AppDriver}, nil)
		deps.gw.EXPECT().ExchangeOAuthCode(gomock.Any(), gomock.Any(), "code").
			Return(&models.OAuthUser{Email: "rina@example.com"}, nil)
		deps.repo.EXPECT().GetAccountByEmail(gomock.Any(), "rina@example.com").
			Return(&models.Account{ID: "u2"}, nil)
		deps.repo.EXPECT().GetDriverProfile(gomock.Any(), "u2").Return(nil, models.ErrNotFound)

		_, _, err := uc.OAuthCallback(context.Background(), "state-1", "code")
		assert.ErrorIs(t, err, models.ErrDriverProfileRequired)
	})
}

func TestOAuthRedirect_AllowedTarget(t *testing.T) {
	uc, deps := newTestUC(t)

	deps.session.EXPECT().
		SaveOAuthState(gomock.Any(), gomock.Any(), &models.OAuthState{Provider: "google", App: models.AppPassenger, RedirectTo: "https://app.example.com/auth/done"}, 10*time.Minute).
		Return(nil)

	_, err := uc.OAuthRedirect(context.Background(), "google", models.AppPassenger, "https://app.example.com/auth/done")

	assert.NoError(t, err)
}

func TestOAuthRedirect_RejectsForeignTarget(t *testing.T) {
	targets := []string{
		"https://evil.example/steal",
		"https://app.example.com.evil.example/auth",
		"https://app.example.com/other",
		"https://app.example.com/authx",
		"http://app.example.com/auth",
		"//evil.example/auth",
		"tumpang://auth#x",
		"javascript:alert(1)",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			uc, _ := newTestUC(t)

			_, err := uc.OAuthRedirect(context.Background(), "google", models.AppPassenger, target)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "redirect_to")
		})
	}
}

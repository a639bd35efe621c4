package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/piresc/tumpang/internal/pkg/http"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/pkg/retry"
	"github.com/piresc/tumpang/internal/pkg/storage"
)

func newTestGW(t *testing.T) *UserGW {
	retrier := retry.New(retry.Config{MaxRetries: 1, BaseDelay: time.Millisecond, Multiplier: 1}, nil)
	uploader, err := storage.NewLocalUploader(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	return NewUserGW(httpclient.NewClient(time.Second, retrier), uploader)
}

func providerFor(srv *httptest.Server) models.OAuthProvider {
	return models.OAuthProvider{
		Name:         "google",
		ClientID:     "client",
		ClientSecret: "secret",
		TokenURL:     srv.URL + "/token",
		UserInfoURL:  srv.URL + "/userinfo",
		RedirectURL:  "http://localhost:8080/auth/oauth/callback",
	}
}

func TestExchangeOAuthCode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "the-code", r.PostForm.Get("code"))
			assert.Equal(t, "client", r.PostForm.Get("client_id"))
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "at", "token_type": "Bearer"})
		case "/userinfo":
			assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(models.OAuthUser{Email: "g@example.com", Name: "Gita", Picture: "https://pic"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	user, err := newTestGW(t).ExchangeOAuthCode(context.Background(), providerFor(srv), "the-code")

	require.NoError(t, err)
	assert.Equal(t, "g@example.com", user.Email)
	assert.Equal(t, "Gita", user.Name)
}

func TestExchangeOAuthCode_RejectedCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	_, err := newTestGW(t).ExchangeOAuthCode(context.Background(), providerFor(srv), "bad")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestExchangeOAuthCode_MissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestGW(t).ExchangeOAuthCode(context.Background(), providerFor(srv), "code")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestUploadAvatar(t *testing.T) {
	gw := newTestGW(t)

	url, err := gw.UploadAvatar(context.Background(), "avatars/u1/1.png", "image/png", strings.NewReader("img"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/avatars/u1/1.png", url)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/tumpang/internal/pkg/jwt"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], f.err
}

func testConfig() *models.Config {
	return &models.Config{JWT: models.JWTConfig{Secret: "secret", Expiration: 60, Issuer: "test"}}
}

func newTestServer(revocations RevocationChecker, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	mws := append([]echo.MiddlewareFunc{SessionMiddleware(testConfig().JWT, revocations)}, extra...)
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, GetUserID(c)+"|"+string(GetClaims(c).App))
	}, mws...)
	return e
}

func TestSessionMiddleware(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken("user-1", "a@b.c", models.AppDriver, testConfig())
	require.NoError(t, err)

	tests := []struct {
		name         string
		target       string
		header       string
		revocations  *fakeRevocations
		expectedCode int
		expectedBody string
	}{
		{
			name:         "bearer header",
			target:       "/me",
			header:       "Bearer " + token,
			revocations:  &fakeRevocations{},
			expectedCode: http.StatusOK,
			expectedBody: "user-1|driver",
		},
		{
			name:         "query token for websocket",
			target:       "/me?token=" + token,
			revocations:  &fakeRevocations{},
			expectedCode: http.StatusOK,
			expectedBody: "user-1|driver",
		},
		{
			name:         "missing token",
			target:       "/me",
			revocations:  &fakeRevocations{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "bad token",
			target:       "/me",
			header:       "Bearer nope",
			revocations:  &fakeRevocations{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "revocation store failure",
			target:       "/me",
			header:       "Bearer " + token,
			revocations:  &fakeRevocations{err: assert.AnError},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(tt.revocations)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestSessionMiddleware_RevokedToken(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken("user-1", "", models.AppPassenger, testConfig())
	require.NoError(t, err)
	claims, err := jwtpkg.ParseClaims(token, "secret")
	require.NoError(t, err)

	e := newTestServer(&fakeRevocations{revoked: map[string]bool{claims.TokenID: true}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed out")
}

func TestRequireApp(t *testing.T) {
	passengerToken, _, err := jwtpkg.GenerateToken("user-1", "", models.AppPassenger, testConfig())
	require.NoError(t, err)
	driverToken, _, err := jwtpkg.GenerateToken("user-2", "", models.AppDriver, testConfig())
	require.NoError(t, err)

	e := newTestServer(nil, RequireApp(models.AppDriver))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+passengerToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+driverToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-2|driver", rec.Body.String())
}

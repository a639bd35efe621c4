package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPingAndHealth(t *testing.T) {
	e := echo.New()
	NewService("tumpang", "1.2.3").RegisterEndpoints(e)

	rec := serve(e, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "tumpang", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)

	for _, path := range []string{"/health", "/healthz"} {
		rec = serve(e, path)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name         string
		checkers     map[string]Checker
		expectedCode int
		expectedDeps map[string]string
	}{
		{
			name:         "no dependencies",
			checkers:     nil,
			expectedCode: http.StatusOK,
			expectedDeps: map[string]string{},
		},
		{
			name: "all healthy",
			checkers: map[string]Checker{
				"postgres": CheckerFunc(func(context.Context) error { return nil }),
				"redis":    CheckerFunc(func(context.Context) error { return nil }),
			},
			expectedCode: http.StatusOK,
			expectedDeps: map[string]string{"postgres": "healthy", "redis": "healthy"},
		},
		{
			name: "one unhealthy",
			checkers: map[string]Checker{
				"postgres": CheckerFunc(func(context.Context) error { return nil }),
				"redis":    CheckerFunc(func(context.Context) error { return errors.New("connection refused") }),
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedDeps: map[string]string{"postgres": "healthy", "redis": "unhealthy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService("tumpang", "test")
			for name, c := range tt.checkers {
				svc.AddChecker(name, c)
			}
			e := echo.New()
			svc.RegisterEndpoints(e)

			rec := serve(e, "/ready")
			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Dependencies, len(tt.expectedDeps))
			for name, status := range tt.expectedDeps {
				assert.Equal(t, status, resp.Dependencies[name].Status)
			}
		})
	}
}

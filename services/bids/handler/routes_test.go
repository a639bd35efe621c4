package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
	bidshttp "github.com/piresc/tumpang/services/bids/handler/http"
	"github.com/piresc/tumpang/services/bids/mocks"
)

const bidID = "3a7c9e1b-5d2f-4b8a-9c6e-0f1a2b3c4d5e"

func sessionAs(app models.App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := &models.TokenClaims{UserID: "user-1", App: app}
			c.Set(constants.CtxClaims, claims)
			c.Set(constants.CtxUserID, claims.UserID)
			c.Set(constants.CtxApp, claims.App)
			return next(c)
		}
	}
}

func TestRegisterRoutes_AppGating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidUC := mocks.NewMockBidUC(ctrl)

	driverApp := echo.New()
	NewHandler(bidshttp.NewBidHandler(mockBidUC)).RegisterRoutes(driverApp, sessionAs(models.AppDriver))
	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/bids"},
		{http.MethodGet, "/bids/mine"},
		{http.MethodPatch, "/bids/" + bidID + "/amount"},
		{http.MethodDelete, "/bids/" + bidID},
	} {
		rec := httptest.NewRecorder()
		driverApp.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", route.method, route.path)
	}

	passengerApp := echo.New()
	NewHandler(bidshttp.NewBidHandler(mockBidUC)).RegisterRoutes(passengerApp, sessionAs(models.AppPassenger))
	for _, path := range []string{"/bids/" + bidID + "/accept", "/bids/" + bidID + "/reject"} {
		rec := httptest.NewRecorder()
		passengerApp.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestRegisterRoutes_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := echo.New()
	NewHandler(bidshttp.NewBidHandler(mocks.NewMockBidUC(ctrl))).RegisterRoutes(e, sessionAs(models.AppPassenger))

	for _, route := range []struct{ method, path string }{
		{http.MethodPatch, "/bids/abc/amount"},
		{http.MethodDelete, "/bids/abc"},
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestRegisterRoutes_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidUC := mocks.NewMockBidUC(ctrl)
	mockBidUC.EXPECT().ListMyBids(gomock.Any(), "user-1").Return([]*models.Bid{}, nil)

	e := echo.New()
	NewHandler(bidshttp.NewBidHandler(mockBidUC)).RegisterRoutes(e, sessionAs(models.AppPassenger))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bids/mine", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

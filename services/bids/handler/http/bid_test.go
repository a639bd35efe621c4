package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/bids/mocks"
)

func newContext(method, target, body, userID string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(constants.CtxUserID, userID)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	return c, rec
}

func TestPlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidUC := mocks.NewMockBidUC(ctrl)
	handler := NewBidHandler(mockBidUC)
	c, rec := newContext(http.MethodPost, "/bids", `{"trip_id":"trip-1","amount":40000,"message":"hi"}`, "rider-1")

	mockBidUC.EXPECT().
		PlaceBid(gomock.Any(), "rider-1", &models.PlaceBidRequest{TripID: "trip-1", Amount: 40000, Message: "hi"}).
		Return(&models.Bid{ID: "bid-1", Status: models.BidStatusPending}, nil)

	assert.NoError(t, handler.PlaceBid(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Bid placed successfully", response["message"])
}

func TestPlaceBid_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBidHandler(mocks.NewMockBidUC(ctrl))
	c, rec := newContext(http.MethodPost, "/bids", `{"amount":"lots"}`, "rider-1")

	assert.NoError(t, handler.PlaceBid(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceBid_StatusMapping(t *testing.T) {
	testCases := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"own trip", models.ErrForbidden, http.StatusForbidden},
		{"already booked", models.ErrConflict, http.StatusConflict},
		{"trip missing", models.ErrNotFound, http.StatusNotFound},
		{"unexpected failure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBidUC := mocks.NewMockBidUC(ctrl)
			handler := NewBidHandler(mockBidUC)
			c, rec := newContext(http.MethodPost, "/bids", `{"trip_id":"trip-1","amount":1}`, "rider-1")

			mockBidUC.EXPECT().PlaceBid(gomock.Any(), "rider-1", gomock.Any()).Return(nil, tc.ucErr)

			assert.NoError(t, handler.PlaceBid(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestIncreaseBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidUC := mocks.NewMockBidUC(ctrl)
	handler := NewBidHandler(mockBidUC)
	c, rec := newContext(http.MethodPatch, "/bids/bid-1/amount", `{"amount":45000}`, "rider-1", "id", "bid-1")

	mockBidUC.EXPECT().
		IncreaseBid(gomock.Any(), "rider-1", "bid-1", &models.IncreaseBidRequest{Amount: 45000}).
		Return(&models.Bid{ID: "bid-1", Amount: 45000}, nil)

	assert.NoError(t, handler.IncreaseBid(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRespondToBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidUC := mocks.NewMockBidUC(ctrl)
	handler := NewBidHandler(mockBidUC)

	mockBidUC.EXPECT().RespondToBid(gomock.Any(), "driver-1", "bid-1", true).
		Return(&models.Bid{ID: "bid-1", Status: models.BidStatusAccepted}, nil)
	mockBidUC.EXPECT().RespondToBid(gomock.Any(), "driver-1", "bid-2", false).
		Return(nil, models.ErrConflict)

	c, rec := newContext(http.MethodPost, "/bids/bid-1/accept", "", "driver-1", "id", "bid-1")
	assert.NoError(t, handler.AcceptBid(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/bids/bid-2/reject", "", "driver-1", "id", "bid-2")
	assert.NoError(t, handler.RejectBid(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWithdrawBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidUC := mocks.NewMockBidUC(ctrl)
	handler := NewBidHandler(mockBidUC)
	c, rec := newContext(http.MethodDelete, "/bids/bid-1", "", "rider-1", "id", "bid-1")

	mockBidUC.EXPECT().WithdrawBid(gomock.Any(), "rider-1", "bid-1").Return(nil)

	assert.NoError(t, handler.WithdrawBid(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListBids(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidUC := mocks.NewMockBidUC(ctrl)
	handler := NewBidHandler(mockBidUC)

	mockBidUC.EXPECT().ListMyBids(gomock.Any(), "rider-1").Return([]*models.Bid{{ID: "bid-1"}}, nil)
	mockBidUC.EXPECT().ListTripBids(gomock.Any(), "driver-1", "trip-1").Return([]*models.Bid{}, nil)

	c, rec := newContext(http.MethodGet, "/bids/mine", "", "rider-1")
	assert.NoError(t, handler.ListMyBids(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/bids/received?trip_id=trip-1", "", "driver-1")
	assert.NoError(t, handler.ListReceivedBids(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/bookings/mocks"
)

func newContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(constants.CtxUserID, userID)
	return c, rec
}

func TestCreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)
	c, rec := newContext(http.MethodPost, "/bookings", `{"trip_id":"trip-1"}`, "rider-1")

	mockBookingUC.EXPECT().
		CreateBooking(gomock.Any(), "rider-1", &models.CreateBookingRequest{TripID: "trip-1"}).
		Return(&models.Booking{ID: "booking-1"}, nil)

	assert.NoError(t, handler.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"booking-1"`)
}

func TestCreateBooking_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)
	c, rec := newContext(http.MethodPost, "/bookings", `{"trip_id":"trip-1"}`, "rider-1")

	mockBookingUC.EXPECT().CreateBooking(gomock.Any(), "rider-1", gomock.Any()).
		Return(nil, models.ErrConflict)

	assert.NoError(t, handler.CreateBooking(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingActions(t *testing.T) {
	testCases := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"missing", models.ErrNotFound, http.StatusNotFound},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookingUC := mocks.NewMockBookingUC(ctrl)
			handler := NewBookingHandler(mockBookingUC)

			var result *models.Booking
			if tc.ucErr == nil {
				result = &models.Booking{ID: "booking-1"}
			}

			mockBookingUC.EXPECT().ConfirmBooking(gomock.Any(), "driver-1", "booking-1").Return(result, tc.ucErr)
			c, rec := newContext(http.MethodPost, "/bookings/booking-1/confirm", "", "driver-1")
			c.SetParamNames("id")
			c.SetParamValues("booking-1")
			assert.NoError(t, handler.ConfirmBooking(c))
			assert.Equal(t, tc.wantStatus, rec.Code)

			mockBookingUC.EXPECT().CancelBooking(gomock.Any(), "rider-1", "booking-1").Return(result, tc.ucErr)
			c, rec = newContext(http.MethodPost, "/bookings/booking-1/cancel", "", "rider-1")
			c.SetParamNames("id")
			c.SetParamValues("booking-1")
			assert.NoError(t, handler.CancelBooking(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestListBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)

	mockBookingUC.EXPECT().ListMyBookings(gomock.Any(), "rider-1").Return([]*models.Booking{}, nil)
	mockBookingUC.EXPECT().ListTripBookings(gomock.Any(), "driver-1", "").Return(nil, errors.New("db down"))

	c, rec := newContext(http.MethodGet, "/bookings/mine", "", "rider-1")
	assert.NoError(t, handler.ListMyBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/bookings/received", "", "driver-1")
	assert.NoError(t, handler.ListReceivedBookings(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

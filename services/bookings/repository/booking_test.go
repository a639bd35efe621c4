package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpang/internal/pkg/models"
)

var bookingColumns = []string{
	"id", "trip_id", "rider_id", "status", "created_at", "updated_at",
	"driver_id", "from_location", "to_location", "trip_date", "trip_time", "trip_price", "rider_name",
}

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewBookingRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func addBookingRow(rows *sqlmock.Rows, id, tripID, status string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, tripID, "rider-1", status, now, now,
		"driver-1", "Bogor", "Depok", "2024-05-03", "17:15", 30000.0, "Rina Rider")
}

func expectTripLock(mock sqlmock.Sqlmock, driverID, status string, seats int) {
	mock.ExpectQuery("SELECT driver_id, status, available_seats FROM trips WHERE id = (.+) FOR UPDATE").
		WithArgs("trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "status", "available_seats"}).
			AddRow(driverID, status, seats))
}

func TestCreateBooking(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		expected  error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectTripLock(mock, "driver-1", "active", 1)
				mock.ExpectQuery("SELECT EXISTS (.+) FROM bids (.+) status <> 'rejected'").
					WithArgs("trip-1", "rider-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("INSERT INTO bookings").
					WithArgs(sqlmock.AnyArg(), "trip-1", "rider-1", models.BookingStatusPending,
						sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Rider has a live bid",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectTripLock(mock, "driver-1", "active", 1)
				mock.ExpectQuery("SELECT EXISTS (.+) FROM bids").
					WithArgs("trip-1", "rider-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			expected: models.ErrConflict,
		},
		{
			name: "Own trip",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectTripLock(mock, "rider-1", "active", 1)
				mock.ExpectRollback()
			},
			expected: models.ErrForbidden,
		},
		{
			name: "Cancelled trip",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectTripLock(mock, "driver-1", "cancelled", 1)
				mock.ExpectRollback()
			},
			expected: models.ErrConflict,
		},
		{
			name: "Trip missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("FROM trips WHERE id").WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expected: models.ErrNotFound,
		},
		{
			name: "Booked twice",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectTripLock(mock, "driver-1", "active", 1)
				mock.ExpectQuery("SELECT EXISTS (.+) FROM bids").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("INSERT INTO bookings").
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			},
			expected: models.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)
			booking := &models.Booking{TripID: "trip-1", RiderID: "rider-1"}
			err := repo.CreateBooking(context.Background(), booking)

			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, booking.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBookingByID(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM bookings bk JOIN trips t (.+) WHERE bk.id").
		WithArgs("booking-1").
		WillReturnRows(addBookingRow(sqlmock.NewRows(bookingColumns), "booking-1", "trip-1", "accepted"))
	mock.ExpectQuery("^SELECT (.+) FROM bookings bk").
		WithArgs("booking-2").
		WillReturnError(sql.ErrNoRows)

	booking, err := repo.GetBookingByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "17:15", booking.TripTime)

	_, err = repo.GetBookingByID(context.Background(), "booking-2")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmBooking(t *testing.T) {
	t.Run("Confirms and takes a seat", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE trips SET available_seats = available_seats - 1").
			WithArgs("trip-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE bookings SET status = 'confirmed'").
			WithArgs("booking-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.ConfirmBooking(context.Background(), "booking-1", "trip-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Trip full", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE trips SET available_seats").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.ConfirmBooking(context.Background(), "booking-1", "trip-1"), models.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCancelBooking(t *testing.T) {
	testCases := []struct {
		name     string
		dbErr    error
		expected error
	}{
		{name: "Cancelled"},
		{name: "Unknown booking", dbErr: &pgconn.PgError{Code: "P0002"}, expected: models.ErrNotFound},
		{name: "Database error", dbErr: errors.New("connection refused")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			exp := mock.ExpectExec(`SELECT cancel_booking_and_update_trip\(`).WithArgs("booking-1")
			if tc.dbErr != nil {
				exp.WillReturnError(tc.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.CancelBooking(context.Background(), "booking-1")

			switch {
			case tc.expected != nil:
				assert.ErrorIs(t, err, tc.expected)
			case tc.dbErr != nil:
				assert.ErrorContains(t, err, "failed to cancel booking")
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

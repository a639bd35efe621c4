package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"25", 25, true},
		{"12.50", 12.5, true},
		{" 3 ", 3, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"nan", 0, false},
		{"Inf", 0, false},
		{"-infinity", 0, false},
		{"1e300", 0, false},
		{"0.001", 0, false},
		{"0.01", 0.01, true},
		{"9999999999.99", 9999999999.99, true},
		{"10000000000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ValidatePrice(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("6f1c2a9e-4b7d-4c1e-9a2b-3d4e5f6a7b8c"))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("abc"))
	assert.False(t, IsValidID("trip-1"))
	assert.False(t, IsValidID("6f1c2a9e4b7d4c1e9a2b3d4e5f6a7b8c"))
	assert.False(t, IsValidID("urn:uuid:6f1c2a9e-4b7d-4c1e-9a2b-3d4e5f6a7b8c"))
	assert.False(t, IsValidID("6f1c2a9e-4b7d-4c1e-9a2b-3d4e5f6a7b8z"))
}

func TestValidateSeats(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"1", true},
		{"4", true},
		{"10", true},
		{"0", false},
		{"11", false},
		{"2.5", false},
		{"two", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, ok := ValidateSeats(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestValidateTripDate(t *testing.T) {
	assert.True(t, ValidateTripDate("2024-01-31"))
	assert.True(t, ValidateTripDate("2024-12-01"))
	assert.False(t, ValidateTripDate("2024-13-01"))
	assert.False(t, ValidateTripDate("2024-00-10"))
	assert.False(t, ValidateTripDate("2024-01-32"))
	assert.False(t, ValidateTripDate("24-01-01"))
	assert.False(t, ValidateTripDate("2024/01/01"))
}

func TestValidateTripTime(t *testing.T) {
	assert.True(t, ValidateTripTime("00:00"))
	assert.True(t, ValidateTripTime("09:30"))
	assert.True(t, ValidateTripTime("23:59"))
	assert.False(t, ValidateTripTime("24:00"))
	assert.False(t, ValidateTripTime("12:60"))
	assert.False(t, ValidateTripTime("9:30"))
	assert.False(t, ValidateTripTime("09:30:00"))
}

func TestTripFormErrors(t *testing.T) {
	assert.Empty(t, TripFormErrors("20", "3", "2024-05-01", "08:00"))

	errs := TripFormErrors("-1", "11", "2024-13-01", "25:00")
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "seats")
	assert.Contains(t, errs, "trip_date")
	assert.Contains(t, errs, "trip_time")

	errs = TripFormErrors("NaN", "2", "2024-05-01", "08:00")
	assert.Equal(t, map[string]string{"price": "must be a positive number"}, errs)
}

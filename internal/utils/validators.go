package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	MinSeats = 1
	MaxSeats = 10

	// MinPrice and MaxPrice bound what a NUMERIC(12,2) column stores as a positive value
	MinPrice = 0.01
	MaxPrice = 9999999999.99
)

var (
	tripDateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	tripTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePrice accepts a string that parses as a positive, finite number
// between MinPrice and MaxPrice
func ValidatePrice(price string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || !ValidAmount(v) {
		return 0, false
	}
	return v, true
}

// ValidAmount reports whether v can be stored as a price or bid amount
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= MinPrice && v <= MaxPrice
}

// IsValidID reports whether id is a UUID in the canonical hyphenated form
func IsValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ValidateSeats accepts an integer between MinSeats and MaxSeats
func ValidateSeats(seats string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(seats))
	if err != nil || v < MinSeats || v > MaxSeats {
		return 0, false
	}
	return v, true
}

// ValidateTripDate checks the YYYY-MM-DD shape. Day ranges are not checked
// against the month.
func ValidateTripDate(date string) bool {
	return tripDateRegex.MatchString(date)
}

// ValidateTripTime checks a 24-hour HH:MM time
func ValidateTripTime(t string) bool {
	return tripTimeRegex.MatchString(t)
}

// TripFormErrors runs every trip form validator and returns the failures by field
func TripFormErrors(price, seats, date, tripTime string) map[string]string {
	errs := make(map[string]string)
	if _, ok := ValidatePrice(price); !ok {
		errs["price"] = "must be a positive number"
	}
	if _, ok := ValidateSeats(seats); !ok {
		errs["seats"] = "must be a whole number between 1 and 10"
	}
	if !ValidateTripDate(date) {
		errs["trip_date"] = "must be in YYYY-MM-DD format"
	}
	if !ValidateTripTime(tripTime) {
		errs["trip_time"] = "must be in HH:MM 24-hour format"
	}
	return errs
}

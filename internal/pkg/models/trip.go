package models

import (
	"encoding/json"
	"time"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusActive    TripStatus = "active"
	TripStatusPending   TripStatus = "pending"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// IsOpen reports whether the trip can still be completed or cancelled
func (s TripStatus) IsOpen() bool {
	return s == TripStatusActive || s == TripStatusPending
}

// Trip represents a driver-posted route offer
type Trip struct {
	ID             string     `json:"id" db:"id"`
	DriverID       string     `json:"driver_id" db:"driver_id"`
	FromLocation   string     `json:"from_location" db:"from_location"`
	ToLocation     string     `json:"to_location" db:"to_location"`
	TripDate       string     `json:"trip_date" db:"trip_date"` // YYYY-MM-DD
	TripTime       string     `json:"trip_time" db:"trip_time"` // HH:MM
	Price          float64    `json:"price" db:"price"`
	AvailableSeats int        `json:"available_seats" db:"available_seats"`
	TotalSeats     int        `json:"total_seats" db:"total_seats"`
	Description    string     `json:"description" db:"description"`
	Status         TripStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	DriverName     string     `json:"driver_name,omitempty" db:"driver_name"`
}

// TripWithBidCount is a driver's own trip with the number of pending bids on it
type TripWithBidCount struct {
	Trip
	PendingBids int `json:"pending_bids"`
}

// TripDetail is a trip together with the caller's own bid and booking on it
type TripDetail struct {
	Trip      *Trip    `json:"trip"`
	MyBid     *Bid     `json:"my_bid,omitempty"`
	MyBooking *Booking `json:"my_booking,omitempty"`
	CanBid    bool     `json:"can_bid"`
	CanBook   bool     `json:"can_book"`
}

// CreateTripRequest is the trip form submitted by a driver. Price and seats
// accept both JSON numbers and numeric strings.
type CreateTripRequest struct {
	FromLocation string      `json:"from_location"`
	ToLocation   string      `json:"to_location"`
	TripDate     string      `json:"trip_date"`
	TripTime     string      `json:"trip_time"`
	Price        json.Number `json:"price"`
	Seats        json.Number `json:"seats"`
	Description  string      `json:"description"`
}

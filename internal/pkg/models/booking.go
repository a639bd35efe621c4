package models

import (
	"time"
)

// BookingStatus represents the state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"

	// BookingStatusAccepted is a legacy value read as confirmed
	BookingStatusAccepted BookingStatus = "accepted"
)

// Normalize maps legacy statuses onto their current value
func (s BookingStatus) Normalize() BookingStatus {
	if s == BookingStatusAccepted {
		return BookingStatusConfirmed
	}
	return s
}

// Booking is a rider's reservation at a trip's listed price
type Booking struct {
	ID        string        `json:"id" db:"id"`
	TripID    string        `json:"trip_id" db:"trip_id"`
	RiderID   string        `json:"rider_id" db:"rider_id"`
	Status    BookingStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`

	// joined trip summary
	TripSummary
	RiderName string `json:"rider_name,omitempty" db:"rider_name"`
}

// CreateBookingRequest is the payload for booking a trip
type CreateBookingRequest struct {
	TripID string `json:"trip_id"`
}

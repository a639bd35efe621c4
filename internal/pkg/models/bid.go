package models

import (
	"time"
)

// BidStatus represents the state of a bid
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Bid is a rider-proposed price for a trip, awaiting driver acceptance
type Bid struct {
	ID        string    `json:"id" db:"id"`
	TripID    string    `json:"trip_id" db:"trip_id"`
	RiderID   string    `json:"rider_id" db:"rider_id"`
	Amount    float64   `json:"amount" db:"amount"`
	Status    BidStatus `json:"status" db:"status"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// joined trip summary
	TripSummary
	RiderName string `json:"rider_name,omitempty" db:"rider_name"`
}

// TripSummary carries the trip columns joined onto bid and booking reads
type TripSummary struct {
	DriverID     string  `json:"driver_id,omitempty" db:"driver_id"`
	FromLocation string  `json:"from_location,omitempty" db:"from_location"`
	ToLocation   string  `json:"to_location,omitempty" db:"to_location"`
	TripDate     string  `json:"trip_date,omitempty" db:"trip_date"`
	TripTime     string  `json:"trip_time,omitempty" db:"trip_time"`
	TripPrice    float64 `json:"trip_price,omitempty" db:"trip_price"`
}

// PlaceBidRequest is the payload for placing a bid
type PlaceBidRequest struct {
	TripID  string  `json:"trip_id"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

// IncreaseBidRequest is the payload for raising a pending bid
type IncreaseBidRequest struct {
	Amount float64 `json:"amount"`
}

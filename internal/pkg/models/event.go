package models

import (
	"time"
)

// EventType names a domain event published after a committed mutation
type EventType string

const (
	EventTripCreated   EventType = "trip.created"
	EventTripCompleted EventType = "trip.completed"
	EventTripCancelled EventType = "trip.cancelled"
	EventTripDeleted   EventType = "trip.deleted"

	EventBidPlaced    EventType = "bid.placed"
	EventBidIncreased EventType = "bid.increased"
	EventBidWithdrawn EventType = "bid.withdrawn"
	EventBidAccepted  EventType = "bid.accepted"
	EventBidRejected  EventType = "bid.rejected"

	EventBookingCreated   EventType = "booking.created"
	EventBookingConfirmed EventType = "booking.confirmed"
	EventBookingCanceled  EventType = "booking.canceled"
)

// Event is the NSQ message body for trip, bid and booking events
type Event struct {
	Type       EventType `json:"type"`
	TripID     string    `json:"trip_id"`
	DriverID   string    `json:"driver_id"`
	RiderID    string    `json:"rider_id,omitempty"`
	EntityID   string    `json:"entity_id"`
	Status     string    `json:"status,omitempty"` // as stored after the change, or before a delete
	OccurredAt time.Time `json:"occurred_at"`
}

// Recipients returns the users that should be told about the event
func (e Event) Recipients() []string {
	var ids []string
	if e.DriverID != "" {
		ids = append(ids, e.DriverID)
	}
	if e.RiderID != "" && e.RiderID != e.DriverID {
		ids = append(ids, e.RiderID)
	}
	return ids
}

package models

// DriverStats is the aggregate returned by get_driver_stats
type DriverStats struct {
	TotalTrips      int     `json:"total_trips" db:"total_trips"`
	ActiveTrips     int     `json:"active_trips" db:"active_trips"`
	CompletedTrips  int     `json:"completed_trips" db:"completed_trips"`
	CancelledTrips  int     `json:"cancelled_trips" db:"cancelled_trips"`
	TotalPassengers int     `json:"total_passengers" db:"total_passengers"`
	TotalEarnings   float64 `json:"total_earnings" db:"total_earnings"`
}

package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// EventNotification wraps a trip, bid or booking event pushed to a user
	EventNotification = "notification"
)

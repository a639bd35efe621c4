package constants

// NSQ topics
const (
	TopicTripEvents    = "trip.events"
	TopicBidEvents     = "bid.events"
	TopicBookingEvents = "booking.events"
)

// EventTopics lists every topic the notifications consumer subscribes to
var EventTopics = []string{TopicTripEvents, TopicBidEvents, TopicBookingEvents}

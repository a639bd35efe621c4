package utils

// Greeting picks the salutation for an hour of the day (0-23)
func Greeting(hour int) string {
	switch {
	case hour >= 0 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17 && hour < 21:
		return "Good evening"
	default:
		return "Good night"
	}
}

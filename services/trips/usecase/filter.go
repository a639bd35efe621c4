package usecase

import (
	"strings"

	"github.com/piresc/tumpang/internal/pkg/models"
)

// FilterTrips drops the trips whose id is in excluded and, when search is not
// blank, keeps only trips whose origin, destination or driver name contains it
// case-insensitively. The input slice is not modified.
func FilterTrips(trips []*models.Trip, excluded map[string]struct{}, search string) []*models.Trip {
	needle := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*models.Trip, 0, len(trips))
	for _, trip := range trips {
		if _, skip := excluded[trip.ID]; skip {
			continue
		}
		if needle != "" && !matchesSearch(trip, needle) {
			continue
		}
		filtered = append(filtered, trip)
	}
	return filtered
}

func matchesSearch(trip *models.Trip, needle string) bool {
	return strings.Contains(strings.ToLower(trip.FromLocation), needle) ||
		strings.Contains(strings.ToLower(trip.ToLocation), needle) ||
		strings.Contains(strings.ToLower(trip.DriverName), needle)
}

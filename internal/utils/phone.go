package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// NormalizePhone strips separators from a phone number and validates its
// shape. An empty input is allowed and returned as-is.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "").Replace(strings.TrimSpace(phone))
	if stripped == "" {
		return "", nil
	}

	if !phoneRegex.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}

	return stripped, nil
}

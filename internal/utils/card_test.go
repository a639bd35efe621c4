package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "", FormatCardNumber(""))
	assert.Equal(t, "4242", FormatCardNumber("4242"))
	assert.Equal(t, "4242 42", FormatCardNumber("424242"))
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242"))
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242-4242 4242 4242"))
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("42424242424242429999"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12/", FormatExpiry("12"))
	assert.Equal(t, "12/2", FormatExpiry("122"))
	assert.Equal(t, "12/25", FormatExpiry("1225"))
	assert.Equal(t, "12/25", FormatExpiry("12/25"))
	assert.Equal(t, "12/25", FormatExpiry("122599"))
}

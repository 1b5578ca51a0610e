// File: /utils/validators.go
package utils

import (
	"strconv"
	"strings"
)

// IsBlank reports whether a string is empty after trimming whitespace.
// Blank text never becomes a post, comment or chat message.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseFloatOrZero parses free-form numeric input from forms. Anything
// unparseable counts as zero rather than an error.
func ParseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func IsValidRating(rating float64) bool {
	return rating >= 0 && rating <= 5
}

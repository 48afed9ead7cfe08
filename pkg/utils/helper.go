package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64, reporting whether the input was
// present and well-formed. Malformed geo input must surface as a validation
// error, not a silent default.
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}

// ParseBoolPtr converts "true"/"false" to *bool, nil when absent or malformed
func ParseBoolPtr(value string) *bool {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}

	return &result
}

package utils

import (
	"fmt"
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

// ParseThreshold parses an age-limit filter. Zero means no filter; negatives are rejected.
func ParseThreshold(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid age limit %q", value)
	}
	if result < 0 {
		return 0, fmt.Errorf("invalid age limit %d: must not be negative", result)
	}

	return result, nil
}

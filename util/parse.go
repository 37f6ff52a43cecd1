package util

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseTime accepts RFC3339 or a bare date
func ParseTime(val string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, val)
}

// ParseOptionalInt returns nil for an empty value
func ParseOptionalInt(val string) (*int, error) {
	if val == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func ParseIntOr(val string, fallback int) (int, error) {
	if val == "" {
		return fallback, nil
	}
	return strconv.Atoi(val)
}

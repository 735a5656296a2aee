package utils

import (
	"os"
	"time"
)

// DateLocation is the office timezone. All day-granularity comparisons
// (payment due dates, document deadlines) run against "today" in this zone.
var DateLocation *time.Location

// InitializeDateLocation loads APP_TIMEZONE, defaulting to Africa/Cairo.
func InitializeDateLocation() error {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "Africa/Cairo"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return err
	}
	DateLocation = loc
	return nil
}

// Today returns the current date, truncated to midnight in DateLocation.
func Today() time.Time {
	loc := DateLocation
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

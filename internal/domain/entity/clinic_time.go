package entity

import (
	"strings"
	"time"
)

// Fixed text layouts exchanged with the console and web interfaces.
const (
	DateLayout     = "02-01-2006"       // DD-MM-YYYY
	DateTimeLayout = "02-01-2006 15:04" // DD-MM-YYYY HH:MM, 24-hour clock
)

// ParseDate parses a DD-MM-YYYY string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// ParseDateTime parses a DD-MM-YYYY HH:MM string in UTC.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, strings.TrimSpace(s), time.UTC)
}

// DayBounds returns the inclusive window [start 00:00:00, end 23:59:59]
// covering every day from start to end.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)
	return from, to
}

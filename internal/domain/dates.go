package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-date format used for moveDays results, seed
// files and CLI flags.
const DateLayout = "2006-01-02"

// DurationDays returns the ceiling of the absolute day difference between
// start and end.
func DurationDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// ShiftDate adds days calendar days to t and truncates the result to a
// calendar date in t's location.
func ShiftDate(t time.Time, days int) time.Time {
	shifted := t.AddDate(0, 0, days)
	y, m, d := shifted.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

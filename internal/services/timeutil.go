package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/errors"
)

var windowRegex = regexp.MustCompile(`^(\d+)(mo|m|h|d|w|y)$`)

// windowUnits maps shorthand units to their duration.
var windowUnits = map[string]time.Duration{
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
	"w":  7 * 24 * time.Hour,
	"mo": 30 * 24 * time.Hour,
	"y":  365 * 24 * time.Hour,
}

// FormatDuration formats a duration into a human-readable string
func FormatDuration(duration time.Duration) string {
	if duration < 0 {
		return "0h 0m"
	}

	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// CalculateDuration calculates a human-readable duration between two times.
// A nil end means the entry is still running.
func CalculateDuration(start time.Time, end *time.Time) string {
	if end == nil {
		return fmt.Sprintf("running for %s", FormatDuration(time.Since(start)))
	}
	return FormatDuration(end.Sub(start))
}

// ParseWindow converts time window shorthand ("30m", "2h", "1d", "1w",
// "2mo", "1y") to the range ending at now.
func ParseWindow(window string, now time.Time) (*TimeRange, error) {
	if window == "" {
		return nil, errors.NewValidationError("time window cannot be empty", nil)
	}

	matches := windowRegex.FindStringSubmatch(window)
	if matches == nil {
		return nil, errors.NewValidationError(
			fmt.Sprintf("invalid time window %q, expected forms like 30m, 2h, 1d, 1w, 2mo, 1y", window), nil)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil || value <= 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid time window %q", window), nil)
	}

	duration := time.Duration(value) * windowUnits[matches[2]]
	return &TimeRange{
		Start: now.Add(-duration),
		End:   now,
	}, nil
}

// ParseDay resolves a day argument ("today", "yesterday" or "2006-01-02")
// to midnight of that day in now's location.
func ParseDay(day string, now time.Time) (time.Time, error) {
	switch day {
	case "", "today":
		return startOfDay(now), nil
	case "yesterday":
		return startOfDay(now.AddDate(0, 0, -1)), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", day, now.Location())
	if err != nil {
		return time.Time{}, errors.NewValidationError(
			fmt.Sprintf("invalid day %q, expected today, yesterday or YYYY-MM-DD", day), nil)
	}
	return parsed, nil
}

// DayRange returns the full-day range containing date.
func DayRange(date time.Time) *TimeRange {
	start := startOfDay(date)
	return &TimeRange{
		Start: start,
		End:   start.Add(24 * time.Hour),
	}
}

// IsSameDay reports whether two times fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

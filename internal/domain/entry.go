package domain

import (
	"time"
)

// Entry represents a logged activity in the domain model.
// This is a pure domain model without database-specific concerns.
// A nil EndTime means the activity is still running.
type Entry struct {
	ID        int64
	Activity  string
	StartTime time.Time
	EndTime   *time.Time
}

// NewEntry creates a running Entry for the given activity.
func NewEntry(activity string, startTime time.Time) Entry {
	return Entry{
		Activity:  activity,
		StartTime: startTime,
	}
}

// NewCompletedEntry creates an Entry with both start and end times set.
func NewCompletedEntry(activity string, startTime, endTime time.Time) Entry {
	return Entry{
		Activity:  activity,
		StartTime: startTime,
		EndTime:   &endTime,
	}
}

// IsRunning returns true if the entry is currently running (no end time).
func (e Entry) IsRunning() bool {
	return e.EndTime == nil
}

// Stop sets the end time for the entry.
func (e Entry) Stop(endTime time.Time) Entry {
	e.EndTime = &endTime
	return e
}

// Duration returns the duration of the entry.
// If the entry is still running, it returns the duration up to now.
func (e Entry) Duration() time.Duration {
	if e.EndTime == nil {
		return time.Since(e.StartTime)
	}
	return e.EndTime.Sub(e.StartTime)
}

// IsValid checks if the entry has valid data.
func (e Entry) IsValid() bool {
	if e.Activity == "" {
		return false
	}
	if e.StartTime.IsZero() {
		return false
	}
	if e.EndTime != nil && e.EndTime.Before(e.StartTime) {
		return false
	}
	return true
}

// String returns the activity name for display purposes.
func (e Entry) String() string {
	return e.Activity
}

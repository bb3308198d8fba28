package sqlite

import "time"

// Entry represents a single logged activity
type Entry struct {
	ID        int64
	Activity  string
	StartTime time.Time
	EndTime   *time.Time // NULL while the entry is still running
}

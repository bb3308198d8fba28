package domain

import "time"

// SearchOptions represents search criteria for entries.
// This is a domain model that mirrors the database search options
// but belongs to the domain layer for proper separation of concerns.
// The zero value means "currently running entries".
type SearchOptions struct {
	StartTime   *time.Time
	EndTime     *time.Time
	Activity    *string
	RunningOnly bool
}

package domain

import (
	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite"
)

// EntryMapper handles conversion between domain and database Entry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain Entry to a database Entry.
func (m *EntryMapper) ToDatabase(domainEntry Entry) sqlite.Entry {
	return sqlite.Entry{
		ID:        domainEntry.ID,
		Activity:  domainEntry.Activity,
		StartTime: domainEntry.StartTime,
		EndTime:   domainEntry.EndTime,
	}
}

// FromDatabase converts a database Entry to a domain Entry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.Entry) Entry {
	return Entry{
		ID:        dbEntry.ID,
		Activity:  dbEntry.Activity,
		StartTime: dbEntry.StartTime,
		EndTime:   dbEntry.EndTime,
	}
}

// ToDatabaseSlice converts a slice of domain Entries to database Entries.
func (m *EntryMapper) ToDatabaseSlice(domainEntries []Entry) []sqlite.Entry {
	dbEntries := make([]sqlite.Entry, len(domainEntries))
	for i, entry := range domainEntries {
		dbEntries[i] = m.ToDatabase(entry)
	}
	return dbEntries
}

// FromDatabaseSlice converts a slice of database Entries to domain Entries.
func (m *EntryMapper) FromDatabaseSlice(dbEntries []sqlite.Entry) []Entry {
	domainEntries := make([]Entry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntries[i] = m.FromDatabase(entry)
	}
	return domainEntries
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions.
func (m *SearchOptionsMapper) ToDatabase(domainOpts SearchOptions) sqlite.SearchOptions {
	return sqlite.SearchOptions{
		StartTime:   domainOpts.StartTime,
		EndTime:     domainOpts.EndTime,
		Activity:    domainOpts.Activity,
		RunningOnly: domainOpts.RunningOnly,
	}
}

// FromDatabase converts database SearchOptions to domain SearchOptions.
func (m *SearchOptionsMapper) FromDatabase(dbOpts sqlite.SearchOptions) SearchOptions {
	return SearchOptions{
		StartTime:   dbOpts.StartTime,
		EndTime:     dbOpts.EndTime,
		Activity:    dbOpts.Activity,
		RunningOnly: dbOpts.RunningOnly,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Entry         *EntryMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Entry:         NewEntryMapper(),
		SearchOptions: NewSearchOptionsMapper(),
	}
}

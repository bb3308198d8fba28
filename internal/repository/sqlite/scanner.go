package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// ScanEntry scans a single entry from a database row
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	var endTime sql.NullTime

	err := scanner.Scan(
		&entry.ID,
		&entry.Activity,
		&entry.StartTime,
		&endTime,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		entry.EndTime = &endTime.Time
	}

	return entry, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// ScanEntries scans multiple entries from database rows
func ScanEntries(rows Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		entry, err := ScanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

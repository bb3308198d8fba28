package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/errors"
	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible search parameters. A zero value means
// "currently running entries", matching the stop/current command semantics.
type SearchOptions struct {
	StartTime   *time.Time
	EndTime     *time.Time
	Activity    *string
	RunningOnly bool
}

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateEntry(ctx context.Context, entry *Entry) error

	// Read operations
	GetEntry(ctx context.Context, id int64) (*Entry, error)
	ListEntries(ctx context.Context) ([]*Entry, error)
	SearchEntries(ctx context.Context, opts SearchOptions) ([]*Entry, error)

	// Update operations
	UpdateEntry(ctx context.Context, entry *Entry) error

	// Delete operations
	DeleteEntry(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// Options configures a repository instance
type Options struct {
	Path         string
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// EntryRepository implements the Repository interface on SQLite
type EntryRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a repository with default timeouts
func New(dbPath string) (*EntryRepository, error) {
	return NewWithOptions(Options{
		Path:         dbPath,
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	})
}

// NewWithOptions creates a repository and runs pending migrations
func NewWithOptions(opts Options) (*EntryRepository, error) {
	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &EntryRepository{
		db:           db,
		queryTimeout: opts.QueryTimeout,
		writeTimeout: opts.WriteTimeout,
	}, nil
}

// Close closes the database connection
func (r *EntryRepository) Close() error {
	return r.db.Close()
}

func (r *EntryRepository) readCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

func (r *EntryRepository) writeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.writeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.writeTimeout)
}

// CreateEntry creates a new entry and fills in its generated ID
func (r *EntryRepository) CreateEntry(ctx context.Context, entry *Entry) error {
	ctx, cancel := r.writeCtx(ctx)
	defer cancel()

	query := `
	INSERT INTO entries (activity, start_time, end_time)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, entry.Activity, FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime))
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetEntry retrieves an entry by ID
func (r *EntryRepository) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	query := `
	SELECT id, activity, start_time, end_time
	FROM entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEntry, "entry", id, id)
}

// ListEntries retrieves all entries ordered by start time
func (r *EntryRepository) ListEntries(ctx context.Context) ([]*Entry, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	query := `
	SELECT id, activity, start_time, end_time
	FROM entries
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanEntries, "entries")
}

// UpdateEntry updates an existing entry
func (r *EntryRepository) UpdateEntry(ctx context.Context, entry *Entry) error {
	ctx, cancel := r.writeCtx(ctx)
	defer cancel()

	query := `
	UPDATE entries
	SET activity = ?, start_time = ?, end_time = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", entry.ID, entry.Activity, FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime), entry.ID)
}

// DeleteEntry deletes an entry by ID
func (r *EntryRepository) DeleteEntry(ctx context.Context, id int64) error {
	ctx, cancel := r.writeCtx(ctx)
	defer cancel()

	query := `DELETE FROM entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", id, id)
}

// SearchEntries searches for entries based on the provided options
func (r *EntryRepository) SearchEntries(ctx context.Context, opts SearchOptions) ([]*Entry, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	var conditions []string
	var args []any

	// Build time window conditions on the entry start time
	if opts.StartTime != nil || opts.EndTime != nil {
		timeCondition := "("
		if opts.StartTime != nil {
			timeCondition += "start_time >= ?"
			args = append(args, FormatTimePtrForDB(opts.StartTime))
		}
		if opts.StartTime != nil && opts.EndTime != nil {
			timeCondition += " AND "
		}
		if opts.EndTime != nil {
			timeCondition += "start_time <= ?"
			args = append(args, FormatTimePtrForDB(opts.EndTime))
		}
		timeCondition += ")"
		conditions = append(conditions, timeCondition)
	} else if opts.Activity == nil && !opts.RunningOnly {
		// No criteria at all means "what is running right now"
		conditions = append(conditions, "end_time IS NULL")
	}

	// Case-insensitive contains on the activity text
	if opts.Activity != nil && *opts.Activity != "" {
		conditions = append(conditions, "activity LIKE ?")
		args = append(args, "%"+*opts.Activity+"%")
	}

	if opts.RunningOnly {
		conditions = append(conditions, "end_time IS NULL")
	}

	query := `
	SELECT id, activity, start_time, end_time
	FROM entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC"

	return QueryMultiple(ctx, r.db, query, ScanEntries, "entries", args...)
}

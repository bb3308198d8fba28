package services

import (
	"context"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite"
	"github.com/ElangBogopa/time-logger-sub000/internal/timeparse"
)

// TimeRange represents a time period with start and end times
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParsedActivity is a core parse result resolved onto a concrete date.
// The embedded ParsedTime carries clock-only "HH:MM" values and the matched
// spans; ResolvedStart/ResolvedEnd pin those clocks to the anchor's date.
type ParsedActivity struct {
	timeparse.ParsedTime
	ResolvedStart *time.Time `json:"resolvedStart"`
	ResolvedEnd   *time.Time `json:"resolvedEnd"`
}

// LoggedActivity is the outcome of logging one line of activity text.
// Stopped lists the previously running entries that were closed first.
type LoggedActivity struct {
	Entry   *domain.Entry   `json:"entry"`
	Parsed  *ParsedActivity `json:"parsed,omitempty"`
	Stopped []*domain.Entry `json:"stopped,omitempty"`
}

// EntryDetail pairs an entry with its human-readable duration.
type EntryDetail struct {
	Entry    *domain.Entry `json:"entry"`
	Duration string        `json:"duration"`
}

// SearchCriteria represents criteria for searching entries
type SearchCriteria struct {
	TimeRange   *TimeRange `json:"time_range,omitempty"`
	TextFilter  string     `json:"text_filter,omitempty"`
	RunningOnly bool       `json:"running_only,omitempty"`
}

// SortOrder defines how entry results should be sorted
type SortOrder string

const (
	SortByRecentFirst SortOrder = "recent_first" // Most recently started (default)
	SortByOldestFirst SortOrder = "oldest_first" // Least recently started
	SortByActivity    SortOrder = "activity"     // Alphabetical by activity text
	SortByDuration    SortOrder = "duration"     // Longest sessions first
)

// ActivityTotal aggregates all sessions of one activity within a window.
type ActivityTotal struct {
	Activity     string    `json:"activity"`
	TotalTime    string    `json:"total_time"`
	TotalMinutes int       `json:"total_minutes"`
	SessionCount int       `json:"session_count"`
	LastWorked   time.Time `json:"last_worked"`
	IsRunning    bool      `json:"is_running"`
}

// DaySummary represents summary statistics for a single day
type DaySummary struct {
	Date           time.Time        `json:"date"`
	TotalTime      string           `json:"total_time"`
	TotalMinutes   int              `json:"total_minutes"`
	EntryCount     int              `json:"entry_count"`
	CompletedCount int              `json:"completed_count"`
	RunningCount   int              `json:"running_count"`
	Activities     []*ActivityTotal `json:"activities"`
}

// ParseService interprets free-form activity text using the pattern engine
type ParseService interface {
	Parse(ctx context.Context, text string, anchor time.Time) (*ParsedActivity, error)
	Detect(ctx context.Context, text string) ([]timeparse.Detection, error)
	Segments(ctx context.Context, text string) ([]timeparse.Segment, error)
}

// EntryService handles the entry lifecycle and logging workflow
type EntryService interface {
	// Logging workflow
	LogActivity(ctx context.Context, text string, now time.Time) (*LoggedActivity, error)
	ResumeEntry(ctx context.Context, id int64, now time.Time) (*LoggedActivity, error)
	StopRunning(ctx context.Context, now time.Time) ([]*domain.Entry, error)
	GetRunning(ctx context.Context) ([]*domain.Entry, error)

	// Entry CRUD operations
	CreateEntry(ctx context.Context, activity string, start time.Time, end *time.Time) (*domain.Entry, error)
	GetEntry(ctx context.Context, id int64) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// SearchService handles search and discovery operations
type SearchService interface {
	SearchEntries(ctx context.Context, criteria SearchCriteria) ([]*EntryDetail, error)
	SortEntries(entries []*EntryDetail, order SortOrder) []*EntryDetail
	GetRecentEntries(ctx context.Context, limit int) ([]*EntryDetail, error)
}

// ReportingService handles aggregation and reporting operations
type ReportingService interface {
	DailySummary(ctx context.Context, day time.Time) (*DaySummary, error)
	ActivityTotals(ctx context.Context, window *TimeRange) ([]*ActivityTotal, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	ParseService     ParseService
	EntryService     EntryService
	SearchService    SearchService
	ReportingService ReportingService
}

// NewServiceContainer wires all services over a shared repository.
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config) *ServiceContainer {
	parseService := NewParseService(cfg)
	return &ServiceContainer{
		ParseService:     parseService,
		EntryService:     NewEntryService(repo, parseService, cfg),
		SearchService:    NewSearchService(repo),
		ReportingService: NewReportingService(repo),
	}
}

// Package api exposes the business operations of the time logger behind a
// single interface. The CLI and HTTP server depend only on this surface.
package api

import (
	"context"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
	"github.com/ElangBogopa/time-logger-sub000/internal/services"
	"github.com/ElangBogopa/time-logger-sub000/internal/timeparse"
)

// API defines the interface for all time logging operations.
type API interface {
	// Activity logging workflow
	LogActivity(ctx context.Context, text string, now time.Time) (*services.LoggedActivity, error)
	ResumeEntry(ctx context.Context, id int64, now time.Time) (*services.LoggedActivity, error)
	StopRunning(ctx context.Context, now time.Time) ([]*domain.Entry, error)
	GetRunning(ctx context.Context) ([]*domain.Entry, error)

	// Entry CRUD operations
	CreateEntry(ctx context.Context, activity string, start time.Time, end *time.Time) (*domain.Entry, error)
	GetEntry(ctx context.Context, id int64) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error

	// Search and reporting
	SearchEntries(ctx context.Context, criteria services.SearchCriteria) ([]*services.EntryDetail, error)
	RecentEntries(ctx context.Context, limit int) ([]*services.EntryDetail, error)
	DailySummary(ctx context.Context, day time.Time) (*services.DaySummary, error)
	ActivityTotals(ctx context.Context, window *services.TimeRange) ([]*services.ActivityTotal, error)

	// Text parsing passthroughs to the pattern engine
	ParseText(ctx context.Context, text string, anchor time.Time) (*services.ParsedActivity, error)
	DetectPatterns(ctx context.Context, text string) ([]timeparse.Detection, error)
	HighlightSegments(ctx context.Context, text string) ([]timeparse.Segment, error)
}

package api

import (
	"context"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite"
	"github.com/ElangBogopa/time-logger-sub000/internal/services"
	"github.com/ElangBogopa/time-logger-sub000/internal/timeparse"
)

// BusinessAPI implements the API interface over the service container.
type BusinessAPI struct {
	services *services.ServiceContainer
}

// New creates an API over an already-wired service container.
func New(container *services.ServiceContainer) *BusinessAPI {
	return &BusinessAPI{services: container}
}

// NewFromRepository wires the default service container over a repository.
func NewFromRepository(repo sqlite.Repository, cfg *config.Config) *BusinessAPI {
	return New(services.NewServiceContainer(repo, cfg))
}

// Activity logging workflow

// LogActivity parses one line of activity text and stores the entry it describes.
func (a *BusinessAPI) LogActivity(ctx context.Context, text string, now time.Time) (*services.LoggedActivity, error) {
	return a.services.EntryService.LogActivity(ctx, text, now)
}

// ResumeEntry starts a new running entry with the same activity as entry id.
func (a *BusinessAPI) ResumeEntry(ctx context.Context, id int64, now time.Time) (*services.LoggedActivity, error) {
	return a.services.EntryService.ResumeEntry(ctx, id, now)
}

// StopRunning stops every running entry at the given time.
func (a *BusinessAPI) StopRunning(ctx context.Context, now time.Time) ([]*domain.Entry, error) {
	return a.services.EntryService.StopRunning(ctx, now)
}

// GetRunning returns the currently running entries.
func (a *BusinessAPI) GetRunning(ctx context.Context) ([]*domain.Entry, error) {
	return a.services.EntryService.GetRunning(ctx)
}

// Entry CRUD operations

// CreateEntry stores an entry with explicit times.
func (a *BusinessAPI) CreateEntry(ctx context.Context, activity string, start time.Time, end *time.Time) (*domain.Entry, error) {
	return a.services.EntryService.CreateEntry(ctx, activity, start, end)
}

// GetEntry retrieves an entry by its ID.
func (a *BusinessAPI) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	return a.services.EntryService.GetEntry(ctx, id)
}

// UpdateEntry updates an existing entry.
func (a *BusinessAPI) UpdateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	return a.services.EntryService.UpdateEntry(ctx, entry)
}

// DeleteEntry deletes an entry by its ID.
func (a *BusinessAPI) DeleteEntry(ctx context.Context, id int64) error {
	return a.services.EntryService.DeleteEntry(ctx, id)
}

// Search and reporting

// SearchEntries returns entries matching the criteria with display durations.
func (a *BusinessAPI) SearchEntries(ctx context.Context, criteria services.SearchCriteria) ([]*services.EntryDetail, error) {
	return a.services.SearchService.SearchEntries(ctx, criteria)
}

// RecentEntries returns the most recently started entries, up to limit.
func (a *BusinessAPI) RecentEntries(ctx context.Context, limit int) ([]*services.EntryDetail, error) {
	return a.services.SearchService.GetRecentEntries(ctx, limit)
}

// DailySummary returns aggregate statistics for one day.
func (a *BusinessAPI) DailySummary(ctx context.Context, day time.Time) (*services.DaySummary, error) {
	return a.services.ReportingService.DailySummary(ctx, day)
}

// ActivityTotals returns per-activity rollups within the window. A nil
// window covers all entries.
func (a *BusinessAPI) ActivityTotals(ctx context.Context, window *services.TimeRange) ([]*services.ActivityTotal, error) {
	return a.services.ReportingService.ActivityTotals(ctx, window)
}

// Text parsing passthroughs

// ParseText interprets activity text without storing anything.
func (a *BusinessAPI) ParseText(ctx context.Context, text string, anchor time.Time) (*services.ParsedActivity, error) {
	return a.services.ParseService.Parse(ctx, text, anchor)
}

// DetectPatterns returns the resolved time pattern detections for the text.
func (a *BusinessAPI) DetectPatterns(ctx context.Context, text string) ([]timeparse.Detection, error) {
	return a.services.ParseService.Detect(ctx, text)
}

// HighlightSegments splits the text into plain and highlighted runs.
func (a *BusinessAPI) HighlightSegments(ctx context.Context, text string) ([]timeparse.Segment, error) {
	return a.services.ParseService.Segments(ctx, text)
}

// compile-time interface check
var _ API = (*BusinessAPI)(nil)

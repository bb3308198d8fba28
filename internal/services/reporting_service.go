package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
	"github.com/ElangBogopa/time-logger-sub000/internal/logging"
	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	log    *logging.Logger
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository) ReportingService {
	return &reportingServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		log:    logging.Named("reporting"),
	}
}

// DailySummary returns aggregate statistics for all entries started on the
// given day: total tracked time, per-activity rollups and running counts.
func (r *reportingServiceImpl) DailySummary(ctx context.Context, day time.Time) (*DaySummary, error) {
	window := DayRange(day)

	totals, err := r.ActivityTotals(ctx, window)
	if err != nil {
		return nil, err
	}

	summary := &DaySummary{
		Date:       startOfDay(day),
		Activities: totals,
	}
	for _, total := range totals {
		summary.TotalMinutes += total.TotalMinutes
		summary.EntryCount += total.SessionCount
		if total.IsRunning {
			summary.RunningCount++
		}
	}
	// Logging stops prior running entries, so an activity with a running
	// session has exactly one.
	summary.CompletedCount = summary.EntryCount - summary.RunningCount
	summary.TotalTime = FormatDuration(time.Duration(summary.TotalMinutes) * time.Minute)

	r.log.Debug().
		Str("day", summary.Date.Format("2006-01-02")).
		Int("entries", summary.EntryCount).
		Int("total_minutes", summary.TotalMinutes).
		Msg("daily summary computed")

	return summary, nil
}

// ActivityTotals aggregates entries started within the window by activity
// text, case-insensitively, ordered by total time descending.
func (r *reportingServiceImpl) ActivityTotals(ctx context.Context, window *TimeRange) ([]*ActivityTotal, error) {
	opts := sqlite.SearchOptions{}
	if window != nil {
		start := window.Start
		end := window.End
		opts.StartTime = &start
		opts.EndTime = &end
	}

	var dbEntries []*sqlite.Entry
	var err error
	if window == nil {
		dbEntries, err = r.repo.ListEntries(ctx)
	} else {
		dbEntries, err = r.repo.SearchEntries(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	byActivity := make(map[string]*ActivityTotal)
	for _, dbEntry := range dbEntries {
		entry := r.mapper.Entry.FromDatabase(*dbEntry)
		key := strings.ToLower(entry.Activity)

		total, ok := byActivity[key]
		if !ok {
			total = &ActivityTotal{
				Activity:   entry.Activity,
				LastWorked: entry.StartTime,
			}
			byActivity[key] = total
		}

		total.SessionCount++
		total.TotalMinutes += int(entry.Duration().Minutes())
		if entry.StartTime.After(total.LastWorked) {
			total.LastWorked = entry.StartTime
		}
		if entry.IsRunning() {
			total.IsRunning = true
		}
	}

	totals := make([]*ActivityTotal, 0, len(byActivity))
	for _, total := range byActivity {
		total.TotalTime = FormatDuration(time.Duration(total.TotalMinutes) * time.Minute)
		totals = append(totals, total)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].TotalMinutes != totals[j].TotalMinutes {
			return totals[i].TotalMinutes > totals[j].TotalMinutes
		}
		return totals[i].Activity < totals[j].Activity
	})

	return totals, nil
}

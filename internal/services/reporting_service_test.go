package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingService_DailySummary(t *testing.T) {
	now := time.Date(2026, 6, 23, 12, 0, 0, 0, time.UTC)
	container := seedEntries(t, now)
	svc := container.ReportingService

	summary, err := svc.DailySummary(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.EntryCount)
	assert.Equal(t, 2, summary.CompletedCount)
	assert.Equal(t, 1, summary.RunningCount)
	assert.NotEmpty(t, summary.TotalTime)
	// 1h standup + 1h deep work completed, plus ~30m still running
	assert.GreaterOrEqual(t, summary.TotalMinutes, 149)
	assert.Len(t, summary.Activities, 3)

	t.Run("should return an empty summary for a day without entries", func(t *testing.T) {
		empty, err := svc.DailySummary(context.Background(), now.AddDate(0, 0, -7))
		require.NoError(t, err)

		assert.Zero(t, empty.EntryCount)
		assert.Zero(t, empty.TotalMinutes)
		assert.Empty(t, empty.Activities)
	})
}

func TestReportingService_ActivityTotals(t *testing.T) {
	now := time.Date(2026, 6, 23, 12, 0, 0, 0, time.UTC)
	container := seedEntries(t, now)
	svc := container.ReportingService

	// Another deep work session, to exercise the per-activity rollup
	end := now.Add(-10 * time.Minute)
	_, err := container.EntryService.CreateEntry(context.Background(), "Deep Work", now.Add(-40*time.Minute), &end)
	require.NoError(t, err)

	totals, err := svc.ActivityTotals(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, totals, 3)

	byActivity := make(map[string]*ActivityTotal, len(totals))
	for _, total := range totals {
		byActivity[total.Activity] = total
	}

	deepWork, ok := byActivity["deep work"]
	require.True(t, ok, "case variants aggregate under one activity")
	assert.Equal(t, 2, deepWork.SessionCount)
	assert.Equal(t, 90, deepWork.TotalMinutes)
	assert.False(t, deepWork.IsRunning)

	planning := byActivity["planning meeting"]
	require.NotNil(t, planning)
	assert.True(t, planning.IsRunning)

	t.Run("should order by total time descending", func(t *testing.T) {
		for i := 1; i < len(totals); i++ {
			assert.GreaterOrEqual(t, totals[i-1].TotalMinutes, totals[i].TotalMinutes)
		}
	})

	t.Run("should respect the window", func(t *testing.T) {
		windowed, err := svc.ActivityTotals(context.Background(), &TimeRange{
			Start: now.Add(-time.Hour),
			End:   now,
		})
		require.NoError(t, err)
		require.Len(t, windowed, 2)
	})
}

package cli

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElangBogopa/time-logger-sub000/internal/services"
)

func TestLogCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	pinClock(t, time.Date(2026, 6, 23, 14, 0, 0, 0, time.UTC))
	cmd := NewLogCommand(app)
	ctx := context.Background()

	t.Run("logs a completed entry from a time range", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"worked", "on", "the", "report", "from", "9am", "to", "10:30"})
		require.NoError(t, err)

		details, err := app.api.SearchEntries(ctx, services.SearchCriteria{TextFilter: "report"})
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "worked on the report", details[0].Entry.Activity)
		assert.False(t, details[0].Entry.IsRunning())
		assert.Equal(t, "1h 30m", details[0].Duration)
	})

	t.Run("starts a running entry from plain text", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"writing", "docs"})
		require.NoError(t, err)

		running, err := app.api.GetRunning(ctx)
		require.NoError(t, err)
		require.Len(t, running, 1)
		assert.Equal(t, "writing docs", running[0].Activity)
	})

	t.Run("logging again stops the previous running entry", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"standup"})
		require.NoError(t, err)

		running, err := app.api.GetRunning(ctx)
		require.NoError(t, err)
		require.Len(t, running, 1)
		assert.Equal(t, "standup", running[0].Activity)
	})

	t.Run("rejects text that is only a time pattern", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"for", "2", "hours"})
		assert.Error(t, err)
	})
}

func TestParseCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	pinClock(t, time.Date(2026, 6, 23, 14, 0, 0, 0, time.UTC))
	cmd := NewParseCommand(app)
	ctx := context.Background()

	t.Run("parses without storing anything", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"lunch", "with", "the", "team", "at", "noon"})
		require.NoError(t, err)

		details, err := app.api.SearchEntries(ctx, services.SearchCriteria{TextFilter: "lunch"})
		require.NoError(t, err)
		assert.Empty(t, details)
	})

	t.Run("handles text without time patterns", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"fix", "issue", "#123"})
		assert.NoError(t, err)
	})
}

func TestListCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	now := time.Date(2026, 6, 23, 14, 0, 0, 0, time.UTC)
	pinClock(t, now)
	ctx := context.Background()

	seed := func(text string) {
		_, err := app.api.LogActivity(ctx, text, now)
		require.NoError(t, err)
	}
	seed("sprint planning from 9:00 to 10:00")
	seed("deep work from 10:00 to 13:00")

	cmd := NewListCommand(app)

	t.Run("lists all entries without arguments", func(t *testing.T) {
		err := cmd.Execute(ctx, nil)
		assert.NoError(t, err)
	})

	t.Run("accepts a window shorthand and text filter", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"8h", "planning"})
		assert.NoError(t, err)
	})

	t.Run("treats a non-window first argument as text", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"deep", "work"})
		assert.NoError(t, err)
	})
}

func TestStopAndCurrentCommands(t *testing.T) {
	app := setupTestApp(t)
	now := time.Date(2026, 6, 23, 14, 0, 0, 0, time.UTC)
	pinClock(t, now)
	ctx := context.Background()

	currentCmd := NewCurrentCommand(app)
	stopCmd := NewStopCommand(app)

	t.Run("current and stop with nothing running", func(t *testing.T) {
		assert.NoError(t, currentCmd.Execute(ctx, nil))
		assert.NoError(t, stopCmd.Execute(ctx, nil))
	})

	t.Run("stop closes the running entry", func(t *testing.T) {
		_, err := app.api.LogActivity(ctx, "writing docs", now)
		require.NoError(t, err)

		assert.NoError(t, currentCmd.Execute(ctx, nil))
		require.NoError(t, stopCmd.Execute(ctx, nil))

		running, err := app.api.GetRunning(ctx)
		require.NoError(t, err)
		assert.Empty(t, running)
	})
}

func TestSummaryCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	now := time.Date(2026, 6, 23, 14, 0, 0, 0, time.UTC)
	pinClock(t, now)
	ctx := context.Background()

	_, err := app.api.LogActivity(ctx, "sprint planning from 9:00 to 10:00", now)
	require.NoError(t, err)

	cmd := NewSummaryCommand(app)

	t.Run("summarizes today by default", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, nil))
	})

	t.Run("accepts an explicit date", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, []string{"2026-06-23"}))
	})

	t.Run("accepts yesterday", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, []string{"yesterday"}))
	})

	t.Run("rejects an unparseable day", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, []string{"someday"}))
	})
}

func TestDeleteCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	now := time.Date(2026, 6, 23, 14, 0, 0, 0, time.UTC)
	pinClock(t, now)
	ctx := context.Background()

	logged, err := app.api.LogActivity(ctx, "sprint planning from 9:00 to 10:00", now)
	require.NoError(t, err)

	cmd := NewDeleteCommand(app)

	t.Run("deletes an existing entry", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{strconv.FormatInt(logged.Entry.ID, 10)})
		require.NoError(t, err)

		_, err = app.api.GetEntry(ctx, logged.Entry.ID)
		assert.Error(t, err)
	})

	t.Run("rejects a missing entry", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"99999"})
		assert.Error(t, err)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"abc"})
		assert.Error(t, err)
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, nil))
	})
}

func TestResumeCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	now := time.Date(2026, 6, 23, 14, 0, 0, 0, time.UTC)
	pinClock(t, now)
	ctx := context.Background()

	cmd := NewResumeCommand(app)

	t.Run("lists recent entries when no id is given", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, nil))
	})

	t.Run("restarts the activity of a completed entry", func(t *testing.T) {
		logged, err := app.api.LogActivity(ctx, "sprint planning from 9:00 to 10:00", now)
		require.NoError(t, err)

		err = cmd.Execute(ctx, []string{strconv.FormatInt(logged.Entry.ID, 10)})
		require.NoError(t, err)

		running, err := app.api.GetRunning(ctx)
		require.NoError(t, err)
		require.Len(t, running, 1)
		assert.Equal(t, "sprint planning", running[0].Activity)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, []string{"abc"}))
	})
}

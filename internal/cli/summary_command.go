package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ElangBogopa/time-logger-sub000/internal/services"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app *App
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

// Execute runs the summary command. The optional argument selects the day:
// "today" (default), "yesterday" or an explicit YYYY-MM-DD date.
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	dayArg := ""
	if len(args) > 0 {
		dayArg = args[0]
	}

	day, err := services.ParseDay(dayArg, timeNow())
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	summary, err := c.app.api.DailySummary(ctx, day)
	if err != nil {
		return c.app.errors.Handle("build summary", err)
	}

	width := c.app.config.Display.SummaryWidth
	separator := strings.Repeat("-", width)

	fmt.Printf("Summary for %s\n", summary.Date.Format("2006-01-02"))
	fmt.Println(separator)

	if summary.EntryCount == 0 {
		fmt.Println("No entries")
		return nil
	}

	for _, activity := range summary.Activities {
		status := ""
		if activity.IsRunning {
			status = " [" + c.app.runningStatus() + "]"
		}
		fmt.Printf("%-*s %8s  (%d sessions)%s\n",
			width-30, truncate(activity.Activity, width-30), activity.TotalTime, activity.SessionCount, status)
	}

	fmt.Println(separator)
	fmt.Printf("Total: %s across %d entries\n", summary.TotalTime, summary.EntryCount)

	return nil
}

// truncate shortens s to max characters with an ellipsis.
func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

package cli

import (
	"context"
	"fmt"
	"strconv"
)

// defaultResumeLimit caps the recent entries shown by a bare resume.
const defaultResumeLimit = 10

// ResumeCommand handles the resume command
type ResumeCommand struct {
	app *App
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{app: app}
}

// Execute runs the resume command. With no arguments it lists recent
// entries to pick from; with an id it restarts that entry's activity.
func (c *ResumeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showRecent(ctx)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q", args[0])
	}

	resumed, err := c.app.api.ResumeEntry(ctx, id, timeNow())
	if err != nil {
		return c.app.errors.Handle("resume entry", err)
	}

	for _, stopped := range resumed.Stopped {
		fmt.Printf("Stopped: %s\n", c.app.formatEntryLine(stopped))
	}
	fmt.Printf("Resumed: %s (at %s)\n",
		resumed.Entry.Activity, resumed.Entry.StartTime.Format("15:04"))

	return nil
}

// showRecent lists recent entries so the user can pick an id to resume.
func (c *ResumeCommand) showRecent(ctx context.Context) error {
	recent, err := c.app.api.RecentEntries(ctx, defaultResumeLimit)
	if err != nil {
		return c.app.errors.Handle("list recent entries", err)
	}

	if len(recent) == 0 {
		fmt.Println("No entries to resume")
		return nil
	}

	fmt.Println("Recent entries:")
	c.app.printEntries(recent)
	fmt.Println("Run 'timelogger resume <entry-id>' to resume one")

	return nil
}

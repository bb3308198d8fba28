package cli

import (
	"context"
	"fmt"

	"github.com/ElangBogopa/time-logger-sub000/internal/services"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app *App
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{app: app}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	running, err := c.app.api.GetRunning(ctx)
	if err != nil {
		return c.app.errors.Handle("get current activity", err)
	}

	if len(running) == 0 {
		fmt.Println("No activity is currently running")
		return nil
	}

	for _, entry := range running {
		fmt.Printf("%s (started %s, %s)\n",
			entry.Activity,
			entry.StartTime.Format(c.app.timeFormat()),
			services.FormatDuration(entry.Duration()))
	}

	return nil
}

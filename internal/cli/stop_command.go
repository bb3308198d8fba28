package cli

import (
	"context"
	"fmt"
)

// StopCommand handles the stop command
type StopCommand struct {
	app *App
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{app: app}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	stopped, err := c.app.api.StopRunning(ctx, timeNow())
	if err != nil {
		return c.app.errors.Handle("stop running entries", err)
	}

	if len(stopped) == 0 {
		fmt.Println("No activity is currently running")
		return nil
	}

	for _, entry := range stopped {
		fmt.Printf("Stopped: %s\n", c.app.formatEntryLine(entry))
	}

	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

// LogCommand handles the log command: parse one line of activity text and
// store the entry it describes.
type LogCommand struct {
	app *App
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{app: app}
}

// Execute runs the log command
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")

	logged, err := c.app.api.LogActivity(ctx, text, timeNow())
	if err != nil {
		return c.app.errors.Handle("log activity", err)
	}

	for _, stopped := range logged.Stopped {
		fmt.Printf("Stopped: %s\n", c.app.formatEntryLine(stopped))
	}

	if logged.Entry.IsRunning() {
		fmt.Printf("Started: %s (at %s)\n",
			logged.Entry.Activity, logged.Entry.StartTime.Format("15:04"))
	} else {
		fmt.Printf("Logged: %s\n", c.app.formatEntryLine(logged.Entry))
	}

	return nil
}

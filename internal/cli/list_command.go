package cli

import (
	"context"
	"strings"

	"github.com/ElangBogopa/time-logger-sub000/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command. Arguments are an optional time window
// shorthand ("2h", "1d") followed by optional search text.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	criteria := services.SearchCriteria{}

	if len(args) > 0 {
		if window, err := services.ParseWindow(args[0], timeNow()); err == nil {
			criteria.TimeRange = window
			args = args[1:]
		}
		if len(args) > 0 {
			criteria.TextFilter = strings.Join(args, " ")
		}
	}

	details, err := c.app.api.SearchEntries(ctx, criteria)
	if err != nil {
		return c.app.errors.Handle("list entries", err)
	}

	c.app.printEntries(details)
	return nil
}

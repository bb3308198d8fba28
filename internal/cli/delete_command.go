package cli

import (
	"context"
	"fmt"
	"strconv"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <entry-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q", args[0])
	}

	entry, err := c.app.api.GetEntry(ctx, id)
	if err != nil {
		return c.app.errors.Handle("delete entry", err)
	}

	if err := c.app.api.DeleteEntry(ctx, id); err != nil {
		return c.app.errors.Handle("delete entry", err)
	}

	fmt.Printf("Deleted: %s\n", c.app.formatEntryLine(entry))
	return nil
}

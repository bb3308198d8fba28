package cli

import (
	"context"

	"github.com/ElangBogopa/time-logger-sub000/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute starts the HTTP server and blocks until ctx is cancelled.
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	srv := server.New(c.app.api, c.app.config)
	return srv.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ElangBogopa/time-logger-sub000/internal/api"
	"github.com/ElangBogopa/time-logger-sub000/internal/cli"
	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/logging"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.FromEnv())

	// Testing runs entirely in memory; everything else hits disk
	repo, err := config.CreateRepositoryForEnvironment(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	businessAPI := api.NewFromRepository(repo, cfg)
	root := cli.NewRootCommand(businessAPI, cfg)

	// Ctrl-C cancels the command context, which also drives graceful
	// shutdown of the serve command.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ElangBogopa/time-logger-sub000/internal/api"
	"github.com/ElangBogopa/time-logger-sub000/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "timelogger",
		Short: "Log activities in natural language",
		Long: `Time Logger (timelogger) records what you work on from plain sentences.
It extracts times and durations from the text itself, so "worked on the
report from 9am to 10:30" becomes a completed entry and "starting standup"
begins a running one.

EXAMPLES:
  timelogger log "worked on the report from 9am to 10:30"
  timelogger log "quick call with sales for 45 minutes"
  timelogger parse "lunch with the team at noon"   # Dry run, shows the extraction
  timelogger list 2h                               # Entries from the last 2 hours
  timelogger list 1d report                        # Last day, text match "report"
  timelogger current                               # Show the running activity
  timelogger stop                                  # Stop whatever is running
  timelogger resume                                # Pick a recent entry to restart
  timelogger summary yesterday                     # Per-activity totals for a day
  timelogger delete 42                             # Remove entry 42
  timelogger serve                                 # Run the HTTP API

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

  Database:
    TL_DB_DIR                    Database directory (default: ~/.timelogger)
    TL_DB_FILENAME               Database filename (default: timelogger.db)
    TL_DB_QUERY_TIMEOUT          Query timeout (default: 10s)
    TL_DB_WRITE_TIMEOUT          Write timeout (default: 5s)

  Display:
    TL_TIME_DISPLAY_FORMAT       Time format (default: 2006-01-02 15:04:05)
    TL_DISPLAY_RUNNING_STATUS    Running status text (default: running)
    TL_DISPLAY_SUMMARY_WIDTH     Summary display width (default: 75)
    TL_DISPLAY_DATE_ONLY         Show date only (default: false)

  Parsing and validation:
    TL_PARSER_MAX_TEXT_LENGTH    Max input text length (default: 1000)
    TL_VALIDATION_ACTIVITY_MIN   Min activity length (default: 1)
    TL_VALIDATION_ACTIVITY_MAX   Max activity length (default: 255)
    TL_VALIDATION_MAX_DURATION   Max entry duration (default: 24h)

  Application:
    TL_APP_TIMEOUT               Command timeout (default: 60s)
    TL_APP_VERBOSE               Enable verbose output (default: false)

  Server:
    TL_SERVER_ADDR               HTTP listen address (default: :8080)
    TL_SERVER_CORS_ORIGINS       Allowed CORS origins, comma separated

TIME WINDOWS:
  list accepts shorthand windows: 30m, 2h, 1d, 2w, 3mo, 1y
  summary accepts a day: today, yesterday, or YYYY-MM-DD`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with the given base context.
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command returns the underlying cobra command, used in tests.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TL_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TL_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TL_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TL_DB_WRITE_TIMEOUT)")

	// Time configuration
	flags.String("time-format", "", "Time display format (overrides TL_TIME_DISPLAY_FORMAT)")

	// Display configuration
	flags.Int("summary-width", 0, "Summary display width (overrides TL_DISPLAY_SUMMARY_WIDTH)")
	flags.String("running-status", "", "Running status text (overrides TL_DISPLAY_RUNNING_STATUS)")
	flags.Bool("date-only", false, "Show date only in displays (overrides TL_DISPLAY_DATE_ONLY)")

	// Parser and validation configuration
	flags.Int("max-text-length", 0, "Maximum input text length (overrides TL_PARSER_MAX_TEXT_LENGTH)")
	flags.Int("activity-min-length", 0, "Minimum activity length (overrides TL_VALIDATION_ACTIVITY_MIN)")
	flags.Int("activity-max-length", 0, "Maximum activity length (overrides TL_VALIDATION_ACTIVITY_MAX)")
	flags.Duration("max-duration", 0, "Maximum entry duration (overrides TL_VALIDATION_MAX_DURATION)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TL_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TL_APP_VERBOSE)")

	// Server configuration
	flags.String("server-addr", "", "HTTP listen address (overrides TL_SERVER_ADDR)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	logCmd := &cobra.Command{
		Use:   "log [activity text]",
		Short: "Log an activity from natural language",
		Long: `Log an activity described in plain text. Times and durations found in
the text become the entry's start and end; without any time pattern the
activity starts now and keeps running until stopped.

Examples:
  timelogger log "worked on the report from 9am to 10:30"
  timelogger log "code review for 45 minutes"
  timelogger log "starting the deploy"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewLogCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse [activity text]",
		Short: "Show what would be extracted from text",
		Long: `Parse activity text without saving anything. Prints the cleaned
activity, the extracted time range and each detected pattern, with the
matched spans highlighted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewParseCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [window] [text]",
		Short: "List logged entries",
		Long: `List entries with optional filtering.

Window filters support: 30m, 2h, 1d, 2w, 3mo, 1y
Text filters match within activity text (case-insensitive)

Examples:
  timelogger list                # All entries
  timelogger list 2h             # Entries from the last 2 hours
  timelogger list report         # Entries containing "report"
  timelogger list 1d standup     # Last day, containing "standup"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewListCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Show the running activity",
		Long:  "Display the currently running activity, if any.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewCurrentCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running activity",
		Long:  "Close any currently running entries, ending them now.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewStopCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [day]",
		Short: "Show per-activity totals for a day",
		Long: `Show time totals grouped by activity for one day.

The day can be "today" (the default), "yesterday" or YYYY-MM-DD.

Examples:
  timelogger summary
  timelogger summary yesterday
  timelogger summary 2026-08-01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewSummaryCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete an entry",
		Long:  "Delete one entry by id. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewDeleteCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	resumeCmd := &cobra.Command{
		Use:   "resume [entry-id]",
		Short: "Restart a previous activity",
		Long: `Restart the activity of a previous entry as a new running entry.
Without an id, lists recent entries to pick from.

Examples:
  timelogger resume        # Show recent entries
  timelogger resume 42     # Restart the activity of entry 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewResumeCommand(NewApp(r.api, r.config))
			return handler.Execute(ctx, args)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the time logger over HTTP. Exposes live parse/detect/segment
endpoints plus entry and summary endpoints under /api/v1, until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No timeout: serve runs until the signal context is cancelled.
			handler := NewServeCommand(NewApp(r.api, r.config))
			return handler.Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		logCmd,
		parseCmd,
		listCmd,
		currentCmd,
		stopCmd,
		summaryCmd,
		deleteCmd,
		resumeCmd,
		serveCmd,
	)
}

// commandContext derives a per-command context with the configured timeout.
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}
	applyFlagOverrides(r.config, r.cmd.PersistentFlags())
	return nil
}

// applyFlagOverrides copies set flag values onto the configuration. Zero
// values mean the flag was not given and the config keeps its current value.
func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet) {
	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		cfg.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		cfg.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		cfg.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		cfg.Database.WriteTimeout = writeTimeout
	}

	// Time configuration
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		cfg.Time.DisplayFormat = timeFormat
	}

	// Display configuration
	if summaryWidth, _ := flags.GetInt("summary-width"); summaryWidth > 0 {
		cfg.Display.SummaryWidth = summaryWidth
	}
	if runningStatus, _ := flags.GetString("running-status"); runningStatus != "" {
		cfg.Display.RunningStatus = runningStatus
	}
	if dateOnly, _ := flags.GetBool("date-only"); dateOnly {
		cfg.Display.DateOnly = dateOnly
	}

	// Parser and validation configuration
	if maxTextLength, _ := flags.GetInt("max-text-length"); maxTextLength > 0 {
		cfg.Parser.MaxTextLength = maxTextLength
	}
	if activityMin, _ := flags.GetInt("activity-min-length"); activityMin > 0 {
		cfg.Validation.ActivityMinLength = activityMin
	}
	if activityMax, _ := flags.GetInt("activity-max-length"); activityMax > 0 {
		cfg.Validation.ActivityMaxLength = activityMax
	}
	if maxDuration, _ := flags.GetDuration("max-duration"); maxDuration > 0 {
		cfg.Validation.MaxDuration = maxDuration
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		cfg.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.Application.Verbose = verbose
	}

	// Server configuration
	if serverAddr, _ := flags.GetString("server-addr"); serverAddr != "" {
		cfg.Server.Addr = serverAddr
	}
}

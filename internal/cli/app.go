package cli

import (
	"fmt"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/api"
	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
	"github.com/ElangBogopa/time-logger-sub000/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the business API and configuration for command handlers.
type App struct {
	api    api.API
	config *config.Config
	errors *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    businessAPI,
		config: cfg,
		errors: NewErrorHandler(),
	}
}

// timeFormat returns the configured display format for timestamps.
func (a *App) timeFormat() string {
	if a.config.Display.DateOnly {
		return "2006-01-02"
	}
	return a.config.Time.DisplayFormat
}

// runningStatus returns the text shown instead of an end time for open entries.
func (a *App) runningStatus() string {
	return a.config.Display.RunningStatus
}

// formatEntryLine renders one entry as "start - end (duration): activity".
func (a *App) formatEntryLine(entry *domain.Entry) string {
	startStr := entry.StartTime.Format(a.timeFormat())

	endStr := a.runningStatus()
	if entry.EndTime != nil {
		endStr = entry.EndTime.Format(a.timeFormat())
	}

	return fmt.Sprintf("%s - %s (%s): %s",
		startStr, endStr, services.FormatDuration(entry.Duration()), entry.Activity)
}

// printEntries prints one formatted line per entry detail.
func (a *App) printEntries(details []*services.EntryDetail) {
	if len(details) == 0 {
		fmt.Println("No entries found")
		return
	}
	for _, detail := range details {
		fmt.Printf("%6d  %s\n", detail.Entry.ID, a.formatEntryLine(detail.Entry))
	}
}

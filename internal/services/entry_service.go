package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
	"github.com/ElangBogopa/time-logger-sub000/internal/errors"
	"github.com/ElangBogopa/time-logger-sub000/internal/logging"
	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite"
	"github.com/ElangBogopa/time-logger-sub000/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	repo           sqlite.Repository
	parseService   ParseService
	mapper         *domain.Mapper
	entryValidator *validation.EntryValidator
	log            *logging.Logger
}

// NewEntryService creates a new EntryService instance
func NewEntryService(repo sqlite.Repository, parseService ParseService, cfg *config.Config) EntryService {
	return &entryServiceImpl{
		repo:           repo,
		parseService:   parseService,
		mapper:         domain.NewMapper(),
		entryValidator: validation.NewEntryValidatorWithConfig(cfg),
		log:            logging.Named("entries"),
	}
}

// LogActivity interprets one line of activity text and stores the entry it
// describes. A full range or a duration yields a completed entry, a lone
// start time yields a running entry started then, and text without a usable
// time pattern yields a running entry started now. Previously running
// entries are always stopped first.
func (e *entryServiceImpl) LogActivity(ctx context.Context, text string, now time.Time) (*LoggedActivity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError("activity text is required", nil)
	}

	parsed, err := e.parseService.Parse(ctx, text, now)
	if err != nil {
		return nil, err
	}

	activity := strings.TrimSpace(parsed.CleanedActivity)
	if activity == "" {
		return nil, errors.NewValidationError("activity description is required alongside the time expression", nil)
	}

	start, end := e.entryTimes(parsed, now)

	if err := e.entryValidator.ValidateEntryForCreation(activity, start, end); err != nil {
		return nil, wrapValidation(err)
	}

	stopped, err := e.StopRunning(ctx, now)
	if err != nil {
		return nil, err
	}

	dbEntry := &sqlite.Entry{
		Activity:  activity,
		StartTime: start,
		EndTime:   end,
	}
	if err := e.repo.CreateEntry(ctx, dbEntry); err != nil {
		return nil, err
	}

	entry := e.mapper.Entry.FromDatabase(*dbEntry)
	e.log.Debug().
		Int64("entry_id", entry.ID).
		Str("activity", entry.Activity).
		Bool("running", entry.IsRunning()).
		Msg("logged activity")

	return &LoggedActivity{
		Entry:   &entry,
		Parsed:  parsed,
		Stopped: stopped,
	}, nil
}

// entryTimes derives the stored interval from the parse result. An end time
// without a start does not pin an interval, so the entry runs from now.
func (e *entryServiceImpl) entryTimes(parsed *ParsedActivity, now time.Time) (time.Time, *time.Time) {
	switch {
	case parsed.ResolvedStart != nil && parsed.ResolvedEnd != nil:
		return *parsed.ResolvedStart, parsed.ResolvedEnd
	case parsed.ResolvedStart != nil:
		return *parsed.ResolvedStart, nil
	default:
		return now, nil
	}
}

// ResumeEntry starts a new running entry with the same activity as an
// existing entry, stopping any running entries first.
func (e *entryServiceImpl) ResumeEntry(ctx context.Context, id int64, now time.Time) (*LoggedActivity, error) {
	if err := e.entryValidator.ValidateEntryID(id); err != nil {
		return nil, wrapValidation(err)
	}

	previous, err := e.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	stopped, err := e.StopRunning(ctx, now)
	if err != nil {
		return nil, err
	}

	dbEntry := &sqlite.Entry{
		Activity:  previous.Activity,
		StartTime: now,
	}
	if err := e.repo.CreateEntry(ctx, dbEntry); err != nil {
		return nil, err
	}

	entry := e.mapper.Entry.FromDatabase(*dbEntry)
	return &LoggedActivity{
		Entry:   &entry,
		Stopped: stopped,
	}, nil
}

// StopRunning stops all currently running entries at the given time
func (e *entryServiceImpl) StopRunning(ctx context.Context, now time.Time) ([]*domain.Entry, error) {
	running, err := e.repo.SearchEntries(ctx, sqlite.SearchOptions{RunningOnly: true})
	if err != nil {
		return nil, err
	}

	stopped := make([]*domain.Entry, 0, len(running))
	for _, dbEntry := range running {
		dbEntry.EndTime = &now
		if err := e.repo.UpdateEntry(ctx, dbEntry); err != nil {
			return nil, err
		}

		entry := e.mapper.Entry.FromDatabase(*dbEntry)
		stopped = append(stopped, &entry)
	}

	return stopped, nil
}

// GetRunning returns all currently running entries
func (e *entryServiceImpl) GetRunning(ctx context.Context) ([]*domain.Entry, error) {
	dbEntries, err := e.repo.SearchEntries(ctx, sqlite.SearchOptions{RunningOnly: true})
	if err != nil {
		return nil, err
	}

	running := make([]*domain.Entry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entry := e.mapper.Entry.FromDatabase(*dbEntry)
		running[i] = &entry
	}

	return running, nil
}

// CreateEntry creates an entry with explicit times
func (e *entryServiceImpl) CreateEntry(ctx context.Context, activity string, start time.Time, end *time.Time) (*domain.Entry, error) {
	trimmed := strings.TrimSpace(activity)
	if err := e.entryValidator.ValidateEntryForCreation(trimmed, start, end); err != nil {
		return nil, wrapValidation(err)
	}

	dbEntry := &sqlite.Entry{
		Activity:  trimmed,
		StartTime: start,
		EndTime:   end,
	}
	if err := e.repo.CreateEntry(ctx, dbEntry); err != nil {
		return nil, err
	}

	entry := e.mapper.Entry.FromDatabase(*dbEntry)
	return &entry, nil
}

// GetEntry retrieves an entry by its ID
func (e *entryServiceImpl) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	if err := e.entryValidator.ValidateEntryID(id); err != nil {
		return nil, wrapValidation(err)
	}

	dbEntry, err := e.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := e.mapper.Entry.FromDatabase(*dbEntry)
	return &entry, nil
}

// UpdateEntry updates an existing entry
func (e *entryServiceImpl) UpdateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if err := e.entryValidator.ValidateEntryForUpdate(entry.ID, entry.Activity, entry.StartTime, entry.EndTime); err != nil {
		return nil, wrapValidation(err)
	}

	// Confirm the entry exists before updating
	if _, err := e.repo.GetEntry(ctx, entry.ID); err != nil {
		return nil, err
	}

	dbEntry := e.mapper.Entry.ToDatabase(*entry)
	if err := e.repo.UpdateEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	updated := e.mapper.Entry.FromDatabase(dbEntry)
	return &updated, nil
}

// DeleteEntry deletes an entry by its ID
func (e *entryServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	if err := e.entryValidator.ValidateEntryID(id); err != nil {
		return wrapValidation(err)
	}

	return e.repo.DeleteEntry(ctx, id)
}

// wrapValidation converts a validation package error into an application
// error carrying the user-friendly message.
func wrapValidation(err error) error {
	var ve *validation.ValidationError
	if stderrors.As(err, &ve) {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return errors.NewValidationError(err.Error(), err)
}

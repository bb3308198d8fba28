package validation

import (
	"time"

	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
)

// EntryValidator provides validation for entry-related operations
type EntryValidator struct {
	validator         *Validator
	activityValidator *ActivityValidator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator:         NewValidator(),
		activityValidator: NewActivityValidator(),
	}
}

// NewEntryValidatorWithConfig creates a new entry validator with configuration
func NewEntryValidatorWithConfig(cfg *config.Config) *EntryValidator {
	return &EntryValidator{
		validator:         NewValidatorWithConfig(cfg),
		activityValidator: NewActivityValidatorWithConfig(cfg),
	}
}

// ValidateEntryForCreation validates entry data for creation
func (ev *EntryValidator) ValidateEntryForCreation(activity string, startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()

	// Validate activity
	if activityErr := ev.activityValidator.ValidateActivity(activity); activityErr != nil {
		if activityValidationErr, ok := activityErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, activityValidationErr.Errors...)
		}
	}

	// Validate start time
	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !ev.validator.IsReasonableDate(startTime) {
		validationError.AddInvalidValueError("start_time", startTime, "must be within reasonable date range")
	}

	// Validate end time if provided
	if endTime != nil {
		if !ev.validator.IsReasonableDate(*endTime) {
			validationError.AddInvalidValueError("end_time", *endTime, "must be within reasonable date range")
		}

		// Validate time range
		if !ev.validator.IsValidTimeRange(startTime, endTime) {
			validationError.AddInvalidRangeError("time_range", map[string]time.Time{
				"start": startTime,
				"end":   *endTime,
			}, "end time must be after start time")
		}

		// Validate duration
		duration := endTime.Sub(startTime)
		if !ev.validator.IsValidDuration(duration) {
			validationError.AddInvalidValueError("duration", duration, "must be positive and within the configured maximum")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryForUpdate validates entry data for update
func (ev *EntryValidator) ValidateEntryForUpdate(id int64, activity string, startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()

	// Validate entry ID
	if !ev.validator.IsValidEntryID(id) {
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
	}

	// Validate the entry data
	if entryErr := ev.ValidateEntryForCreation(activity, startTime, endTime); entryErr != nil {
		if entryValidationErr, ok := entryErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, entryValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntry validates a domain.Entry object
func (ev *EntryValidator) ValidateEntry(entry domain.Entry) error {
	validationError := NewValidationError()

	// Validate using the domain model's IsValid method first
	if !entry.IsValid() {
		validationError.AddInvalidValueError("entry", entry, "fails basic validation")
	}

	// Perform additional validation
	if entryErr := ev.ValidateEntryForCreation(entry.Activity, entry.StartTime, entry.EndTime); entryErr != nil {
		if entryValidationErr, ok := entryErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, entryValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSearchOptions validates search options for entries
func (ev *EntryValidator) ValidateSearchOptions(opts domain.SearchOptions) error {
	validationError := NewValidationError()

	// Validate start time if provided
	if opts.StartTime != nil {
		if !ev.validator.IsReasonableDate(*opts.StartTime) {
			validationError.AddInvalidValueError("start_time", *opts.StartTime, "must be within reasonable date range")
		}
	}

	// Validate end time if provided
	if opts.EndTime != nil {
		if !ev.validator.IsReasonableDate(*opts.EndTime) {
			validationError.AddInvalidValueError("end_time", *opts.EndTime, "must be within reasonable date range")
		}
	}

	// Validate date range if both provided
	if !ev.validator.IsValidDateRange(opts.StartTime, opts.EndTime) {
		validationError.AddInvalidRangeError("date_range", map[string]any{
			"start": opts.StartTime,
			"end":   opts.EndTime,
		}, "end time must be after or equal to start time")
	}

	// Validate activity filter if provided
	if opts.Activity != nil {
		trimmed := ev.validator.TrimAndValidateString(*opts.Activity)
		if !ev.validator.IsNonEmptyString(trimmed) {
			validationError.AddInvalidValueError("activity", *opts.Activity, "must not be empty")
		} else if !ev.validator.IsValidStringLength(trimmed, 1, 255) {
			validationError.AddInvalidLengthError("activity", *opts.Activity, 1, 255)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryID validates an entry ID
func (ev *EntryValidator) ValidateEntryID(id int64) error {
	if !ev.validator.IsValidEntryID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

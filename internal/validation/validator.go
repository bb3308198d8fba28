package validation

import (
	"strings"
	"time"
	"unicode"

	"github.com/ElangBogopa/time-logger-sub000/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidActivityLength checks if an activity length is within configured limits
func (v *Validator) IsValidActivityLength(activity string) bool {
	return v.IsValidStringLength(activity, v.getActivityMinLength(), v.getActivityMaxLength())
}

// IsValidActivityText checks if an activity contains no control characters.
// Activity text is free-form, so anything printable is allowed; newlines,
// tabs and other control characters would break single-line display.
func (v *Validator) IsValidActivityText(activity string) bool {
	for _, r := range activity {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidTimeRange checks if start time is before end time
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true // Running entry, no end time
	}
	return startTime.Before(*endTime)
}

// IsValidDuration checks if a duration is within reasonable bounds
func (v *Validator) IsValidDuration(duration time.Duration) bool {
	return duration > 0 && duration <= v.getMaxDuration()
}

// IsValidEntryID checks if an entry ID is valid (positive)
func (v *Validator) IsValidEntryID(id int64) bool {
	return id > 0
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// IsValidDateRange checks if a date range is logical
func (v *Validator) IsValidDateRange(startTime, endTime *time.Time) bool {
	if startTime == nil || endTime == nil {
		return true // One or both dates are nil, which is valid for open-ended ranges
	}
	return startTime.Before(*endTime) || startTime.Equal(*endTime)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getActivityMinLength returns configured minimum activity length or default
func (v *Validator) getActivityMinLength() int {
	if v.config != nil {
		return v.config.Validation.ActivityMinLength
	}
	return 1 // Default minimum
}

// getActivityMaxLength returns configured maximum activity length or default
func (v *Validator) getActivityMaxLength() int {
	if v.config != nil {
		return v.config.Validation.ActivityMaxLength
	}
	return 255 // Default maximum
}

// getMaxDuration returns configured maximum duration or default
func (v *Validator) getMaxDuration() time.Duration {
	if v.config != nil {
		return v.config.Validation.MaxDuration
	}
	return 24 * time.Hour // Default maximum
}

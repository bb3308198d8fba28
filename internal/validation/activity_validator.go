package validation

import (
	"github.com/ElangBogopa/time-logger-sub000/internal/config"
)

// ActivityValidator provides validation for activity descriptions
type ActivityValidator struct {
	validator *Validator
}

// NewActivityValidator creates a new activity validator
func NewActivityValidator() *ActivityValidator {
	return &ActivityValidator{
		validator: NewValidator(),
	}
}

// NewActivityValidatorWithConfig creates a new activity validator with configuration
func NewActivityValidatorWithConfig(cfg *config.Config) *ActivityValidator {
	return &ActivityValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateActivity validates an activity description for creation or update
func (av *ActivityValidator) ValidateActivity(activity string) error {
	validationError := NewValidationError()

	// Trim whitespace
	trimmed := av.validator.TrimAndValidateString(activity)

	// Check if activity is empty
	if !av.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("activity")
		return validationError
	}

	// Check length constraints
	if !av.validator.IsValidActivityLength(trimmed) {
		validationError.AddInvalidLengthError("activity", trimmed,
			av.validator.getActivityMinLength(), av.validator.getActivityMaxLength())
	}

	// Check for control characters
	if !av.validator.IsValidActivityText(trimmed) {
		validationError.AddInvalidCharacterError("activity", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidActivity returns a cleaned activity description if valid
func (av *ActivityValidator) GetValidActivity(activity string) (string, error) {
	if err := av.ValidateActivity(activity); err != nil {
		return "", err
	}
	return av.validator.TrimAndValidateString(activity), nil
}

package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes the first failing rule of a single property.
type ValidationError struct {
	PropertyName      string
	RuleName          string
	Message           string
	Value             any
	TranslationKey    string
	TranslationValues map[string]any
	// Err is the underlying cause when the failure did not come from a plain
	// rule message (unregistered rule, rule error, panic, cancellation).
	Err error
}

// Error formats the failure as "property: message", or just the message
// when no property is set.
func (e *ValidationError) Error() string {
	if e.PropertyName == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.PropertyName, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidationFailed for every validation error so callers can
// detect validation problems without inspecting the cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

// Error joins every failure into one message.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.PropertyName, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is matches ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Unwrap exposes the individual causes to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for i := range ve {
		errs = append(errs, &ve[i])
	}
	return errs
}

// Add appends a failure.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field has at least one failure.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.PropertyName == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.PropertyName == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// GetErrors returns the failures reported for field.
func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.PropertyName == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns failing property names in the order they were reported.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.PropertyName] {
			fields = append(fields, err.PropertyName)
			seen[err.PropertyName] = true
		}
	}
	return fields
}

// IsEmpty reports whether there are no failures.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A single *ValidationError is returned as a one-element slice.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return ValidationErrors{*verr}
	}

	return nil
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	return err != nil && errors.Is(err, ErrValidationFailed)
}

package rulekit

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// FormErrors maps field names to their messages, ready for form rendering or
// a JSON error body. It's based on url.Values to reuse its slice handling.
type FormErrors url.Values

// NewFormErrors creates an empty FormErrors.
func NewFormErrors() FormErrors {
	return make(FormErrors)
}

// FormErrorsFrom collects the messages of a validation failure by field.
// Failures without a property name are stored under the empty key.
func FormErrorsFrom(errs validator.ValidationErrors) FormErrors {
	fe := make(FormErrors, len(errs))
	for _, e := range errs {
		fe.Add(e.PropertyName, e.Message)
	}
	return fe
}

// Error summarizes the first message of every field, in field order.
func (e FormErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Is makes errors.Is(fe, validator.ErrValidationFailed) hold.
func (e FormErrors) Is(target error) bool {
	return target == validator.ErrValidationFailed
}

// Add appends a message for a field.
func (e FormErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for a field.
func (e FormErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether a field has messages.
func (e FormErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no field has an error.
func (e FormErrors) IsEmpty() bool {
	return len(e) == 0
}

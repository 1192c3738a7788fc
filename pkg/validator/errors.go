package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is matched by every ValidationError and ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRuleNotFound is returned when a binding references a rule name that is not registered.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrRulePanicked is attached to failures produced by a rule that panicked.
	ErrRulePanicked = errors.New("rule panicked")

	// ErrEmptyRuleName is returned when registering a rule without a name.
	ErrEmptyRuleName = errors.New("rule name is empty")

	// ErrNilRule is returned when registering or declaring a nil rule function.
	ErrNilRule = errors.New("rule function is nil")

	// ErrInvalidRule is returned when a declared rule is neither a name nor a function.
	ErrInvalidRule = errors.New("rule must be a registered name or a rule function")

	// ErrEmptyField is returned when declaring a binding without a field name.
	ErrEmptyField = errors.New("field name is empty")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidParams is returned when rule params cannot be coerced to the expected type.
	ErrInvalidParams = errors.New("invalid rule params")
)

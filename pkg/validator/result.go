package validator

import "time"

// Result is the outcome of a validation call. Success is the discriminant:
// on success only Data and ValidatedAt are set; on failure only Error (single
// value) or Errors (target) and FailedAt are set.
type Result[T any] struct {
	Success     bool
	Data        T
	Error       *ValidationError
	Errors      ValidationErrors
	ValidatedAt time.Time
	FailedAt    time.Time
	// Duration is the wall-clock time spent in the pipeline, including every
	// rule invocation.
	Duration time.Duration
	Context  any
}

// Err returns nil on success, otherwise the failure as an error.
func (r Result[T]) Err() error {
	switch {
	case r.Success:
		return nil
	case r.Error != nil:
		return r.Error
	case len(r.Errors) > 0:
		return r.Errors
	default:
		return ErrValidationFailed
	}
}

// Failures returns every failure of the result regardless of path.
func (r Result[T]) Failures() ValidationErrors {
	if r.Error != nil {
		return ValidationErrors{*r.Error}
	}
	return r.Errors
}

// resultBuilder stamps results with timing information for one pipeline call.
type resultBuilder struct {
	now     func() time.Time
	started time.Time
	context any
}

func newResultBuilder(now func() time.Time, context any) resultBuilder {
	if now == nil {
		now = time.Now
	}
	return resultBuilder{now: now, started: now(), context: context}
}

func (b resultBuilder) elapsed(at time.Time) time.Duration {
	d := at.Sub(b.started)
	if d < 0 {
		return 0
	}
	return d
}

func succeed[T any](b resultBuilder, data T) Result[T] {
	at := b.now()
	return Result[T]{
		Success:     true,
		Data:        data,
		ValidatedAt: at,
		Duration:    b.elapsed(at),
		Context:     b.context,
	}
}

func failValue[T any](b resultBuilder, err ValidationError) Result[T] {
	at := b.now()
	return Result[T]{
		Error:    &err,
		FailedAt: at,
		Duration: b.elapsed(at),
		Context:  b.context,
	}
}

func failTarget[T any](b resultBuilder, errs ValidationErrors) Result[T] {
	at := b.now()
	return Result[T]{
		Errors:   errs,
		FailedAt: at,
		Duration: b.elapsed(at),
		Context:  b.context,
	}
}

package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/async"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Engine runs the value and target validation pipelines against a rule
// registry and a metadata store. It is safe for concurrent use; the registry
// and store are only read during validation.
type Engine struct {
	registry   *Registry
	store      *MetadataStore
	logger     *slog.Logger
	translator Translator
	now        func() time.Time
}

// New creates an Engine. Without WithRegistry it gets its own registry
// preloaded with the built-in rules.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: discardLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewRegistry(WithRegistryLogger(e.logger))
		RegisterBuiltins(e.registry)
	}
	if e.store == nil {
		e.store = NewMetadataStore()
	}
	return e
}

// Registry returns the rule table the engine resolves names against.
func (e *Engine) Registry() *Registry { return e.registry }

// Store returns the metadata store used by ValidateTarget.
func (e *Engine) Store() *MetadataStore { return e.store }

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }

func (e *Engine) options(opts []Option) *callOptions {
	o := &callOptions{translator: e.translator}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate runs bindings in order against value and stops at the first
// failure. Zero bindings is a trivial success.
func (e *Engine) Validate(ctx context.Context, value any, bindings []Binding, opts ...Option) Result[any] {
	return ValidateValue(ctx, e, value, bindings, opts...)
}

// ValidateValue is the typed form of Engine.Validate.
func ValidateValue[T any](ctx context.Context, e *Engine, value T, bindings []Binding, opts ...Option) Result[T] {
	o := e.options(opts)
	rb := newResultBuilder(e.now, o.context)
	o.now = rb.started

	f := fieldRun{field: o.field, label: o.field, bindings: bindings}
	if verr := e.runField(ctx, f, value, o.data, o); verr != nil {
		return failValue[T](rb, *verr)
	}
	return succeed(rb, value)
}

// ValidateAsync runs Validate in its own goroutine.
func (e *Engine) ValidateAsync(ctx context.Context, value any, bindings []Binding, opts ...Option) *async.Future[Result[any]] {
	return async.Async(context.WithoutCancel(ctx), value, func(_ context.Context, v any) (Result[any], error) {
		return e.Validate(ctx, v, bindings, opts...), nil
	})
}

// ValidateTarget validates data against every field declared for target.
// Fields run independently; all failures are collected in field declaration
// order. Keys of data without declarations are passed through untouched.
func (e *Engine) ValidateTarget(ctx context.Context, target Target, data map[string]any, opts ...Option) Result[map[string]any] {
	o := e.options(opts)
	rb := newResultBuilder(e.now, o.context)
	o.now = rb.started

	fields := e.store.Bindings(target)
	if len(fields) == 0 {
		return succeed(rb, data)
	}

	runs := make([]fieldRun, 0, len(fields))
	for _, fb := range fields {
		runs = append(runs, fieldRun{field: fb.Field, label: fb.Label, bindings: fb.Bindings})
	}

	var errs ValidationErrors
	switch {
	case o.failFast:
		errs = e.runSequential(ctx, runs, data, o, true)
	case o.sequential || len(runs) == 1:
		errs = e.runSequential(ctx, runs, data, o, false)
	default:
		errs = e.runConcurrent(ctx, runs, data, o)
	}

	if len(errs) > 0 {
		res := failTarget[map[string]any](rb, errs)
		e.logger.DebugContext(ctx, "target validation failed",
			logger.Target(string(target)),
			logger.Failures(len(errs)),
			logger.Duration(res.Duration),
		)
		return res
	}
	return succeed(rb, data)
}

// ValidateTargetAsync runs ValidateTarget in its own goroutine.
func (e *Engine) ValidateTargetAsync(ctx context.Context, target Target, data map[string]any, opts ...Option) *async.Future[Result[map[string]any]] {
	return async.Async(context.WithoutCancel(ctx), data, func(_ context.Context, d map[string]any) (Result[map[string]any], error) {
		return e.ValidateTarget(ctx, target, d, opts...), nil
	})
}

type fieldRun struct {
	field    string
	label    string
	bindings []Binding
}

func (e *Engine) runSequential(ctx context.Context, runs []fieldRun, data map[string]any, o *callOptions, stopEarly bool) ValidationErrors {
	var errs ValidationErrors
	for _, f := range runs {
		if verr := e.runField(ctx, f, data[f.field], data, o); verr != nil {
			errs.Add(*verr)
			if stopEarly {
				break
			}
		}
	}
	return errs
}

func (e *Engine) runConcurrent(ctx context.Context, runs []fieldRun, data map[string]any, o *callOptions) ValidationErrors {
	futures := make([]*async.Future[*ValidationError], 0, len(runs))
	for _, f := range runs {
		futures = append(futures, async.Async(ctx, f, func(ctx context.Context, f fieldRun) (*ValidationError, error) {
			return e.runField(ctx, f, data[f.field], data, o), nil
		}))
	}

	var errs ValidationErrors
	for i, fut := range futures {
		verr, err := fut.Await()
		if err != nil {
			// The field never ran: cancelled before start or engine panic.
			f := runs[i]
			verr = e.buildError(ctx, f, f.firstName(), data[f.field], nil, FailErr(err), o)
		}
		if verr != nil {
			errs.Add(*verr)
		}
	}
	return errs
}

func (f fieldRun) firstName() string {
	if len(f.bindings) == 0 {
		return ""
	}
	return f.bindings[0].name()
}

// runField runs the bindings of one field and returns the first failure.
func (e *Engine) runField(ctx context.Context, f fieldRun, value any, data map[string]any, o *callOptions) *ValidationError {
	for _, b := range f.bindings {
		name := b.name()

		if err := ctx.Err(); err != nil {
			return e.buildError(ctx, f, name, value, b.Params, FailErr(err), o)
		}

		fn := b.Func
		if fn == nil {
			def, err := e.registry.Resolve(b.Rule)
			if err != nil {
				e.logger.WarnContext(ctx, "unresolved rule",
					logger.Field(f.field),
					logger.Rule(b.Rule),
					logger.Error(err),
				)
				return e.buildError(ctx, f, name, value, b.Params, FailErr(err), o)
			}
			fn = def.Func
		}

		raw := b.Raw
		if raw == "" {
			raw = name
		}

		out := e.invoke(ctx, fn, RuleInput{
			Value:       value,
			RuleName:    name,
			RawRuleName: raw,
			Params:      slices.Clone(b.Params),
			Field:       f.field,
			Data:        data,
			Context:     o.context,
			Now:         o.now,
		})
		if out.Passed() {
			continue
		}
		return e.buildError(ctx, f, name, value, b.Params, out, o)
	}
	return nil
}

// invoke calls a rule and converts a panic into a failure.
func (e *Engine) invoke(ctx context.Context, fn RuleFunc, in RuleInput) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			var err error
			if rerr, ok := r.(error); ok {
				err = errors.Join(ErrRulePanicked, rerr)
				out = Outcome{message: rerr.Error(), err: err, thrown: true}
			} else {
				err = fmt.Errorf("%w: %v", ErrRulePanicked, r)
				out = Outcome{message: fmt.Sprint(r), err: err, thrown: true}
			}
			e.logger.ErrorContext(ctx, "rule panicked",
				logger.Field(in.Field),
				logger.Rule(in.RuleName),
				logger.Error(err),
			)
		}
	}()
	return fn(ctx, in)
}

// buildError turns a failed outcome into a ValidationError. Rule-reported
// messages go through the translator; errors (unresolved rule, returned
// error, panic, cancellation) keep their text. The message builder sees
// every message.
func (e *Engine) buildError(ctx context.Context, f fieldRun, rule string, value any, params []any, out Outcome, o *callOptions) *ValidationError {
	msg := out.message
	if msg == "" {
		msg = ErrValidationFailed.Error()
	}

	key := out.translationKey
	if key == "" && rule != "" {
		key = "validation." + rule
	}

	values := make(map[string]any, len(params)+len(out.translationValues)+4)
	values["field"] = f.label
	values["value"] = value
	values["rule"] = rule
	values["params"] = params
	for i, p := range params {
		values["param"+strconv.Itoa(i)] = p
	}
	maps.Copy(values, out.translationValues)

	if !out.thrown && o.translator != nil && key != "" {
		if translated, ok := o.translator.Translate(ctx, key, values); ok && translated != "" {
			msg = translated
		}
	}

	if o.messageBuilder != nil {
		msg = o.messageBuilder(f.label, msg)
	}

	e.logger.DebugContext(ctx, "field validation failed",
		logger.Field(f.field),
		logger.Rule(rule),
	)

	return &ValidationError{
		PropertyName:      f.field,
		RuleName:          rule,
		Message:           msg,
		Value:             value,
		TranslationKey:    key,
		TranslationValues: values,
		Err:               out.err,
	}
}

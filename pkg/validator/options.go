package validator

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Translator renders a human-readable message for a translation key. It
// reports false when it has no message for the key.
type Translator interface {
	Translate(ctx context.Context, key string, params map[string]any) (string, bool)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(ctx context.Context, key string, params map[string]any) (string, bool)

// Translate calls f.
func (f TranslatorFunc) Translate(ctx context.Context, key string, params map[string]any) (string, bool) {
	return f(ctx, key, params)
}

// MessageBuilder post-processes every failure message before it is stored in
// a ValidationError. It receives the field label and the message.
type MessageBuilder func(field, message string) string

// Option configures a single validation call.
type Option func(*callOptions)

type callOptions struct {
	context        any
	messageBuilder MessageBuilder
	translator     Translator
	data           map[string]any
	field          string
	failFast       bool
	sequential     bool
	now            time.Time
}

// WithContext passes caller state to every rule invocation as RuleInput.Context.
func WithContext(v any) Option {
	return func(o *callOptions) { o.context = v }
}

// WithMessageBuilder sets the failure message post-processor.
func WithMessageBuilder(fn MessageBuilder) Option {
	return func(o *callOptions) { o.messageBuilder = fn }
}

// WithTranslator overrides the engine translator for one call.
func WithTranslator(t Translator) Option {
	return func(o *callOptions) { o.translator = t }
}

// WithData supplies sibling data when validating a single value that belongs
// to a larger object.
func WithData(data map[string]any) Option {
	return func(o *callOptions) { o.data = data }
}

// WithField names the value on the single-value path; it becomes the
// PropertyName of the failure.
func WithField(name string) Option {
	return func(o *callOptions) { o.field = name }
}

// WithFailFast stops target validation at the first failing field. Fields
// are then evaluated sequentially in declaration order.
func WithFailFast() Option {
	return func(o *callOptions) { o.failFast = true }
}

// WithSequentialFields evaluates target fields one after another instead of
// concurrently. All failures are still collected.
func WithSequentialFields() Option {
	return func(o *callOptions) { o.sequential = true }
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRegistry sets the rule registry; defaults to a fresh registry with the
// built-in rules.
func WithRegistry(r *Registry) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithStore sets the metadata store; defaults to an empty store.
func WithStore(s *MetadataStore) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.store = s
		}
	}
}

// WithLogger sets the engine logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDefaultTranslator sets the translator used when a call does not
// supply one.
func WithDefaultTranslator(t Translator) EngineOption {
	return func(e *Engine) { e.translator = t }
}

// WithClock replaces time.Now for result timestamps and RuleInput.Now.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

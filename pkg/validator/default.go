package validator

import (
	"context"

	"github.com/dmitrymomot/rulekit/pkg/async"
)

var (
	// DefaultRegistry is the process-wide rule registry, preloaded with the
	// built-in rules.
	DefaultRegistry = NewRegistry()

	// DefaultStore is the process-wide metadata store.
	DefaultStore = NewMetadataStore()

	defaultEngine = New(WithRegistry(DefaultRegistry), WithStore(DefaultStore))
)

func init() {
	RegisterBuiltins(DefaultRegistry)
}

// Default returns the engine backed by DefaultRegistry and DefaultStore.
func Default() *Engine {
	return defaultEngine
}

// RegisterRule registers a rule into DefaultRegistry.
func RegisterRule(name string, fn RuleFunc) error {
	return DefaultRegistry.Register(name, fn)
}

// Declare appends a binding for (target, field) to DefaultStore.
func Declare(target Target, field string, rule any, params ...any) error {
	return DefaultStore.Declare(target, field, rule, params...)
}

// Validate runs the value pipeline on the default engine.
func Validate(ctx context.Context, value any, bindings []Binding, opts ...Option) Result[any] {
	return defaultEngine.Validate(ctx, value, bindings, opts...)
}

// ValidateAsync runs the value pipeline on the default engine in its own goroutine.
func ValidateAsync(ctx context.Context, value any, bindings []Binding, opts ...Option) *async.Future[Result[any]] {
	return defaultEngine.ValidateAsync(ctx, value, bindings, opts...)
}

// ValidateTarget runs the target pipeline on the default engine.
func ValidateTarget(ctx context.Context, target Target, data map[string]any, opts ...Option) Result[map[string]any] {
	return defaultEngine.ValidateTarget(ctx, target, data, opts...)
}

// ValidateTargetAsync runs the target pipeline on the default engine in its own goroutine.
func ValidateTargetAsync(ctx context.Context, target Target, data map[string]any, opts ...Option) *async.Future[Result[map[string]any]] {
	return defaultEngine.ValidateTargetAsync(ctx, target, data, opts...)
}

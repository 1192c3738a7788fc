package validator

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Registry maps rule names to rule functions.
//
// Registration normally happens once at startup, but writes are still
// serialized so late registration cannot race with in-flight validations.
type Registry struct {
	mu     sync.RWMutex
	rules  map[string]RuleDefinition
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report overwritten rules.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		rules:  make(map[string]RuleDefinition),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores fn under name. An existing rule with the same name is
// replaced; the last registration wins.
func (r *Registry) Register(name string, fn RuleFunc) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRuleName
	}
	if fn == nil {
		return fmt.Errorf("%w: %q", ErrNilRule, name)
	}

	r.mu.Lock()
	_, replaced := r.rules[name]
	r.rules[name] = RuleDefinition{Name: name, Func: fn}
	r.mu.Unlock()

	if replaced {
		r.logger.Warn("rule overwritten", slog.String("rule", name))
	}
	return nil
}

// RegisterFunc registers a rule written against the loose contract.
func (r *Registry) RegisterFunc(name string, fn LooseFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: %q", ErrNilRule, name)
	}
	return r.Register(name, Func(fn))
}

// MustRegister works like Register but panics on error.
func (r *Registry) MustRegister(name string, fn RuleFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(fmt.Sprintf("validator: register rule: %v", err))
	}
}

// Resolve looks up a rule by name.
func (r *Registry) Resolve(name string) (RuleDefinition, error) {
	r.mu.RLock()
	def, ok := r.rules[name]
	r.mu.RUnlock()

	if !ok {
		return RuleDefinition{}, fmt.Errorf("%w: %q is not registered", ErrRuleNotFound, name)
	}
	return def, nil
}

// Has reports whether a rule is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[name]
	return ok
}

// Names returns registered rule names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

package validator

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Target identifies a validated type. Use TargetOf to derive one from a Go
// type, or any stable name when declarations come from configuration.
type Target string

// TargetOf returns the target identity of T.
func TargetOf[T any]() Target {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return Target(t.String())
	}
	return Target(t.PkgPath() + "." + t.Name())
}

// Binding attaches one rule, with params, to a field.
type Binding struct {
	Field string
	// Rule is the rule name; empty for anonymous rule functions.
	Rule string
	// Raw is the rule as written, e.g. "numberLessThan:10".
	Raw string
	// Func is set for inline rules; no registry lookup happens then.
	Func   RuleFunc
	Params []any
	Order  int
}

// name reports the resolved rule name.
func (b Binding) name() string {
	if b.Rule != "" {
		return b.Rule
	}
	return CustomRuleName
}

// FieldBindings is the ordered binding list of one field.
type FieldBindings struct {
	Field    string
	Label    string
	Bindings []Binding
}

type targetMeta struct {
	fields []string
	rules  map[string][]Binding
	labels map[string]string
	seq    int
}

// MetadataStore maps targets to the ordered rule bindings declared against
// their fields.
type MetadataStore struct {
	mu      sync.RWMutex
	targets map[Target]*targetMeta
}

// NewMetadataStore creates an empty MetadataStore.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{targets: make(map[Target]*targetMeta)}
}

func (s *MetadataStore) target(t Target) *targetMeta {
	m, ok := s.targets[t]
	if !ok {
		m = &targetMeta{
			rules:  make(map[string][]Binding),
			labels: make(map[string]string),
		}
		s.targets[t] = m
	}
	return m
}

// Declare appends a binding for (target, field). rule is a registered rule
// name (optionally "name:p1,p2"), a rule function (RuleFunc or LooseFunc), a
// NamedRule, or a Binding from With. Declaration order is execution order.
func (s *MetadataStore) Declare(target Target, field string, rule any, params ...any) error {
	if field == "" {
		return ErrEmptyField
	}

	b, err := newBinding(field, rule, params)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.target(target)
	if _, ok := m.rules[field]; !ok {
		m.fields = append(m.fields, field)
	}
	m.seq++
	b.Order = m.seq
	m.rules[field] = append(m.rules[field], b)
	return nil
}

// SetLabel sets the display name of a field used when building messages.
func (s *MetadataStore) SetLabel(target Target, field, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.target(target)
	if _, ok := m.rules[field]; !ok {
		m.fields = append(m.fields, field)
		m.rules[field] = nil
	}
	m.labels[field] = label
}

// Label returns the display name of a field, falling back to the field name.
func (s *MetadataStore) Label(target Target, field string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.targets[target]; ok {
		if label := m.labels[field]; label != "" {
			return label
		}
	}
	return field
}

// Bindings returns the fields of target in first-declaration order together
// with their bindings. Unknown targets yield an empty result.
func (s *MetadataStore) Bindings(target Target) []FieldBindings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.targets[target]
	if !ok {
		return nil
	}

	out := make([]FieldBindings, 0, len(m.fields))
	for _, field := range m.fields {
		label := m.labels[field]
		if label == "" {
			label = field
		}
		out = append(out, FieldBindings{
			Field:    field,
			Label:    label,
			Bindings: cloneBindings(m.rules[field]),
		})
	}
	return out
}

// Targets returns all targets with declarations, sorted.
func (s *MetadataStore) Targets() []Target {
	s.mu.RLock()
	out := make([]Target, 0, len(s.targets))
	for t := range s.targets {
		out = append(out, t)
	}
	s.mu.RUnlock()

	slices.Sort(out)
	return out
}

func cloneBindings(in []Binding) []Binding {
	out := make([]Binding, len(in))
	for i, b := range in {
		b.Params = slices.Clone(b.Params)
		out[i] = b
	}
	return out
}

func isNilFunc(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && rv.IsNil()
}

// TargetBuilder declares bindings for one target fluently.
type TargetBuilder struct {
	store  *MetadataStore
	target Target
	err    error
}

// Describe starts declarations against the target identity of T.
func Describe[T any](store *MetadataStore) *TargetBuilder {
	return DescribeTarget(store, TargetOf[T]())
}

// DescribeTarget starts declarations against an explicit target.
func DescribeTarget(store *MetadataStore, target Target) *TargetBuilder {
	return &TargetBuilder{store: store, target: target}
}

// Target returns the identity the builder declares against.
func (b *TargetBuilder) Target() Target { return b.target }

// Err returns the first declaration error, if any.
func (b *TargetBuilder) Err() error { return b.err }

// Field starts declarations for one field.
func (b *TargetBuilder) Field(name string) *FieldBuilder {
	return &FieldBuilder{parent: b, field: name}
}

// FieldBuilder declares bindings for one field.
type FieldBuilder struct {
	parent *TargetBuilder
	field  string
}

// Label sets the display name of the field.
func (f *FieldBuilder) Label(label string) *FieldBuilder {
	f.parent.store.SetLabel(f.parent.target, f.field, label)
	return f
}

// Rule appends a binding. The first error is kept on the target builder.
func (f *FieldBuilder) Rule(rule any, params ...any) *FieldBuilder {
	if err := f.parent.store.Declare(f.parent.target, f.field, rule, params...); err != nil && f.parent.err == nil {
		f.parent.err = fmt.Errorf("field %q: %w", f.field, err)
	}
	return f
}

// Field switches to another field of the same target.
func (f *FieldBuilder) Field(name string) *FieldBuilder {
	return f.parent.Field(name)
}

// Err returns the first declaration error of the target builder.
func (f *FieldBuilder) Err() error {
	return f.parent.err
}

package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Format is the encoding of a schema document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Schema is a parsed declaration document. Targets, fields and rules keep
// their document order.
type Schema struct {
	Targets []Target
}

// Target groups the field declarations of one validated type.
type Target struct {
	Name   string
	Fields []Field
}

// Field is one declared property.
type Field struct {
	Name  string
	Label string
	Rules []Rule
}

// Rule is one rule reference with its params.
type Rule struct {
	Name   string
	Params []any
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and parses the schema at path.
func LoadFile(ctx context.Context, path string) (*Schema, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	s, err := Parse(ctx, content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a schema document:
//
//	targets:
//	  User:
//	    fields:
//	      name:
//	        label: Name
//	        rules:
//	          - required
//	          - minLength: [2]
//	      email: [required, email]
//
// A rule is a bare name, a "name:p1,p2" string, or a single-key map from
// name to a param or a param list. A field may be written as its rule list.
// JSON documents are decoded with the same YAML decoder so that key order is
// kept.
func Parse(ctx context.Context, content []byte, format Format) (*Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch format {
	case FormatYAML:
	case FormatJSON:
		if !json.Valid(content) {
			return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidSchema)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, invalidAt(root, "document must be a mapping")
	}
	targets := lookup(root, "targets")
	if targets == nil {
		return nil, invalidAt(root, `missing "targets"`)
	}
	if targets.Kind != yaml.MappingNode {
		return nil, invalidAt(targets, `"targets" must be a mapping`)
	}

	s := &Schema{}
	for k, v := range pairs(targets) {
		t, err := parseTarget(k.Value, v)
		if err != nil {
			return nil, err
		}
		s.Targets = append(s.Targets, t)
	}
	return s, nil
}

// Target returns the declarations of the named target.
func (s *Schema) Target(name string) (Target, bool) {
	for _, t := range s.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// Apply declares every rule of the schema in store, in document order.
func (s *Schema) Apply(store *validator.MetadataStore) error {
	for _, t := range s.Targets {
		target := validator.Target(t.Name)
		for _, f := range t.Fields {
			if f.Label != "" {
				store.SetLabel(target, f.Name, f.Label)
			}
			for _, r := range f.Rules {
				if err := store.Declare(target, f.Name, r.Name, r.Params...); err != nil {
					return fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
				}
			}
		}
	}
	return nil
}

// ApplyTarget declares the rules of a single target.
func (s *Schema) ApplyTarget(store *validator.MetadataStore, name string) error {
	t, ok := s.Target(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return (&Schema{Targets: []Target{t}}).Apply(store)
}

func parseTarget(name string, n *yaml.Node) (Target, error) {
	t := Target{Name: name}
	if name == "" {
		return t, invalidAt(n, "empty target name")
	}
	if n.Kind != yaml.MappingNode {
		return t, invalidAt(n, fmt.Sprintf("target %q must be a mapping", name))
	}
	fields := lookup(n, "fields")
	if fields == nil {
		return t, nil
	}
	if fields.Kind != yaml.MappingNode {
		return t, invalidAt(fields, fmt.Sprintf("target %q: \"fields\" must be a mapping", name))
	}
	for k, v := range pairs(fields) {
		f, err := parseField(k.Value, v)
		if err != nil {
			return t, fmt.Errorf("%s: %w", name, err)
		}
		t.Fields = append(t.Fields, f)
	}
	return t, nil
}

func parseField(name string, n *yaml.Node) (Field, error) {
	f := Field{Name: name}
	if name == "" {
		return f, invalidAt(n, "empty field name")
	}

	var rules *yaml.Node
	switch n.Kind {
	case yaml.SequenceNode:
		rules = n
	case yaml.MappingNode:
		if label := lookup(n, "label"); label != nil {
			f.Label = label.Value
		}
		rules = lookup(n, "rules")
	default:
		return f, invalidAt(n, fmt.Sprintf("field %q must be a mapping or a rule list", name))
	}
	if rules == nil {
		return f, nil
	}
	if rules.Kind != yaml.SequenceNode {
		return f, invalidAt(rules, fmt.Sprintf("field %q: rules must be a list", name))
	}

	for _, item := range rules.Content {
		r, err := parseRule(item)
		if err != nil {
			return f, fmt.Errorf("%s: %w", name, err)
		}
		f.Rules = append(f.Rules, r)
	}
	return f, nil
}

func parseRule(n *yaml.Node) (Rule, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if strings.TrimSpace(n.Value) == "" {
			return Rule{}, invalidAt(n, "empty rule name")
		}
		return Rule{Name: n.Value}, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return Rule{}, invalidAt(n, "rule map must have exactly one key")
		}
		name, val := n.Content[0].Value, n.Content[1]
		if name == "" {
			return Rule{}, invalidAt(n, "empty rule name")
		}
		params, err := decodeParams(val)
		if err != nil {
			return Rule{}, err
		}
		return Rule{Name: name, Params: params}, nil
	default:
		return Rule{}, invalidAt(n, "rule must be a name or a single-key map")
	}
}

func decodeParams(n *yaml.Node) ([]any, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind == yaml.SequenceNode {
		var params []any
		if err := n.Decode(&params); err != nil {
			return nil, errors.Join(ErrInvalidSchema, err)
		}
		return params, nil
	}
	var param any
	if err := n.Decode(&param); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	return []any{param}, nil
}

// lookup returns the value node of key in a mapping node.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// pairs iterates the key/value nodes of a mapping node in document order.
func pairs(m *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(k, v *yaml.Node) bool) {
		for i := 0; i+1 < len(m.Content); i += 2 {
			if !yield(m.Content[i], m.Content[i+1]) {
				return
			}
		}
	}
}

func invalidAt(n *yaml.Node, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidSchema, n.Line, msg)
}

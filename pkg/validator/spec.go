package validator

import (
	"context"
	"fmt"
	"strings"
)

// CustomRuleName is reported as the rule name of anonymous rule functions.
const CustomRuleName = "custom"

// NamedRule is an inline rule function with a name used in failures and
// translation keys. No registry lookup happens for it.
type NamedRule struct {
	Name string
	Func RuleFunc
}

// Named gives an inline rule a name.
func Named(name string, fn RuleFunc) NamedRule {
	return NamedRule{Name: name, Func: fn}
}

// parseRuleSpec splits "name:p1,p2" into the rule name and its string
// params. A spec without a colon has no params. See splitParams for how
// commas inside a param are kept.
func parseRuleSpec(spec string) (string, []any) {
	spec = strings.TrimSpace(spec)
	name, rest, found := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if !found {
		return name, nil
	}
	parts := splitParams(rest)
	params := make([]any, 0, len(parts))
	for _, p := range parts {
		params = append(params, strings.TrimSpace(p))
	}
	return name, params
}

// splitParams splits on commas outside (), [] and {} so patterns such as
// `^\d{1,3}$` stay whole. `\,` is a literal comma anywhere; other escapes
// are kept as written and never change the nesting depth.
func splitParams(s string) []string {
	var (
		parts []string
		cur   strings.Builder
		depth int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			if s[i] != ',' {
				cur.WriteByte(c)
			}
			cur.WriteByte(s[i])
			continue
		case c == '(' || c == '[' || c == '{':
			depth++
		case (c == ')' || c == ']' || c == '}') && depth > 0:
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(parts, cur.String())
}

// newBinding builds an unattached binding from any accepted rule form.
func newBinding(field string, rule any, params []any) (Binding, error) {
	b := Binding{Field: field}
	switch r := rule.(type) {
	case string:
		name, specParams := parseRuleSpec(r)
		if name == "" {
			return Binding{}, ErrEmptyRuleName
		}
		b.Rule, b.Raw = name, r
		b.Params = append(specParams, params...)
		return b, nil
	case NamedRule:
		if r.Func == nil {
			return Binding{}, fmt.Errorf("%w: %q", ErrNilRule, r.Name)
		}
		b.Rule, b.Raw, b.Func = r.Name, r.Name, r.Func
	case Binding:
		r.Field = field
		r.Params = append(append([]any(nil), r.Params...), params...)
		return r, nil
	default:
		fn, ok := asRuleFunc(rule)
		if !ok {
			if rule == nil || isNilFunc(rule) {
				return Binding{}, ErrNilRule
			}
			return Binding{}, fmt.Errorf("%w: got %T", ErrInvalidRule, rule)
		}
		b.Func = fn
	}
	b.Params = append([]any(nil), params...)
	return b, nil
}

// With binds params to a rule for use in Rules or Declare.
func With(rule any, params ...any) Binding {
	b, err := newBinding("", rule, params)
	if err != nil {
		return brokenBinding(err)
	}
	return b
}

// Rules builds an ordered binding list for the single-value pipeline. Each
// entry is a rule name (optionally "name:p1,p2"), a rule function, a
// NamedRule, or a Binding from With. Invalid entries become bindings that
// always fail, so misconfiguration surfaces in the result.
func Rules(rules ...any) []Binding {
	out := make([]Binding, 0, len(rules))
	for i, r := range rules {
		b, err := newBinding("", r, nil)
		if err != nil {
			b = brokenBinding(err)
		}
		b.Order = i + 1
		out = append(out, b)
	}
	return out
}

func brokenBinding(err error) Binding {
	return Binding{
		Rule: "invalid",
		Raw:  "invalid",
		Func: func(context.Context, RuleInput) Outcome { return FailErr(err) },
	}
}

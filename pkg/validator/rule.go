package validator

import (
	"context"
	"fmt"
	"maps"
	"time"
)

// RuleInput is the invocation context handed to a rule. A fresh value is
// built for every invocation.
type RuleInput struct {
	// Value is the value under validation.
	Value any
	// RuleName is the resolved rule name.
	RuleName string
	// RawRuleName is the rule name as written in the binding.
	RawRuleName string
	// Params are the binding params, forwarded verbatim.
	Params []any
	// Field is the property name when validating as part of a target.
	Field string
	// Data is the whole object being validated, for rules that compare
	// against sibling fields. Nil on the single-value path unless supplied.
	Data map[string]any
	// Context is caller-supplied state passed through untouched.
	Context any
	// Now is the engine clock reading taken when the call started.
	Now time.Time
}

// Param returns the i-th param or nil.
func (in RuleInput) Param(i int) any {
	if i < 0 || i >= len(in.Params) {
		return nil
	}
	return in.Params[i]
}

// Sibling returns another field of the object being validated.
func (in RuleInput) Sibling(field string) (any, bool) {
	if in.Data == nil {
		return nil, false
	}
	v, ok := in.Data[field]
	return v, ok
}

// Outcome is the normalized result of a single rule invocation.
type Outcome struct {
	passed            bool
	message           string
	translationKey    string
	translationValues map[string]any
	err               error
	// thrown marks failures caused by an error rather than a rule verdict;
	// their text is never replaced by a translation.
	thrown bool
}

// Pass reports a successful rule invocation.
func Pass() Outcome {
	return Outcome{passed: true}
}

// Fail reports a failed rule invocation with the given message.
func Fail(message string) Outcome {
	return Outcome{message: message}
}

// Failf is Fail with fmt.Sprintf formatting.
func Failf(format string, args ...any) Outcome {
	return Outcome{message: fmt.Sprintf(format, args...)}
}

// FailErr reports a failure caused by an error; the error text becomes the
// message verbatim.
func FailErr(err error) Outcome {
	if err == nil {
		return Fail("")
	}
	return Outcome{message: err.Error(), err: err, thrown: true}
}

// Because attaches a cause to a rule verdict so callers can match it with
// errors.Is. The message is still eligible for translation.
func (o Outcome) Because(err error) Outcome {
	o.err = err
	return o
}

// WithTranslation attaches a translation key and template values to a failure.
func (o Outcome) WithTranslation(key string, values map[string]any) Outcome {
	o.translationKey = key
	if len(values) > 0 {
		o.translationValues = maps.Clone(values)
	}
	return o
}

// Passed reports whether the rule accepted the value.
func (o Outcome) Passed() bool { return o.passed }

// Message returns the failure message, empty for a pass.
func (o Outcome) Message() string { return o.message }

// Err returns the cause attached with FailErr or Because.
func (o Outcome) Err() error { return o.err }

// Normalize folds the loose "true / message / error" rule contract into an
// Outcome. Only the literal boolean true passes; any other value fails with
// its string form; a non-nil error fails with the error text.
func Normalize(v any, err error) Outcome {
	if err != nil {
		return FailErr(err)
	}
	switch val := v.(type) {
	case bool:
		if val {
			return Pass()
		}
		return Fail("false")
	case Outcome:
		return val
	case nil:
		return Fail("")
	case string:
		return Fail(val)
	default:
		return Fail(fmt.Sprint(val))
	}
}

// RuleFunc is a validation predicate.
type RuleFunc func(ctx context.Context, in RuleInput) Outcome

// LooseFunc is a predicate written against the loose contract; see Normalize.
type LooseFunc func(ctx context.Context, in RuleInput) (any, error)

// Func adapts a LooseFunc into a RuleFunc.
func Func(fn LooseFunc) RuleFunc {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, in RuleInput) Outcome {
		return Normalize(fn(ctx, in))
	}
}

// Check adapts a plain boolean check into a RuleFunc failing with message.
func Check(message string, fn func(value any) bool) RuleFunc {
	return func(_ context.Context, in RuleInput) Outcome {
		if fn(in.Value) {
			return Pass()
		}
		return Fail(message)
	}
}

// RuleDefinition is a registry entry.
type RuleDefinition struct {
	Name string
	Func RuleFunc
}

// asRuleFunc converts the rule forms accepted by declarations into a RuleFunc.
func asRuleFunc(rule any) (RuleFunc, bool) {
	switch fn := rule.(type) {
	case RuleFunc:
		return fn, fn != nil
	case func(context.Context, RuleInput) Outcome:
		return RuleFunc(fn), fn != nil
	case LooseFunc:
		return Func(fn), fn != nil
	case func(context.Context, RuleInput) (any, error):
		return Func(fn), fn != nil
	default:
		return nil, false
	}
}

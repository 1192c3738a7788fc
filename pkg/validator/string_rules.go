package validator

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// requiredRule rejects nil, blank strings and empty collections.
func requiredRule(_ context.Context, in RuleInput) Outcome {
	ok := !isAbsent(in.Value)
	if ok {
		switch v := in.Value.(type) {
		case string:
			ok = strings.TrimSpace(v) != ""
		default:
			rv := reflect.ValueOf(v)
			switch rv.Kind() {
			case reflect.Slice, reflect.Map, reflect.Array:
				ok = rv.Len() > 0
			}
		}
	}
	if ok {
		return Pass()
	}
	return Fail("field is required").
		Because(ErrFieldRequired).
		WithTranslation("validation.required", nil)
}

func minLengthRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	min, err := intParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := sizeOf(in.Value); ok && n >= min {
		return Pass()
	}
	return Failf("must be at least %d characters long", min).
		WithTranslation("validation.min_length", map[string]any{"min": min})
}

func maxLengthRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	max, err := intParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := sizeOf(in.Value); ok && n <= max {
		return Pass()
	}
	return Failf("must be at most %d characters long", max).
		WithTranslation("validation.max_length", map[string]any{"max": max})
}

func lengthRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	exact, err := intParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := sizeOf(in.Value); ok && n == exact {
		return Pass()
	}
	return Fail(fmt.Sprintf("must be exactly %d characters long", exact)).
		WithTranslation("validation.exact_length", map[string]any{"length": exact})
}

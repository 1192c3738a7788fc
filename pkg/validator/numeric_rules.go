package validator

import (
	"context"

	"github.com/spf13/cast"
)

// numberOf coerces the validated value; strings holding numbers are accepted.
func numberOf(in RuleInput) (float64, bool) {
	n, err := cast.ToFloat64E(in.Value)
	return n, err == nil
}

func minRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	min, err := floatParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := numberOf(in); ok && n >= min {
		return Pass()
	}
	return Failf("must be at least %v", in.Param(0)).
		WithTranslation("validation.min", map[string]any{"min": in.Param(0)})
}

func maxRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	max, err := floatParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := numberOf(in); ok && n <= max {
		return Pass()
	}
	return Failf("must be at most %v", in.Param(0)).
		WithTranslation("validation.max", map[string]any{"max": in.Param(0)})
}

func numberLessThanRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	limit, err := floatParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := numberOf(in); ok && n < limit {
		return Pass()
	}
	return Failf("must be less than %v", in.Param(0)).
		WithTranslation("validation.less_than", map[string]any{"limit": in.Param(0)})
}

func numberGreaterThanRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	limit, err := floatParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := numberOf(in); ok && n > limit {
		return Pass()
	}
	return Failf("must be greater than %v", in.Param(0)).
		WithTranslation("validation.greater_than", map[string]any{"limit": in.Param(0)})
}

func betweenRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	min, err := floatParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	max, err := floatParam(in, 1)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := numberOf(in); ok && n >= min && n <= max {
		return Pass()
	}
	return Failf("must be between %v and %v", in.Param(0), in.Param(1)).
		WithTranslation("validation.between", map[string]any{"min": in.Param(0), "max": in.Param(1)})
}

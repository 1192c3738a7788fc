package validator

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

func inRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	allowed := stringParams(in.Params)
	if s, ok := stringOf(in); ok && slices.Contains(allowed, s) {
		return Pass()
	}
	return Fail(fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))).
		WithTranslation("validation.in_list", map[string]any{"allowed_values": strings.Join(allowed, ", ")})
}

func notInRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	forbidden := stringParams(in.Params)
	if s, ok := stringOf(in); ok && slices.Contains(forbidden, s) {
		return Fail(fmt.Sprintf("must not be one of: %s", strings.Join(forbidden, ", "))).
			WithTranslation("validation.not_in_list", map[string]any{"forbidden_values": strings.Join(forbidden, ", ")})
	}
	return Pass()
}

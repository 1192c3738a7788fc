package validator

import (
	"context"
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// equalsFieldRule compares the value with a sibling field named by params[0],
// e.g. a password confirmation.
func equalsFieldRule(_ context.Context, in RuleInput) Outcome {
	other := cast.ToString(in.Param(0))
	if other == "" {
		return FailErr(fmt.Errorf("%w: equalsField expects a field name param", ErrInvalidParams))
	}

	sibling, _ := in.Sibling(other)
	if isAbsent(in.Value) && isAbsent(sibling) {
		return Pass()
	}
	if reflect.DeepEqual(in.Value, sibling) {
		return Pass()
	}
	return Failf("must match %s", other).
		WithTranslation("validation.equals_field", map[string]any{"other": other})
}

package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")

	tests := []struct {
		name    string
		value   any
		err     error
		passed  bool
		message string
	}{
		{"literal true passes", true, nil, true, ""},
		{"false fails", false, nil, false, "false"},
		{"string is the message", "too short", nil, false, "too short"},
		{"nil fails with empty message", nil, nil, false, ""},
		{"number fails with its text", 42, nil, false, "42"},
		{"error wins over value", true, cause, false, "db down"},
		{"truthy string still fails", "true", nil, false, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := validator.Normalize(tt.value, tt.err)
			assert.Equal(t, tt.passed, out.Passed())
			assert.Equal(t, tt.message, out.Message())
		})
	}

	t.Run("outcome passes through", func(t *testing.T) {
		t.Parallel()
		out := validator.Normalize(validator.Fail("kept"), nil)
		assert.Equal(t, "kept", out.Message())
	})

	t.Run("error is retained", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, validator.Normalize(nil, cause).Err(), cause)
	})
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Pass().Passed())
	assert.Equal(t, "want 3, got 4", validator.Failf("want %d, got %d", 3, 4).Message())
	assert.Equal(t, "", validator.FailErr(nil).Message())

	cause := errors.New("reason")
	out := validator.Fail("custom").Because(cause)
	assert.False(t, out.Passed())
	assert.ErrorIs(t, out.Err(), cause)
}

func TestOutcomeTranslationUsedByEngine(t *testing.T) {
	t.Parallel()

	values := map[string]any{"limit": 3}
	rule := validator.Named("tiny", func(context.Context, validator.RuleInput) validator.Outcome {
		return validator.Fail("too big").WithTranslation("custom.too_big", values)
	})

	res := validator.New().Validate(context.Background(), 9, validator.Rules(rule))
	values["limit"] = 100

	assert.Equal(t, "custom.too_big", res.Error.TranslationKey)
	assert.Equal(t, 3, res.Error.TranslationValues["limit"])
	assert.Equal(t, 9, res.Error.TranslationValues["value"])
}

func TestCheck(t *testing.T) {
	t.Parallel()

	nonZero := validator.Check("must not be zero", func(v any) bool { return v != 0 })

	assert.True(t, nonZero(context.Background(), validator.RuleInput{Value: 1}).Passed())
	out := nonZero(context.Background(), validator.RuleInput{Value: 0})
	assert.False(t, out.Passed())
	assert.Equal(t, "must not be zero", out.Message())
}

func TestFuncNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, validator.Func(nil))
}

func TestRuleInput(t *testing.T) {
	t.Parallel()

	in := validator.RuleInput{
		Params: []any{"a", 2},
		Data:   map[string]any{"other": "x"},
	}
	assert.Equal(t, "a", in.Param(0))
	assert.Equal(t, 2, in.Param(1))
	assert.Nil(t, in.Param(2))
	assert.Nil(t, in.Param(-1))

	v, ok := in.Sibling("other")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = in.Sibling("missing")
	assert.False(t, ok)

	_, ok = validator.RuleInput{}.Sibling("other")
	assert.False(t, ok)
}

func TestRuleParamsAreIsolated(t *testing.T) {
	t.Parallel()

	mutate := func(_ context.Context, in validator.RuleInput) validator.Outcome {
		in.Params[0] = "mutated"
		return validator.Pass()
	}
	bindings := validator.Rules(validator.With(validator.RuleFunc(mutate), "original"))

	validator.New().Validate(context.Background(), 1, bindings)
	assert.Equal(t, "original", bindings[0].Params[0])
}

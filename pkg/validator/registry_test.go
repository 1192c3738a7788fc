package validator_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func constRule(msg string) validator.RuleFunc {
	return func(context.Context, validator.RuleInput) validator.Outcome {
		if msg == "" {
			return validator.Pass()
		}
		return validator.Fail(msg)
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	t.Run("resolve registered rule", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		require.NoError(t, r.Register("even", constRule("")))

		def, err := r.Resolve("even")
		require.NoError(t, err)
		assert.Equal(t, "even", def.Name)
		assert.True(t, def.Func(context.Background(), validator.RuleInput{}).Passed())
		assert.True(t, r.Has("even"))
	})

	t.Run("name is trimmed", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		require.NoError(t, r.Register("  spaced ", constRule("")))
		assert.True(t, r.Has("spaced"))
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		assert.ErrorIs(t, r.Register(" ", constRule("")), validator.ErrEmptyRuleName)
	})

	t.Run("nil function", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		assert.ErrorIs(t, r.Register("nothing", nil), validator.ErrNilRule)
		assert.ErrorIs(t, r.RegisterFunc("nothing", nil), validator.ErrNilRule)
		assert.False(t, r.Has("nothing"))
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		_, err := r.Resolve("ghost")
		assert.ErrorIs(t, err, validator.ErrRuleNotFound)
		assert.Contains(t, err.Error(), `"ghost"`)
	})

	t.Run("must register panics on invalid input", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		assert.Panics(t, func() { r.MustRegister("", constRule("")) })
	})
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := validator.NewRegistry(validator.WithRegistryLogger(logger.New(logger.WithOutput(&buf))))
	require.NoError(t, r.Register("check", constRule("first")))
	require.NoError(t, r.Register("check", constRule("second")))

	def, err := r.Resolve("check")
	require.NoError(t, err)
	assert.Equal(t, "second", def.Func(context.Background(), validator.RuleInput{}).Message())
	assert.Contains(t, buf.String(), "rule overwritten")
	assert.Contains(t, buf.String(), "check")
}

func TestRegistryRegisterFunc(t *testing.T) {
	t.Parallel()

	r := validator.NewRegistry()
	require.NoError(t, r.RegisterFunc("positive", func(_ context.Context, in validator.RuleInput) (any, error) {
		n, _ := in.Value.(int)
		if n > 0 {
			return true, nil
		}
		return "must be positive", nil
	}))

	engine := validator.New(validator.WithRegistry(r))
	assert.True(t, engine.Validate(context.Background(), 3, validator.Rules("positive")).Success)

	res := engine.Validate(context.Background(), -1, validator.Rules("positive"))
	require.False(t, res.Success)
	assert.Equal(t, "must be positive", res.Error.Message)
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()

	r := validator.NewRegistry()
	validator.RegisterBuiltins(r)
	names := r.Names()

	assert.IsIncreasing(t, names)
	for _, name := range []string{
		"required", "minLength", "maxLength", "length", "min", "max",
		"numberLessThan", "numberGreaterThan", "between", "email", "url",
		"uuid", "alpha", "alphanumeric", "numeric", "regex", "in", "notIn",
		"equalsField", "date", "before", "after", "minAge", "birthdate",
		"password", "notCommonPassword", "passwordEntropy", "slug", "domain",
		"semver", "hex", "creditCard", "currencyCode", "decimalPlaces",
	} {
		assert.Contains(t, names, name)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := validator.NewRegistry()
	validator.RegisterBuiltins(r)
	engine := validator.New(validator.WithRegistry(r))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 100 {
			r.MustRegister("late", constRule(""))
		}
	}()
	for range 100 {
		res := engine.Validate(context.Background(), "abc", validator.Rules("required", "minLength:2"))
		assert.True(t, res.Success)
	}
	<-done
	assert.True(t, r.Has("late"))
}

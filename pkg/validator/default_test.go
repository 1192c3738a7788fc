package validator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestDefaultEngine(t *testing.T) {
	t.Parallel()

	const target validator.Target = "default_test.Invite"
	require.NoError(t, validator.Declare(target, "code", "length:6"))
	require.NoError(t, validator.RegisterRule("defaultTestUpper", validator.Check("must be upper case", func(v any) bool {
		s, _ := v.(string)
		return s != "" && s == strings.ToUpper(s)
	})))

	assert.Same(t, validator.Default().Registry(), validator.DefaultRegistry)
	assert.Same(t, validator.Default().Store(), validator.DefaultStore)
	assert.True(t, validator.DefaultRegistry.Has("required"))
	assert.True(t, validator.DefaultRegistry.Has("defaultTestUpper"))

	res := validator.ValidateTarget(context.Background(), target, map[string]any{"code": "ABC123"})
	assert.True(t, res.Success)

	fut := validator.ValidateTargetAsync(context.Background(), target, map[string]any{"code": "ABC"})
	short, err := fut.Await()
	require.NoError(t, err)
	require.False(t, short.Success)
	assert.Equal(t, "code", short.Errors[0].PropertyName)

	single := validator.Validate(context.Background(), "X", validator.Rules("defaultTestUpper"))
	assert.True(t, single.Success)

	one, err := validator.ValidateAsync(context.Background(), "lower", validator.Rules("defaultTestUpper")).Await()
	require.NoError(t, err)
	assert.False(t, one.Success)
}

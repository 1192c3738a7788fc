package rulekit_test

import (
	"errors"
	"testing"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func TestFormErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		fe := rulekit.NewFormErrors()
		assert.True(t, fe.IsEmpty())
		assert.Equal(t, "validation failed", fe.Error())
		assert.False(t, fe.Has("name"))
		assert.Empty(t, fe.Get("name"))
	})

	t.Run("add and get", func(t *testing.T) {
		t.Parallel()
		fe := rulekit.NewFormErrors()
		fe.Add("name", "is required")
		fe.Add("name", "is too short")
		fe.Add("email", "is invalid")

		assert.False(t, fe.IsEmpty())
		assert.True(t, fe.Has("name"))
		assert.Equal(t, "is required", fe.Get("name"))
		assert.Equal(t, "validation failed: email: is invalid, name: is required", fe.Error())
	})

	t.Run("matches validation sentinel", func(t *testing.T) {
		t.Parallel()
		fe := rulekit.NewFormErrors()
		fe.Add("a", "b")
		var err error = fe
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	})
}

func TestFormErrorsFrom(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{PropertyName: "email", Message: "must be a valid email address"},
		{PropertyName: "age", Message: "must be less than 10"},
		{PropertyName: "", Message: "value failed"},
	}
	fe := rulekit.FormErrorsFrom(errs)

	assert.Equal(t, "must be a valid email address", fe.Get("email"))
	assert.Equal(t, "must be less than 10", fe.Get("age"))
	assert.Equal(t, "value failed", fe.Get(""))
}

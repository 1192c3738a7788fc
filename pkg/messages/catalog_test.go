package messages_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/rulekit/pkg/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, opts ...messages.Option) *messages.Catalog {
	t.Helper()

	src := messages.MapSource{
		"en": {
			"validation": map[string]any{
				"required":  "%{field} is required",
				"less_than": "%{field} must be less than %{limit}",
			},
			"plain": "Plain message",
		},
		"DE": {
			"validation": map[string]any{
				"required": "%{field} ist erforderlich",
			},
		},
	}
	cat, err := messages.New(context.Background(), src, opts...)
	require.NoError(t, err)
	return cat
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil source", func(t *testing.T) {
		t.Parallel()
		_, err := messages.New(context.Background(), nil)
		assert.ErrorIs(t, err, messages.ErrNilSource)
	})

	t.Run("empty language", func(t *testing.T) {
		t.Parallel()
		_, err := messages.New(context.Background(), messages.MapSource{"": {"a": "b"}})
		assert.ErrorIs(t, err, messages.ErrEmptyLanguage)
	})

	t.Run("source changes after New are not visible", func(t *testing.T) {
		t.Parallel()
		nested := map[string]any{"greeting": "Hello"}
		src := messages.MapSource{"en": {"app": nested, "plain": "Plain"}}
		cat, err := messages.New(context.Background(), src)
		require.NoError(t, err)

		nested["greeting"] = "Changed"
		src["en"]["plain"] = "Changed"

		msg, ok := cat.T("en", "app.greeting", nil)
		assert.True(t, ok)
		assert.Equal(t, "Hello", msg)
		msg, _ = cat.T("en", "plain", nil)
		assert.Equal(t, "Plain", msg)
	})

	t.Run("languages are lowercased and sorted", func(t *testing.T) {
		t.Parallel()
		cat := newCatalog(t)
		assert.Equal(t, []string{"de", "en"}, cat.Languages())
		assert.Equal(t, messages.DefaultLanguage, cat.DefaultLanguage())
	})
}

func TestCatalogT(t *testing.T) {
	t.Parallel()
	cat := newCatalog(t)

	t.Run("substitutes placeholders", func(t *testing.T) {
		t.Parallel()
		msg, ok := cat.T("en", "validation.less_than", map[string]any{"field": "Age", "limit": 10})
		assert.True(t, ok)
		assert.Equal(t, "Age must be less than 10", msg)
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		t.Parallel()
		msg, ok := cat.T("en", "validation.less_than", map[string]any{"field": "Age"})
		assert.True(t, ok)
		assert.Equal(t, "Age must be less than %{limit}", msg)
	})

	t.Run("language lookup is case insensitive", func(t *testing.T) {
		t.Parallel()
		msg, ok := cat.T("De", "validation.required", map[string]any{"field": "Name"})
		assert.True(t, ok)
		assert.Equal(t, "Name ist erforderlich", msg)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		msg, ok := cat.T("de", "validation.less_than", map[string]any{"field": "Alter", "limit": 3})
		assert.True(t, ok)
		assert.Equal(t, "Alter must be less than 3", msg)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, ok := cat.T("en", "validation.unknown", nil)
		assert.False(t, ok)
	})

	t.Run("key pointing at a map", func(t *testing.T) {
		t.Parallel()
		_, ok := cat.T("en", "validation", nil)
		assert.False(t, ok)
	})

	t.Run("key descending through a string", func(t *testing.T) {
		t.Parallel()
		_, ok := cat.T("en", "plain.nested", nil)
		assert.False(t, ok)
	})

	t.Run("no params returns template", func(t *testing.T) {
		t.Parallel()
		msg, ok := cat.T("en", "plain", nil)
		assert.True(t, ok)
		assert.Equal(t, "Plain message", msg)
	})
}

func TestCatalogHas(t *testing.T) {
	t.Parallel()
	cat := newCatalog(t)

	assert.True(t, cat.Has("en", "validation.required"))
	assert.True(t, cat.Has("DE", "validation.required"))
	assert.False(t, cat.Has("de", "validation.less_than"))
	assert.False(t, cat.Has("fr", "validation.required"))
}

func TestCatalogTranslate(t *testing.T) {
	t.Parallel()

	t.Run("uses context locale", func(t *testing.T) {
		t.Parallel()
		cat := newCatalog(t)
		ctx := messages.WithLocale(context.Background(), "de")

		msg, ok := cat.Translate(ctx, "validation.required", map[string]any{"field": "Name"})
		assert.True(t, ok)
		assert.Equal(t, "Name ist erforderlich", msg)
	})

	t.Run("without locale uses default language", func(t *testing.T) {
		t.Parallel()
		cat := newCatalog(t, messages.WithDefaultLanguage("DE"))

		msg, ok := cat.Translate(context.Background(), "validation.required", map[string]any{"field": "Name"})
		assert.True(t, ok)
		assert.Equal(t, "Name ist erforderlich", msg)
	})

	t.Run("unknown locale falls back", func(t *testing.T) {
		t.Parallel()
		cat := newCatalog(t)
		ctx := messages.WithLocale(context.Background(), "fr")

		msg, ok := cat.Translate(ctx, "validation.required", map[string]any{"field": "Name"})
		assert.True(t, ok)
		assert.Equal(t, "Name is required", msg)
	})
}

func TestLocale(t *testing.T) {
	t.Parallel()

	assert.Empty(t, messages.Locale(context.Background()))
	assert.Equal(t, "pl", messages.Locale(messages.WithLocale(context.Background(), "pl")))
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	cat, err := messages.New(context.Background(), messages.Builtin)
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en"}, cat.Languages())

	for _, key := range []string{
		"validation.required",
		"validation.min_length",
		"validation.less_than",
		"validation.in_list",
		"validation.equals_field",
	} {
		assert.True(t, cat.Has("en", key), key)
		assert.True(t, cat.Has("de", key), key)
	}

	msg, ok := cat.T("en", "validation.between", map[string]any{"field": "Age", "min": 1, "max": 5})
	assert.True(t, ok)
	assert.Equal(t, "Age must be between 1 and 5", msg)
}

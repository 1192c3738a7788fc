package messages_test

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/dmitrymomot/rulekit/pkg/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	t.Parallel()

	cat, err := messages.New(context.Background(), messages.DirSource(filepath.Join("testdata", "locales")))
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en"}, cat.Languages())

	msg, ok := cat.T("en", "validation.min_length", map[string]any{"field": "Name", "min": 2})
	assert.True(t, ok)
	assert.Equal(t, "Name must be at least 2 characters", msg)

	msg, ok = cat.T("de", "validation.required", map[string]any{"field": "Name"})
	assert.True(t, ok)
	assert.Equal(t, "Name ist erforderlich", msg)
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	t.Run("yaml file", func(t *testing.T) {
		t.Parallel()
		got, err := messages.FileSource(filepath.Join("testdata", "locales", "en.yaml")).Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, got, "en")
		assert.Contains(t, got["en"], "validation")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := messages.FileSource(filepath.Join("testdata", "locales", "README.txt")).Load(context.Background())
		assert.ErrorIs(t, err, messages.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := messages.FileSource(filepath.Join("testdata", "missing.json")).Load(context.Background())
		assert.ErrorIs(t, err, messages.ErrFailedToReadFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := messages.FileSource(filepath.Join("testdata", "locales", "en.yaml")).Load(ctx)
		assert.ErrorIs(t, err, messages.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFSSource(t *testing.T) {
	t.Parallel()

	t.Run("merges nested keys across files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"i18n/a.yaml": {Data: []byte("en:\n  validation:\n    required: \"A\"\n    email: \"bad email\"\n")},
			"i18n/b.json": {Data: []byte(`{"en": {"validation": {"required": "B"}}}`)},
			"i18n/c.txt":  {Data: []byte("ignored")},
		}

		got, err := messages.FSSource{FS: fsys, Dir: "i18n"}.Load(context.Background())
		require.NoError(t, err)

		validation, ok := got["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "B", validation["required"])
		assert.Equal(t, "bad email", validation["email"])
	})

	t.Run("no catalog files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"i18n/notes.txt": {Data: []byte("x")}}
		_, err := messages.FSSource{FS: fsys, Dir: "i18n"}.Load(context.Background())
		assert.ErrorIs(t, err, messages.ErrNoCatalogFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := messages.FSSource{FS: fstest.MapFS{}, Dir: "nope"}.Load(context.Background())
		assert.ErrorIs(t, err, messages.ErrFailedToReadDir)
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.json": {Data: []byte(`{"en": "not a map"}`)}}
		_, err := messages.FSSource{FS: fsys}.Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.yaml": {Data: []byte("en: [unclosed")}}
		_, err := messages.FSSource{FS: fsys}.Load(context.Background())
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})
}

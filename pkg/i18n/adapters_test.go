package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/dmitrymomot/toolsite/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("loads and deep merges files in name order", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"locales/a.yaml": {Data: []byte("en:\n  site:\n    name: Tools\n    tagline: Old\n")},
			"locales/b.yaml": {Data: []byte("en:\n  site:\n    tagline: New\nes:\n  site:\n    name: Herramientas\n")},
			"locales/c.txt":  {Data: []byte("ignored")},
		}
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales")

		got, err := adapter.Load(context.Background())
		require.NoError(t, err)

		site := got["en"]["site"].(map[string]any)
		assert.Equal(t, "Tools", site["name"])
		assert.Equal(t, "New", site["tagline"])
		assert.Contains(t, got, "es")
	})

	t.Run("skips broken files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"good.yaml":  {Data: []byte("en:\n  hello: Hello\n")},
			"empty.yaml": {Data: []byte("")},
			"bad.yaml":   {Data: []byte("en: [unclosed")},
		}
		got, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, ".").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", got["en"]["hello"])
	})

	t.Run("fails when nothing loads", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"only.json": {Data: []byte(`{"en":{}}`)}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, ".").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("fails on missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "nope").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("respects cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		fsys := fstest.MapFS{"en.yaml": {Data: []byte("en:\n  a: b\n")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, ".").Load(ctx)
		require.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})

	t.Run("nil parser", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFSAdapter(nil, fstest.MapFS{}, "."))
	})
}

func TestDirAdapter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(`{"fr":{"hello":"Bonjour"}}`), 0o644))

	got, err := i18n.NewDirAdapter(i18n.NewJSONParser(), dir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", got["fr"]["hello"])

	assert.Nil(t, i18n.NewDirAdapter(i18n.NewJSONParser(), ""))
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"en":{"ui":{"copy":"Copy"}}}`), 0o644))
	bad := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(bad, []byte("en: [oops"), 0o644))

	got, err := i18n.NewFileAdapter(good).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Copy", got["en"]["ui"].(map[string]any)["copy"])

	_, err = i18n.NewFileAdapter(bad).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)

	_, err = i18n.NewFileAdapter(filepath.Join(dir, "missing.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)

	assert.Nil(t, i18n.NewFileAdapter("catalog.toml"))
}

func TestParsers(t *testing.T) {
	t.Parallel()

	t.Run("yaml rejects non-map language", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewYAMLParser().Parse(context.Background(), "en: hello\n")
		require.Error(t, err)
	})

	t.Run("yaml parse error", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewYAMLParser().Parse(context.Background(), "en: [")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("json skips non-object languages", func(t *testing.T) {
		t.Parallel()
		got, err := i18n.NewJSONParser().Parse(context.Background(), `{"en":{"a":"b"},"x":1}`)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("parser for file", func(t *testing.T) {
		t.Parallel()
		assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yml"))
		assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.JSON"))
		assert.Nil(t, i18n.NewParserForFile("en.toml"))
	})
}

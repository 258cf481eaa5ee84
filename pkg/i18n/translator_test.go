package i18n_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/toolsite/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"only_en": "English only",
			"items": map[string]any{
				"zero":  "No items",
				"one":   "%{count} item",
				"other": "%{count} items",
			},
			"tools": map[string]any{
				"base64-encode": map[string]any{
					"title":    "Base64 Encode",
					"features": []any{"Fast", "Private", 42},
					"faq": []any{
						map[string]any{"q": "Is it free?", "a": "Yes."},
						"not an entry",
					},
				},
			},
		},
		"es": {
			"hello":   "Hola",
			"welcome": "Bienvenido, %{name}!",
			"tools": map[string]any{
				"base64-encode": map[string]any{
					"title": "Codificar Base64",
				},
			},
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil adapter", func(t *testing.T) {
		t.Parallel()
		tr, err := i18n.NewTranslator(context.Background(), nil)
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
		assert.Nil(t, tr)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		t.Parallel()
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.ErrorIs(t, err, i18n.ErrEmptyCatalog)
		assert.Nil(t, tr)
	})

	t.Run("loads languages", func(t *testing.T) {
		t.Parallel()
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
		assert.Equal(t, uint64(1), tr.Version())
		assert.True(t, tr.HasLanguage("es"))
		assert.False(t, tr.HasLanguage("fr"))
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"plain key", "es", "hello", nil, "Hola"},
		{"substitution", "es", "welcome", []string{"name", "Ana"}, "Bienvenido, Ana!"},
		{"unknown placeholder kept", "en", "welcome", []string{"other", "x"}, "Welcome, %{name}!"},
		{"nested key", "es", "tools.base64-encode.title", nil, "Codificar Base64"},
		{"falls back to default language", "es", "only_en", nil, "English only"},
		{"unknown language uses default", "fr", "hello", nil, "Hello"},
		{"missing key returns key", "es", "nope.missing", nil, "nope.missing"},
		{"map value returns key", "en", "items", nil, "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_FallbackToKeyDisabled(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t, i18n.WithFallbackToKey(false))

	assert.Equal(t, "", tr.T("en", "missing"))
	assert.Equal(t, "Hola", tr.T("es", "hello"))
	assert.Equal(t, "default", tr.Td("es", "missing", "default"))
}

func TestTranslator_N(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "No items", tr.N("en", "items", 0))
	assert.Equal(t, "1 item", tr.N("en", "items", 1))
	assert.Equal(t, "7 items", tr.N("en", "items", 7))
	assert.Equal(t, "3 items", tr.N("es", "items", 3), "plural forms fall back to the default language")
	assert.Equal(t, "nothing", tr.N("en", "nothing", 2))
}

func TestTranslator_NPluralRules(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"apples": map[string]any{"one": "%{count} apple", "other": "%{count} apples"}},
		"fr": {"apples": map[string]any{"one": "%{count} pomme", "other": "%{count} pommes"}},
		"ja": {"apples": map[string]any{"other": "%{count} 個のりんご"}},
		"de": {"apples": "%{count} Äpfel"},
	}}, i18n.WithDefaultLanguage("en"))
	require.NoError(t, err)

	tests := []struct {
		lang string
		n    int
		want string
	}{
		{"en", 0, "0 apples"},
		{"en", 1, "1 apple"},
		{"en", -1, "-1 apple"},
		{"fr", 0, "0 pomme"},
		{"fr", 1, "1 pomme"},
		{"fr", 2, "2 pommes"},
		{"ja", 1, "1 個のりんご"},
		{"ja", 0, "0 個のりんご"},
		{"de", 1, "1 Äpfel"},
		{"es", 1, "1 apple"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.lang, tt.n), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.N(tt.lang, "apples", tt.n))
		})
	}
}

func TestTranslator_Lists(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	t.Run("strings skip non-string items", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"Fast", "Private"}, tr.Strings("en", "tools.base64-encode.features"))
	})

	t.Run("strings fall back to default language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"Fast", "Private"}, tr.Strings("es", "tools.base64-encode.features"))
	})

	t.Run("strings on missing key", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, tr.Strings("en", "tools.missing.features"))
		assert.Nil(t, tr.Strings("en", "hello"), "scalar is not a list")
	})

	t.Run("entries", func(t *testing.T) {
		t.Parallel()
		entries := tr.Entries("es", "tools.base64-encode.faq")
		require.Len(t, entries, 1)
		assert.Equal(t, "Is it free?", entries[0]["q"])
		assert.Equal(t, "Yes.", entries[0]["a"])
	})
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("es", "hello"))
	assert.False(t, tr.HasTranslation("es", "only_en"), "no fallback for HasTranslation")
	assert.False(t, tr.HasTranslation("fr", "hello"))
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "es")
	assert.Equal(t, "Hola", tr.Tc(ctx, "hello"))
	assert.Equal(t, "Hello", tr.Tc(context.Background(), "hello"))
}

func TestTranslator_Reload(t *testing.T) {
	t.Parallel()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"hello": "Hello"},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)

	adapter.Data["en"]["hello"] = "Hi"
	require.NoError(t, tr.Reload(context.Background()))

	assert.Equal(t, "Hi", tr.T("en", "hello"))
	assert.Equal(t, uint64(2), tr.Version())

	adapter.Data = map[string]map[string]any{}
	require.Error(t, tr.Reload(context.Background()))
	assert.Equal(t, "Hi", tr.T("en", "hello"), "failed reload keeps previous catalogs")
	assert.Equal(t, uint64(2), tr.Version())
}

func TestTranslator_ExportJSON(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	out, err := tr.ExportJSON("es")
	require.NoError(t, err)
	assert.Contains(t, out, `"hello":"Hola"`)

	_, err = tr.ExportJSON("fr")
	var notSupported *i18n.ErrLanguageNotSupported
	require.ErrorAs(t, err, &notSupported)
	assert.Equal(t, "fr", notSupported.Lang)
}

func TestTranslator_Checksum(t *testing.T) {
	t.Parallel()

	load := func(name string) *i18n.Translator {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
			"en": {"site": map[string]any{"name": name, "tagline": "Tools"}},
			"de": {"site": map[string]any{"name": "Werkzeuge"}},
		}})
		require.NoError(t, err)
		return tr
	}

	a, b, changed := load("Tools"), load("Tools"), load("Renamed")
	assert.NotZero(t, a.Checksum())
	assert.Equal(t, a.Checksum(), b.Checksum(), "identical catalogs hash the same in every process")
	assert.NotEqual(t, a.Checksum(), changed.Checksum())

	before := a.Checksum()
	require.NoError(t, a.Reload(context.Background()))
	assert.Equal(t, uint64(2), a.Version())
	assert.Equal(t, before, a.Checksum())
}

package content

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/toolsite/pkg/i18n"
)

// DefaultLocale is the catalog every other locale falls back to.
const DefaultLocale = "en"

// Locales lists the published languages, default first.
var Locales = []string{"en", "es", "fr", "de", "pt", "ja", "zh"}

//go:embed locales/*.yaml
var embedded embed.FS

// LocalesFS returns the embedded catalogs rooted at the locales directory.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// Adapter returns a translation adapter. An empty dir reads the embedded
// catalogs; otherwise YAML files are read from dir on every load, which is
// how catalogs are edited without rebuilding.
func Adapter(dir string, log *slog.Logger) i18n.TranslationAdapter {
	var a *i18n.FSAdapter
	if dir == "" {
		a = i18n.NewFSAdapter(i18n.NewYAMLParser(), LocalesFS(), ".")
	} else {
		a = i18n.NewDirAdapter(i18n.NewYAMLParser(), dir)
	}
	if log != nil {
		a = a.WithAdapterLogger(log)
	}
	return a
}

// NewTranslator loads the catalogs from dir (or the embedded copy) with the
// site's fallback rules.
func NewTranslator(ctx context.Context, dir string, log *slog.Logger) (*i18n.Translator, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLanguage(DefaultLocale),
		i18n.WithFallbackToKey(true),
	}
	if log != nil {
		opts = append(opts, i18n.WithLogger(log))
	}
	return i18n.NewTranslator(ctx, Adapter(dir, log), opts...)
}

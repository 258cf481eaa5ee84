package site_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolsite/internal/content"
	"github.com/dmitrymomot/toolsite/internal/site"
	"github.com/dmitrymomot/toolsite/pkg/i18n"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

func testConfig() site.Config {
	return site.Config{
		Name:          "toolsite",
		BaseURL:       "https://tools.example.com/",
		DefaultLocale: "en",
		AssetsURL:     "https://cdn.example.com/assets/",
		ShareQR:       true,
	}
}

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := content.NewTranslator(context.Background(), "", nil)
	require.NoError(t, err)
	return tr
}

func newPages(t *testing.T, opts ...site.PagesOption) *site.Pages {
	t.Helper()
	opts = append([]site.PagesOption{site.WithClock(fixedNow)}, opts...)
	p, err := site.NewPages(content.Default(), newTranslator(t), testConfig(), opts...)
	require.NoError(t, err)
	return p
}

func render(t *testing.T, page site.Page) string {
	t.Helper()
	r := site.NewRenderer(nil, nil, nil)
	b, _, err := r.Render(context.Background(), page)
	require.NoError(t, err)
	return string(b)
}

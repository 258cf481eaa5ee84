package site_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolsite/internal/content"
	"github.com/dmitrymomot/toolsite/internal/site"
	"github.com/dmitrymomot/toolsite/pkg/file"
)

func TestExportPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"/", "index.html"},
		{"/en/", "en/index.html"},
		{"/en/base64-encode", "en/base64-encode.html"},
		{"/zh/qr-code-generator", "zh/qr-code-generator.html"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, site.ExportPath(tt.in))
		})
	}
}

func exportTo(t *testing.T, dir string) site.ExportSummary {
	t.Helper()
	storage, err := file.NewLocalStorage(dir, "")
	require.NoError(t, err)
	p := newPages(t)
	sum, err := site.NewExporter(p, site.NewRenderer(nil, nil, nil), storage, nil).Export(context.Background())
	require.NoError(t, err)
	return sum
}

func readTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(b)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sum := exportTo(t, dir)

	pages := len(content.Locales) * (1 + content.Default().Len())
	assert.Equal(t, pages, sum.Pages)
	assert.Equal(t, pages+5, sum.Files)
	assert.Positive(t, sum.Bytes)

	files := readTree(t, dir)
	assert.Len(t, files, sum.Files)
	for _, name := range []string{
		"index.html", "404.html", "sitemap.xml", "robots.txt", "static/site.css",
		"en/index.html", "de/base64-encode.html", "ja/emoji-picker.html", "zh/html-entities.html",
	} {
		assert.Contains(t, files, name)
	}

	assert.Contains(t, files["index.html"], `content="0; url=/en/"`)
	assert.Contains(t, files["404.html"], "Page not found")
	assert.Contains(t, files["de/base64-encode.html"], `<html lang="de"`)
	assert.Contains(t, files["sitemap.xml"], "<loc>https://tools.example.com/pt/csv-to-json</loc>")
}

func TestExporter_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := t.TempDir(), t.TempDir()
	exportTo(t, a)
	exportTo(t, b)
	assert.Equal(t, readTree(t, a), readTree(t, b))
}

type brokenStorage struct {
	file.Storage
}

func (brokenStorage) Write(context.Context, string, string, []byte) error {
	return file.ErrAccessDenied
}

func TestExporter_StorageFailure(t *testing.T) {
	t.Parallel()

	_, err := site.NewExporter(newPages(t), site.NewRenderer(nil, nil, nil), brokenStorage{}, nil).
		Export(context.Background())
	require.ErrorIs(t, err, site.ErrExport)
	assert.ErrorIs(t, err, file.ErrAccessDenied)
}

func TestExporter_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	storage, err := file.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	sum, err := site.NewExporter(newPages(t), site.NewRenderer(nil, nil, nil), storage, nil).Export(ctx)
	require.ErrorIs(t, err, site.ErrExport)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, sum.Pages)
}

package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/toolsite/handler"
	"github.com/dmitrymomot/toolsite/internal/views"
	"github.com/dmitrymomot/toolsite/pkg/file"
	"github.com/dmitrymomot/toolsite/pkg/logger"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeXML  = "application/xml; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeCSS  = "text/css; charset=utf-8"
)

// ErrExport wraps every failure of Exporter.Export.
var ErrExport = errors.New("site: export failed")

// ExportSummary reports what an export wrote.
type ExportSummary struct {
	Pages    int
	Files    int
	Bytes    int64
	Duration time.Duration
}

// Exporter writes the whole site as static files.
type Exporter struct {
	pages    *Pages
	renderer *Renderer
	storage  file.Storage
	log      *slog.Logger
}

// NewExporter renders with renderer, which should not cache: an export
// is a single pass.
func NewExporter(pages *Pages, renderer *Renderer, storage file.Storage, log *slog.Logger) *Exporter {
	if log == nil {
		log = logger.Discard()
	}
	return &Exporter{pages: pages, renderer: renderer, storage: storage, log: log}
}

// ExportPath maps a page URL to a file key. Index URLs become
// <dir>/index.html and tool URLs <path>.html, which static hosts serve for
// the extensionless URL.
func ExportPath(urlPath string) string {
	p := strings.TrimPrefix(urlPath, "/")
	if p == "" || strings.HasSuffix(p, "/") {
		return p + "index.html"
	}
	return p + ".html"
}

// Export renders every index and tool page of every locale, then the
// sitemap, robots.txt, a 404 page, the root redirect and the static files.
// Files are written in a fixed order and the output depends only on the
// catalogs and the registry.
func (e *Exporter) Export(ctx context.Context) (ExportSummary, error) {
	start := time.Now()
	var sum ExportSummary

	write := func(key, contentType string, body []byte) error {
		if err := e.storage.Write(ctx, key, contentType, body); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrExport, key, err)
		}
		sum.Files++
		sum.Bytes += int64(len(body))
		e.log.DebugContext(ctx, "file exported", logger.Path(key), logger.Bytes(int64(len(body))))
		return nil
	}

	for _, lang := range e.pages.Locales() {
		index, err := e.pages.Index(lang)
		if err != nil {
			return sum, fmt.Errorf("%w: %w", ErrExport, err)
		}
		pages := []Page{index}
		for _, id := range e.pages.Registry().IDs() {
			page, err := e.pages.Tool(lang, id)
			if err != nil {
				return sum, fmt.Errorf("%w: %w", ErrExport, err)
			}
			pages = append(pages, page)
		}

		for _, page := range pages {
			if err := ctx.Err(); err != nil {
				return sum, fmt.Errorf("%w: %w", ErrExport, err)
			}
			body, _, err := e.renderer.Render(ctx, page)
			if err != nil {
				return sum, fmt.Errorf("%w: %w", ErrExport, err)
			}
			if err := write(ExportPath(page.Path), contentTypeHTML, body); err != nil {
				return sum, err
			}
			sum.Pages++
		}
		e.log.InfoContext(ctx, "locale exported", logger.Locale(lang), logger.Count(len(pages)))
	}

	sitemap, err := e.pages.Sitemap()
	if err != nil {
		return sum, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := write("sitemap.xml", contentTypeXML, sitemap); err != nil {
		return sum, err
	}
	if err := write("robots.txt", contentTypeText, e.pages.Robots()); err != nil {
		return sum, err
	}

	notFound, _, err := e.renderer.Render(ctx, e.pages.Error(e.pages.DefaultLocale(), handler.ErrNotFound, ""))
	if err != nil {
		return sum, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := write("404.html", contentTypeHTML, notFound); err != nil {
		return sum, err
	}

	var root bytes.Buffer
	if err := views.Redirect(IndexPath(e.pages.DefaultLocale())).Render(ctx, &root); err != nil {
		return sum, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := write("index.html", contentTypeHTML, root.Bytes()); err != nil {
		return sum, err
	}

	err = fs.WalkDir(StaticFS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(StaticFS(), p)
		if err != nil {
			return err
		}
		return write("static/"+p, staticContentType(p), b)
	})
	if err != nil {
		return sum, fmt.Errorf("%w: static files: %w", ErrExport, err)
	}

	sum.Duration = time.Since(start)
	e.log.InfoContext(ctx, "export finished",
		logger.Count(sum.Pages),
		slog.Int("files", sum.Files),
		logger.Bytes(sum.Bytes),
		logger.Duration(sum.Duration),
	)
	return sum, nil
}

func staticContentType(name string) string {
	if strings.HasSuffix(name, ".css") {
		return contentTypeCSS
	}
	return "application/octet-stream"
}

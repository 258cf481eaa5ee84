package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/toolsite/internal/metrics"
	"github.com/dmitrymomot/toolsite/pkg/cache"
	"github.com/dmitrymomot/toolsite/pkg/logger"
)

// CacheKey identifies a rendered page: lang/path@version.
func CacheKey(lang, path string, version uint64) string {
	return lang + "/" + strings.TrimPrefix(path, "/") + "@" + strconv.FormatUint(version, 10)
}

// Renderer turns pages into bytes, caching index and tool pages.
type Renderer struct {
	store   cache.Store
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewRenderer creates a renderer. A nil store disables caching.
func NewRenderer(store cache.Store, m *metrics.Metrics, log *slog.Logger) *Renderer {
	if store == nil {
		store = cache.Nop{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Renderer{store: store, metrics: m, log: log}
}

// Render returns the HTML for an assembled page and whether it came from
// the cache.
func (r *Renderer) Render(ctx context.Context, page Page) ([]byte, bool, error) {
	return r.RenderFunc(ctx, page.Ref(), func() (Page, error) { return page, nil })
}

// RenderFunc looks ref up in the cache and calls build only on a miss.
// Cache failures are logged and never fail the render. Error pages and
// refs without a path are never cached.
func (r *Renderer) RenderFunc(ctx context.Context, ref PageRef, build func() (Page, error)) ([]byte, bool, error) {
	if ref.Kind == KindError || ref.Path == "" {
		page, err := build()
		if err != nil {
			return nil, false, err
		}
		b, err := r.render(ctx, page)
		return b, false, err
	}

	key := ref.CacheKey()
	b, ok, err := r.store.Get(ctx, key)
	switch {
	case err != nil:
		r.cacheResult(metrics.CacheError)
		r.log.WarnContext(ctx, "page cache read failed", slog.String("key", key), logger.Error(err))
	case ok:
		r.cacheResult(metrics.CacheHit)
		return b, true, nil
	default:
		r.cacheResult(metrics.CacheMiss)
	}

	page, err := build()
	if err != nil {
		return nil, false, err
	}
	b, err = r.render(ctx, page)
	if err != nil {
		return nil, false, err
	}
	// The key keeps the version seen at lookup. A catalog reload during the
	// build only leaves a newer body under the older key.
	if err := r.store.Set(ctx, key, b); err != nil {
		r.log.WarnContext(ctx, "page cache write failed", slog.String("key", key), logger.Error(err))
	}
	return b, false, nil
}

func (r *Renderer) render(ctx context.Context, page Page) ([]byte, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := page.Component().Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("site: render %s %s: %w", page.Kind, page.Path, err)
	}
	if r.metrics != nil {
		r.metrics.ObserveRender(page.Kind, time.Since(start))
	}
	return buf.Bytes(), nil
}

func (r *Renderer) cacheResult(result string) {
	if r.metrics != nil {
		r.metrics.CacheResult(result)
	}
}

package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/toolsite/internal/metrics"
	"github.com/dmitrymomot/toolsite/pkg/logger"
)

// DefaultDebounce groups the burst of events an editor produces on save.
const DefaultDebounce = 250 * time.Millisecond

// Reloader is implemented by *i18n.Translator.
type Reloader interface {
	Reload(ctx context.Context) error
	Version() uint64
}

// CatalogWatcher reloads the catalogs whenever a catalog file in dir
// changes. A failed reload keeps the previous catalogs.
type CatalogWatcher struct {
	dir      string
	target   Reloader
	metrics  *metrics.Metrics
	log      *slog.Logger
	debounce time.Duration
	reloaded func(version uint64, err error)
}

type WatchOption func(*CatalogWatcher)

func WithDebounce(d time.Duration) WatchOption {
	return func(w *CatalogWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithWatchLogger(l *slog.Logger) WatchOption {
	return func(w *CatalogWatcher) {
		if l != nil {
			w.log = l
		}
	}
}

// OnReload registers a callback run after every reload attempt.
func OnReload(fn func(version uint64, err error)) WatchOption {
	return func(w *CatalogWatcher) { w.reloaded = fn }
}

func NewCatalogWatcher(dir string, target Reloader, m *metrics.Metrics, opts ...WatchOption) *CatalogWatcher {
	w := &CatalogWatcher{
		dir:      dir,
		target:   target,
		metrics:  m,
		log:      logger.Discard(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func isCatalogFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Run watches until ctx is done. It returns an error only when the watch
// cannot be set up.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("site: watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("site: watch %s: %w", w.dir, err)
	}
	w.log.InfoContext(ctx, "watching catalogs", logger.Path(w.dir))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isCatalogFile(ev.Name) || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.DebugContext(ctx, "catalog changed", logger.Path(ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WarnContext(ctx, "catalog watcher error", logger.Error(err))
		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *CatalogWatcher) reload(ctx context.Context) {
	err := w.target.Reload(ctx)
	version := w.target.Version()
	if w.metrics != nil {
		w.metrics.CatalogReloaded(version, err)
	}
	if err != nil {
		w.log.ErrorContext(ctx, "catalog reload failed, keeping previous version",
			logger.Version(version), logger.Error(err))
	} else {
		w.log.InfoContext(ctx, "catalogs reloaded", logger.Version(version))
	}
	if w.reloaded != nil {
		w.reloaded(version, err)
	}
}

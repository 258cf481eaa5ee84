package site_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolsite/internal/content"
	"github.com/dmitrymomot/toolsite/internal/metrics"
	"github.com/dmitrymomot/toolsite/internal/site"
)

type reloadLog struct {
	mu      sync.Mutex
	ok      int
	failed  int
	version uint64
}

func (l *reloadLog) record(version uint64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.version = version
	if err != nil {
		l.failed++
	} else {
		l.ok++
	}
}

func (l *reloadLog) counts() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ok, l.failed
}

func TestCatalogWatcher_Reload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	en, err := fs.ReadFile(content.LocalesFS(), "en.yaml")
	require.NoError(t, err)
	catalog := filepath.Join(dir, "en.yaml")
	require.NoError(t, os.WriteFile(catalog, en, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tr, err := content.NewTranslator(ctx, dir, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(1), tr.Version())

	var log reloadLog
	m := metrics.New()
	w := site.NewCatalogWatcher(dir, tr, m,
		site.WithDebounce(20*time.Millisecond),
		site.OnReload(log.record),
	)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	renamed := strings.Replace(string(en), `name: "DevTools Online"`, `name: "Renamed Tools"`, 1)
	require.Eventually(t, func() bool {
		_ = os.WriteFile(catalog, []byte(renamed), 0o644)
		ok, _ := log.counts()
		return ok > 0
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, "Renamed Tools", tr.T("en", "site.name"))
	assert.Greater(t, tr.Version(), uint64(1))
	assert.Contains(t, scrape(t, m), `toolsite_catalog_reloads_total{result="ok"}`)

	require.Eventually(t, func() bool {
		_ = os.WriteFile(catalog, []byte("en: [broken"), 0o644)
		_, failed := log.counts()
		return failed > 0
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, "Renamed Tools", tr.T("en", "site.name"), "a failed reload keeps the previous catalog")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestCatalogWatcher_MissingDir(t *testing.T) {
	t.Parallel()

	w := site.NewCatalogWatcher(filepath.Join(t.TempDir(), "missing"), newTranslator(t), nil)
	assert.Error(t, w.Run(context.Background()))
}

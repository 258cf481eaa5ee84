package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolsite/internal/metrics"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.PageView("json-to-csv", "es")
	m.PageView("json-to-csv", "es")
	m.CacheResult(metrics.CacheHit)
	m.CacheResult(metrics.CacheMiss)
	m.ObserveRender("tool", 3*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/{lang}/{tool}", http.StatusOK, 5*time.Millisecond)
	m.CatalogReloaded(3, nil)
	m.CatalogReloaded(0, errors.New("bad yaml"))

	out := scrape(t, m)
	assert.Contains(t, out, `toolsite_page_views_total{lang="es",tool="json-to-csv"} 2`)
	assert.Contains(t, out, `toolsite_page_cache_total{result="hit"} 1`)
	assert.Contains(t, out, `toolsite_page_cache_total{result="miss"} 1`)
	assert.Contains(t, out, `toolsite_page_render_seconds_count{kind="tool"} 1`)
	assert.Contains(t, out, `toolsite_http_request_duration_seconds_count{method="GET",route="/{lang}/{tool}",status="200"} 1`)
	assert.Contains(t, out, `toolsite_catalog_version 3`)
	assert.Contains(t, out, `toolsite_catalog_reloads_total{result="error"} 1`)
	assert.Contains(t, out, "go_goroutines")
}

func TestMetrics_Isolated(t *testing.T) {
	t.Parallel()

	a, b := metrics.New(), metrics.New()
	a.PageView("regex-tester", "ja")
	assert.NotContains(t, scrape(t, b), `tool="regex-tester"`)
}

package site_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolsite/internal/metrics"
	"github.com/dmitrymomot/toolsite/internal/site"
	"github.com/dmitrymomot/toolsite/pkg/cache"
	"github.com/dmitrymomot/toolsite/pkg/httpserver"
	"github.com/dmitrymomot/toolsite/pkg/i18n"
	"github.com/dmitrymomot/toolsite/pkg/requestid"
)

type testServer struct {
	handler http.Handler
	metrics *metrics.Metrics
}

func newServer(t *testing.T, opts ...site.ServerOption) testServer {
	t.Helper()
	p := newPages(t)
	m := metrics.New()
	r := site.NewRenderer(cache.NewMemoryStore(64, time.Minute), m, nil)
	h, err := site.NewServer(p, r, m, opts...).Handler()
	require.NoError(t, err)
	return testServer{handler: h, metrics: m}
}

func (s testServer) get(path string, mod ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, fn := range mod {
		fn(req)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func header(k, v string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(k, v) }
}

func TestServer_Redirects(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	tests := []struct {
		name     string
		path     string
		mod      []func(*http.Request)
		status   int
		location string
		vary     bool
	}{
		{"root default", "/", nil, http.StatusFound, "/en/", true},
		{"root accept-language", "/", []func(*http.Request){header("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")}, http.StatusFound, "/de/", true},
		{"root cookie beats header", "/", []func(*http.Request){
			header("Accept-Language", "de"),
			func(r *http.Request) { r.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "ja"}) },
		}, http.StatusFound, "/ja/", true},
		{"root query", "/?lang=pt", nil, http.StatusFound, "/pt/", true},
		{"locale without slash", "/es", nil, http.StatusMovedPermanently, "/es/", false},
		{"tool without locale", "/json-to-yaml", []func(*http.Request){header("Accept-Language", "fr")}, http.StatusMovedPermanently, "/fr/json-to-yaml", true},
		{"tool trailing slash", "/zh/regex-tester/", nil, http.StatusMovedPermanently, "/zh/regex-tester", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := s.get(tt.path, tt.mod...)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			if tt.vary {
				assert.Contains(t, rec.Header().Values("Vary"), "Accept-Language")
			}
		})
	}
}

func TestServer_Pages(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	t.Run("index", func(t *testing.T) {
		t.Parallel()
		rec := s.get("/es/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "es", rec.Header().Get("Content-Language"))
		assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Body.String(), `<html lang="es"`)
	})

	t.Run("tool", func(t *testing.T) {
		t.Parallel()
		rec := s.get("/de/base64-encode")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Base64 kodieren")
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
		assert.Equal(t, "private, max-age=300", rec.Header().Get("Cache-Control"))

		var lang *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == i18n.CookieName {
				lang = c
			}
		}
		require.NotNil(t, lang)
		assert.Equal(t, "de", lang.Value)
		assert.Equal(t, "/", lang.Path)
		assert.True(t, lang.HttpOnly)
	})
}

func TestServer_CacheHeader(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	assert.Equal(t, "MISS", s.get("/ja/emoji-picker").Header().Get("X-Cache"))

	hit := s.get("/ja/emoji-picker")
	assert.Equal(t, "HIT", hit.Header().Get("X-Cache"))
	assert.Equal(t, "private, max-age=300", hit.Header().Get("Cache-Control"))
	assert.Contains(t, hit.Header().Get("Set-Cookie"), i18n.CookieName+"=ja")

	assert.Equal(t, "MISS", s.get("/ja/").Header().Get("X-Cache"))
	assert.Equal(t, "HIT", s.get("/ja/").Header().Get("X-Cache"))
}

func TestServer_NotFound(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	tests := []struct {
		name string
		path string
		lang string
		text string
	}{
		{"unknown tool in locale", "/de/nope", "de", "Seite nicht gefunden"},
		{"unknown locale index", "/xx/", "en", "Page not found"},
		{"unknown locale tool", "/xx/base64-encode", "en", "Page not found"},
		{"unknown single segment", "/nope", "en", "Page not found"},
		{"unmatched route", "/a/b/c", "en", "Page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := s.get(tt.path, header(requestid.Header, "trace-123"))
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			body := rec.Body.String()
			assert.Contains(t, body, `<html lang="`+tt.lang+`"`)
			assert.Contains(t, body, tt.text)
			assert.Contains(t, body, "trace-123")
			assert.Contains(t, body, `<meta name="robots" content="noindex">`)
		})
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/en/", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_SiteFiles(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/sitemap.xml", "application/xml; charset=utf-8", "<loc>https://tools.example.com/zh/html-entities</loc>"},
		{"/robots.txt", "text/plain; charset=utf-8", "Sitemap: https://tools.example.com/sitemap.xml"},
		{"/static/site.css", "text/css; charset=utf-8", ".container"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := s.get(tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestServer_Compression(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	rec := s.get("/en/html-entities", header("Accept-Encoding", "gzip"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		s := newServer(t)
		assert.Equal(t, "ALIVE", s.get("/healthz").Body.String())
		rec := s.get("/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("dependency down", func(t *testing.T) {
		t.Parallel()
		s := newServer(t, site.WithReadinessChecks(httpserver.Check{
			Name: "redis",
			Fn:   func(context.Context) error { return errors.New("connection refused") },
		}))
		assert.Equal(t, http.StatusOK, s.get("/healthz").Code)
		rec := s.get("/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	require.Equal(t, http.StatusOK, s.get("/de/base64-encode").Code)
	require.Equal(t, http.StatusNotFound, s.get("/de/nope").Code)

	body := s.get("/metrics").Body.String()
	assert.Contains(t, body, `toolsite_page_views_total{lang="de",tool="base64-encode"} 1`)
	assert.Contains(t, body, `route="/{lang}/{tool}"`)
	assert.Contains(t, body, `status="404"`)
}

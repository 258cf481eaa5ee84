package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/toolsite/handler"
	"github.com/dmitrymomot/toolsite/internal/metrics"
	"github.com/dmitrymomot/toolsite/pkg/httpserver"
	"github.com/dmitrymomot/toolsite/pkg/i18n"
	"github.com/dmitrymomot/toolsite/pkg/logger"
	"github.com/dmitrymomot/toolsite/pkg/requestid"
)

var errCatalogNotLoaded = errors.New("site: catalog not loaded")

const (
	readinessTimeout = 2 * time.Second
	langCookieMaxAge = 365 * 24 * 60 * 60
	pageCacheControl = "public, max-age=300"
	// Tool responses set the language cookie, so shared caches must not
	// store them.
	toolCacheControl = "private, max-age=300"
)

// Server serves the site over HTTP.
type Server struct {
	pages      *Pages
	renderer   *Renderer
	metrics    *metrics.Metrics
	negotiator *i18n.Negotiator
	log        *slog.Logger
	checks     []httpserver.Check
	onError    handler.ErrorHandler
}

type ServerOption func(*Server)

func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithReadinessChecks adds dependencies /readyz must reach.
func WithReadinessChecks(checks ...httpserver.Check) ServerOption {
	return func(s *Server) { s.checks = append(s.checks, checks...) }
}

func NewServer(pages *Pages, renderer *Renderer, m *metrics.Metrics, opts ...ServerOption) *Server {
	s := &Server{
		pages:      pages,
		renderer:   renderer,
		metrics:    m,
		negotiator: i18n.NewNegotiator(pages.DefaultLocale(), pages.Locales()),
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.onError = handler.NewErrorHandler(s.log, s.errorPage)
	return s
}

// Handler builds the router with the full middleware chain.
func (s *Server) Handler() (http.Handler, error) {
	compression, err := compress()
	if err != nil {
		return nil, fmt.Errorf("site: compression: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.GetHead,
		requestid.Middleware,
		recoverer(s.log, s.onError),
		accessLog(s.log, s.metrics),
		compression,
		locale(s.negotiator),
	)

	r.NotFound(s.wrap(func(handler.Context) handler.Response {
		return handler.Fail(handler.ErrNotFound)
	}))
	r.MethodNotAllowed(s.wrap(func(handler.Context) handler.Response {
		return handler.Fail(handler.NewHTTPError(http.StatusMethodNotAllowed, "errors.not_found"))
	}))

	r.Get("/healthz", httpserver.HealthCheckHandler(s.log, 0))
	r.Get("/readyz", httpserver.HealthCheckHandler(s.log, readinessTimeout, s.readiness()...))
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	r.Get("/robots.txt", s.wrap(s.robots))
	r.Get("/sitemap.xml", s.wrap(s.sitemap))
	r.Method(http.MethodGet, "/static/*", staticHandler())

	r.Get("/", s.wrap(s.root))
	r.Get("/{lang}", s.wrap(s.alias))
	r.Get("/{lang}/", s.wrap(s.index))
	r.Get("/{lang}/{tool}", s.wrap(s.tool))
	r.Get("/{lang}/{tool}/", s.wrap(s.trailingSlash))

	return r, nil
}

func (s *Server) wrap(h handler.HandlerFunc) http.HandlerFunc {
	return handler.Wrap(h, handler.WithErrorHandler(s.onError))
}

// readiness always includes the catalog so a server with no translations
// never reports ready.
func (s *Server) readiness() []httpserver.Check {
	catalog := httpserver.Check{
		Name: "catalog",
		Fn: func(context.Context) error {
			if !s.pages.Loaded() {
				return errCatalogNotLoaded
			}
			return nil
		},
	}
	return append([]httpserver.Check{catalog}, s.checks...)
}

func (s *Server) errorPage(r *http.Request, err handler.HTTPError, requestID string) templ.Component {
	lang := i18n.GetLocale(r.Context())
	return s.pages.Error(lang, err, requestID).Component()
}

func (s *Server) negotiated(r *http.Request) string {
	lang := i18n.GetLocale(r.Context())
	if !s.pages.HasLocale(lang) {
		return s.pages.DefaultLocale()
	}
	return lang
}

// root sends visitors to their language's index.
func (s *Server) root(ctx handler.Context) handler.Response {
	return handler.Redirect(IndexPath(s.negotiated(ctx.Request())), http.StatusFound, "Accept-Language", "Cookie")
}

// alias handles single-segment paths: a locale without its trailing slash,
// or a tool without a locale.
func (s *Server) alias(ctx handler.Context) handler.Response {
	slug := chi.URLParam(ctx.Request(), "lang")
	if s.pages.HasLocale(slug) {
		return handler.Redirect(IndexPath(slug), http.StatusMovedPermanently)
	}
	if _, ok := s.pages.Registry().Lookup(slug); ok {
		return handler.Redirect(ToolPath(s.negotiated(ctx.Request()), slug), http.StatusMovedPermanently, "Accept-Language", "Cookie")
	}
	return handler.Fail(fmt.Errorf("%w: %q", ErrUnknownTool, slug))
}

func (s *Server) trailingSlash(ctx handler.Context) handler.Response {
	r := ctx.Request()
	lang, id := chi.URLParam(r, "lang"), chi.URLParam(r, "tool")
	if !s.pages.HasLocale(lang) {
		return handler.Fail(fmt.Errorf("%w: %q", ErrUnknownLocale, lang))
	}
	return handler.Redirect(ToolPath(lang, id), http.StatusMovedPermanently)
}

func (s *Server) index(ctx handler.Context) handler.Response {
	ref, err := s.pages.IndexRef(chi.URLParam(ctx.Request(), "lang"))
	if err != nil {
		return handler.Fail(err)
	}
	return s.respond(ctx, ref, pageCacheControl, func() (Page, error) {
		return s.pages.Index(ref.Lang)
	})
}

func (s *Server) tool(ctx handler.Context) handler.Response {
	r := ctx.Request()
	ref, err := s.pages.ToolRef(chi.URLParam(r, "lang"), chi.URLParam(r, "tool"))
	if err != nil {
		return handler.Fail(err)
	}
	if s.metrics != nil {
		s.metrics.PageView(ref.Tool, ref.Lang)
	}
	http.SetCookie(ctx.ResponseWriter(), &http.Cookie{
		Name:     i18n.CookieName,
		Value:    ref.Lang,
		Path:     "/",
		MaxAge:   langCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.respond(ctx, ref, toolCacheControl, func() (Page, error) {
		return s.pages.Tool(ref.Lang, ref.Tool)
	})
}

// respond serves ref from the page cache, assembling it with build on a
// miss.
func (s *Server) respond(ctx handler.Context, ref PageRef, cacheControl string, build func() (Page, error)) handler.Response {
	body, hit, err := s.renderer.RenderFunc(ctx, ref, build)
	if err != nil {
		return handler.Fail(err)
	}
	h := http.Header{}
	h.Set("Cache-Control", cacheControl)
	h.Set("Content-Language", ref.Lang)
	if hit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	return handler.HTML(body, h)
}

func (s *Server) sitemap(handler.Context) handler.Response {
	b, err := s.pages.Sitemap()
	if err != nil {
		return handler.Fail(err)
	}
	return handler.Bytes(http.StatusOK, contentTypeXML, b)
}

func (s *Server) robots(handler.Context) handler.Response {
	return handler.Bytes(http.StatusOK, contentTypeText, s.pages.Robots())
}

package site

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/CAFxX/httpcompression"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/toolsite/handler"
	"github.com/dmitrymomot/toolsite/internal/metrics"
	"github.com/dmitrymomot/toolsite/pkg/i18n"
	"github.com/dmitrymomot/toolsite/pkg/logger"
)

// accessLog records one line and one latency observation per request. The
// route label is chi's pattern, so metric cardinality stays bounded.
func accessLog(log *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			if m != nil {
				m.ObserveHTTP(r.Method, route, status, elapsed)
			}

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				slog.String("route", route),
				logger.Status(status),
				logger.Bytes(int64(ww.BytesWritten())),
				logger.Duration(elapsed),
			)
		})
	}
}

// recoverer turns a panic into a logged 500 page.
func recoverer(log *slog.Logger, onError handler.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				onError(handler.NewContext(w, r), fmt.Errorf("panic: %v: %w", rec, handler.ErrInternal))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// compress negotiates brotli, zstd or gzip for text responses.
func compress() (func(http.Handler) http.Handler, error) {
	return httpcompression.DefaultAdapter(
		httpcompression.MinSize(512),
		httpcompression.ContentTypes([]string{
			"text/html",
			"text/css",
			"text/plain",
			"application/xml",
			"text/xml",
		}, false),
	)
}

// locale stores the request locale in the context. The path prefix wins;
// then the lang query parameter, the lang cookie and Accept-Language.
func locale(n *i18n.Negotiator) func(http.Handler) http.Handler {
	return i18n.Middleware(i18n.DefaultLangExtractor(n), n.Default())
}

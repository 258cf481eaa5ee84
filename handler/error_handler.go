package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toolsite/pkg/logger"
	"github.com/dmitrymomot/toolsite/pkg/requestid"
)

// ErrorPage builds the page shown for a failed request.
type ErrorPage func(r *http.Request, err HTTPError, requestID string) templ.Component

func logLevel(code int) slog.Level {
	if code >= http.StatusBadRequest && code < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler logs err with the request context and renders page with
// the classified status. Without a page, or when the page itself fails, a
// plain text error is written.
func NewErrorHandler(log *slog.Logger, page ErrorPage) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		id := requestid.FromContext(r.Context())
		httpErr := Classify(err)

		log.LogAttrs(r.Context(), logLevel(httpErr.Code), "request error",
			logger.RequestID(id),
			logger.Error(err),
			logger.Status(httpErr.Code),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Component("error_handler"),
		)

		w.Header().Set("Cache-Control", "no-store")
		if page == nil {
			http.Error(w, http.StatusText(httpErr.Code), httpErr.Code)
			return
		}
		if renderErr := TemplWithStatus(httpErr.Code, page(r, httpErr, id)).Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error page",
				logger.RequestID(id),
				logger.Error(renderErr),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

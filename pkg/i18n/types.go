package i18n

import "net/http"

// LangExtractor extracts a language code from an HTTP request.
// It returns an empty string when the request carries no usable hint.
type LangExtractor func(r *http.Request) string

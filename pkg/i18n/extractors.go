package i18n

import (
	"net/http"
	"strings"
)

// Defaults for request-level language hints.
const (
	CookieName     = "lang"
	QueryParamName = "lang"
)

// PathPrefixExtractor reads the first path segment ("/es/base64-encode" → "es").
func PathPrefixExtractor(n *Negotiator) LangExtractor {
	return func(r *http.Request) string {
		segment := strings.TrimPrefix(r.URL.Path, "/")
		if i := strings.IndexByte(segment, '/'); i >= 0 {
			segment = segment[:i]
		}
		if lang, ok := n.Normalize(segment); ok {
			return lang
		}
		return ""
	}
}

// CookieExtractor reads the named cookie.
func CookieExtractor(n *Negotiator, name string) LangExtractor {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		lang, _ := n.Normalize(cookie.Value)
		return lang
	}
}

// QueryExtractor reads the named query parameter.
func QueryExtractor(n *Negotiator, name string) LangExtractor {
	return func(r *http.Request) string {
		lang, _ := n.Normalize(r.URL.Query().Get(name))
		return lang
	}
}

// AcceptLanguageExtractor negotiates the Accept-Language header. It returns
// an empty string when the header is absent so later extractors can run.
func AcceptLanguageExtractor(n *Negotiator) LangExtractor {
	return func(r *http.Request) string {
		header := r.Header.Get("Accept-Language")
		if strings.TrimSpace(header) == "" {
			return ""
		}
		return n.Match(header)
	}
}

// Chain returns the first non-empty result of extractors.
func Chain(extractors ...LangExtractor) LangExtractor {
	return func(r *http.Request) string {
		for _, ex := range extractors {
			if ex == nil {
				continue
			}
			if lang := ex(r); lang != "" {
				return lang
			}
		}
		return ""
	}
}

// DefaultLangExtractor checks, in order: URL path prefix, query parameter,
// cookie, Accept-Language.
func DefaultLangExtractor(n *Negotiator) LangExtractor {
	return Chain(
		PathPrefixExtractor(n),
		QueryExtractor(n, QueryParamName),
		CookieExtractor(n, CookieName),
		AcceptLanguageExtractor(n),
	)
}

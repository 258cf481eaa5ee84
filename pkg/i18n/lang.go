package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when nothing else is configured.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header we are willing to parse.
const maxAcceptLanguageLength = 4096

// maxLangCodeLength is the longest language code accepted from a request (RFC 5646).
const maxLangCodeLength = 35

// Negotiator picks one of the supported languages for a request.
// The zero value is not usable; create it with NewNegotiator.
type Negotiator struct {
	defaultLang string
	supported   []string
	matcher     language.Matcher
}

// NewNegotiator builds a negotiator. defaultLang is always supported and is
// returned whenever nothing matches.
func NewNegotiator(defaultLang string, supported []string) *Negotiator {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}
	defaultLang = strings.ToLower(defaultLang)

	// The matcher falls back to its first tag, so the default goes first.
	langs := []string{defaultLang}
	for _, l := range supported {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && !slices.Contains(langs, l) {
			langs = append(langs, l)
		}
	}

	tags := make([]language.Tag, 0, len(langs))
	kept := make([]string, 0, len(langs))
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, l)
	}

	return &Negotiator{
		defaultLang: defaultLang,
		supported:   kept,
		matcher:     language.NewMatcher(tags),
	}
}

// Default returns the fallback language.
func (n *Negotiator) Default() string {
	return n.defaultLang
}

// Supported returns the negotiable languages, default first.
func (n *Negotiator) Supported() []string {
	return slices.Clone(n.supported)
}

// Normalize maps a language code from a URL, cookie or query to a supported
// language. "es-MX" resolves to "es" when only "es" is supported.
// The boolean is false when the code does not map to any supported language.
func (n *Negotiator) Normalize(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || len(code) > maxLangCodeLength {
		return "", false
	}
	if slices.Contains(n.supported, code) {
		return code, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	if b := base.String(); slices.Contains(n.supported, b) {
		return b, true
	}
	return "", false
}

// Match negotiates an Accept-Language header value. It never returns an
// unsupported language.
func (n *Negotiator) Match(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return n.defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return n.defaultLang
	}

	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(n.supported) {
		return n.defaultLang
	}
	return n.supported[idx]
}

// ParseAcceptLanguage negotiates header against supportedLangs and returns
// defaultLang when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if defaultLang == "" {
		defaultLang = supportedLangs[0]
	}
	return NewNegotiator(defaultLang, supportedLangs).Match(header)
}

package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Translator resolves catalog keys for a language.
// It is safe for concurrent use; Reload swaps catalogs under a write lock.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
	version        uint64
	checksum       uint64
}

// NewTranslator creates a Translator and performs the initial load.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-reads catalogs from the adapter. On failure the previously loaded
// catalogs stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateTranslations(translations); err != nil {
		return err
	}
	sum, err := checksum(translations)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.checksum = sum
	t.version++
	version := t.version
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded",
		slog.Any("languages", t.SupportedLanguages()),
		slog.Uint64("version", version),
	)
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		return ErrEmptyCatalog
	}
	for lang, translations := range trans {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

// Version returns a counter that increments on every successful load.
func (t *Translator) Version() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}

// Checksum identifies the loaded catalog content. Unlike Version it is the
// same for identical catalogs across processes and restarts.
func (t *Translator) Checksum() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.checksum
}

// checksum hashes the canonical JSON form; encoding/json sorts map keys.
func checksum(trans map[string]map[string]any) (uint64, error) {
	b, err := json.Marshal(trans)
	if err != nil {
		return 0, errors.Join(ErrFailedToMarshalJSON, err)
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64(), nil
}

// DefaultLanguage returns the language used as fallback for missing keys.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted list of loaded language codes.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasLanguage reports whether a catalog exists for lang.
func (t *Translator) HasLanguage(lang string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.translations[lang]
	return ok
}

// HasTranslation reports whether key exists for lang itself, without fallback.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = getTranslation(langMap, key)
	return ok
}

// getTranslation traverses a nested map using dot-separated keys.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// lookup resolves key in lang and then in the default language.
// Callers must hold the read lock.
func (t *Translator) lookup(lang, key string) (any, bool) {
	if langMap, ok := t.translations[lang]; ok {
		if val, ok := getTranslation(langMap, key); ok {
			return val, true
		}
	}
	if lang != t.defaultLang {
		if langMap, ok := t.translations[t.defaultLang]; ok {
			if val, ok := getTranslation(langMap, key); ok {
				if t.missingLogMode {
					t.logger.Warn("translation missing, using default language", "lang", lang, "key", key)
				}
				return val, true
			}
		}
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return nil, false
}

// buildParams converts key, value, key, value... into a map.
// If the number of arguments is odd, the last one is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders. Unknown placeholders are kept.
func sprintf(tmpl string, args []string) string {
	if len(args) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func (t *Translator) missing(key string, args []string) string {
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// T translates key for lang with %{name} substitution from key/value args.
//
//	// "welcome": "Hello, %{name}!"
//	tr.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, ok := t.lookup(lang, key)
	if !ok {
		return t.missing(key, args)
	}
	switch v := val.(type) {
	case string:
		return sprintf(v, args)
	case fmt.Stringer:
		return sprintf(v.String(), args)
	case int, int64, float64, bool:
		return fmt.Sprint(v)
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return t.missing(key, args)
	}
}

// N translates a plural key. The form is chosen with the CLDR cardinal rules
// of each language: for n=0 key.zero is tried first, then the language's own
// form for n (one, two, few, many), then key.other and finally key itself.
// All of that happens inside lang before the default language is consulted,
// so a language with only "other" never borrows the default's "one". The
// "count" parameter is added automatically.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	args = withCount(args, n)

	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := []string{lang}
	if lang != t.defaultLang {
		langs = append(langs, t.defaultLang)
	}
	for _, l := range langs {
		catalog, ok := t.translations[l]
		if !ok {
			continue
		}
		s, ok := pluralString(catalog, key, pluralForms(l, n))
		if !ok {
			continue
		}
		if l != lang && t.missingLogMode {
			t.logger.Warn("translation missing, using default language", "lang", lang, "key", key)
		}
		return sprintf(s, args)
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return t.missing(key, args)
}

// pluralString returns the first of key.<form> that is a string, or key
// itself when it is a plain string.
func pluralString(catalog map[string]any, key string, forms []string) (string, bool) {
	for _, form := range forms {
		if val, ok := getTranslation(catalog, key+"."+form); ok {
			if s, ok := val.(string); ok {
				return s, true
			}
		}
	}
	val, ok := getTranslation(catalog, key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// pluralForms lists the catalog forms to try for n in lang, most specific
// first. Unparseable language codes use the root rules, which only know
// "other".
func pluralForms(lang string, n int) []string {
	forms := make([]string, 0, 3)
	if n == 0 {
		forms = append(forms, "zero")
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	if n < 0 {
		n = -n
	}
	if name := formName(plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0)); name != "other" && !slices.Contains(forms, name) {
		forms = append(forms, name)
	}
	return append(forms, "other")
}

func formName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

func withCount(args []string, n int) []string {
	for i := 0; i < len(args)-1; i += 2 {
		if args[i] == "count" {
			return args
		}
	}
	out := make([]string, len(args), len(args)+2)
	copy(out, args)
	return append(out, "count", strconv.Itoa(n))
}

// Td translates key and returns defaultValue when no language has it.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, ok := t.lookup(lang, key)
	if !ok {
		return sprintf(defaultValue, args)
	}
	s, ok := val.(string)
	if !ok {
		return sprintf(defaultValue, args)
	}
	return sprintf(s, args)
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Strings returns a list value such as a feature list. Non-string items are
// skipped. Returns nil when the key is missing in every language.
func (t *Translator) Strings(lang, key string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, ok := t.lookup(lang, key)
	if !ok {
		return nil
	}
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Entries returns a list of flat objects, for example FAQ items with "q" and
// "a" fields. Non-string fields are skipped.
func (t *Translator) Entries(lang, key string) []map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, ok := t.lookup(lang, key)
	if !ok {
		return nil
	}
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]string, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entry := make(map[string]string, len(m))
		for k, v := range m {
			if s, ok := v.(string); ok {
				entry[k] = s
			}
		}
		out = append(out, entry)
	}
	return out
}

// ExportJSON returns all translations of lang as JSON.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	bytes, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(bytes), nil
}

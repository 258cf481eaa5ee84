// Package i18n loads locale catalogs and resolves the language of a request.
//
// Catalogs are nested maps keyed by language code. They are loaded through a
// TranslationAdapter (an in-memory map, or any fs.FS such as an embedded
// directory or os.DirFS) and decoded by a Parser (YAML or JSON):
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter,
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLogger(log),
//	)
//
//	tr.T("es", "tools.base64-encode.title")
//	tr.Strings("es", "tools.base64-encode.features")
//	tr.Entries("es", "tools.base64-encode.faq")
//
// A key missing from the requested language is looked up in the default
// language before the translator gives up and returns the key itself, so a
// partially translated catalog still renders complete pages.
//
// # Language negotiation
//
// Negotiator wraps a golang.org/x/text/language matcher. It always answers with
// one of the supported languages. DefaultLangExtractor chains the URL path
// prefix, the "lang" cookie, the "lang" query parameter and Accept-Language,
// and Middleware stores the result in the request context:
//
//	neg := i18n.NewNegotiator("en", tr.SupportedLanguages())
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(neg)))
//
// # Reloading
//
// Reload re-reads the adapter and swaps the catalogs atomically. Version
// increments on every successful load so callers can key caches on it.
package i18n

// Package content declares the tools the site publishes and the localized
// text that describes them.
//
// Tool definitions are plain Go values in tools.go. Everything a reader sees
// (titles, intros, feature bullets, FAQs) lives in the YAML catalogs under
// locales/, one file per language, embedded into the binary. A catalog may
// lag behind the default language; CheckCoverage reports the gaps and the
// translator falls back to English at render time.
//
// The reference tables rendered by the HTML entity and emoji browsers are
// also declared here as data.
package content

package i18n

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageName returns the name of the language in that language ("es" →
// "español"). Unknown codes are returned unchanged.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

// Collator returns a case-insensitive collator for lang, falling back to
// English for unparseable codes. A Collator is not safe for concurrent use.
func Collator(lang string) *collate.Collator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return collate.New(tag, collate.IgnoreCase)
}

// SortByLocale sorts items in place by key using the collation rules of lang.
func SortByLocale[T any](lang string, items []T, key func(T) string) {
	c := Collator(lang)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}

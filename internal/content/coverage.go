package content

import (
	"slices"

	"github.com/dmitrymomot/toolsite/pkg/i18n"
)

// ToolFields are the catalog entries every tool needs in every locale.
var ToolFields = []string{"title", "description", "heading", "intro", "features", "faq"}

// SiteKeys are the shared catalog entries used by the layout and widgets.
var SiteKeys = []string{
	"site.name", "site.tagline", "site.description", "site.footer", "site.copyright",
	"nav.home", "nav.language", "nav.skip",
	"categories.encoding", "categories.data", "categories.generators", "categories.text", "categories.reference",
	"ui.input", "ui.output", "ui.copy", "ui.clear", "ui.swap", "ui.download", "ui.convert",
	"ui.encode", "ui.decode", "ui.format", "ui.minify", "ui.indent", "ui.url_safe", "ui.delimiter",
	"ui.pattern", "ui.flags", "ui.test_string", "ui.replacement", "ui.matches",
	"ui.qr_text", "ui.qr_size", "ui.qr_level", "ui.qr_generate",
	"ui.search", "ui.character", "ui.name", "ui.code_point", "ui.entity", "ui.group",
	"ui.escape", "ui.unescape", "ui.target",
	"ui.noscript", "ui.features_title", "ui.faq_title", "ui.resources_title", "ui.related_title",
	"ui.share_title", "ui.share_alt", "ui.tools_count", "ui.open",
	"errors.not_found.title", "errors.not_found.message",
	"errors.internal.title", "errors.internal.message",
	"errors.back_home", "errors.request_id",
}

func referenceGroups() []string {
	groups := slices.Clone(EntityGroups)
	for _, g := range EmojiGroups {
		if !slices.Contains(groups, g) {
			groups = append(groups, g)
		}
	}
	return groups
}

// Coverage lists the catalog keys a locale lacks.
type Coverage struct {
	Locale  string
	Missing []string
}

// Complete reports whether nothing is missing.
func (c Coverage) Complete() bool { return len(c.Missing) == 0 }

// CheckCoverage reports, per locale, every required key that is absent from
// that locale's own catalog. Gaps are not fatal; pages fall back to the
// default locale.
func CheckCoverage(tr *i18n.Translator, reg *Registry, locales []string) []Coverage {
	keys := slices.Clone(SiteKeys)
	for _, g := range referenceGroups() {
		keys = append(keys, "refgroups."+g)
	}
	for _, t := range reg.All() {
		for _, f := range ToolFields {
			keys = append(keys, t.Key(f))
		}
	}

	out := make([]Coverage, 0, len(locales))
	for _, lang := range locales {
		c := Coverage{Locale: lang}
		for _, k := range keys {
			if !tr.HasTranslation(lang, k) {
				c.Missing = append(c.Missing, k)
			}
		}
		out = append(out, c)
	}
	return out
}

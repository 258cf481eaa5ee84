package site

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toolsite/handler"
	"github.com/dmitrymomot/toolsite/internal/content"
	"github.com/dmitrymomot/toolsite/internal/views"
	"github.com/dmitrymomot/toolsite/pkg/i18n"
	"github.com/dmitrymomot/toolsite/pkg/qrcode"
)

// Both wrap handler.ErrNotFound so they render as 404 pages.
var (
	ErrUnknownLocale = fmt.Errorf("site: unknown locale: %w", handler.ErrNotFound)
	ErrUnknownTool   = fmt.Errorf("site: unknown tool: %w", handler.ErrNotFound)
	ErrInvalidConfig = errors.New("site: invalid configuration")
)

// Page kinds, also used as the render metric label.
const (
	KindIndex = "index"
	KindTool  = "tool"
	KindError = "error"
)

// PageRef identifies a page before it is assembled. Version is the content
// version of the catalogs and registry at lookup time.
type PageRef struct {
	Kind    string
	Lang    string
	Path    string
	Tool    string
	Version uint64
}

// CacheKey is the key the rendered page is stored under.
func (r PageRef) CacheKey() string {
	return CacheKey(r.Lang, r.Path, r.Version)
}

// Page is an assembled page ready to render. Version is captured when the
// page is assembled.
type Page struct {
	Kind    string
	Lang    string
	Path    string
	Tool    string
	Version uint64
	Chrome  views.Chrome
	Body    templ.Component
}

func (p Page) Ref() PageRef {
	return PageRef{Kind: p.Kind, Lang: p.Lang, Path: p.Path, Tool: p.Tool, Version: p.Version}
}

// Component wraps the body in the shared layout.
func (p Page) Component() templ.Component {
	return views.Layout(p.Chrome, p.Body)
}

// Pages builds pages from the registry and the translator. It holds no
// per-request state and is safe for concurrent use.
type Pages struct {
	reg     *content.Registry
	tr      *i18n.Translator
	cfg     Config
	locales []string
	now     func() time.Time
}

type PagesOption func(*Pages)

// WithClock replaces time.Now, which only feeds the copyright year.
func WithClock(now func() time.Time) PagesOption {
	return func(p *Pages) { p.now = now }
}

// WithLocales restricts the published locales. The default locale is always
// included and listed first.
func WithLocales(locales ...string) PagesOption {
	return func(p *Pages) { p.locales = slices.Clone(locales) }
}

func NewPages(reg *content.Registry, tr *i18n.Translator, cfg Config, opts ...PagesOption) (*Pages, error) {
	if reg == nil || tr == nil {
		return nil, fmt.Errorf("%w: registry and translator are required", ErrInvalidConfig)
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = content.DefaultLocale
	}
	p := &Pages{
		reg:     reg,
		tr:      tr,
		cfg:     cfg,
		locales: slices.Clone(content.Locales),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	locales := []string{cfg.DefaultLocale}
	for _, l := range p.locales {
		if !slices.Contains(locales, l) {
			locales = append(locales, l)
		}
	}
	p.locales = locales
	for _, l := range p.locales {
		if !tr.HasLanguage(l) {
			return nil, fmt.Errorf("%w: no catalog for locale %q", ErrInvalidConfig, l)
		}
	}
	return p, nil
}

// Locales returns the published locales, default first.
func (p *Pages) Locales() []string { return slices.Clone(p.locales) }

func (p *Pages) DefaultLocale() string { return p.cfg.DefaultLocale }

func (p *Pages) Registry() *content.Registry { return p.reg }

// Version identifies the content pages are built from: the loaded
// catalogs, the tool registry and the build ID. It is equal across
// processes serving the same content, so a shared page cache stays valid
// between replicas and is invalidated by any content change.
func (p *Pages) Version() uint64 {
	h := fnv.New64a()
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], p.tr.Checksum())
	_, _ = h.Write(b[:])
	binary.BigEndian.PutUint64(b[:], p.reg.Checksum())
	_, _ = h.Write(b[:])
	_, _ = h.Write([]byte(p.cfg.BuildID))
	return h.Sum64()
}

// Loaded reports whether the translator holds a catalog.
func (p *Pages) Loaded() bool { return p.tr.Version() > 0 }

// HasLocale reports whether lang is published.
func (p *Pages) HasLocale(lang string) bool {
	return slices.Contains(p.locales, lang)
}

// URL returns the absolute URL for path.
func (p *Pages) URL(path string) string {
	return p.cfg.baseURL() + path
}

func (p *Pages) t(lang string) views.Label {
	return func(key string) string { return p.tr.T(lang, key) }
}

// ToolRef resolves tool id in lang without assembling the page.
func (p *Pages) ToolRef(lang, id string) (PageRef, error) {
	if !p.HasLocale(lang) {
		return PageRef{}, fmt.Errorf("%w: %q", ErrUnknownLocale, lang)
	}
	if _, ok := p.reg.Lookup(id); !ok {
		return PageRef{}, fmt.Errorf("%w: %q", ErrUnknownTool, id)
	}
	return PageRef{Kind: KindTool, Lang: lang, Path: ToolPath(lang, id), Tool: id, Version: p.Version()}, nil
}

// IndexRef resolves the index of lang without assembling the page.
func (p *Pages) IndexRef(lang string) (PageRef, error) {
	if !p.HasLocale(lang) {
		return PageRef{}, fmt.Errorf("%w: %q", ErrUnknownLocale, lang)
	}
	return PageRef{Kind: KindIndex, Lang: lang, Path: IndexPath(lang), Version: p.Version()}, nil
}

// Tool assembles the page for tool id in lang.
func (p *Pages) Tool(lang, id string) (Page, error) {
	ref, err := p.ToolRef(lang, id)
	if err != nil {
		return Page{}, err
	}
	tool, _ := p.reg.Lookup(id)

	path := ref.Path
	title := p.tr.T(lang, tool.Key("title"))
	description := p.tr.T(lang, tool.Key("description"))

	body := views.ToolPage{
		Tool:           tool.ID,
		Lang:           lang,
		Heading:        p.tr.T(lang, tool.Key("heading")),
		Intro:          p.tr.T(lang, tool.Key("intro")),
		FeaturesTitle:  p.tr.T(lang, "ui.features_title"),
		Features:       p.tr.Strings(lang, tool.Key("features")),
		Blocks:         []templ.Component{p.widget(lang, tool)},
		FAQTitle:       p.tr.T(lang, "ui.faq_title"),
		FAQ:            p.faq(lang, tool),
		ResourcesTitle: p.tr.T(lang, "ui.resources_title"),
		RelatedTitle:   p.tr.T(lang, "ui.related_title"),
		ShareTitle:     p.tr.T(lang, "ui.share_title"),
		ShareAlt:       p.tr.T(lang, "ui.share_alt"),
	}
	for _, r := range tool.Resources {
		body.Resources = append(body.Resources, views.Link{Title: r.Title, URL: r.URL})
	}
	for _, rel := range tool.Related {
		body.Related = append(body.Related, views.Link{
			Title: p.tr.T(lang, "tools."+rel+".title"),
			URL:   ToolPath(lang, rel),
		})
	}
	if p.cfg.ShareQR {
		// A failed QR only hides the share box.
		if uri, err := qrcode.DataURI(p.URL(path)); err == nil {
			body.ShareQR = uri
		}
	}

	chrome := p.chrome(lang, KindTool, func(l string) string { return ToolPath(l, id) })
	chrome.Title = title + " | " + chrome.SiteName
	chrome.Description = description
	chrome.Scripts = []string{p.cfg.scriptURL(tool.Script)}
	chrome.JSONLD = toolJSONLD(p.URL(path), lang, title, description, body.FAQ)

	return Page{
		Kind:    KindTool,
		Lang:    lang,
		Path:    path,
		Tool:    tool.ID,
		Version: ref.Version,
		Chrome:  chrome,
		Body:    views.Tool(body),
	}, nil
}

func (p *Pages) faq(lang string, tool content.Tool) []views.FAQItem {
	entries := p.tr.Entries(lang, tool.Key("faq"))
	out := make([]views.FAQItem, 0, len(entries))
	for _, e := range entries {
		if e["q"] == "" || e["a"] == "" {
			continue
		}
		out = append(out, views.FAQItem{Question: e["q"], Answer: e["a"]})
	}
	return out
}

func (p *Pages) widget(lang string, tool content.Tool) templ.Component {
	w := views.Widget{
		Tool:  tool.ID,
		Kind:  string(tool.Widget),
		Mode:  tool.Mode,
		From:  tool.From,
		To:    tool.To,
		Label: p.t(lang),
	}
	switch tool.Widget {
	case content.WidgetCodec:
		return views.Codec(w)
	case content.WidgetConverter:
		return views.Converter(w)
	case content.WidgetQR:
		return views.QR(w)
	case content.WidgetRegex:
		return views.Regex(w)
	case content.WidgetEscape:
		return views.Escape(w)
	case content.WidgetCharRef:
		return views.CharRef(w, p.entityGroups(lang))
	case content.WidgetEmoji:
		return views.EmojiGrid(w, p.emojiGroups(lang))
	}
	return nil
}

func (p *Pages) entityGroups(lang string) []views.RefGroup {
	groups := make([]views.RefGroup, 0, len(content.EntityGroups))
	for _, g := range content.EntityGroups {
		rg := views.RefGroup{ID: g, Title: p.tr.T(lang, "refgroups."+g)}
		for _, e := range content.Entities {
			if e.Group != g {
				continue
			}
			rg.Rows = append(rg.Rows, views.RefRow{
				Glyph:   e.Glyph(),
				Name:    e.Name,
				Code:    e.Code(),
				Ref:     e.Ref(),
				Numeric: e.Numeric(),
			})
		}
		groups = append(groups, rg)
	}
	return groups
}

func (p *Pages) emojiGroups(lang string) []views.RefGroup {
	groups := make([]views.RefGroup, 0, len(content.EmojiGroups))
	for _, g := range content.EmojiGroups {
		rg := views.RefGroup{ID: g, Title: p.tr.T(lang, "refgroups."+g)}
		for _, e := range content.Emojis {
			if e.Group != g {
				continue
			}
			rg.Rows = append(rg.Rows, views.RefRow{Glyph: e.Glyph, Name: e.Name, Code: e.Code()})
		}
		groups = append(groups, rg)
	}
	return groups
}

// Index assembles the tool catalog page for lang.
func (p *Pages) Index(lang string) (Page, error) {
	ref, err := p.IndexRef(lang)
	if err != nil {
		return Page{}, err
	}

	body := views.IndexPage{
		Heading:   p.tr.T(lang, "site.tagline"),
		Intro:     p.tr.T(lang, "site.description"),
		OpenLabel: p.tr.T(lang, "ui.open"),
	}
	for _, g := range p.reg.ByCategory() {
		group := views.IndexGroup{
			ID:    string(g.Category),
			Title: p.tr.T(lang, "categories."+string(g.Category)),
			Count: p.tr.N(lang, "ui.tools_count", len(g.Tools)),
		}
		for _, t := range g.Tools {
			group.Items = append(group.Items, views.IndexItem{
				Title:       p.tr.T(lang, t.Key("title")),
				Description: p.tr.T(lang, t.Key("description")),
				URL:         ToolPath(lang, t.ID),
			})
		}
		i18n.SortByLocale(lang, group.Items, func(it views.IndexItem) string { return it.Title })
		body.Groups = append(body.Groups, group)
	}

	path := ref.Path
	chrome := p.chrome(lang, KindIndex, IndexPath)
	chrome.Title = chrome.SiteName + " | " + body.Heading
	chrome.Description = body.Intro
	chrome.JSONLD = indexJSONLD(p.URL(path), lang, chrome.SiteName, body.Intro)

	return Page{
		Kind:    KindIndex,
		Lang:    lang,
		Path:    path,
		Version: ref.Version,
		Chrome:  chrome,
		Body:    views.Index(body),
	}, nil
}

// Error assembles the error page for err. An unpublished lang falls back to
// the default locale. requestID may be empty.
func (p *Pages) Error(lang string, err handler.HTTPError, requestID string) Page {
	if !p.HasLocale(lang) {
		lang = p.cfg.DefaultLocale
	}

	body := views.ErrorPage{
		Status:    err.Code,
		Title:     p.tr.T(lang, err.Key+".title"),
		Message:   p.tr.T(lang, err.Key+".message"),
		BackLabel: p.tr.T(lang, "errors.back_home"),
		BackURL:   IndexPath(lang),
	}
	if requestID != "" {
		body.RequestID = p.tr.T(lang, "errors.request_id", "id", requestID)
	}

	chrome := p.chrome(lang, KindError, nil)
	chrome.Title = body.Title + " | " + chrome.SiteName
	chrome.Robots = "noindex"

	return Page{
		Kind:   KindError,
		Lang:   lang,
		Chrome: chrome,
		Body:   views.Error(body),
	}
}

// chrome fills the parts of the layout shared by every page. pathFor maps a
// locale to this page's path in that locale; nil means the page has no
// language versions.
func (p *Pages) chrome(lang, kind string, pathFor func(lang string) string) views.Chrome {
	siteName := p.tr.T(lang, "site.name")
	c := views.Chrome{
		Lang:          lang,
		Dir:           "ltr",
		SiteName:      siteName,
		HomeURL:       IndexPath(lang),
		LanguageLabel: p.tr.T(lang, "nav.language"),
		SkipLabel:     p.tr.T(lang, "nav.skip"),
		Tagline:       p.tr.T(lang, "site.tagline"),
		Footer:        p.tr.T(lang, "site.footer"),
		Copyright: p.tr.T(lang, "site.copyright",
			"year", strconv.Itoa(p.now().Year()),
			"name", siteName,
		),
		Styles: []string{StylesheetPath},
	}

	c.Nav = append(c.Nav, views.NavItem{
		Label:  p.tr.T(lang, "nav.home"),
		URL:    IndexPath(lang),
		Active: kind == KindIndex,
	})
	for _, g := range p.reg.ByCategory() {
		c.Nav = append(c.Nav, views.NavItem{
			Label: p.tr.T(lang, "categories."+string(g.Category)),
			URL:   IndexPath(lang) + "#" + string(g.Category),
		})
	}

	if pathFor == nil {
		pathFor = func(l string) string { return IndexPath(l) }
	} else {
		c.Canonical = p.URL(pathFor(lang))
		for _, l := range p.locales {
			c.Alternates = append(c.Alternates, views.Alternate{Lang: l, URL: p.URL(pathFor(l))})
		}
		c.Alternates = append(c.Alternates, views.Alternate{
			Lang: "x-default",
			URL:  p.URL(pathFor(p.cfg.DefaultLocale)),
		})
	}
	for _, l := range p.locales {
		c.Languages = append(c.Languages, views.LanguageOption{
			Code:   l,
			Name:   i18n.LanguageName(l),
			URL:    pathFor(l),
			Active: l == lang,
		})
	}
	return c
}

package views

import "github.com/a-h/templ"

// Alternate is one hreflang link. Lang "x-default" marks the fallback.
type Alternate struct {
	Lang string
	URL  string
}

type NavItem struct {
	Label  string
	URL    string
	Active bool
}

// LanguageOption is one entry of the language switcher. Name is the
// language's own name.
type LanguageOption struct {
	Code   string
	Name   string
	URL    string
	Active bool
}

// Chrome is everything the shared layout needs around a page body.
type Chrome struct {
	Lang        string
	Dir         string
	SiteName    string
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	// Robots is the robots meta directive, e.g. "noindex". Empty omits it.
	Robots string

	HomeURL   string
	Nav       []NavItem
	Languages []LanguageOption

	// Labels.
	LanguageLabel string
	SkipLabel     string
	Tagline       string
	Footer        string
	Copyright     string

	Styles  []string
	Scripts []string

	// JSONLD is a serialized JSON-LD document. It must already be safe for
	// embedding in a script element, which encoding/json output is.
	JSONLD  string
	OGImage string
	OGType  string
}

// Layout renders a complete HTML document around body.
func Layout(c Chrome, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		dir := c.Dir
		if dir == "" {
			dir = "ltr"
		}
		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", c.Lang)
		h.attr("dir", dir)
		h.raw(">")
		head(h, c)
		h.raw("<body>")
		h.raw(`<a class="skip-link" href="#main">`)
		h.text(c.SkipLabel)
		h.raw("</a>")
		header(h, c)
		h.raw(`<main id="main" class="container">`)
		h.render(body)
		h.raw("</main>")
		footer(h, c)
		for _, src := range c.Scripts {
			h.raw("<script defer")
			h.href("src", src)
			h.raw("></script>")
		}
		h.raw("</body></html>")
	})
}

func head(h *htmlWriter, c Chrome) {
	h.raw(`<head><meta charset="utf-8">`)
	h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.el("title", c.Title)
	meta(h, "name", "description", c.Description)
	meta(h, "name", "robots", c.Robots)
	if c.Canonical != "" {
		h.raw(`<link rel="canonical"`)
		h.href("href", c.Canonical)
		h.raw(">")
	}
	for _, a := range c.Alternates {
		h.raw(`<link rel="alternate"`)
		h.attr("hreflang", a.Lang)
		h.href("href", a.URL)
		h.raw(">")
	}

	ogType := c.OGType
	if ogType == "" {
		ogType = "website"
	}
	meta(h, "property", "og:type", ogType)
	meta(h, "property", "og:site_name", c.SiteName)
	meta(h, "property", "og:title", c.Title)
	meta(h, "property", "og:description", c.Description)
	meta(h, "property", "og:url", c.Canonical)
	meta(h, "property", "og:locale", c.Lang)
	meta(h, "property", "og:image", c.OGImage)
	card := "summary"
	if c.OGImage != "" {
		card = "summary_large_image"
	}
	meta(h, "name", "twitter:card", card)
	meta(h, "name", "twitter:title", c.Title)
	meta(h, "name", "twitter:description", c.Description)

	for _, href := range c.Styles {
		h.raw(`<link rel="stylesheet"`)
		h.href("href", href)
		h.raw(">")
	}
	if c.JSONLD != "" {
		h.raw(`<script type="application/ld+json">`, c.JSONLD, "</script>")
	}
	h.raw("</head>")
}

func meta(h *htmlWriter, kind, name, content string) {
	if content == "" {
		return
	}
	h.raw("<meta")
	h.attr(kind, name)
	h.attr("content", content)
	h.raw(">")
}

func header(h *htmlWriter, c Chrome) {
	h.raw(`<header class="site-header"><div class="container">`)
	h.raw(`<a class="brand"`)
	h.href("href", c.HomeURL)
	h.raw(">")
	h.text(c.SiteName)
	h.raw("</a>")
	if c.Tagline != "" {
		h.el("p", c.Tagline, "class", "tagline")
	}

	if len(c.Nav) > 0 {
		h.raw(`<nav class="site-nav"><ul>`)
		for _, item := range c.Nav {
			h.raw("<li><a")
			h.href("href", item.URL)
			if item.Active {
				h.raw(` aria-current="page"`)
			}
			h.raw(">")
			h.text(item.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul></nav>")
	}

	if len(c.Languages) > 0 {
		h.raw(`<nav class="lang-switcher"`)
		h.attr("aria-label", c.LanguageLabel)
		h.raw("><ul>")
		for _, l := range c.Languages {
			h.raw("<li><a")
			h.href("href", l.URL)
			h.attr("hreflang", l.Code)
			h.attr("lang", l.Code)
			if l.Active {
				h.raw(` aria-current="true"`)
			}
			h.raw(">")
			h.text(l.Name)
			h.raw("</a></li>")
		}
		h.raw("</ul></nav>")
	}
	h.raw("</div></header>")
}

func footer(h *htmlWriter, c Chrome) {
	h.raw(`<footer class="site-footer"><div class="container">`)
	if c.Footer != "" {
		h.el("p", c.Footer)
	}
	if c.Copyright != "" {
		h.el("p", c.Copyright, "class", "copyright")
	}
	h.raw("</div></footer>")
}

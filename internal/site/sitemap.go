package site

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapURL struct {
	Loc   string        `xml:"loc"`
	Links []sitemapLink `xml:"xhtml:link"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Paths returns every page path of lang in a stable order: the index, then
// tools in registry order.
func (p *Pages) Paths(lang string) []string {
	paths := []string{IndexPath(lang)}
	for _, id := range p.reg.IDs() {
		paths = append(paths, ToolPath(lang, id))
	}
	return paths
}

// Sitemap lists every page of every locale, each with hreflang alternates
// for all locales and x-default.
func (p *Pages) Sitemap() ([]byte, error) {
	pages := []func(lang string) string{IndexPath}
	for _, id := range p.reg.IDs() {
		pages = append(pages, func(lang string) string { return ToolPath(lang, id) })
	}

	set := urlset{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, pathFor := range pages {
		links := make([]sitemapLink, 0, len(p.locales)+1)
		for _, l := range p.locales {
			links = append(links, sitemapLink{Rel: "alternate", Hreflang: l, Href: p.URL(pathFor(l))})
		}
		links = append(links, sitemapLink{Rel: "alternate", Hreflang: "x-default", Href: p.URL(pathFor(p.cfg.DefaultLocale))})

		for _, l := range p.locales {
			set.URLs = append(set.URLs, sitemapURL{Loc: p.URL(pathFor(l)), Links: links})
		}
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("site: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Robots allows everything and points crawlers at the sitemap.
func (p *Pages) Robots() []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + p.URL("/sitemap.xml") + "\n")
}

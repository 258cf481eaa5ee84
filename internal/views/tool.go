package views

import "github.com/a-h/templ"

type Link struct {
	Title string
	URL   string
}

type FAQItem struct {
	Question string
	Answer   string
}

// ToolPage is the set of values a tool page hands to the layout: the tool
// identity and language, the localized sections and the custom blocks.
type ToolPage struct {
	Tool    string
	Lang    string
	Heading string
	Intro   string

	FeaturesTitle string
	Features      []string

	// Blocks are rendered between the intro and the features, in order.
	// The tool widget is normally the first one.
	Blocks []templ.Component

	FAQTitle string
	FAQ      []FAQItem

	ResourcesTitle string
	Resources      []Link

	RelatedTitle string
	Related      []Link

	ShareTitle string
	ShareAlt   string
	// ShareQR is a data: URI of the page's QR code. Empty hides the section.
	ShareQR string
}

// Tool renders the body of a tool page.
func Tool(p ToolPage) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<article class="tool"`)
		h.attr("data-tool", p.Tool)
		h.attr("lang", p.Lang)
		h.raw(">")

		h.raw(`<header class="tool-header">`)
		h.el("h1", p.Heading)
		if p.Intro != "" {
			h.el("p", p.Intro, "class", "lead")
		}
		h.raw("</header>")

		for _, b := range p.Blocks {
			h.render(b)
		}

		if len(p.Features) > 0 {
			h.raw(`<section class="features">`)
			h.el("h2", p.FeaturesTitle)
			h.raw("<ul>")
			for _, f := range p.Features {
				h.el("li", f)
			}
			h.raw("</ul></section>")
		}

		if len(p.FAQ) > 0 {
			h.raw(`<section class="faq">`)
			h.el("h2", p.FAQTitle)
			for _, item := range p.FAQ {
				h.raw("<details>")
				h.el("summary", item.Question)
				h.el("p", item.Answer)
				h.raw("</details>")
			}
			h.raw("</section>")
		}

		links(h, "resources", p.ResourcesTitle, p.Resources, true)
		links(h, "related", p.RelatedTitle, p.Related, false)

		if p.ShareQR != "" {
			h.raw(`<aside class="share">`)
			h.el("h2", p.ShareTitle)
			// data: URIs are not in templ's safe scheme list, so src is
			// written with plain escaping. ShareQR is produced server side.
			h.raw(`<img width="160" height="160" loading="lazy"`)
			h.attr("src", p.ShareQR)
			h.attr("alt", p.ShareAlt)
			h.raw("></aside>")
		}

		h.raw("</article>")
	})
}

func links(h *htmlWriter, class, title string, items []Link, external bool) {
	if len(items) == 0 {
		return
	}
	h.raw(`<section class="`, class, `">`)
	h.el("h2", title)
	h.raw("<ul>")
	for _, l := range items {
		h.raw("<li><a")
		h.href("href", l.URL)
		if external {
			h.raw(` rel="noopener" target="_blank"`)
		}
		h.raw(">")
		h.text(l.Title)
		h.raw("</a></li>")
	}
	h.raw("</ul></section>")
}

package views

import "github.com/a-h/templ"

type IndexItem struct {
	Title       string
	Description string
	URL         string
}

// IndexGroup is one category on the index page. Count is the already
// pluralized "N tools" label.
type IndexGroup struct {
	ID    string
	Title string
	Count string
	Items []IndexItem
}

type IndexPage struct {
	Heading   string
	Intro     string
	OpenLabel string
	Groups    []IndexGroup
}

// Index renders the tool catalog.
func Index(p IndexPage) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="index"><header>`)
		h.el("h1", p.Heading)
		if p.Intro != "" {
			h.el("p", p.Intro, "class", "lead")
		}
		h.raw("</header>")
		for _, g := range p.Groups {
			h.raw(`<section class="category"`)
			h.attr("id", g.ID)
			h.raw("><h2>")
			h.text(g.Title)
			if g.Count != "" {
				h.raw(` <small>`)
				h.text(g.Count)
				h.raw("</small>")
			}
			h.raw(`</h2><ul class="cards">`)
			for _, item := range g.Items {
				h.raw(`<li class="card"><h3><a`)
				h.href("href", item.URL)
				h.raw(">")
				h.text(item.Title)
				h.raw("</a></h3>")
				h.el("p", item.Description)
				h.raw(`<a class="btn"`)
				h.href("href", item.URL)
				h.attr("aria-label", p.OpenLabel+": "+item.Title)
				h.raw(">")
				h.text(p.OpenLabel)
				h.raw("</a></li>")
			}
			h.raw("</ul></section>")
		}
		h.raw("</section>")
	})
}

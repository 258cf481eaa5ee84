package views

import "github.com/a-h/templ"

type ErrorPage struct {
	Status  int
	Title   string
	Message string
	// RequestID is the already formatted request reference line. Empty
	// hides it.
	RequestID string
	BackLabel string
	BackURL   string
}

func Error(p ErrorPage) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="error" data-status="`)
		h.int(p.Status)
		h.raw(`"><p class="status">`)
		h.int(p.Status)
		h.raw("</p>")
		h.el("h1", p.Title)
		h.el("p", p.Message)
		if p.RequestID != "" {
			h.raw(`<p class="request-id"><small>`)
			h.text(p.RequestID)
			h.raw("</small></p>")
		}
		if p.BackURL != "" {
			h.raw(`<p><a class="btn btn-primary"`)
			h.href("href", p.BackURL)
			h.raw(">")
			h.text(p.BackLabel)
			h.raw("</a></p>")
		}
		h.raw("</section>")
	})
}

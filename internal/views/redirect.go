package views

import "github.com/a-h/templ"

// Redirect is a minimal document that forwards to url, for static hosting
// where the server cannot answer with a redirect status.
func Redirect(url string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html>`, "\n", `<html><head><meta charset="utf-8"><meta name="robots" content="noindex">`)
		h.raw(`<meta http-equiv="refresh"`)
		h.attr("content", "0; url="+string(templ.URL(url)))
		h.raw(`><link rel="canonical"`)
		h.href("href", url)
		h.raw("></head><body><a")
		h.href("href", url)
		h.raw(">")
		h.text(url)
		h.raw("</a></body></html>")
	})
}

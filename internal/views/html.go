package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first error, so components can
// be written as straight-line code and check once at the end.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup as is.
func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// text writes escaped character data.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// optAttr writes the attribute only when value is not empty.
func (h *htmlWriter) optAttr(name, value string) {
	if value != "" {
		h.attr(name, value)
	}
}

// href writes a URL attribute. Unsafe schemes are replaced by templ's
// sanitized placeholder.
func (h *htmlWriter) href(name, u string) {
	h.attr(name, string(templ.URL(u)))
}

// el writes <tag attrs...>text</tag>. attrs alternate name, value.
func (h *htmlWriter) el(tag, content string, attrs ...string) {
	h.raw("<", tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	h.raw(">")
	h.text(content)
	h.raw("</", tag, ">")
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func (h *htmlWriter) int(n int) {
	h.raw(strconv.Itoa(n))
}

// component adapts a writer function into a templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		h := newWriter(ctx, w)
		fn(h)
		return h.err
	})
}

package views

import "github.com/a-h/templ"

// Label resolves a catalog key to display text.
type Label func(key string) string

// Widget parameterizes the interactive block of a tool page.
type Widget struct {
	Tool  string
	Kind  string
	Mode  string
	From  string
	To    string
	Label Label
}

func (w Widget) t(key string) string {
	if w.Label == nil {
		return key
	}
	return w.Label(key)
}

func (w Widget) id(part string) string {
	return w.Tool + "-" + part
}

// RefRow is one line of a reference table.
type RefRow struct {
	Glyph   string
	Name    string
	Code    string
	Ref     string
	Numeric string
}

// RefGroup is a titled section of a reference browser.
type RefGroup struct {
	ID    string
	Title string
	Rows  []RefRow
}

// open writes the widget root element with the data attributes the client
// script binds to.
func (w Widget) open(h *htmlWriter) {
	h.raw(`<section class="widget widget-`, templ.EscapeString(w.Kind), `"`)
	h.attr("data-tool", w.Tool)
	h.optAttr("data-mode", w.Mode)
	h.optAttr("data-from", w.From)
	h.optAttr("data-to", w.To)
	h.raw(">")
	h.raw(`<noscript><p class="notice">`)
	h.text(w.t("ui.noscript"))
	h.raw("</p></noscript>")
}

func (w Widget) close(h *htmlWriter) {
	h.raw("</section>")
}

func (w Widget) textarea(h *htmlWriter, part, labelKey string, readonly bool) {
	id := w.id(part)
	h.raw(`<div class="field"><label`)
	h.attr("for", id)
	h.raw(">")
	h.text(w.t(labelKey))
	h.raw("</label><textarea")
	h.attr("id", id)
	h.attr("data-role", part)
	h.raw(` rows="10" spellcheck="false"`)
	if readonly {
		h.raw(" readonly")
	}
	h.raw("></textarea></div>")
}

func (w Widget) input(h *htmlWriter, part, labelKey, kind string) {
	id := w.id(part)
	h.raw(`<div class="field"><label`)
	h.attr("for", id)
	h.raw(">")
	h.text(w.t(labelKey))
	h.raw("</label><input")
	h.attr("type", kind)
	h.attr("id", id)
	h.attr("data-role", part)
	h.raw(` autocomplete="off" spellcheck="false"></div>`)
}

func (w Widget) checkbox(h *htmlWriter, part, labelKey string) {
	h.raw(`<label class="check"><input type="checkbox"`)
	h.attr("data-role", part)
	h.raw("> ")
	h.text(w.t(labelKey))
	h.raw("</label>")
}

// sel writes a select whose option labels are the values themselves unless
// labels is given.
func (w Widget) sel(h *htmlWriter, part, labelKey string, values []string, selected string, labels map[string]string) {
	id := w.id(part)
	h.raw(`<div class="field"><label`)
	h.attr("for", id)
	h.raw(">")
	h.text(w.t(labelKey))
	h.raw("</label><select")
	h.attr("id", id)
	h.attr("data-role", part)
	h.raw(">")
	for _, v := range values {
		h.raw("<option")
		h.attr("value", v)
		if v == selected {
			h.raw(" selected")
		}
		h.raw(">")
		if l, ok := labels[v]; ok {
			h.text(l)
		} else {
			h.text(v)
		}
		h.raw("</option>")
	}
	h.raw("</select></div>")
}

// buttons writes a toolbar. Each action is a ui.* key suffix and becomes
// the button's data-action.
func (w Widget) buttons(h *htmlWriter, actions ...string) {
	h.raw(`<div class="toolbar">`)
	for i, a := range actions {
		class := "btn"
		if i == 0 {
			class = "btn btn-primary"
		}
		h.raw(`<button type="button"`)
		h.attr("class", class)
		h.attr("data-action", a)
		h.raw(">")
		h.text(w.t("ui." + a))
		h.raw("</button>")
	}
	h.raw("</div>")
}

// Codec renders the encode/decode widget.
func Codec(w Widget) templ.Component {
	return component(func(h *htmlWriter) {
		w.open(h)
		w.textarea(h, "input", "ui.input", false)
		w.checkbox(h, "url-safe", "ui.url_safe")
		primary := "encode"
		if w.Mode == "decode" {
			primary = "decode"
		}
		w.buttons(h, primary, "swap", "clear")
		w.textarea(h, "output", "ui.output", true)
		w.buttons(h, "copy", "download")
		w.close(h)
	})
}

var delimiters = []string{",", ";", "tab"}

// Converter renders the data format conversion widget. A converter whose
// source and target match is a formatter.
func Converter(w Widget) templ.Component {
	return component(func(h *htmlWriter) {
		w.open(h)
		w.textarea(h, "input", "ui.input", false)
		h.raw(`<div class="options">`)
		switch {
		case w.From == w.To:
			w.sel(h, "indent", "ui.indent", []string{"2", "4", "tab"}, "2", nil)
		case w.To == "csv" || w.From == "csv":
			w.sel(h, "delimiter", "ui.delimiter", delimiters, ",", nil)
		}
		h.raw("</div>")
		if w.From == w.To {
			w.buttons(h, "format", "minify", "clear")
		} else {
			w.buttons(h, "convert", "clear")
		}
		w.textarea(h, "output", "ui.output", true)
		w.buttons(h, "copy", "download")
		w.close(h)
	})
}

var (
	qrSizes  = []string{"128", "256", "512", "1024"}
	qrLevels = []string{"L", "M", "Q", "H"}
)

// QR renders the QR code generator widget.
func QR(w Widget) templ.Component {
	return component(func(h *htmlWriter) {
		w.open(h)
		w.input(h, "input", "ui.qr_text", "text")
		h.raw(`<div class="options">`)
		w.sel(h, "size", "ui.qr_size", qrSizes, "256", nil)
		w.sel(h, "level", "ui.qr_level", qrLevels, "M", nil)
		h.raw("</div>")
		w.buttons(h, "qr_generate", "clear")
		h.raw(`<figure class="qr-output" data-role="output" aria-live="polite"></figure>`)
		w.buttons(h, "download")
		w.close(h)
	})
}

// Regex renders the regular expression tester widget.
func Regex(w Widget) templ.Component {
	return component(func(h *htmlWriter) {
		w.open(h)
		h.raw(`<div class="options">`)
		w.input(h, "pattern", "ui.pattern", "text")
		w.input(h, "flags", "ui.flags", "text")
		h.raw("</div>")
		w.textarea(h, "input", "ui.test_string", false)
		w.input(h, "replacement", "ui.replacement", "text")
		h.raw(`<div class="field"><h3>`)
		h.text(w.t("ui.matches"))
		h.raw(`</h3><ol class="matches" data-role="matches" aria-live="polite"></ol></div>`)
		w.textarea(h, "output", "ui.output", true)
		w.buttons(h, "copy", "clear")
		w.close(h)
	})
}

var escapeTargets = []string{"json", "javascript", "html", "url", "sql"}

var escapeTargetNames = map[string]string{
	"json":       "JSON",
	"javascript": "JavaScript",
	"html":       "HTML",
	"url":        "URL",
	"sql":        "SQL",
}

// Escape renders the string escaping widget.
func Escape(w Widget) templ.Component {
	return component(func(h *htmlWriter) {
		w.open(h)
		w.textarea(h, "input", "ui.input", false)
		h.raw(`<div class="options">`)
		w.sel(h, "target", "ui.target", escapeTargets, "json", escapeTargetNames)
		h.raw("</div>")
		w.buttons(h, "escape", "unescape", "swap", "clear")
		w.textarea(h, "output", "ui.output", true)
		w.buttons(h, "copy")
		w.close(h)
	})
}

// CharRef renders the HTML entity browser as grouped tables the client
// script filters.
func CharRef(w Widget, groups []RefGroup) templ.Component {
	return component(func(h *htmlWriter) {
		w.open(h)
		w.input(h, "search", "ui.search", "search")
		for _, g := range groups {
			h.raw(`<section class="ref-group"`)
			h.attr("data-group", g.ID)
			h.raw(">")
			h.el("h3", g.Title)
			h.raw(`<table class="ref-table"><thead><tr>`)
			for _, k := range []string{"ui.character", "ui.entity", "ui.code_point"} {
				h.raw(`<th scope="col">`)
				h.text(w.t(k))
				h.raw("</th>")
			}
			h.raw("</tr></thead><tbody>")
			for _, r := range g.Rows {
				h.raw("<tr")
				h.attr("data-copy", r.Ref)
				h.attr("data-search", r.Name+" "+r.Code)
				h.raw(">")
				h.el("td", r.Glyph, "class", "glyph")
				h.raw("<td><code>")
				h.text(r.Ref)
				h.raw("</code></td><td><code>")
				h.text(r.Numeric)
				h.raw("</code> ")
				h.text(r.Code)
				h.raw("</td></tr>")
			}
			h.raw("</tbody></table></section>")
		}
		w.close(h)
	})
}

// EmojiGrid renders the emoji browser as grouped buttons.
func EmojiGrid(w Widget, groups []RefGroup) templ.Component {
	return component(func(h *htmlWriter) {
		w.open(h)
		w.input(h, "search", "ui.search", "search")
		for _, g := range groups {
			h.raw(`<section class="ref-group"`)
			h.attr("data-group", g.ID)
			h.raw(">")
			h.el("h3", g.Title)
			h.raw(`<div class="emoji-grid">`)
			for _, r := range g.Rows {
				h.raw(`<button type="button" class="emoji"`)
				h.attr("title", r.Name)
				h.attr("aria-label", r.Name)
				h.attr("data-copy", r.Glyph)
				h.attr("data-code", r.Code)
				h.attr("data-search", r.Name)
				h.raw(">")
				h.text(r.Glyph)
				h.raw("</button>")
			}
			h.raw("</div></section>")
		}
		w.close(h)
	})
}

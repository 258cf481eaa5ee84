package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

const contentTypeHTML = "text/html; charset=utf-8"

type failResponse struct{ err error }

func (f failResponse) Render(http.ResponseWriter, *http.Request) error { return f.err }

// Fail hands err to the error handler.
func Fail(err error) Response {
	if err == nil {
		err = ErrInternal
	}
	return failResponse{err: err}
}

type templResponse struct {
	status    int
	component templ.Component
}

// Render buffers the component so a failing render can still produce an
// error page instead of a truncated document.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}
	return Bytes(t.status, contentTypeHTML, buf.Bytes()).Render(w, r)
}

// Templ renders component as a 200 HTML response.
func Templ(component templ.Component) Response {
	return templResponse{status: http.StatusOK, component: component}
}

func TemplWithStatus(status int, component templ.Component) Response {
	return templResponse{status: status, component: component}
}

type bytesResponse struct {
	status      int
	contentType string
	body        []byte
	header      http.Header
}

func (b bytesResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	for k, v := range b.header {
		h[k] = v
	}
	h.Set("Content-Type", b.contentType)
	h.Set("Content-Length", strconv.Itoa(len(b.body)))
	w.WriteHeader(b.status)
	_, err := w.Write(b.body)
	return err
}

// Bytes writes an already rendered body.
func Bytes(status int, contentType string, body []byte) Response {
	return bytesResponse{status: status, contentType: contentType, body: body}
}

// HTML writes a pre-rendered page with extra headers.
func HTML(body []byte, header http.Header) Response {
	return bytesResponse{status: http.StatusOK, contentType: contentTypeHTML, body: body, header: header}
}

type redirectResponse struct {
	url    string
	status int
	vary   []string
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for _, v := range rr.vary {
		w.Header().Add("Vary", v)
	}
	http.Redirect(w, r, rr.url, rr.status)
	return nil
}

// Redirect responds with status and Location url. vary lists the request
// headers the target depends on.
func Redirect(url string, status int, vary ...string) Response {
	return redirectResponse{url: url, status: status, vary: vary}
}

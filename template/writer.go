// Package template renders the browser pages and the XHTML documents of
// packed books as templ components.
package template

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components read top to bottom.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *writer {
	return &writer{ctx: ctx, w: w}
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) attr(name, value string) {
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a sanitized URL attribute.
func (w *writer) href(name, url string) {
	w.attr(name, string(templ.URL(url)))
}

func (w *writer) render(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

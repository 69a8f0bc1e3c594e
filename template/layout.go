package template

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the HTML document shared by every page.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<!doctype html><html lang="fr"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<title>`)
		w.text(title)
		w.raw(`</title><link rel="stylesheet" href="/static/style.css"></head><body>`)
		w.render(body)
		w.raw(`<script src="/static/player.js" defer></script></body></html>`)
		return w.err
	})
}

package template

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

func Error(v ErrorView) templ.Component {
	title := fmt.Sprintf("%d %s", v.Status, http.StatusText(v.Status))
	return Layout(title, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<main class="home"><h1>`)
		w.text(fmt.Sprint(v.Status))
		w.raw(`</h1><p class="subtitle">`)
		w.text(v.Message)
		w.raw(`</p><a href="/">← Retour</a></main>`)
		return w.err
	}))
}

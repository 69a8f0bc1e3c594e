package template

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Transition shows the village emblem zooming in, then moves on to the book.
func Transition(v TransitionView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<meta http-equiv="refresh"`)
		w.attr("content", fmt.Sprintf("%g;url=%s", v.Seconds, string(templ.URL(v.Target))))
		w.raw(`><div class="transition"><img`)
		w.href("src", v.Logo)
		w.attr("alt", v.Village)
		w.raw(`></div><noscript><a`)
		w.href("href", v.Target)
		w.raw(`>Continuer</a></noscript>`)
		return w.err
	})
	return Layout(v.Village, body)
}

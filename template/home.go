package template

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home(v HomeView) templ.Component {
	return Layout(v.Title, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<main class="home"><header><h1>`)
		w.text(v.Title)
		w.raw(`</h1><p class="subtitle">`)
		w.text(v.Subtitle)
		w.raw(`</p></header><nav class="villages">`)
		for _, village := range v.Villages {
			class := "village"
			if village.Open {
				class += " open"
			}
			w.raw(`<div`)
			w.attr("class", class)
			w.attr("data-village", village.Name)
			w.raw(`><a`)
			w.href("href", village.ToggleURL)
			w.attr("aria-expanded", boolAttr(village.Open))
			w.raw(`>`)
			w.text(village.Name)
			w.raw(`</a><div class="clans">`)
			if len(village.Clans) == 0 {
				w.raw(`<div class="none">Aucun clan disponible</div>`)
			}
			for _, clan := range village.Clans {
				w.raw(`<a class="clan"`)
				w.href("href", clan.URL)
				w.raw(`>`)
				w.text(clan.Name)
				w.raw(`</a>`)
			}
			w.raw(`</div></div>`)
		}
		w.raw(`</nav></main>`)
		return w.err
	}))
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

package template

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func Book(v BookView) templ.Component {
	return Layout(v.ClanName, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<main class="book"><a class="back" data-keep-volume`)
		w.href("href", v.BackURL)
		w.raw(`>← Retour</a>`)

		w.raw(`<div`)
		w.attr("class", "book-stage "+v.State)
		w.attr("data-state", v.State)
		w.attr("data-pages", fmt.Sprint(v.PageCount))
		w.raw(`>`)
		if len(v.Pages) == 0 {
			w.raw(`<p class="empty">`)
			w.text(v.ClanName)
			w.raw(`</p>`)
		}
		for _, page := range v.Pages {
			w.raw(`<div class="page"`)
			w.attr("data-page", fmt.Sprint(page.Number))
			w.raw(`><img`)
			w.href("src", page.URL)
			w.attr("alt", fmt.Sprintf("Page %d", page.Number))
			w.raw(`></div>`)
		}
		w.raw(`</div>`)

		w.raw(`<nav class="flip">`)
		flipLink(w, "prev", "‹", v.PrevURL)
		if v.EpubURL != "" && v.PageCount > 0 {
			w.raw(`<a class="epub"`)
			w.href("href", v.EpubURL)
			w.raw(`>EPUB</a>`)
		}
		flipLink(w, "next", "›", v.NextURL)
		w.raw(`</nav>`)

		if v.Audio != nil {
			w.render(Player(*v.Audio))
		}
		w.raw(`</main>`)
		return w.err
	}))
}

func flipLink(w *writer, rel, label, url string) {
	if url == "" {
		w.raw(`<span`)
		w.attr("class", rel)
		w.raw(`>`)
		w.text(label)
		w.raw(`</span>`)
		return
	}
	w.raw(`<a data-keep-volume`)
	w.attr("class", rel)
	w.attr("rel", rel)
	w.href("href", url)
	w.raw(`>`)
	w.text(label)
	w.raw(`</a>`)
}

// Player renders the looping track with either the consent prompt or the
// play/pause and volume controls.
func Player(v AudioView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<audio data-ambient loop preload="none"`)
		w.href("src", v.Src)
		w.attr("data-volume", fmt.Sprintf("%.2f", v.Volume))
		w.attr("data-playing", boolAttr(v.Playing))
		w.raw(`></audio>`)

		if v.ShowConsent {
			w.raw(`<div class="consent" role="dialog" aria-modal="true"><div class="dialog">`)
			w.raw(`<h3>Ambiance Sonore</h3>`)
			w.raw(`<p>Souhaitez-vous activer la musique d'ambiance pour une meilleure immersion ?</p>`)
			w.raw(`<div class="choices"><a class="decline"`)
			w.href("href", v.DeclineURL)
			w.raw(`>NON</a><a class="accept"`)
			w.href("href", v.AcceptURL)
			w.raw(`>OUI</a></div></div></div>`)
			return w.err
		}

		w.raw(`<div class="player"><button type="button" data-player-toggle`)
		w.attr("aria-pressed", boolAttr(v.Playing))
		w.raw(`>`)
		if v.Playing {
			w.raw(`❚❚`)
		} else {
			w.raw(`▶`)
		}
		w.raw(`</button><input type="range" min="0" max="1" step="0.01" data-player-volume`)
		w.attr("value", fmt.Sprintf("%.2f", v.Volume))
		w.raw(`></div>`)
		return w.err
	})
}

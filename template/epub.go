package template

import (
	"context"
	"fmt"
	"io"

	"lore-clans/model"

	"github.com/a-h/templ"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

func ContainerXML() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(xmlHeader)
		w.raw(`<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">`)
		w.raw(`<rootfiles><rootfile full-path="content.opf" media-type="application/oebps-package+xml"/></rootfiles>`)
		w.raw(`</container>`)
		return w.err
	})
}

// ContentOPF renders the package document. guide may be nil.
func ContentOPF(uniqueIdentifier string, dc *model.DublinCoreMetadata, manifest *model.Manifest, spine *model.Spine, guide *model.Guide) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(xmlHeader)
		w.raw(`<package version="3.0" xmlns="http://www.idpf.org/2007/opf"`)
		w.attr("unique-identifier", uniqueIdentifier)
		w.raw(` prefix="calibre: https://calibre-ebook.com">`)
		parts := []interface{ Marshal() (string, error) }{dc, manifest, spine}
		if guide != nil {
			parts = append(parts, guide)
		}
		for _, part := range parts {
			s, err := part.Marshal()
			if err != nil {
				return fmt.Errorf("marshal package part: %w", err)
			}
			w.raw(s)
		}
		w.raw(`</package>`)
		return w.err
	})
}

func xhtmlOpen(w *writer, title string) {
	w.raw(xmlHeader)
	w.raw(`<!DOCTYPE html><html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops"><head><title>`)
	w.text(title)
	w.raw(`</title><link href="../../style.css" rel="stylesheet" type="text/css"/></head><body>`)
}

func xhtmlClose(w *writer) {
	w.raw(`</body></html>`)
}

// PageXHTML is a single full-page image.
func PageXHTML(title, imageSrc string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		xhtmlOpen(w, title)
		w.raw(`<div class="page"><img`)
		w.attr("src", imageSrc)
		w.attr("alt", title)
		w.raw(`/></div>`)
		xhtmlClose(w)
		return w.err
	})
}

// NavEntry is a line of the navigation document.
type NavEntry struct {
	Label string
	Link  string
}

func NavXHTML(title string, entries []NavEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		xhtmlOpen(w, title)
		w.raw(`<h1>`)
		w.text(title)
		w.raw(`</h1><nav epub:type="toc" id="toc"><ol>`)
		for _, e := range entries {
			w.raw(`<li><a`)
			w.attr("href", e.Link)
			w.raw(`>`)
			w.text(e.Label)
			w.raw(`</a></li>`)
		}
		w.raw(`</ol></nav>`)
		xhtmlClose(w)
		return w.err
	})
}

func TocNCX(title string, head *model.TocNCXHead, navMap *model.NavMap) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(xmlHeader)
		w.raw(`<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">`)
		s, err := head.Marshal()
		if err != nil {
			return fmt.Errorf("marshal ncx head: %w", err)
		}
		w.raw(s)
		w.raw(`<docTitle><text>`)
		w.text(title)
		w.raw(`</text></docTitle>`)
		s, err = navMap.Marshal()
		if err != nil {
			return fmt.Errorf("marshal nav map: %w", err)
		}
		w.raw(s)
		w.raw(`</ncx>`)
		return w.err
	})
}

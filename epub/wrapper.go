// Package epub packs a clan book into an EPUB 3 archive, one image per page.
package epub

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"lore-clans/model"
	"lore-clans/template"
	"lore-clans/utils"

	"github.com/a-h/templ"
	"github.com/google/uuid"
)

var ErrEmptyBook = errors.New("book has no pages")

// Book is what gets packed: the resolved assets plus display metadata.
type Book struct {
	Title   string
	Village string
	Set     model.ClanAssetSet
	// Modified stamps dcterms:modified; zero means now.
	Modified time.Time
}

func pageXHTMLPath(i int) string {
	return fmt.Sprintf("OEBPS/Text/page-%03d.xhtml", i+1)
}

func pageImagePath(i int, ref model.ImageRef) string {
	return fmt.Sprintf("OEBPS/Images/page-%03d%s", i+1, strings.ToLower(path.Ext(ref.Path)))
}

// PackClanToEpub writes <outputPath>/<title>.epub and returns its path.
func PackClanToEpub(book Book, assets fs.FS, outputPath string) (string, error) {
	if book.Set.Empty() {
		return "", ErrEmptyBook
	}
	err := os.MkdirAll(outputPath, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	savePath := filepath.Join(outputPath, utils.CleanDirName(book.Title)+".epub")
	file, err := os.Create(savePath)
	if err != nil {
		return "", fmt.Errorf("failed to create epub file: %w", err)
	}
	defer file.Close()

	if err := WriteEpub(file, book, assets); err != nil {
		os.Remove(savePath)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close epub file: %w", err)
	}
	return savePath, nil
}

// WriteEpub streams the archive for book to out, reading page images and the
// ambient track from assets.
func WriteEpub(out io.Writer, book Book, assets fs.FS) error {
	if book.Set.Empty() {
		return ErrEmptyBook
	}
	ctx := context.Background()
	zipWriter := zip.NewWriter(out)

	// mimetype must be the first entry and stored uncompressed.
	err := addStringToZip(zipWriter, "mimetype", "application/epub+zip", zip.Store)
	if err != nil {
		return err
	}
	err = addComponentToZip(ctx, zipWriter, "META-INF/container.xml", template.ContainerXML())
	if err != nil {
		return fmt.Errorf("failed to render container: %w", err)
	}

	for i, ref := range book.Set.Pages {
		data, err := fs.ReadFile(assets, ref.Path)
		if err != nil {
			return fmt.Errorf("failed to read page %d: %w", i+1, err)
		}
		err = addBytesToZip(zipWriter, pageImagePath(i, ref), data, zip.Deflate)
		if err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
		title := fmt.Sprintf("Page %d", i+1)
		src := "../Images/" + path.Base(pageImagePath(i, ref))
		err = addComponentToZip(ctx, zipWriter, pageXHTMLPath(i), template.PageXHTML(title, src))
		if err != nil {
			return fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
	}

	extraFiles, err := extraFilesFor(book.Set, assets)
	if err != nil {
		return err
	}
	for _, extra := range extraFiles {
		err = addBytesToZip(zipWriter, extra.Path, extra.Data, zip.Deflate)
		if err != nil {
			return fmt.Errorf("failed to write extra file: %w", err)
		}
	}

	entries := make([]template.NavEntry, 0, len(book.Set.Pages))
	for i := range book.Set.Pages {
		entries = append(entries, template.NavEntry{
			Label: fmt.Sprintf("Page %d", i+1),
			Link:  path.Base(pageXHTMLPath(i)),
		})
	}
	err = addComponentToZip(ctx, zipWriter, "OEBPS/Text/contents.xhtml", template.NavXHTML(book.Title, entries))
	if err != nil {
		return fmt.Errorf("failed to render contents XHTML: %w", err)
	}

	u := uuid.New()
	err = addComponentToZip(ctx, zipWriter, "toc.ncx", createTocNCX(u.String(), book))
	if err != nil {
		return fmt.Errorf("failed to render toc: %w", err)
	}
	err = addComponentToZip(ctx, zipWriter, "content.opf", createContentOPF(u.String(), book, extraFiles))
	if err != nil {
		return fmt.Errorf("failed to render content OPF: %w", err)
	}
	err = addStringToZip(zipWriter, "style.css", template.PageCSS, zip.Deflate)
	if err != nil {
		return fmt.Errorf("failed to write CSS: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("failed to pack epub: %w", err)
	}
	return nil
}

func extraFilesFor(set model.ClanAssetSet, assets fs.FS) ([]model.ExtraFile, error) {
	if set.Audio == nil {
		return nil, nil
	}
	data, err := fs.ReadFile(assets, set.Audio.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	name := path.Base(set.Audio.Path)
	return []model.ExtraFile{{
		Data: data,
		Path: "OEBPS/Audio/" + name,
		ManifestItem: model.ManifestItem{
			ID:    "audio",
			Link:  "OEBPS/Audio/" + name,
			Media: mediaType(name),
		},
	}}, nil
}

func createContentOPF(id string, book Book, extraFiles []model.ExtraFile) templ.Component {
	modified := book.Modified
	if modified.IsZero() {
		modified = time.Now()
	}
	dc := &model.DublinCoreMetadata{
		XmlnsDC:  "http://purl.org/dc/elements/1.1/",
		XmlnsOPF: "http://www.idpf.org/2007/opf",
		Titles: []model.DCTitle{
			{
				Value: book.Title,
			},
		},
		Identifiers: []model.DCIdentifier{
			{
				Value: fmt.Sprintf("urn:uuid:%s", id),
				ID:    "book-id",
			},
		},
		Languages: []model.DCLanguage{
			{
				Value: "fr",
			},
		},
		Metas: []model.DublinCoreMeta{
			{
				Name:    "cover",
				Content: "image-001",
			},
			{
				Property: "dcterms:modified",
				Value:    modified.UTC().Format("2006-01-02T15:04:05Z"),
			},
		},
	}
	if book.Village != "" {
		dc.Subjects = append(dc.Subjects, model.DCSubject{Value: book.Village})
		dc.Metas = append(dc.Metas, model.DublinCoreMeta{Name: "calibre:series", Content: book.Village})
	}

	manifest := &model.Manifest{
		Items: make([]model.ManifestItem, 0),
	}
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:         "contents.xhtml",
		Link:       "OEBPS/Text/contents.xhtml",
		Media:      "application/xhtml+xml",
		Properties: "nav",
	})
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "ncx",
		Link:  "toc.ncx",
		Media: "application/x-dtbncx+xml",
	})
	for i, ref := range book.Set.Pages {
		manifest.Items = append(manifest.Items, model.ManifestItem{
			ID:    fmt.Sprintf("page-%03d.xhtml", i+1),
			Link:  pageXHTMLPath(i),
			Media: "application/xhtml+xml",
		})
		item := model.ManifestItem{
			ID:    fmt.Sprintf("image-%03d", i+1),
			Link:  pageImagePath(i, ref),
			Media: mediaType(ref.Path),
		}
		if i == 0 {
			item.Properties = "cover-image"
		}
		manifest.Items = append(manifest.Items, item)
	}
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "style",
		Link:  "style.css",
		Media: "text/css",
	})
	for _, file := range extraFiles {
		manifest.Items = append(manifest.Items, file.ManifestItem)
	}

	spine := &model.Spine{
		Toc:   "ncx",
		Items: make([]model.SpineItem, 0),
	}
	for i := range book.Set.Pages {
		spine.Items = append(spine.Items, model.SpineItem{
			IDref: fmt.Sprintf("page-%03d.xhtml", i+1),
		})
	}
	guide := &model.Guide{
		Items: []model.GuideItem{
			{Title: book.Title, Type: "cover", Link: pageXHTMLPath(0)},
			{Title: "Contents", Type: "toc", Link: "OEBPS/Text/contents.xhtml"},
		},
	}
	return template.ContentOPF("book-id", dc, manifest, spine, guide)
}

func createTocNCX(id string, book Book) templ.Component {
	head := &model.TocNCXHead{
		Meta: []model.TocNCXHeadMeta{
			{Name: "dtb:uid", Content: fmt.Sprintf("urn:uuid:%s", id)},
			{Name: "dtb:depth", Content: "1"},
		},
	}
	navMap := &model.NavMap{Points: make([]*model.NavPoint, 0, len(book.Set.Pages))}
	for i := range book.Set.Pages {
		navMap.Points = append(navMap.Points, &model.NavPoint{
			Id:        fmt.Sprintf("nav-%03d", i+1),
			PlayOrder: i + 1,
			Label:     fmt.Sprintf("Page %d", i+1),
			Content:   model.NavPointContent{Src: pageXHTMLPath(i)},
		})
	}
	return template.TocNCX(book.Title, head, navMap)
}

func mediaType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	case ".wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}

func addComponentToZip(ctx context.Context, zipWriter *zip.Writer, relPath string, c templ.Component) error {
	writer, err := zipWriter.CreateHeader(&zip.FileHeader{Name: relPath, Method: zip.Deflate})
	if err != nil {
		return err
	}
	return c.Render(ctx, writer)
}

func addStringToZip(zipWriter *zip.Writer, relPath, content string, method uint16) error {
	return addBytesToZip(zipWriter, relPath, []byte(content), method)
}

func addBytesToZip(zipWriter *zip.Writer, relPath string, content []byte, method uint16) error {
	header := &zip.FileHeader{
		Name:   relPath,
		Method: method,
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = writer.Write(content)
	return err
}

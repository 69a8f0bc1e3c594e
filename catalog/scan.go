package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// PagesDir is the directory under the asset root holding one folder per clan.
const PagesDir = "pages"

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

var audioExts = map[string]bool{
	".mp3": true,
	".ogg": true,
	".wav": true,
}

func isImage(p string) bool {
	return imageExts[strings.ToLower(path.Ext(p))]
}

func isAudio(p string) bool {
	return audioExts[strings.ToLower(path.Ext(p))]
}

// Scan walks the pages tree of an asset root and returns every image and
// audio path it finds, sorted lexically. A missing pages tree yields no
// assets.
func Scan(assets fs.FS) ([]string, error) {
	found := make([]string, 0)
	err := fs.WalkDir(assets, PagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isImage(p) || isAudio(p) {
			found = append(found, p)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("scan assets: %w", err)
	}
	sort.Strings(found)
	return found, nil
}

package catalog

import (
	"path"
	"sort"
	"strconv"
	"strings"

	"lore-clans/model"
)

// Resolver turns the flat asset list of a manifest into per-clan books.
type Resolver struct {
	assets  []string
	baseURL string
}

// NewResolver builds a resolver over assets, publishing them under baseURL.
func NewResolver(assets []string, baseURL string) *Resolver {
	return &Resolver{
		assets:  append([]string(nil), assets...),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (r *Resolver) url(p string) string {
	return r.baseURL + "/" + strings.TrimPrefix(p, "/")
}

// Resolve returns the pages of clanID in display order and its ambient track.
// A clan without pages yields an empty book, never an error.
func (r *Resolver) Resolve(clanID string) model.ClanAssetSet {
	set := model.ClanAssetSet{
		ClanID: clanID,
		Pages:  make([]model.ImageRef, 0),
	}
	clanDir := path.Join(PagesDir, clanID)
	audioName := clanID + ".mp3"

	for _, p := range r.assets {
		p = strings.TrimPrefix(p, "/")
		if isImage(p) && path.Dir(p) == clanDir {
			set.Pages = append(set.Pages, model.ImageRef{
				Path:   p,
				URL:    r.url(p),
				Number: PageNumber(path.Base(p)),
			})
			continue
		}
		if set.Audio == nil && path.Base(p) == audioName {
			set.Audio = &model.AudioRef{Path: p, URL: r.url(p)}
		}
	}

	sort.SliceStable(set.Pages, func(i, j int) bool {
		return set.Pages[i].Number < set.Pages[j].Number
	})
	return set
}

// PageNumber reads the leading decimal integer of a file name: "12.png" is 12,
// "3-alt.png" is 3. Names without leading digits are 0 and therefore sort
// ahead of every numbered page.
func PageNumber(name string) int {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(name[:end])
	if err != nil {
		return 0
	}
	return n
}

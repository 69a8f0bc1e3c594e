package catalog

import (
	"errors"
	"fmt"
	"strings"

	"lore-clans/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrUnknownClan = errors.New("unknown clan")

// DefaultLogo is shown for villages that do not name one.
const DefaultLogo = "/static/konoha.svg"

// Library is the immutable set of clan books resolved at startup.
type Library struct {
	villages []model.Village
	books    map[string]model.ClanAssetSet
}

// NewLibrary resolves every clan listed in the manifest menu once.
func NewLibrary(m *Manifest, assetBaseURL string) *Library {
	resolver := NewResolver(m.Assets, assetBaseURL)
	upper := cases.Upper(language.French)

	lib := &Library{
		villages: make([]model.Village, 0, len(m.Villages)),
		books:    make(map[string]model.ClanAssetSet),
	}
	for _, v := range m.Villages {
		village := model.Village{
			Name:  v.Name,
			Logo:  v.Logo,
			Clans: make([]model.Clan, 0, len(v.Clans)),
		}
		if village.Logo == "" {
			village.Logo = DefaultLogo
		}
		for _, c := range v.Clans {
			dir := strings.TrimSpace(c.ID)
			id := strings.ToLower(dir)
			if id == "" {
				continue
			}
			name := c.Name
			if name == "" {
				name = upper.String(id)
			}
			village.Clans = append(village.Clans, model.Clan{ID: id, Name: name})
			if _, ok := lib.books[id]; !ok {
				lib.books[id] = resolver.Resolve(dir)
			}
		}
		lib.villages = append(lib.villages, village)
	}
	return lib
}

func (l *Library) Villages() []model.Village {
	return l.villages
}

// Village looks a village up by name, ignoring case.
func (l *Library) Village(name string) (model.Village, bool) {
	for _, v := range l.villages {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return model.Village{}, false
}

// Logo returns the logo of the named village, falling back to DefaultLogo.
func (l *Library) Logo(village string) string {
	if v, ok := l.Village(village); ok {
		return v.Logo
	}
	return DefaultLogo
}

// Book returns the resolved assets of a clan listed in the menu.
func (l *Library) Book(clanID string) (model.ClanAssetSet, error) {
	set, ok := l.books[strings.ToLower(clanID)]
	if !ok {
		return model.ClanAssetSet{}, fmt.Errorf("%w: %q", ErrUnknownClan, clanID)
	}
	return set, nil
}

// Clan returns the menu entry for clanID and the village it belongs to.
func (l *Library) Clan(clanID string) (model.Clan, model.Village, bool) {
	id := strings.ToLower(clanID)
	for _, v := range l.villages {
		if c, ok := v.Clan(id); ok {
			return c, v, true
		}
	}
	return model.Clan{}, model.Village{}, false
}

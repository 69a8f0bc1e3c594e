package model

// ImageRef points at a single page image of a clan book.
type ImageRef struct {
	// Path is the catalog path, relative to the asset root (pages/uchiha/3.png).
	Path string `json:"path"`
	// URL is what the browser loads.
	URL string `json:"url"`
	// Number is the leading integer of the file name, 0 when there is none.
	Number int `json:"number"`
}

// AudioRef points at the ambient track of a clan.
type AudioRef struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// ClanAssetSet is everything a clan book needs, in display order.
// It is built once at startup and never mutated afterwards.
type ClanAssetSet struct {
	ClanID string     `json:"clan"`
	Pages  []ImageRef `json:"pages"`
	Audio  *AudioRef  `json:"audio,omitempty"`
}

func (s ClanAssetSet) HasAudio() bool {
	return s.Audio != nil
}

func (s ClanAssetSet) Empty() bool {
	return len(s.Pages) == 0
}

// Clan is an entry of a village menu.
type Clan struct {
	ID   string `toml:"id" json:"id"`
	Name string `toml:"name" json:"name"`
}

// Village groups clans under a top-level menu button.
type Village struct {
	Name  string `toml:"name" json:"name"`
	Logo  string `toml:"logo" json:"logo"`
	Clans []Clan `toml:"clans" json:"clans"`
}

func (v Village) Clan(id string) (Clan, bool) {
	for _, c := range v.Clans {
		if c.ID == id {
			return c, true
		}
	}
	return Clan{}, false
}

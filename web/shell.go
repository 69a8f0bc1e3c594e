package web

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"lore-clans/book"
	"lore-clans/catalog"
	"lore-clans/template"
)

const (
	siteTitle    = "Lore Clans"
	siteSubtitle = "Archives du Monde Ninja"

	// transitionSeconds matches the emblem zoom in SiteCSS.
	transitionSeconds = 1.5
)

// Audio consent values carried in the book query.
const (
	audioUnset = ""
	audioOn    = "on"
	audioOff   = "off"
)

// Shell builds page views from the library. All UI state it needs (open
// village, consent, volume, page) arrives with the request; it keeps none.
type Shell struct {
	library       *catalog.Library
	defaultVolume float64
}

func NewShell(library *catalog.Library, defaultVolume float64) *Shell {
	return &Shell{library: library, defaultVolume: clampVolume(defaultVolume)}
}

// Home lists the villages with at most one dropdown open.
func (s *Shell) Home(activeVillage string) template.HomeView {
	view := template.HomeView{Title: siteTitle, Subtitle: siteSubtitle}
	for _, v := range s.library.Villages() {
		open := activeVillage != "" && strings.EqualFold(activeVillage, v.Name)
		item := template.VillageItem{
			Name:      v.Name,
			Open:      open,
			ToggleURL: "/?village=" + url.QueryEscape(v.Name),
		}
		if open {
			item.ToggleURL = "/"
		}
		for _, c := range v.Clans {
			item.Clans = append(item.Clans, template.ClanItem{
				Name: c.Name,
				URL:  "/transition/" + url.PathEscape(v.Name) + "/" + url.PathEscape(c.ID),
			})
		}
		view.Villages = append(view.Villages, item)
	}
	return view
}

// Transition plays the emblem of the village clanID belongs to before opening
// it. The village segment of the route is not trusted.
func (s *Shell) Transition(clanID string) (template.TransitionView, error) {
	clan, home, ok := s.library.Clan(clanID)
	if !ok {
		return template.TransitionView{}, fmt.Errorf("%w: %q", catalog.ErrUnknownClan, clanID)
	}
	return template.TransitionView{
		Village: home.Name,
		Logo:    home.Logo,
		Target:  "/" + url.PathEscape(clan.ID),
		Seconds: transitionSeconds,
	}, nil
}

// bookQuery is the per-visit state of a book view.
type bookQuery struct {
	Page   int
	Audio  string
	Volume float64
}

func (s *Shell) parseBookQuery(q url.Values) bookQuery {
	bq := bookQuery{Volume: s.defaultVolume}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		bq.Page = page
	}
	switch q.Get("audio") {
	case audioOn:
		bq.Audio = audioOn
	case audioOff:
		bq.Audio = audioOff
	}
	if v, err := strconv.ParseFloat(q.Get("volume"), 64); err == nil {
		bq.Volume = clampVolume(v)
	}
	return bq
}

func (bq bookQuery) url(clanID string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(bq.Page))
	if bq.Audio != audioUnset {
		q.Set("audio", bq.Audio)
		q.Set("volume", strconv.FormatFloat(bq.Volume, 'f', 2, 64))
	}
	return "/" + url.PathEscape(clanID) + "?" + q.Encode()
}

// Book opens clanID at the spread selected by the query. An empty clan opens
// an empty book.
func (s *Shell) Book(clanID string, q url.Values) (template.BookView, error) {
	set, err := s.library.Book(clanID)
	if err != nil {
		return template.BookView{}, err
	}
	clan, _, _ := s.library.Clan(set.ClanID)
	bq := s.parseBookQuery(q)

	reader := book.NewReader(len(set.Pages))
	state := reader.Seek(bq.Page)
	bq.Page = reader.Index()

	view := template.BookView{
		ClanName:  clan.Name,
		State:     state.String(),
		PageCount: reader.Pages(),
		BackURL:   "/",
		EpubURL:   "/" + url.PathEscape(set.ClanID) + ".epub",
	}
	for _, i := range reader.Spread() {
		view.Pages = append(view.Pages, template.PageItem{
			Number: i + 1,
			URL:    set.Pages[i].URL,
		})
	}
	if prev, ok := reader.Prev(); ok {
		view.PrevURL = bookQuery{Page: prev, Audio: bq.Audio, Volume: bq.Volume}.url(set.ClanID)
	}
	if next, ok := reader.Next(); ok {
		view.NextURL = bookQuery{Page: next, Audio: bq.Audio, Volume: bq.Volume}.url(set.ClanID)
	}

	if set.Audio != nil {
		accept := bq
		accept.Audio = audioOn
		decline := bq
		decline.Audio = audioOff
		view.Audio = &template.AudioView{
			Src:         set.Audio.URL,
			ShowConsent: bq.Audio == audioUnset,
			Playing:     bq.Audio == audioOn,
			Volume:      bq.Volume,
			AcceptURL:   accept.url(set.ClanID),
			DeclineURL:  decline.url(set.ClanID),
		}
	}
	return view, nil
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

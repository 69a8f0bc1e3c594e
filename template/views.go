package template

// HomeView is the village menu.
type HomeView struct {
	Title    string
	Subtitle string
	Villages []VillageItem
}

type VillageItem struct {
	Name string
	// Open marks the single village whose dropdown is shown.
	Open bool
	// ToggleURL opens this village, or closes it when already open.
	ToggleURL string
	Clans     []ClanItem
}

type ClanItem struct {
	Name string
	URL  string
}

// TransitionView is the overlay played between the menu and a book.
type TransitionView struct {
	Village string
	Logo    string
	Target  string
	Seconds float64
}

// BookView is one spread of a clan book.
type BookView struct {
	ClanName  string
	State     string
	Pages     []PageItem
	PageCount int
	PrevURL   string
	NextURL   string
	BackURL   string
	EpubURL   string
	Audio     *AudioView
}

type PageItem struct {
	Number int
	URL    string
}

// AudioView carries the ambient track and the visitor's consent choice.
type AudioView struct {
	Src         string
	ShowConsent bool
	Playing     bool
	Volume      float64
	AcceptURL   string
	DeclineURL  string
}

// ErrorView is a plain status page.
type ErrorView struct {
	Status  int
	Message string
}

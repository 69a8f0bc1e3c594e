package web

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, body *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// TestPageRendering checks status and key markup of every HTML route.
func TestPageRendering(t *testing.T) {
	handler := testHandler(t)

	tests := []struct {
		name     string
		path     string
		status   int
		selector string
		text     string
	}{
		{"home", "/", http.StatusOK, "h1", "Lore Clans"},
		{"home open village", "/?village=konoha", http.StatusOK, ".village.open > a", "Konoha"},
		{"village without clans", "/?village=Taki", http.StatusOK, ".village.open .none", "Aucun clan disponible"},
		{"transition", "/transition/Kiri/hozuki", http.StatusOK, ".transition img", ""},
		{"transition unknown clan", "/transition/Kiri/akatsuki", http.StatusNotFound, "h1", "404"},
		{"book", "/uchiha", http.StatusOK, ".book-stage.closed-start", ""},
		{"book interior", "/uchiha?page=6", http.StatusOK, ".book-stage.open", ""},
		{"book end", "/uchiha?page=11", http.StatusOK, ".book-stage.closed-end", ""},
		{"empty clan", "/nara", http.StatusOK, ".book .empty", "NARA"},
		{"unknown clan", "/akatsuki", http.StatusNotFound, "h1", "404"},
		{"unknown nested route", "/a/b/c", http.StatusNotFound, "h1", "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, handler, tt.path)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Fatalf("content type = %q", ct)
			}
			doc := parse(t, rec.Body)
			sel := doc.Find(tt.selector)
			if sel.Length() == 0 {
				t.Fatalf("no element matches %q", tt.selector)
			}
			if tt.text != "" && strings.TrimSpace(sel.First().Text()) != tt.text {
				t.Fatalf("%s text = %q, want %q", tt.selector, sel.First().Text(), tt.text)
			}
		})
	}
}

func TestHomeDropdownToggle(t *testing.T) {
	handler := testHandler(t)

	doc := parse(t, get(t, handler, "/").Body)
	if doc.Find(".village.open").Length() != 0 {
		t.Fatal("no dropdown is open by default")
	}
	href := doc.Find(`[data-village="Konoha"] > a`).AttrOr("href", "")
	if href != "/?village=Konoha" {
		t.Fatalf("toggle href = %q", href)
	}

	doc = parse(t, get(t, handler, href).Body)
	if doc.Find(".village.open").Length() != 1 {
		t.Fatal("exactly one dropdown opens")
	}
	if got := doc.Find(".village.open > a").AttrOr("href", ""); got != "/" {
		t.Fatalf("open village toggles back to %q", got)
	}
	clan := doc.Find(".village.open a.clan").First().AttrOr("href", "")
	if clan != "/transition/Konoha/uchiha" {
		t.Fatalf("clan link = %q", clan)
	}
}

func TestTransitionNavigatesToBook(t *testing.T) {
	rec := get(t, testHandler(t), "/transition/Kiri/hozuki")
	doc := parse(t, rec.Body)
	refresh := doc.Find(`meta[http-equiv="refresh"]`).AttrOr("content", "")
	if refresh != "1.5;url=/hozuki" {
		t.Fatalf("refresh = %q", refresh)
	}
	if src := doc.Find(".transition img").AttrOr("src", ""); src != "/static/kiri.svg" {
		t.Fatalf("logo = %q", src)
	}
}

func TestTransitionUsesClanVillage(t *testing.T) {
	handler := testHandler(t)
	for _, path := range []string{"/transition/Oto/uchiha", "/transition/Kiri/uchiha"} {
		doc := parse(t, get(t, handler, path).Body)
		if src := doc.Find(".transition img").AttrOr("src", ""); src != "/static/konoha.svg" {
			t.Fatalf("%s: logo = %q", path, src)
		}
		refresh := doc.Find(`meta[http-equiv="refresh"]`).AttrOr("content", "")
		if refresh != "1.5;url=/uchiha" {
			t.Fatalf("%s: refresh = %q", path, refresh)
		}
	}
}

func TestAssetsServeFilesOnly(t *testing.T) {
	handler := testHandler(t)

	rec := get(t, handler, "/assets/pages/uchiha/1.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d", rec.Code)
	}
	if rec.Body.String() != "uchiha-1" {
		t.Fatalf("page body = %q", rec.Body.String())
	}

	for _, path := range []string{"/assets/", "/assets/pages/", "/assets/pages/uchiha/", "/assets/pages/uchiha"} {
		rec := get(t, handler, path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "uchiha.mp3") {
			t.Errorf("%s: body lists directory contents", path)
		}
	}
}

func TestBookFlipping(t *testing.T) {
	handler := testHandler(t)

	doc := parse(t, get(t, handler, "/uchiha?page=6&audio=on&volume=0.4").Body)
	pages := doc.Find(".page")
	if pages.Length() != 2 {
		t.Fatalf("spread has %d pages", pages.Length())
	}
	if src := pages.First().Find("img").AttrOr("src", ""); src != "/assets/pages/uchiha/6.png" {
		t.Fatalf("left page = %q", src)
	}
	if next := doc.Find("a.next").AttrOr("href", ""); next != "/uchiha?audio=on&page=7&volume=0.40" {
		t.Fatalf("next = %q", next)
	}
	if prev := doc.Find("a.prev").AttrOr("href", ""); prev != "/uchiha?audio=on&page=3&volume=0.40" {
		t.Fatalf("prev = %q", prev)
	}

	doc = parse(t, get(t, handler, "/uchiha?page=99").Body)
	if doc.Find("a.next").Length() != 0 {
		t.Fatal("last spread has no next link")
	}
	if src := doc.Find(".page img").AttrOr("src", ""); src != "/assets/pages/uchiha/12.png" {
		t.Fatalf("last page = %q", src)
	}
}

func TestBookAudio(t *testing.T) {
	handler := testHandler(t)

	doc := parse(t, get(t, handler, "/uchiha").Body)
	if doc.Find(".consent").Length() != 1 {
		t.Fatal("consent prompt expected before a choice")
	}
	accept := doc.Find(".consent a.accept").AttrOr("href", "")
	if accept != "/uchiha?audio=on&page=0&volume=0.10" {
		t.Fatalf("accept = %q", accept)
	}

	doc = parse(t, get(t, handler, accept).Body)
	if doc.Find(".consent").Length() != 0 {
		t.Fatal("consent shown again after accepting")
	}
	if doc.Find("audio").AttrOr("data-playing", "") != "true" {
		t.Fatal("track should play after consent")
	}

	doc = parse(t, get(t, handler, "/uchiha?audio=off&volume=7").Body)
	audio := doc.Find("audio")
	if audio.AttrOr("data-playing", "") != "false" {
		t.Fatal("declined track must not play")
	}
	if audio.AttrOr("data-volume", "") != "1.00" {
		t.Fatalf("volume not clamped: %q", audio.AttrOr("data-volume", ""))
	}

	doc = parse(t, get(t, handler, "/senju").Body)
	if doc.Find("audio, .consent, .player").Length() != 0 {
		t.Fatal("clan without track shows no audio controls")
	}
}

func TestStaticAndAssets(t *testing.T) {
	handler := testHandler(t)

	tests := []struct {
		path   string
		status int
		ctype  string
		body   string
	}{
		{"/healthz", http.StatusOK, "text/plain", "ok"},
		{"/static/style.css", http.StatusOK, "text/css", ".book-stage.closed-start"},
		{"/static/player.js", http.StatusOK, "text/javascript", "Audio play failed"},
		{"/static/suna.svg", http.StatusOK, "image/svg+xml", "<svg"},
		{"/static/missing.svg", http.StatusNotFound, "text/html", ""},
		{"/assets/pages/senju/2.png", http.StatusOK, "image/png", "senju-2"},
		{"/assets/pages/senju/9.png", http.StatusNotFound, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, handler, tt.path)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.ctype != "" && !strings.HasPrefix(rec.Header().Get("Content-Type"), tt.ctype) {
				t.Fatalf("content type = %q", rec.Header().Get("Content-Type"))
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Fatalf("body missing %q", tt.body)
			}
		})
	}
}

func TestEpubDownload(t *testing.T) {
	handler := testHandler(t)

	rec := get(t, handler, "/senju.epub")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/epub+zip" {
		t.Fatalf("content type = %q", ct)
	}
	data := rec.Body.Bytes()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open epub: %v", err)
	}
	if r.File[0].Name != "mimetype" {
		t.Fatalf("first entry = %q", r.File[0].Name)
	}

	if rec := get(t, handler, "/nara.epub"); rec.Code != http.StatusNotFound {
		t.Fatalf("empty clan epub status = %d", rec.Code)
	}
	if rec := get(t, handler, "/akatsuki.epub"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown clan epub status = %d", rec.Code)
	}
}

func TestAPIClan(t *testing.T) {
	handler := testHandler(t)

	rec := get(t, handler, "/api/clans/uchiha")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Clan  string `json:"clan"`
		Pages []struct {
			URL    string `json:"url"`
			Number int    `json:"number"`
		} `json:"pages"`
		Audio *struct {
			URL string `json:"url"`
		} `json:"audio"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Clan != "uchiha" || len(body.Pages) != 12 || body.Pages[11].Number != 12 {
		t.Fatalf("body = %+v", body)
	}
	if body.Audio == nil || body.Audio.URL != "/assets/pages/uchiha/uchiha.mp3" {
		t.Fatalf("audio = %+v", body.Audio)
	}

	rec = get(t, handler, "/api/clans/nara")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"pages":[]`) {
		t.Fatalf("empty clan = %d %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), `"audio"`) {
		t.Fatalf("absent audio must be omitted: %s", rec.Body.String())
	}

	if rec := get(t, handler, "/api/clans/akatsuki"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown clan status = %d", rec.Code)
	}
}

func TestAPIBookState(t *testing.T) {
	handler := testHandler(t)

	tests := []struct {
		query  string
		status int
		state  string
	}{
		{"page=0&total=12", http.StatusOK, "closed-start"},
		{"page=6&total=12", http.StatusOK, "open"},
		{"page=11&total=12", http.StatusOK, "closed-end"},
		{"page=11", http.StatusOK, "open"},
		{"page=11&total=", http.StatusOK, "open"},
		{"page=11&total=0", http.StatusOK, "open"},
		{"page=x&total=12", http.StatusBadRequest, ""},
		{"page=1&total=many", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(t, handler, "/api/book/state?"+tt.query)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.state == "" {
				return
			}
			var body struct {
				State string `json:"state"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.State != tt.state {
				t.Fatalf("state = %q, want %q", body.State, tt.state)
			}
		})
	}
}

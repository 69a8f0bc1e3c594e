package web

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"lore-clans/catalog"
	"lore-clans/model"
)

func testAssets() fstest.MapFS {
	assets := fstest.MapFS{
		"pages/uchiha/uchiha.mp3": {Data: []byte("track")},
		"pages/senju/1.png":       {Data: []byte("senju-1")},
		"pages/senju/2.png":       {Data: []byte("senju-2")},
	}
	for i := 1; i <= 12; i++ {
		assets[fmt.Sprintf("pages/uchiha/%d.png", i)] = &fstest.MapFile{Data: []byte(fmt.Sprintf("uchiha-%d", i))}
	}
	return assets
}

func testLibrary(t *testing.T, assets fstest.MapFS) *catalog.Library {
	t.Helper()
	paths, err := catalog.Scan(assets)
	if err != nil {
		t.Fatal(err)
	}
	m := &catalog.Manifest{
		Assets: paths,
		Villages: []model.Village{
			{Name: "Konoha", Logo: "/static/konoha.svg", Clans: []model.Clan{
				{ID: "uchiha", Name: "UCHIHA"},
				{ID: "senju", Name: "SENJU"},
				{ID: "nara", Name: "NARA"},
			}},
			{Name: "Kiri", Logo: "/static/kiri.svg", Clans: []model.Clan{{ID: "hozuki", Name: "HOZUKI"}}},
			{Name: "Taki"},
		},
	}
	return catalog.NewLibrary(m, "/assets")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	assets := testAssets()
	return NewHandler(testLibrary(t, assets), assets, 0.1, quietLogger())
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

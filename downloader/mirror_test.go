package downloader

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"lore-clans/utils"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSync(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/lore/pages/uchiha/1.png":
			w.Write([]byte("one"))
		case "/lore/pages/uchiha/uchiha.mp3":
			w.Write([]byte("track"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dest := t.TempDir()
	existing := filepath.Join(dest, "pages", "uchiha", "2.png")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("local"), 0644); err != nil {
		t.Fatal(err)
	}

	remote, err := NewRemote(utils.NewRestyClient(0), srv.URL+"/lore/")
	if err != nil {
		t.Fatal(err)
	}
	assets := []string{"pages/uchiha/1.png", "pages/uchiha/2.png", "pages/uchiha/uchiha.mp3"}
	report, err := Sync(context.Background(), remote, assets, dest, quietLogger())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if report.Downloaded != 2 || report.Skipped != 1 {
		t.Fatalf("report = %+v", report)
	}
	if hits.Load() != 2 {
		t.Fatalf("server hit %d times", hits.Load())
	}
	data, err := os.ReadFile(filepath.Join(dest, "pages", "uchiha", "uchiha.mp3"))
	if err != nil || string(data) != "track" {
		t.Fatalf("track = %q, %v", data, err)
	}
}

func TestSync_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	remote, err := NewRemote(utils.NewRestyClient(0), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Sync(context.Background(), remote, []string{"pages/nara/1.png"}, t.TempDir(), quietLogger())
	if err == nil {
		t.Fatal("expected error for missing remote asset")
	}
}

func TestSync_RejectsEscapingPaths(t *testing.T) {
	remote, err := NewRemote(utils.NewRestyClient(0), "http://127.0.0.1:1")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Sync(context.Background(), remote, []string{"../etc/passwd"}, t.TempDir(), quietLogger())
	if err == nil {
		t.Fatal("expected invalid path error")
	}
}

func TestNewRemote_RequiresBaseURL(t *testing.T) {
	if _, err := NewRemote(utils.NewRestyClient(0), " "); err == nil {
		t.Fatal("expected error")
	}
}

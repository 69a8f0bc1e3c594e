package catalog

import (
	"testing"
	"testing/fstest"
)

func TestScan(t *testing.T) {
	assets := fstest.MapFS{
		"pages/uchiha/2.png":      {Data: []byte("p2")},
		"pages/uchiha/1.png":      {Data: []byte("p1")},
		"pages/uchiha/uchiha.mp3": {Data: []byte("a")},
		"pages/uchiha/notes.txt":  {Data: []byte("n")},
		"pages/nara/1.JPG":        {Data: []byte("p1")},
		"konoha.svg":              {Data: []byte("<svg/>")},
	}

	got, err := Scan(assets)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []string{
		"pages/nara/1.JPG",
		"pages/uchiha/1.png",
		"pages/uchiha/2.png",
		"pages/uchiha/uchiha.mp3",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("asset %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScan_MissingPagesTree(t *testing.T) {
	got, err := Scan(fstest.MapFS{"logo.png": {Data: []byte("x")}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lore-clans/catalog"
)

func writeAsset(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestManifestCommand(t *testing.T) {
	assets := t.TempDir()
	for _, rel := range []string{"pages/uchiha/2.png", "pages/uchiha/1.png", "pages/uchiha/uchiha.mp3", "pages/uchiha/notes.txt"} {
		writeAsset(t, assets, rel)
	}
	manifestPath := filepath.Join(t.TempDir(), "manifest.toml")

	RootCmd.SetArgs([]string{"manifest", "--assets-dir", assets, "--manifest", manifestPath, "--log-level", "error"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("manifest: %v", err)
	}

	m, err := catalog.LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("load written manifest: %v", err)
	}
	want := []string{"pages/uchiha/1.png", "pages/uchiha/2.png", "pages/uchiha/uchiha.mp3"}
	if strings.Join(m.Assets, ",") != strings.Join(want, ",") {
		t.Errorf("assets = %v, want %v", m.Assets, want)
	}
	if len(m.Villages) == 0 {
		t.Error("expected default villages in the written manifest")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"version"})
	defer RootCmd.SetOut(nil)

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("output %q does not mention version %q", out.String(), Version)
	}
}

func TestPackRequiresClan(t *testing.T) {
	RootCmd.SetArgs([]string{"pack", "--assets-dir", t.TempDir(), "--log-level", "error"})
	err := RootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "clan id is required") {
		t.Fatalf("err = %v, want missing clan error", err)
	}
}

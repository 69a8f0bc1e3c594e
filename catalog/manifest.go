// Package catalog owns the static asset manifest and resolves clan books
// from it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"lore-clans/model"

	"github.com/pelletier/go-toml/v2"
)

//go:embed villages.toml
var defaultVillages []byte

// Manifest is the explicit, ahead-of-time list of assets plus the village menu.
// Asset paths are slash separated and relative to the asset root.
type Manifest struct {
	Assets   []string        `toml:"assets"`
	Villages []model.Village `toml:"villages"`
}

// DefaultManifest returns the embedded village menu with no assets.
func DefaultManifest() (*Manifest, error) {
	return ParseManifest(defaultVillages)
}

func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(m.Villages) == 0 {
		def, err := DefaultManifest()
		if err != nil {
			return nil, err
		}
		m.Villages = def.Villages
	}
	return m, nil
}

// LoadOrScan loads the manifest at path. When the file does not exist the
// asset tree is scanned instead and the embedded village menu is used.
func LoadOrScan(path string, assets fs.FS) (*Manifest, error) {
	m, err := LoadManifest(path)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	m, err = DefaultManifest()
	if err != nil {
		return nil, err
	}
	m.Assets, err = Scan(assets)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

func (m *Manifest) Save(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ClanIDs lists every clan of every village, in menu order.
func (m *Manifest) ClanIDs() []string {
	ids := make([]string, 0)
	for _, v := range m.Villages {
		for _, c := range v.Clans {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

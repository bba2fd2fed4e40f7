// Package pack loads sound pack manifests. A pack is a directory of sound
// files plus a manifest.json mapping categories to entries.
package pack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rbright/claxon/internal/category"
)

// ManifestName is the per-pack manifest file name.
const ManifestName = "manifest.json"

// Sound is one playable entry within a category's list.
type Sound struct {
	File  string `json:"file"`
	Label string `json:"label"`
}

// Manifest maps a category to its ordered sound entries. A category absent
// from the manifest simply has no sounds.
type Manifest map[category.Category][]Sound

// Sounds returns the entry list for a category, nil when none are declared.
func (m Manifest) Sounds(cat category.Category) []Sound {
	return m[cat]
}

// Dir resolves the packs root under XDG_DATA_HOME, falling back to
// ~/.local/share.
func Dir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, "claxon", "packs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve packs dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "claxon", "packs"), nil
}

// Load parses a pack's manifest. Absent or malformed manifests yield an empty
// manifest, never an error: a pack without sounds is silent, not broken.
// Relative file entries are resolved against the pack directory.
func Load(packDir string) Manifest {
	data, err := os.ReadFile(filepath.Join(packDir, ManifestName))
	if err != nil {
		return Manifest{}
	}

	var raw map[category.Category][]Sound
	if err := json.Unmarshal(data, &raw); err != nil {
		return Manifest{}
	}

	m := make(Manifest, len(raw))
	for cat, sounds := range raw {
		resolved := make([]Sound, 0, len(sounds))
		for _, s := range sounds {
			if strings.TrimSpace(s.File) == "" {
				continue
			}
			if !filepath.IsAbs(s.File) {
				s.File = filepath.Join(packDir, s.File)
			}
			resolved = append(resolved, s)
		}
		m[cat] = resolved
	}
	return m
}

// List returns the names of installed packs: directories under the packs root
// that carry a manifest file.
func List(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(root, entry.Name(), ManifestName)); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

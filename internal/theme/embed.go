package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedThemes contains all bundled theme files.
//
//go:embed themes/*.yaml
var EmbeddedThemes embed.FS

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "default"

// GetEmbedded retrieves a bundled theme by name. It reports whether the
// theme exists and parsed cleanly.
func GetEmbedded(name string) (*Theme, bool) {
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, false
	}
	t, err := Parse(data)
	if err != nil {
		return nil, false
	}
	if t.Name == "" {
		t.Name = name
	}
	return t, true
}

// ListEmbedded returns the names of all bundled themes.
func ListEmbedded() []string {
	var names []string

	entries, err := fs.ReadDir(EmbeddedThemes, "themes")
	if err != nil {
		return names
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".yaml" {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}
	return names
}

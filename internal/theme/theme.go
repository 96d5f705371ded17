// Package theme provides card theming for the terminal toast surface.
// Themes are YAML files describing colors, borders, and sizing; bundled
// themes are embedded and user themes in the config directory override
// them by name.
package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Theme describes how a toast card is drawn.
type Theme struct {
	Name string `yaml:"name"`

	// Colors are hex strings ("#rrggbb").
	TitleColor       string `yaml:"title_color"`
	DescriptionColor string `yaml:"description_color"`
	BackgroundColor  string `yaml:"background_color"`
	BorderColor      string `yaml:"border_color"`

	// FadedColor is used while a card's alpha is below full.
	FadedColor string `yaml:"faded_color"`

	// Border is one of "rounded", "normal", "thick", "double", "none".
	Border string `yaml:"border"`

	// Width is the card's inner width in cells.
	Width int `yaml:"width"`

	// Padding is the horizontal cell padding inside the border.
	Padding int `yaml:"padding"`
}

// Default returns the built-in default theme.
func Default() *Theme {
	t, found := GetEmbedded(DefaultThemeName)
	if !found {
		// The embedded default failing to load would be a packaging
		// defect; fall back to hard values rather than crash.
		return &Theme{
			Name:             DefaultThemeName,
			TitleColor:       "#ffffff",
			DescriptionColor: "#b8b8b8",
			BackgroundColor:  "#323232",
			BorderColor:      "#5f87ff",
			FadedColor:       "#585858",
			Border:           "rounded",
			Width:            40,
			Padding:          1,
		}
	}
	return t
}

// Parse decodes a YAML theme document.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	t.applyDefaults()
	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.Width <= 0 {
		t.Width = 40
	}
	if t.Padding < 0 {
		t.Padding = 0
	}
	if t.Border == "" {
		t.Border = "rounded"
	}
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "toastkit", "themes"), nil
}

// Load resolves a theme by name. Theme resolution order:
//  1. User themes directory (~/.config/toastkit/themes/)
//  2. Embedded/bundled themes
//
// This allows users to override bundled themes by placing a file with
// the same name in their themes directory.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	if dir, err := ThemesDir(); err == nil {
		path := filepath.Join(dir, name+".yaml")
		if data, err := os.ReadFile(path); err == nil {
			t, err := Parse(data)
			if err != nil {
				return nil, fmt.Errorf("user theme %q: %w", name, err)
			}
			if t.Name == "" {
				t.Name = name
			}
			return t, nil
		}
	}

	if t, found := GetEmbedded(name); found {
		return t, nil
	}
	return nil, fmt.Errorf("theme %q not found", name)
}

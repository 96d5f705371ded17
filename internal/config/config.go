// Package config handles configuration file loading and parsing for the
// toastkit demo application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/embermaw/toastkit/anim"
	"github.com/embermaw/toastkit/toast"
)

// Config represents the toastkit configuration.
type Config struct {
	Toast  ToastConfig  `toml:"toast"`
	Theme  ThemeConfig  `toml:"theme"`
	Audio  AudioConfig  `toml:"audio"`
	Bridge BridgeConfig `toml:"bridge"`
}

// ToastConfig holds presentation and timing defaults for the manager.
type ToastConfig struct {
	Duration            string  `toml:"duration"`   // e.g. "5s"
	Transition          string  `toml:"transition"` // e.g. "600ms"
	Animation           string  `toml:"animation"`  // opacity, offset, scale
	Alignment           string  `toml:"alignment"`  // top, bottom, left, right, center
	Shadow              bool    `toml:"shadow"`
	ShowAnimation       bool    `toml:"show_animation"`
	TitleFontSize       float64 `toml:"title_font_size"`
	DescriptionFontSize float64 `toml:"description_font_size"`
	TextColor           string  `toml:"text_color"`
	BackgroundColor     string  `toml:"background_color"`
}

// ThemeConfig selects the card theme for the terminal surface.
type ThemeConfig struct {
	Name string `toml:"name"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled      bool   `toml:"enabled"`
	Volume       int    `toml:"volume"` // 0-100
	ShowSound    string `toml:"show_sound"`
	DismissSound string `toml:"dismiss_sound"`
}

// BridgeConfig controls the freedesktop notification relay.
type BridgeConfig struct {
	Enabled bool   `toml:"enabled"`
	AppName string `toml:"app_name"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Toast: ToastConfig{
			Duration:            "5s",
			Transition:          "600ms",
			Animation:           "offset",
			Alignment:           "top",
			Shadow:              true,
			ShowAnimation:       true,
			TitleFontSize:       16,
			DescriptionFontSize: 14,
			TextColor:           "#ffffff",
			BackgroundColor:     "#323232",
		},
		Theme: ThemeConfig{Name: "default"},
		Audio: AudioConfig{Volume: 80},
		Bridge: BridgeConfig{
			AppName: "toastkit",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "toastkit", "config.toml")
}

// Load reads the configuration from path, overlaying defaults. An empty
// path means the default location; a missing file is not an error and
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Settings converts the toast section into manager settings. Malformed
// durations fall back to the defaults rather than failing.
func (c *Config) Settings() toast.Settings {
	s := toast.DefaultSettings()

	if d, err := time.ParseDuration(c.Toast.Transition); err == nil && d > 0 {
		s.Transition = d
	}
	s.AnimationStyle = anim.ParseStyle(c.Toast.Animation)
	s.Alignment = parseAlignment(c.Toast.Alignment)
	s.Shadow = c.Toast.Shadow
	s.ShowAnimation = c.Toast.ShowAnimation
	if c.Toast.TitleFontSize > 0 {
		s.TitleFontSize = c.Toast.TitleFontSize
	}
	if c.Toast.DescriptionFontSize > 0 {
		s.DescriptionFontSize = c.Toast.DescriptionFontSize
	}
	if c.Toast.TextColor != "" {
		s.TextColor = c.Toast.TextColor
	}
	if c.Toast.BackgroundColor != "" {
		s.BackgroundColor = c.Toast.BackgroundColor
	}
	return s
}

// ShowDuration returns the configured default on-screen duration.
func (c *Config) ShowDuration() time.Duration {
	if d, err := time.ParseDuration(c.Toast.Duration); err == nil && d > 0 {
		return d
	}
	return toast.DefaultShowDuration
}

func parseAlignment(s string) anim.Alignment {
	switch s {
	case "bottom":
		return anim.AlignBottom
	case "left":
		return anim.AlignLeft
	case "right":
		return anim.AlignRight
	case "center":
		return anim.AlignCenter
	default:
		return anim.AlignTop
	}
}

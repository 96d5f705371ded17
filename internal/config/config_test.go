package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embermaw/toastkit/anim"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "5s", cfg.Toast.Duration)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.True(t, cfg.Toast.ShowAnimation)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[toast]
duration = "2s"
animation = "scale"
alignment = "bottom"

[theme]
name = "minimal"

[audio]
enabled = true
volume = 50
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2s", cfg.Toast.Duration)
	assert.Equal(t, "scale", cfg.Toast.Animation)
	assert.Equal(t, "minimal", cfg.Theme.Name)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 50, cfg.Audio.Volume)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSettings_Conversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Toast.Transition = "250ms"
	cfg.Toast.Animation = "opacity"
	cfg.Toast.Alignment = "right"
	cfg.Toast.TextColor = "#abcdef"

	s := cfg.Settings()
	assert.Equal(t, 250*time.Millisecond, s.Transition)
	assert.Equal(t, anim.StyleOpacity, s.AnimationStyle)
	assert.Equal(t, anim.AlignRight, s.Alignment)
	assert.Equal(t, "#abcdef", s.TextColor)
}

func TestSettings_MalformedTransitionFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Toast.Transition = "soon"

	s := cfg.Settings()
	assert.Greater(t, s.Transition, time.Duration(0))
}

func TestShowDuration(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5*time.Second, cfg.ShowDuration())

	cfg.Toast.Duration = "bogus"
	assert.Greater(t, cfg.ShowDuration(), time.Duration(0))
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[toast]\nduration = \"1s\"\n"), 0o644))

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(path, []byte("[toast]\nduration = \"9s\"\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "9s", cfg.Toast.Duration)
	case <-time.After(2 * time.Second):
		t.Fatal("config change not observed")
	}
}

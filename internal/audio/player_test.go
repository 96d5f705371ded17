package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embermaw/toastkit/toast"
)

func TestPlayer_EmptyPathIsNoop(t *testing.T) {
	p := NewPlayer(nil)
	assert.NoError(t, p.Play(""))
	assert.NoError(t, p.Preload(""))
}

func TestPlayer_MissingFile(t *testing.T) {
	p := NewPlayer(nil)
	err := p.Play(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestPlayer_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sound.txt")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))

	p := NewPlayer(nil)
	err := p.Play(path)
	assert.ErrorContains(t, err, "unsupported audio format")
}

func TestPlayer_VolumeClamped(t *testing.T) {
	p := NewPlayer(nil)
	p.SetVolume(2.5)
	assert.Equal(t, 1.0, p.volume)
	p.SetVolume(-1)
	assert.Equal(t, 0.0, p.volume)
}

func TestVolumeToDecibels(t *testing.T) {
	assert.Equal(t, 0.0, volumeToDecibels(1))
	assert.Less(t, volumeToDecibels(0.5), 0.0)
	assert.Equal(t, -10.0, volumeToDecibels(0))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a.wav"), expandPath("~/a.wav"))
	assert.Equal(t, "/tmp/a.wav", expandPath("/tmp/a.wav"))
}

func TestCues_NoSoundsConfigured(t *testing.T) {
	c := NewCues("", "", 0.8, nil)
	defer c.Close()

	// Both events are silent no-ops without configured paths.
	assert.NotPanics(t, func() {
		c.Callback(toast.StatusShown)
		c.Callback(toast.StatusDismissed)
	})
}

package audio

import (
	"log/slog"

	"github.com/embermaw/toastkit/toast"
)

// Cues plays a configured sound on each toast lifecycle event. Register
// Callback with the manager to wire it up.
type Cues struct {
	logger *slog.Logger
	player *Player

	showSound    string
	dismissSound string
}

// NewCues creates a cue player for the given sound paths. Empty paths
// disable the respective cue.
func NewCues(showSound, dismissSound string, volume float64, logger *slog.Logger) *Cues {
	if logger == nil {
		logger = slog.Default()
	}
	player := NewPlayer(logger)
	player.SetVolume(volume)

	c := &Cues{
		logger:       logger,
		player:       player,
		showSound:    showSound,
		dismissSound: dismissSound,
	}

	for _, path := range []string{showSound, dismissSound} {
		if path == "" {
			continue
		}
		if err := player.Preload(path); err != nil {
			logger.Warn("failed to preload cue", "path", path, "error", err)
		}
	}
	return c
}

// Callback is the toast status callback playing the configured cues.
// Playback failures are logged, never propagated: a broken sound file
// must not affect the notification lifecycle.
func (c *Cues) Callback(status toast.Status) {
	var path string
	switch status {
	case toast.StatusShown:
		path = c.showSound
	case toast.StatusDismissed:
		path = c.dismissSound
	}
	if path == "" {
		return
	}
	if err := c.player.Play(path); err != nil {
		c.logger.Warn("failed to play cue", "status", status, "error", err)
	}
}

// Close releases playback resources.
func (c *Cues) Close() {
	c.player.Close()
}

package toast

import (
	"time"

	"github.com/embermaw/toastkit/anim"
)

// Settings are the manager's global presentation options. They may be
// mutated at any time; surfaces read them at render time, so a change
// applies from the next render onward with no consistency transaction.
type Settings struct {
	TitleFontSize       float64
	DescriptionFontSize float64

	// Colors are hex strings ("#rrggbb") interpreted by the surface.
	TextColor       string
	BackgroundColor string

	// Shadow toggles the card drop shadow.
	Shadow bool

	// ShowAnimation disables entry animation when false; cards appear
	// fully visible immediately.
	ShowAnimation bool

	// AnimationStyle selects the transition strategy. StyleCustom
	// requires CustomStrategy to be set; Show panics otherwise.
	AnimationStyle anim.Style
	CustomStrategy anim.Strategy

	// Alignment is the screen anchor of the toast stack.
	Alignment anim.Alignment

	// Transition is the entry/exit animation length for toasts created
	// after the change. Zero means anim.DefaultDuration.
	Transition time.Duration
}

// DefaultSettings returns the presentation defaults.
func DefaultSettings() Settings {
	return Settings{
		TitleFontSize:       16,
		DescriptionFontSize: 14,
		TextColor:           "#ffffff",
		BackgroundColor:     "#323232",
		Shadow:              true,
		ShowAnimation:       true,
		AnimationStyle:      anim.StyleOffset,
		Alignment:           anim.AlignTop,
		Transition:          anim.DefaultDuration,
	}
}

package toast

// Content is the caller-owned rendering payload of one toast. The
// manager treats it as opaque and immutable once shown; only the
// attached surface interprets it.
type Content struct {
	// Title is the headline text.
	Title string

	// Description is the secondary body text.
	Description string

	// Leading and Ending are decorations rendered before and after the
	// text block (an icon glyph, a badge, a close affordance).
	Leading string
	Ending  string

	// OnTap is invoked by the surface when the card is activated.
	// Surfaces typically follow it with a Dismiss of the card's handle.
	OnTap func()

	// Custom, when set, replaces the default card rendering entirely.
	// Its concrete type is defined by the attached surface.
	Custom any
}

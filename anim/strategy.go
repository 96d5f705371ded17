// Package anim provides the animation primitives for toast transitions:
// a frame-driven progress controller and the pluggable transform
// strategies applied to a card as it enters and leaves the screen.
package anim

// Alignment describes which screen edge or corner a toast stack is
// anchored to. Strategies use it to pick a slide direction.
type Alignment int

// Anchor positions for a toast stack.
const (
	AlignTop Alignment = iota
	AlignBottom
	AlignLeft
	AlignRight
	AlignCenter
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Transform is the visual state a strategy derives from a progress value.
// Offsets are fractions of the card's own size: -1 on the Y axis means
// translated fully off the anchored edge. Alpha and Scale are 0..1 with
// 1 meaning fully visible at natural size.
type Transform struct {
	OffsetX float64
	OffsetY float64
	Alpha   float64
	Scale   float64
}

// Identity is the transform of a fully settled card.
var Identity = Transform{Alpha: 1, Scale: 1}

// Strategy maps an animation progress value in [0,1] to a Transform.
// Implementations must be pure: no state, safe to call once per frame.
type Strategy interface {
	Transform(progress float64, align Alignment) Transform
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(progress float64, align Alignment) Transform

// Transform calls f.
func (f StrategyFunc) Transform(progress float64, align Alignment) Transform {
	return f(progress, align)
}

// Opacity fades the card in with progress and applies no other transform.
type Opacity struct{}

// Transform implements Strategy.
func (Opacity) Transform(progress float64, _ Alignment) Transform {
	t := Identity
	t.Alpha = clamp01(progress)
	return t
}

// Offset slides the card in from off-screen along the anchored edge,
// eased with an ease-in-out cubic curve.
type Offset struct{}

// Transform implements Strategy.
func (Offset) Transform(progress float64, align Alignment) Transform {
	t := Identity
	slide := 1 - easeInOutCubic(clamp01(progress))
	switch align {
	case AlignBottom:
		t.OffsetY = slide
	case AlignLeft:
		t.OffsetX = -slide
	case AlignRight:
		t.OffsetX = slide
	default:
		// Top and center anchors slide down from above.
		t.OffsetY = -slide
	}
	return t
}

// scaleFloor is the size a scaled card starts from.
const scaleFloor = 0.6

// Scale grows the card from scaleFloor to natural size while fading in.
type Scale struct{}

// Transform implements Strategy.
func (Scale) Transform(progress float64, _ Alignment) Transform {
	p := clamp01(progress)
	t := Identity
	t.Scale = scaleFloor + (1-scaleFloor)*easeInOutCubic(p)
	t.Alpha = p
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

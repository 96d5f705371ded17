package anim

import "strings"

// Style selects one of the built-in strategies, or Custom to delegate
// to a caller-supplied Strategy.
type Style int

// Built-in animation styles.
const (
	StyleOpacity Style = iota
	StyleOffset
	StyleScale
	StyleCustom
)

// String returns the lowercase name of the style.
func (s Style) String() string {
	switch s {
	case StyleOpacity:
		return "opacity"
	case StyleOffset:
		return "offset"
	case StyleScale:
		return "scale"
	case StyleCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseStyle parses a style name. Unknown names fall back to StyleOffset.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "opacity", "fade":
		return StyleOpacity
	case "offset", "slide":
		return StyleOffset
	case "scale", "zoom":
		return StyleScale
	case "custom":
		return StyleCustom
	default:
		return StyleOffset
	}
}

// ForStyle returns the Strategy for a style. For StyleCustom the
// supplied custom strategy is returned; callers are expected to have
// validated that it is non-nil.
func ForStyle(style Style, custom Strategy) Strategy {
	switch style {
	case StyleOpacity:
		return Opacity{}
	case StyleScale:
		return Scale{}
	case StyleCustom:
		if custom != nil {
			return custom
		}
		return Offset{}
	default:
		return Offset{}
	}
}

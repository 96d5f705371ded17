package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpacity_Transform(t *testing.T) {
	s := Opacity{}

	assert.Equal(t, 0.0, s.Transform(0, AlignTop).Alpha)
	assert.Equal(t, 0.5, s.Transform(0.5, AlignTop).Alpha)
	assert.Equal(t, 1.0, s.Transform(1, AlignTop).Alpha)

	// No positional or scale component.
	tr := s.Transform(0.3, AlignBottom)
	assert.Equal(t, 0.0, tr.OffsetX)
	assert.Equal(t, 0.0, tr.OffsetY)
	assert.Equal(t, 1.0, tr.Scale)
}

func TestOpacity_ClampsProgress(t *testing.T) {
	s := Opacity{}
	assert.Equal(t, 0.0, s.Transform(-0.5, AlignTop).Alpha)
	assert.Equal(t, 1.0, s.Transform(1.5, AlignTop).Alpha)
}

func TestOffset_SlideDirections(t *testing.T) {
	s := Offset{}

	tests := []struct {
		name  string
		align Alignment
		check func(t *testing.T, tr Transform)
	}{
		{"top slides down from above", AlignTop, func(t *testing.T, tr Transform) {
			assert.Equal(t, -1.0, tr.OffsetY)
			assert.Equal(t, 0.0, tr.OffsetX)
		}},
		{"bottom slides up from below", AlignBottom, func(t *testing.T, tr Transform) {
			assert.Equal(t, 1.0, tr.OffsetY)
		}},
		{"left slides in from the left", AlignLeft, func(t *testing.T, tr Transform) {
			assert.Equal(t, -1.0, tr.OffsetX)
		}},
		{"right slides in from the right", AlignRight, func(t *testing.T, tr Transform) {
			assert.Equal(t, 1.0, tr.OffsetX)
		}},
		{"center behaves like top", AlignCenter, func(t *testing.T, tr Transform) {
			assert.Equal(t, -1.0, tr.OffsetY)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, s.Transform(0, tt.align))
		})
	}
}

func TestOffset_SettlesAtIdentity(t *testing.T) {
	s := Offset{}
	for _, align := range []Alignment{AlignTop, AlignBottom, AlignLeft, AlignRight} {
		tr := s.Transform(1, align)
		assert.Equal(t, Identity, tr, "alignment %s", align)
	}
}

func TestOffset_Eased(t *testing.T) {
	s := Offset{}

	// Ease-in-out: the first quarter of progress moves less than a
	// quarter of the distance.
	tr := s.Transform(0.25, AlignTop)
	assert.Less(t, 1+tr.OffsetY, 0.25)
}

func TestScale_Transform(t *testing.T) {
	s := Scale{}

	start := s.Transform(0, AlignTop)
	assert.Equal(t, scaleFloor, start.Scale)
	assert.Equal(t, 0.0, start.Alpha)

	end := s.Transform(1, AlignTop)
	assert.Equal(t, 1.0, end.Scale)
	assert.Equal(t, 1.0, end.Alpha)
}

func TestStrategyFunc_Adapts(t *testing.T) {
	called := false
	s := StrategyFunc(func(progress float64, align Alignment) Transform {
		called = true
		return Transform{Alpha: progress, Scale: 1}
	})

	tr := s.Transform(0.7, AlignTop)
	assert.True(t, called)
	assert.Equal(t, 0.7, tr.Alpha)
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"opacity", StyleOpacity},
		{"fade", StyleOpacity},
		{"offset", StyleOffset},
		{"slide", StyleOffset},
		{"scale", StyleScale},
		{"zoom", StyleScale},
		{"custom", StyleCustom},
		{" OFFSET ", StyleOffset},
		{"bogus", StyleOffset},
		{"", StyleOffset},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStyle(tt.in), "input %q", tt.in)
	}
}

func TestForStyle(t *testing.T) {
	assert.IsType(t, Opacity{}, ForStyle(StyleOpacity, nil))
	assert.IsType(t, Offset{}, ForStyle(StyleOffset, nil))
	assert.IsType(t, Scale{}, ForStyle(StyleScale, nil))

	custom := StrategyFunc(func(float64, Alignment) Transform { return Identity })
	assert.NotNil(t, ForStyle(StyleCustom, custom))
	// Missing custom strategy falls back rather than returning nil.
	assert.IsType(t, Offset{}, ForStyle(StyleCustom, nil))
}

func TestEaseInOutCubic_Endpoints(t *testing.T) {
	assert.Equal(t, 0.0, easeInOutCubic(0))
	assert.Equal(t, 0.5, easeInOutCubic(0.5))
	assert.Equal(t, 1.0, easeInOutCubic(1))
}

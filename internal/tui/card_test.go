package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/embermaw/toastkit/anim"
	"github.com/embermaw/toastkit/internal/theme"
	"github.com/embermaw/toastkit/toast"
)

func testNode(alpha float64) toast.Node {
	return toast.Node{
		Handle:  "h",
		Content: toast.Content{Title: "Saved", Description: "Draft stored locally"},
		Transform: anim.Transform{
			Alpha: alpha,
			Scale: 1,
		},
	}
}

func TestRenderCard_HiddenBelowAlphaThreshold(t *testing.T) {
	assert.Empty(t, renderCard(testNode(0.0), theme.Default(), false))
	assert.Empty(t, renderCard(testNode(0.05), theme.Default(), false))
	assert.NotEmpty(t, renderCard(testNode(0.06), theme.Default(), false))
}

func TestRenderCard_ShadowOnlyWhenOpaque(t *testing.T) {
	faded := renderCard(testNode(0.3), theme.Default(), true)
	opaque := renderCard(testNode(1.0), theme.Default(), true)

	assert.NotContains(t, faded, "▔")
	assert.Contains(t, opaque, "▔")
}

func TestRenderCard_CustomBuilderWins(t *testing.T) {
	node := testNode(1.0)
	node.Content.Custom = CardBuilder(func(n toast.Node, th *theme.Theme) string {
		return "custom:" + n.Content.Title
	})

	assert.Equal(t, "custom:Saved", renderCard(node, theme.Default(), true))
}

func TestRenderCard_HorizontalOffsetIndents(t *testing.T) {
	node := testNode(1.0)
	node.Transform.OffsetX = 0.5

	out := renderCard(node, theme.Default(), false)
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(line, " "), "line %q not indented", line)
	}
}

func TestVerticalGap(t *testing.T) {
	assert.Equal(t, 0, verticalGap(0, 6))
	assert.Equal(t, 3, verticalGap(-0.5, 6))
	assert.Equal(t, 3, verticalGap(0.5, 6))
	// Clamped to the card height.
	assert.Equal(t, 6, verticalGap(-2.0, 6))
}

func TestBorderStyle(t *testing.T) {
	assert.Equal(t, lipgloss.NormalBorder(), borderStyle("normal"))
	assert.Equal(t, lipgloss.ThickBorder(), borderStyle("thick"))
	assert.Equal(t, lipgloss.DoubleBorder(), borderStyle("double"))
	assert.Equal(t, lipgloss.HiddenBorder(), borderStyle("none"))
	assert.Equal(t, lipgloss.RoundedBorder(), borderStyle(""))
	assert.Equal(t, lipgloss.RoundedBorder(), borderStyle("rounded"))
}

func TestIndentLines(t *testing.T) {
	assert.Equal(t, "a\nb", indentLines("a\nb", 0))
	assert.Equal(t, "  a\n  b", indentLines("a\nb", 2))
}

func TestClipTop(t *testing.T) {
	assert.Equal(t, "a\nb\nc", clipTop("a\nb\nc", 0))
	assert.Equal(t, "b\nc", clipTop("a\nb\nc", 1))
	assert.Equal(t, "", clipTop("a\nb\nc", 3))
	assert.Equal(t, "", clipTop("a\nb\nc", 9))
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/embermaw/toastkit/internal/theme"
	"github.com/embermaw/toastkit/toast"
)

// CardBuilder replaces the default card rendering for a single toast.
// Put one into Content.Custom to take over drawing entirely.
type CardBuilder func(node toast.Node, th *theme.Theme) string

// renderCard draws one toast node as a bordered card, approximating the
// node's transform in terminal cells: alpha fades the palette, scale
// narrows the card, and offsets become margins.
func renderCard(node toast.Node, th *theme.Theme, shadow bool) string {
	if builder, ok := node.Content.Custom.(CardBuilder); ok {
		return builder(node, th)
	}

	tr := node.Transform
	if tr.Alpha <= 0.05 {
		return ""
	}

	width := th.Width
	if tr.Scale < 1 {
		width = int(float64(width) * tr.Scale)
		if width < 10 {
			width = 10
		}
	}

	titleColor := th.TitleColor
	descColor := th.DescriptionColor
	borderColor := th.BorderColor
	if tr.Alpha < 0.66 {
		// Mid-fade: collapse the palette to the faded color.
		titleColor = th.FadedColor
		descColor = th.FadedColor
		borderColor = th.FadedColor
	}

	var body strings.Builder
	if node.Content.Leading != "" {
		body.WriteString(node.Content.Leading)
		body.WriteString(" ")
	}
	if node.Content.Title != "" {
		body.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(titleColor)).
			Render(node.Content.Title))
	}
	if node.Content.Ending != "" {
		body.WriteString(" ")
		body.WriteString(node.Content.Ending)
	}
	if node.Content.Description != "" {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(descColor)).
			Render(node.Content.Description))
	}
	if node.Persistent {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color(descColor)).
			Render("pinned " + humanize.Time(node.CreatedAt)))
	}

	style := lipgloss.NewStyle().
		Width(width).
		Padding(0, th.Padding).
		Border(borderStyle(th.Border)).
		BorderForeground(lipgloss.Color(borderColor))
	if th.BackgroundColor != "" {
		style = style.Background(lipgloss.Color(th.BackgroundColor))
	}

	card := style.Render(body.String())

	// Horizontal slide: indent the card. Vertical slide is applied by
	// the stack layout via blank lines.
	if tr.OffsetX > 0 {
		indent := int(tr.OffsetX * float64(width))
		card = indentLines(card, indent)
	}

	if shadow && tr.Alpha >= 0.66 {
		card = card + "\n" + lipgloss.NewStyle().
			Faint(true).
			Render(strings.Repeat("▔", min(width, 2+width/2)))
	}

	return card
}

// verticalGap converts a card's Y offset into blank lines inserted
// before (negative) or after it in the stack column.
func verticalGap(offsetY float64, cardHeight int) int {
	if offsetY == 0 {
		return 0
	}
	gap := int(offsetY * float64(cardHeight))
	if gap < 0 {
		gap = -gap
	}
	if gap > cardHeight {
		gap = cardHeight
	}
	return gap
}

func borderStyle(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "none":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func indentLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// Package tui provides the Bubble Tea playground that hosts the toast
// manager: it is both the reference render surface and the reference
// presentation layer (cards, gestures, key bindings).
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/embermaw/toastkit/anim"
	"github.com/embermaw/toastkit/internal/bridge"
	"github.com/embermaw/toastkit/internal/config"
	"github.com/embermaw/toastkit/internal/theme"
	"github.com/embermaw/toastkit/toast"
)

// repaintInterval paces repaints while cards are animating.
const repaintInterval = 33 * time.Millisecond

// Model is the playground TUI model.
type Model struct {
	mgr    *toast.Manager
	cfg    *config.Config
	theme  *theme.Theme
	relay  *bridge.Relay // nil when the bridge is disabled
	logger *slog.Logger

	keys KeyMap
	help help.Model

	width    int
	height   int
	showHelp bool
	ticking  bool
	counter  int

	// heldHandle is the toast whose auto-dismiss timer is suspended.
	heldHandle toast.Handle

	nodes []toast.Node
}

// NewModel creates the playground model. relay may be nil.
func NewModel(mgr *toast.Manager, cfg *config.Config, th *theme.Theme, relay *bridge.Relay, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if th == nil {
		th = theme.Default()
	}
	return Model{
		mgr:    mgr,
		cfg:    cfg,
		theme:  th,
		relay:  relay,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func frameTick() tea.Cmd {
	return tea.Tick(repaintInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case invalidateMsg:
		m.nodes = m.mgr.Compose()
		return m.ensureTicking()

	case frameMsg:
		m.ticking = false
		m.nodes = m.mgr.Compose()
		return m.ensureTicking()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// ensureTicking keeps repaints flowing while anything is on screen.
func (m Model) ensureTicking() (tea.Model, tea.Cmd) {
	if m.ticking || len(m.nodes) == 0 {
		return m, nil
	}
	m.ticking = true
	return m, frameTick()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Show):
		return m.spawn(false, 0)

	case key.Matches(msg, m.keys.Persistent):
		return m.spawn(true, 0)

	case key.Matches(msg, m.keys.Stacked):
		// One layer above everything currently visible.
		return m.spawn(false, m.topIndex()+1)

	case key.Matches(msg, m.keys.Tap):
		if node, ok := m.topNode(); ok {
			if node.Content.OnTap != nil {
				node.Content.OnTap()
			}
			m.dismiss(node)
		}
		return m, nil

	case key.Matches(msg, m.keys.Hold):
		if node, ok := m.topNode(); ok {
			if m.heldHandle == node.Handle {
				m.mgr.ReleaseTimer(node.Handle)
				m.heldHandle = ""
			} else {
				if m.heldHandle != "" {
					m.mgr.ReleaseTimer(m.heldHandle)
				}
				m.mgr.HoldTimer(node.Handle)
				m.heldHandle = node.Handle
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if node, ok := m.topNode(); ok {
			m.dismiss(node)
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.mgr.DismissAll(true)
		if m.relay != nil {
			for _, node := range m.nodes {
				m.relay.Dismiss(string(node.Handle))
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) spawn(persistent bool, index int) (tea.Model, tea.Cmd) {
	m.counter++
	n := m.counter

	content := toast.Content{
		Title:       fmt.Sprintf("Notification %d", n),
		Description: "Raised from the playground",
		Leading:     "●",
		OnTap: func() {
			m.logger.Debug("toast tapped", "n", n)
		},
	}

	opts := []toast.ShowOption{
		toast.WithIndex(index),
		toast.WithDuration(m.cfg.ShowDuration()),
	}
	if persistent {
		content.Description = "Pinned until dismissed"
		opts = append(opts, toast.WithPersistent())
	}

	ticket := m.mgr.Show(content, opts...)

	if m.relay != nil {
		expiry := m.cfg.ShowDuration()
		if persistent {
			expiry = 0
		}
		if err := m.relay.Notify(string(ticket.Handle()), content.Title, content.Description, expiry); err != nil {
			m.logger.Warn("desktop relay failed", "error", err)
		}
	}
	return m, nil
}

func (m *Model) dismiss(node toast.Node) {
	m.mgr.Dismiss(node.Handle, true)
	if m.relay != nil {
		m.relay.Dismiss(string(node.Handle))
	}
	if m.heldHandle == node.Handle {
		m.heldHandle = ""
	}
}

// topNode returns the topmost card: the last node in composed order.
func (m Model) topNode() (toast.Node, bool) {
	if len(m.nodes) == 0 {
		return toast.Node{}, false
	}
	return m.nodes[len(m.nodes)-1], true
}

func (m Model) topIndex() int {
	top := 0
	for _, n := range m.nodes {
		if n.Index > top {
			top = n.Index
		}
	}
	return top
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	settings := m.mgr.Settings()

	header := lipgloss.NewStyle().Bold(true).Render("toastkit playground")
	sub := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf(
		"%d active · style %s · anchor %s",
		len(m.nodes), settings.AnimationStyle, settings.Alignment,
	))
	b.WriteString(header + "  " + sub + "\n\n")

	b.WriteString(m.renderStack(settings))

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return b.String()
}

// renderStack draws the composed nodes in order, so later (higher
// index) cards appear closer to the anchor's far edge and visually
// above their neighbors.
func (m Model) renderStack(settings toast.Settings) string {
	var b strings.Builder
	for _, node := range m.nodes {
		card := renderCard(node, m.theme, settings.Shadow)
		if card == "" {
			continue
		}

		height := lipgloss.Height(card)
		switch settings.Alignment {
		case anim.AlignBottom:
			// Sliding up from below: pad above the card.
			if gap := verticalGap(node.Transform.OffsetY, height); gap > 0 {
				b.WriteString(strings.Repeat("\n", gap))
			}
			b.WriteString(card)
		default:
			// Sliding down from above: clip the part still off-screen.
			if node.Transform.OffsetY < 0 {
				card = clipTop(card, verticalGap(node.Transform.OffsetY, height))
			}
			b.WriteString(card)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// clipTop removes n leading lines, the portion of a card still above
// the screen edge mid-slide.
func clipTop(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}

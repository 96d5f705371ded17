package toast

import (
	"sort"
	"time"

	"github.com/embermaw/toastkit/anim"
)

// Node is one toast's entry in the composed render tree: everything a
// surface needs to draw the card at this instant.
type Node struct {
	Handle  Handle
	ID      string
	Index   int
	Content Content

	// Transform is the current visual state produced by the configured
	// animation strategy for this toast's progress.
	Transform anim.Transform

	// Animating reports whether the toast is mid-entry or mid-exit;
	// surfaces keep requesting frames while any node animates.
	Animating bool

	Persistent bool
	CreatedAt  time.Time
}

// Compose maps the current stack to its ordered render tree. Nodes are
// sorted by stacking index ascending, so later nodes draw above earlier
// ones; toasts sharing an index keep their insertion order.
//
// The whole composition runs inside the scheduler's render pass, so any
// animation start requested while a surface is drawing is deferred to
// the next frame boundary instead of mutating mid-render.
func (m *Manager) Compose() []Node {
	var nodes []Node
	m.sched.RenderPass(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		strategy := anim.ForStyle(m.settings.AnimationStyle, m.settings.CustomStrategy)
		align := m.settings.Alignment

		nodes = make([]Node, len(m.items))
		for i, it := range m.items {
			nodes[i] = Node{
				Handle:     it.handle,
				ID:         it.id,
				Index:      it.index,
				Content:    it.content,
				Transform:  strategy.Transform(it.ctrl.Value(), align),
				Animating:  it.ctrl.Animating(),
				Persistent: it.persistent,
				CreatedAt:  it.createdAt,
			}
		}
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].Index < nodes[j].Index
		})
	})
	return nodes
}

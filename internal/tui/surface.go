package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// invalidateMsg tells the program the toast stack changed.
type invalidateMsg struct{}

// frameMsg drives repaints while cards are animating.
type frameMsg struct{}

// Surface adapts a Bubble Tea program to the manager's render adapter
// contract: Invalidate becomes a message on the program's queue. The
// program is attached after construction because the manager must be
// built first.
type Surface struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewSurface creates a surface with no program attached yet.
func NewSurface() *Surface {
	return &Surface{}
}

// SetProgram attaches the running program.
func (s *Surface) SetProgram(p *tea.Program) {
	s.mu.Lock()
	s.program = p
	s.mu.Unlock()
}

// Invalidate requests a repaint. Calls before SetProgram are dropped;
// the first real render picks the state up anyway.
func (s *Surface) Invalidate() {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		go p.Send(invalidateMsg{})
	}
}

package toast

import (
	"log/slog"
	"sync"

	"github.com/embermaw/toastkit/anim"
	"github.com/embermaw/toastkit/frame"
)

// Surface is the render adapter contract. The manager calls Invalidate
// whenever the stack changes; the surface re-renders by calling Compose
// at its next opportunity. The manager does not own the surface's
// lifecycle.
type Surface interface {
	Invalidate()
}

// Manager is the notification lifecycle coordinator. Construct exactly
// one per application with New, attach a render surface, and share it by
// reference; there is no package-level instance.
//
// All mutable state (the item stack, settings, the callback registry) is
// owned by the Manager and serialized under one lock, which gives the
// same guarantees the single UI thread gives the original model: every
// mutation is applied whole, in call order.
type Manager struct {
	mu       sync.Mutex
	logger   *slog.Logger
	sched    frame.Scheduler
	surface  Surface
	settings Settings

	// items is insertion-ordered; at most one entry per non-empty id.
	items []*item

	callbacks []callbackEntry
}

// New creates a Manager driven by the given scheduler. The manager is
// not usable until Attach installs a render surface.
func New(sched frame.Scheduler, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:   logger,
		sched:    sched,
		settings: DefaultSettings(),
	}
}

// Attach installs the render surface. Call once near application
// startup, before the first Show.
func (m *Manager) Attach(s Surface) {
	m.mu.Lock()
	m.surface = s
	m.mu.Unlock()
}

// Settings returns a snapshot of the current presentation settings.
func (m *Manager) Settings() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// SetSettings replaces the presentation settings. Changes apply from the
// next render; toasts already on screen keep their transition duration.
func (m *Manager) SetSettings(s Settings) {
	m.mu.Lock()
	m.settings = s
	surface := m.surface
	m.mu.Unlock()
	if surface != nil {
		surface.Invalidate()
	}
}

// Show enqueues a toast and starts its entry animation. The returned
// ticket resolves once the entry animation has completed (immediately
// for a deduplicated id).
//
// Show panics if no surface is attached, and when the configured
// animation style is StyleCustom without a custom strategy. Both are
// programmer errors, not runtime conditions.
func (m *Manager) Show(content Content, opts ...ShowOption) *Ticket {
	o := defaultShowOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m.mu.Lock()
	if m.surface == nil {
		m.mu.Unlock()
		panic("toast: Show called before Attach")
	}
	if m.settings.AnimationStyle == anim.StyleCustom && m.settings.CustomStrategy == nil {
		m.mu.Unlock()
		panic("toast: animation style is custom but no custom strategy is set")
	}

	it := &item{
		handle:     newHandle(),
		id:         o.id,
		index:      o.index,
		content:    content,
		ctrl:       anim.NewController(m.sched, m.settings.Transition),
		duration:   o.duration,
		persistent: o.persistent,
		createdAt:  m.sched.Now(),
	}

	ticket := newTicket(it.handle)

	// An active toast with the same id stays authoritative: the new
	// item is built but never inserted, and the caller's ticket
	// resolves without any lifecycle events.
	if o.id != "" && m.findByIDLocked(o.id) != nil {
		m.mu.Unlock()
		m.logger.Warn("toast id already active, show skipped", "id", o.id)
		ticket.resolve()
		return ticket
	}

	m.items = append(m.items, it)
	animate := m.settings.ShowAnimation
	surface := m.surface
	m.mu.Unlock()

	m.logger.Debug("showing toast",
		"handle", it.handle,
		"id", it.id,
		"index", it.index,
		"persistent", it.persistent,
		"duration", it.duration,
	)

	surface.Invalidate()
	it.ctrl.PlayForward(animate, func(reached bool) {
		m.entryComplete(it, ticket, reached)
	})
	return ticket
}

// entryComplete runs once the entry play finishes. Status callbacks and
// the auto-dismiss timer only apply when the toast actually reached full
// visibility and was not dismissed mid-entry.
func (m *Manager) entryComplete(it *item, ticket *Ticket, reached bool) {
	m.mu.Lock()
	settled := reached && !it.dismissing && !it.removed
	if settled {
		it.shown = true
		if !it.held && !it.persistent && it.duration > 0 {
			m.armTimerLocked(it)
		}
	}
	cbs := m.snapshotCallbacksLocked()
	m.mu.Unlock()

	if settled {
		for _, cb := range cbs {
			cb(StatusShown)
		}
	}
	ticket.resolve()
}

// armTimerLocked starts the auto-dismiss countdown. The countdown base
// is entry completion, never the Show call. Caller must hold m.mu.
func (m *Manager) armTimerLocked(it *item) {
	handle := it.handle
	it.cancelTimer = m.sched.AfterDuration(it.duration, func() {
		m.Dismiss(handle, true)
	})
}

// Dismiss plays the exit transition for the toast addressed by handle
// and removes it from the stack. The ticket resolves once cleanup is
// done. Dismissing an unknown or already-removed handle skips straight
// to (empty) cleanup and resolves immediately; dismissing a toast whose
// exit is already in flight joins that exit rather than restarting it.
func (m *Manager) Dismiss(handle Handle, animate bool) *Ticket {
	ticket := newTicket(handle)

	m.mu.Lock()
	it := m.findByHandleLocked(handle)
	if it == nil {
		m.mu.Unlock()
		m.logger.Debug("dismiss for unmounted toast, skipping animation", "handle", handle)
		ticket.resolve()
		return ticket
	}

	// The timer phase ends the moment dismissal starts, whichever path
	// initiated it.
	it.cancelTimerLocked()
	it.exitTickets = append(it.exitTickets, ticket)
	if it.dismissing {
		m.mu.Unlock()
		return ticket
	}
	it.dismissing = true
	m.mu.Unlock()

	m.logger.Debug("dismissing toast", "handle", handle, "animate", animate)

	it.ctrl.PlayReverse(animate, func(bool) {
		m.cleanup(it)
	})
	return ticket
}

// DismissByID dismisses the active toast carrying the given caller id,
// with animation. Unknown ids are a logged no-op.
func (m *Manager) DismissByID(id string) {
	m.mu.Lock()
	it := m.findByIDLocked(id)
	m.mu.Unlock()

	if it == nil {
		m.logger.Warn("dismiss requested for unknown toast id", "id", id)
		return
	}
	m.Dismiss(it.handle, true)
}

// DismissAll dismisses every active toast.
func (m *Manager) DismissAll(animate bool) {
	m.mu.Lock()
	handles := make([]Handle, len(m.items))
	for i, it := range m.items {
		handles[i] = it.handle
	}
	m.mu.Unlock()

	for _, h := range handles {
		m.Dismiss(h, animate)
	}
}

// cleanup removes the item from the stack and runs every removal effect
// exactly once: timer cancellation, dismissed callbacks, re-render, and
// resolution of all waiting tickets.
func (m *Manager) cleanup(it *item) {
	m.mu.Lock()
	if it.removed {
		m.mu.Unlock()
		m.logger.Debug("cleanup for already-removed toast", "handle", it.handle)
		return
	}
	it.removed = true
	it.cancelTimerLocked()

	found := false
	for i, existing := range m.items {
		if existing == it {
			m.items = append(m.items[:i], m.items[i+1:]...)
			found = true
			break
		}
	}
	tickets := it.exitTickets
	it.exitTickets = nil
	cbs := m.snapshotCallbacksLocked()
	surface := m.surface
	m.mu.Unlock()

	if !found {
		m.logger.Debug("toast missing from stack during cleanup", "handle", it.handle)
	} else {
		for _, cb := range cbs {
			cb(StatusDismissed)
		}
	}
	if surface != nil {
		surface.Invalidate()
	}
	for _, t := range tickets {
		t.resolve()
	}

	m.logger.Debug("toast removed", "handle", it.handle, "active", m.ActiveCount())
}

// HoldTimer suspends the auto-dismiss timer for the toast addressed by
// handle, typically while the surface has the card hovered or focused.
func (m *Manager) HoldTimer(handle Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := m.findByHandleLocked(handle)
	if it == nil {
		return
	}
	it.held = true
	it.cancelTimerLocked()
}

// ReleaseTimer re-arms a held toast's auto-dismiss timer with its full
// duration, counted from now.
func (m *Manager) ReleaseTimer(handle Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := m.findByHandleLocked(handle)
	if it == nil || !it.held {
		return
	}
	it.held = false
	if it.shown && !it.dismissing && !it.persistent && it.duration > 0 && it.cancelTimer == nil {
		m.armTimerLocked(it)
	}
}

// ActiveCount returns the number of toasts currently in the stack.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// ActiveIDs returns the caller-supplied ids of active toasts, in
// insertion order. Toasts without an id are skipped.
func (m *Manager) ActiveIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.items))
	for _, it := range m.items {
		if it.id != "" {
			ids = append(ids, it.id)
		}
	}
	return ids
}

// findByHandleLocked returns the live item for handle, or nil. Caller
// must hold m.mu.
func (m *Manager) findByHandleLocked(handle Handle) *item {
	for _, it := range m.items {
		if it.handle == handle {
			return it
		}
	}
	return nil
}

// findByIDLocked returns the live item with the caller id, or nil.
// Id-less toasts are addressable by handle only, so an empty id never
// matches. Caller must hold m.mu.
func (m *Manager) findByIDLocked(id string) *item {
	if id == "" {
		return nil
	}
	for _, it := range m.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

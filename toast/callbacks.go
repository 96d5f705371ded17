package toast

import "github.com/oklog/ulid/v2"

// Status is the lifecycle event delivered to registered callbacks.
type Status int

const (
	// StatusShown fires once a toast's entry animation has completed.
	StatusShown Status = iota
	// StatusDismissed fires once a toast has been removed from the stack.
	StatusDismissed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusShown:
		return "shown"
	case StatusDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// StatusCallback observes toast lifecycle events.
type StatusCallback func(status Status)

// CallbackToken identifies one callback registration. Tokens are minted
// per AddStatusCallback call, so the same function can be registered
// more than once and each registration removed independently.
type CallbackToken string

type callbackEntry struct {
	token CallbackToken
	cb    StatusCallback
}

// AddStatusCallback registers cb for every shown and dismissed event and
// returns the token that removes it again. A nil callback returns an
// empty token and registers nothing.
func (m *Manager) AddStatusCallback(cb StatusCallback) CallbackToken {
	if cb == nil {
		return ""
	}
	token := CallbackToken(ulid.Make().String())
	m.mu.Lock()
	m.callbacks = append(m.callbacks, callbackEntry{token: token, cb: cb})
	m.mu.Unlock()
	return token
}

// RemoveCallback unregisters the callback identified by token. Removing
// an unknown or already-removed token is a no-op.
func (m *Manager) RemoveCallback(token CallbackToken) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, entry := range m.callbacks {
		if entry.token == token {
			m.callbacks = append(m.callbacks[:i], m.callbacks[i+1:]...)
			return
		}
	}
}

// RemoveAllCallbacks unregisters every status callback.
func (m *Manager) RemoveAllCallbacks() {
	m.mu.Lock()
	m.callbacks = nil
	m.mu.Unlock()
}

// snapshotCallbacksLocked copies the callback list so it can be invoked
// outside the manager lock. Caller must hold m.mu.
func (m *Manager) snapshotCallbacksLocked() []StatusCallback {
	if len(m.callbacks) == 0 {
		return nil
	}
	cbs := make([]StatusCallback, len(m.callbacks))
	for i, entry := range m.callbacks {
		cbs[i] = entry.cb
	}
	return cbs
}

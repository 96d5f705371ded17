// Package bridge relays toasts to the desktop's notification service
// over the org.freedesktop.Notifications D-Bus interface, so that
// toasts raised inside the terminal surface also reach the user when
// the terminal is not visible.
package bridge

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	busName       = "org.freedesktop.Notifications"
	objectPath    = "/org/freedesktop/Notifications"
	notifyMethod  = "org.freedesktop.Notifications.Notify"
	closeMethod   = "org.freedesktop.Notifications.CloseNotification"
	defaultExpiry = 5 * time.Second
)

// Relay forwards toast content to the session notification service.
type Relay struct {
	logger  *slog.Logger
	appName string

	mu   sync.Mutex
	conn *dbus.Conn

	// Desktop IDs of notifications this relay raised, keyed by the
	// caller's token (usually the toast handle).
	raised map[string]uint32
}

// New connects to the session bus. The app name is reported to the
// notification server as the originating application.
func New(appName string, logger *slog.Logger) (*Relay, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if appName == "" {
		appName = "toastkit"
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	return &Relay{
		logger:  logger,
		appName: appName,
		conn:    conn,
		raised:  make(map[string]uint32),
	}, nil
}

// Notify raises a desktop notification mirroring a toast and remembers
// its server-assigned ID under token for a later Dismiss.
func (r *Relay) Notify(token, summary, body string, expiry time.Duration) error {
	if expiry <= 0 {
		expiry = defaultExpiry
	}

	obj := r.conn.Object(busName, dbus.ObjectPath(objectPath))
	call := obj.Call(notifyMethod, 0,
		r.appName,
		uint32(0), // no replacement
		"",        // no icon
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(expiry.Milliseconds()),
	)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("failed to read notification id: %w", err)
	}

	r.mu.Lock()
	r.raised[token] = id
	r.mu.Unlock()

	r.logger.Debug("relayed toast to desktop", "token", token, "desktop_id", id)
	return nil
}

// Dismiss closes the desktop notification previously raised under
// token. Unknown tokens are a no-op; the desktop may have expired the
// notification on its own.
func (r *Relay) Dismiss(token string) {
	r.mu.Lock()
	id, ok := r.raised[token]
	delete(r.raised, token)
	r.mu.Unlock()
	if !ok {
		return
	}

	obj := r.conn.Object(busName, dbus.ObjectPath(objectPath))
	if call := obj.Call(closeMethod, 0, id); call.Err != nil {
		r.logger.Debug("failed to close desktop notification", "desktop_id", id, "error", call.Err)
	}
}

// Close releases the bus connection.
func (r *Relay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	r.conn = nil
	return err
}

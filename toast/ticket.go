package toast

import (
	"context"
	"sync"
)

// Ticket is a one-shot completion signal returned by Show and Dismiss.
// It only ever resolves; operational anomalies are logged by the
// manager, never surfaced through the ticket.
type Ticket struct {
	handle Handle
	once   sync.Once
	done   chan struct{}
}

func newTicket(handle Handle) *Ticket {
	return &Ticket{handle: handle, done: make(chan struct{})}
}

func (t *Ticket) resolve() {
	t.once.Do(func() { close(t.done) })
}

// Handle returns the handle of the toast this ticket tracks, usable to
// target the toast in a later Dismiss.
func (t *Ticket) Handle() Handle {
	return t.handle
}

// Done returns a channel closed when the operation has fully completed.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the operation completes or ctx is done, returning
// ctx.Err() in the latter case.
func (t *Ticket) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

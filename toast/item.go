package toast

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/embermaw/toastkit/anim"
	"github.com/embermaw/toastkit/frame"
)

// Handle is the opaque token addressing one active toast. The manager
// mints one per Show call; it is the target for Dismiss regardless of
// whether the toast also carries a caller-supplied id.
type Handle string

func newHandle() Handle {
	return Handle(ulid.Make().String())
}

// item is one active toast and its owned transient state. All fields
// after the identity block are guarded by the manager's lock.
type item struct {
	handle  Handle
	id      string
	index   int
	content Content

	ctrl       *anim.Controller
	duration   time.Duration
	persistent bool
	createdAt  time.Time

	// cancelTimer is non-nil only while the auto-dismiss timer is
	// armed, which is only in the stable shown phase: never during
	// entry or exit animation.
	cancelTimer frame.CancelFunc

	// held suppresses timer re-arming while the surface holds the card
	// (hover/focus).
	held bool

	// shown flips once the entry animation has fully completed.
	shown bool

	dismissing bool
	removed    bool

	// exitTickets collects every Dismiss ticket waiting on this item's
	// removal; all resolve together when cleanup runs.
	exitTickets []*Ticket
}

// cancelTimerLocked stops a pending auto-dismiss timer, if any. Caller
// must hold the manager lock.
func (it *item) cancelTimerLocked() {
	if it.cancelTimer != nil {
		it.cancelTimer()
		it.cancelTimer = nil
	}
}

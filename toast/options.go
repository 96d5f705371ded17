package toast

import "time"

// DefaultShowDuration is how long a non-persistent toast stays on
// screen after its entry animation completes.
const DefaultShowDuration = 5 * time.Second

type showOptions struct {
	duration   time.Duration
	persistent bool
	index      int
	id         string
}

func defaultShowOptions() showOptions {
	return showOptions{duration: DefaultShowDuration}
}

// ShowOption customizes a single Show call.
type ShowOption func(*showOptions)

// WithDuration overrides how long the toast stays visible after the
// entry animation completes. Zero or negative disables the auto-dismiss
// timer, same as WithPersistent.
func WithDuration(d time.Duration) ShowOption {
	return func(o *showOptions) { o.duration = d }
}

// WithPersistent keeps the toast on screen until explicitly dismissed;
// no auto-dismiss timer is armed.
func WithPersistent() ShowOption {
	return func(o *showOptions) { o.persistent = true }
}

// WithIndex sets the stacking index. Higher indices render later and
// therefore above lower ones; equal indices keep insertion order.
func WithIndex(index int) ShowOption {
	return func(o *showOptions) { o.index = index }
}

// WithID gives the toast a caller-chosen identity for DismissByID and
// deduplication: while a toast with the same id is active, further Show
// calls with that id are not inserted into the stack.
func WithID(id string) ShowOption {
	return func(o *showOptions) { o.id = id }
}

package frame

import (
	"sort"
	"sync"
	"time"
)

// Virtual is a deterministic Scheduler for tests. Time only moves when
// Advance is called; each Advance walks the clock forward in fixed frame
// steps, delivering frame callbacks and due timers in deadline order.
type Virtual struct {
	mu       sync.Mutex
	now      time.Time
	interval time.Duration

	frameFns []func(time.Time)
	timers   map[uint64]*loopTimer
	nextID   uint64

	renderDepth int
}

// NewVirtual creates a virtual scheduler starting at an arbitrary fixed
// epoch with the given synthetic frame interval.
func NewVirtual(interval time.Duration) *Virtual {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Virtual{
		now:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		interval: interval,
		timers:   make(map[uint64]*loopTimer),
	}
}

// Now returns the current virtual time.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// AfterFrame queues fn for the next frame step.
func (v *Virtual) AfterFrame(fn func(now time.Time)) {
	v.mu.Lock()
	v.frameFns = append(v.frameFns, fn)
	v.mu.Unlock()
}

// AfterDuration schedules fn relative to the current virtual time.
func (v *Virtual) AfterDuration(d time.Duration, fn func()) CancelFunc {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.timers[id] = &loopTimer{deadline: v.now.Add(d), fn: fn}
	v.mu.Unlock()

	return func() bool {
		v.mu.Lock()
		defer v.mu.Unlock()
		_, pending := v.timers[id]
		delete(v.timers, id)
		return pending
	}
}

// InRenderPass reports whether a RenderPass is currently executing.
func (v *Virtual) InRenderPass() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderDepth > 0
}

// RenderPass brackets a render, same contract as Loop.RenderPass.
func (v *Virtual) RenderPass(fn func()) {
	v.mu.Lock()
	v.renderDepth++
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.renderDepth--
		v.mu.Unlock()
	}()

	fn()
}

// Step advances the clock by exactly one frame interval.
func (v *Virtual) Step() {
	v.Advance(v.interval)
}

// Advance moves the virtual clock forward by d, dispatching frames at
// every interval boundary crossed. Work scheduled by a dispatched
// callback is delivered on a later step within the same Advance when its
// deadline allows, so a single Advance(10*time.Second) behaves the same
// as repeated small advances.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(d)
	v.mu.Unlock()

	for {
		v.mu.Lock()
		if !v.now.Before(target) {
			v.mu.Unlock()
			return
		}
		step := v.interval
		if remaining := target.Sub(v.now); remaining < step {
			step = remaining
		}
		v.now = v.now.Add(step)
		now := v.now

		fns := v.frameFns
		v.frameFns = nil

		type dueTimer struct {
			id uint64
			t  *loopTimer
		}
		var due []dueTimer
		for id, t := range v.timers {
			if !t.deadline.After(now) {
				due = append(due, dueTimer{id, t})
			}
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].t.deadline.Equal(due[j].t.deadline) {
				return due[i].id < due[j].id
			}
			return due[i].t.deadline.Before(due[j].t.deadline)
		})
		for _, dt := range due {
			delete(v.timers, dt.id)
		}
		v.mu.Unlock()

		for _, fn := range fns {
			fn(now)
		}
		for _, dt := range due {
			dt.t.fn()
		}
	}
}

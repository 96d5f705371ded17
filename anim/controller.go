package anim

import (
	"sync"
	"time"

	"github.com/embermaw/toastkit/frame"
)

// DefaultDuration is the transition length used when a controller is
// created with a non-positive duration.
const DefaultDuration = 600 * time.Millisecond

// Controller drives one toast's visual progress between 0 (hidden) and
// 1 (fully shown) over a fixed duration, stepped at frame boundaries by
// an injected scheduler.
//
// Each PlayForward/PlayReverse call is a one-shot play: its completion
// fires exactly once, either when the value reaches the play's target
// (reached=true) or when a later play or Stop supersedes it
// (reached=false). A play requested while the scheduler is inside a
// render pass is deferred to the next frame boundary; completion still
// fires once the deferred play finishes.
type Controller struct {
	mu       sync.Mutex
	sched    frame.Scheduler
	duration time.Duration

	value    float64
	target   float64
	current  *play
	lastTick time.Time
}

// play tracks one forward or reverse run. completed guards the onDone
// callback and done channel against firing twice.
type play struct {
	done      chan struct{}
	onDone    func(reached bool)
	completed bool
}

func (p *play) complete(reached bool) {
	if p.completed {
		return
	}
	p.completed = true
	if p.onDone != nil {
		p.onDone(reached)
	}
	close(p.done)
}

// NewController creates a controller at value 0 (hidden).
func NewController(sched frame.Scheduler, duration time.Duration) *Controller {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Controller{sched: sched, duration: duration}
}

// Value returns the current progress in [0,1].
func (c *Controller) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Animating reports whether a play is in flight.
func (c *Controller) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil && !c.current.completed
}

// PlayForward animates from the current value to 1. With animate=false
// the value snaps to 1 and completion fires immediately (still deferred
// past an active render pass). onDone may be nil; when set it runs
// synchronously on the scheduler goroutine before the returned channel
// closes.
func (c *Controller) PlayForward(animate bool, onDone func(reached bool)) <-chan struct{} {
	return c.startPlay(1, animate, onDone)
}

// PlayReverse animates from the current value to 0, or snaps when
// animate=false. Reversing mid-forward converges from wherever the
// forward play had reached.
func (c *Controller) PlayReverse(animate bool, onDone func(reached bool)) <-chan struct{} {
	return c.startPlay(0, animate, onDone)
}

// Stop halts any in-flight play, leaving the value where it is. The
// play completes with reached=false so waiters never hang.
func (c *Controller) Stop() {
	c.mu.Lock()
	p := c.current
	c.current = nil
	c.mu.Unlock()
	if p != nil {
		p.complete(false)
	}
}

func (c *Controller) startPlay(target float64, animate bool, onDone func(bool)) <-chan struct{} {
	p := &play{done: make(chan struct{}), onDone: onDone}

	c.mu.Lock()
	prev := c.current
	c.current = p
	c.mu.Unlock()

	// A new play supersedes the old one; release its waiters.
	if prev != nil {
		prev.complete(false)
	}

	// Mutating animation state mid-render is illegal: queue the start
	// for the next frame boundary instead.
	if c.sched.InRenderPass() {
		c.sched.AfterFrame(func(now time.Time) {
			c.begin(p, target, animate, now)
		})
	} else {
		c.begin(p, target, animate, c.sched.Now())
	}

	return p.done
}

func (c *Controller) begin(p *play, target float64, animate bool, now time.Time) {
	c.mu.Lock()
	if c.current != p {
		// Superseded before it started; already completed.
		c.mu.Unlock()
		return
	}
	c.target = target
	if !animate || c.value == target {
		c.value = target
		c.current = nil
		c.mu.Unlock()
		p.complete(true)
		return
	}
	c.lastTick = now
	c.mu.Unlock()

	c.sched.AfterFrame(func(tick time.Time) { c.step(p, tick) })
}

// step advances the value toward the target by the frame delta and
// re-arms itself until the target is reached or the play is superseded.
func (c *Controller) step(p *play, now time.Time) {
	c.mu.Lock()
	if c.current != p {
		c.mu.Unlock()
		return
	}

	dt := now.Sub(c.lastTick)
	c.lastTick = now
	if dt < 0 {
		dt = 0
	}

	delta := float64(dt) / float64(c.duration)
	if c.target > c.value {
		c.value += delta
		if c.value > c.target {
			c.value = c.target
		}
	} else {
		c.value -= delta
		if c.value < c.target {
			c.value = c.target
		}
	}

	if c.value == c.target {
		c.current = nil
		c.mu.Unlock()
		p.complete(true)
		return
	}
	c.mu.Unlock()

	c.sched.AfterFrame(func(tick time.Time) { c.step(p, tick) })
}

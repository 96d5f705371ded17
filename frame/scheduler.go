// Package frame abstracts the host UI's frame clock. The toast manager and
// animation controllers never talk to a real ticker directly; they schedule
// work through a Scheduler so that production code can bind to the host
// frame loop while tests run on a virtual clock.
package frame

import "time"

// CancelFunc cancels a pending timer registered with AfterDuration.
// Calling it after the timer has fired is a no-op. It reports whether
// the timer was still pending when cancelled.
type CancelFunc func() bool

// Scheduler is the clock capability injected into the animation and
// lifecycle layers.
//
// AfterFrame runs fn once at the next frame boundary, on the scheduler's
// dispatch goroutine. AfterDuration runs fn after at least d has elapsed,
// also on the dispatch goroutine. RenderPass brackets one render of the
// host surface: while fn runs, InRenderPass returns true and state
// mutations requested by animation code are deferred to the next frame
// boundary rather than applied mid-render.
type Scheduler interface {
	Now() time.Time
	AfterFrame(fn func(now time.Time))
	AfterDuration(d time.Duration, fn func()) CancelFunc
	RenderPass(fn func())
	InRenderPass() bool
}

package frame

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60Hz display.
const DefaultFrameInterval = time.Second / 60

// Loop is the production Scheduler. A single goroutine ticks at a fixed
// frame interval and dispatches frame callbacks and due timers in order,
// which stands in for the host UI thread: everything scheduled through a
// Loop runs serially.
type Loop struct {
	mu       sync.Mutex
	logger   *slog.Logger
	interval time.Duration

	frameFns []func(time.Time)
	timers   map[uint64]*loopTimer
	nextID   uint64

	renderDepth int
	running     bool
	stopCh      chan struct{}
	doneCh      chan struct{}
}

type loopTimer struct {
	deadline time.Time
	fn       func()
}

// NewLoop creates a frame loop ticking at the given interval.
// A non-positive interval falls back to DefaultFrameInterval.
func NewLoop(interval time.Duration, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Loop{
		logger:   logger,
		interval: interval,
		timers:   make(map[uint64]*loopTimer),
	}
}

// Start begins dispatching frames. Calling Start on a running loop is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	stopCh, doneCh := l.stopCh, l.doneCh
	l.mu.Unlock()

	go l.run(stopCh, doneCh)
	l.logger.Debug("frame loop started", "interval", l.interval)
}

// Stop halts dispatch and waits for the loop goroutine to exit.
// Pending frame callbacks and timers are dropped.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	close(l.stopCh)
	doneCh := l.doneCh
	l.mu.Unlock()

	<-doneCh
	l.logger.Debug("frame loop stopped")
}

func (l *Loop) run(stopCh chan struct{}, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			l.dispatch(now)
		case <-stopCh:
			return
		}
	}
}

// dispatch runs one frame: all queued frame callbacks, then all due timers.
// Callbacks registered during dispatch land in the next frame.
func (l *Loop) dispatch(now time.Time) {
	l.mu.Lock()
	fns := l.frameFns
	l.frameFns = nil

	var due []func()
	for id, t := range l.timers {
		if !t.deadline.After(now) {
			due = append(due, t.fn)
			delete(l.timers, id)
		}
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	for _, fn := range due {
		fn()
	}
}

// Now returns the wall clock time.
func (l *Loop) Now() time.Time { return time.Now() }

// AfterFrame queues fn for the next frame boundary.
func (l *Loop) AfterFrame(fn func(now time.Time)) {
	l.mu.Lock()
	l.frameFns = append(l.frameFns, fn)
	l.mu.Unlock()
}

// AfterDuration schedules fn to run once d has elapsed, checked at frame
// granularity. The returned CancelFunc unregisters the timer.
func (l *Loop) AfterDuration(d time.Duration, fn func()) CancelFunc {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.timers[id] = &loopTimer{deadline: time.Now().Add(d), fn: fn}
	l.mu.Unlock()

	return func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		_, pending := l.timers[id]
		delete(l.timers, id)
		return pending
	}
}

// InRenderPass reports whether a RenderPass is currently executing.
func (l *Loop) InRenderPass() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.renderDepth > 0
}

// RenderPass brackets a render: while fn runs, InRenderPass returns true
// and mutation requests routed through AfterFrame wait for the next
// tick. Passes nest; the outermost one ends the render phase.
func (l *Loop) RenderPass(fn func()) {
	l.mu.Lock()
	l.renderDepth++
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.renderDepth--
		l.mu.Unlock()
	}()

	fn()
}

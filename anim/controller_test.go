package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embermaw/toastkit/frame"
)

const testFrame = 10 * time.Millisecond

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestController_ForwardCompletes(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 100*time.Millisecond)

	var reached []bool
	done := c.PlayForward(true, func(r bool) { reached = append(reached, r) })

	assert.False(t, closed(done))
	assert.Equal(t, 0.0, c.Value())

	v.Advance(50 * time.Millisecond)
	assert.False(t, closed(done))
	assert.InDelta(t, 0.5, c.Value(), 0.11)

	v.Advance(100 * time.Millisecond)
	assert.True(t, closed(done))
	assert.Equal(t, 1.0, c.Value())

	// Completion fired exactly once, with the target reached.
	require.Len(t, reached, 1)
	assert.True(t, reached[0])
}

func TestController_ForwardWithoutAnimationSnaps(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 100*time.Millisecond)

	var calls int
	done := c.PlayForward(false, func(bool) { calls++ })

	assert.True(t, closed(done))
	assert.Equal(t, 1.0, c.Value())
	assert.Equal(t, 1, calls)
}

func TestController_ReverseFromShown(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 100*time.Millisecond)

	c.PlayForward(false, nil)
	done := c.PlayReverse(true, nil)

	v.Advance(200 * time.Millisecond)
	assert.True(t, closed(done))
	assert.Equal(t, 0.0, c.Value())
}

func TestController_ReverseMidForward(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 100*time.Millisecond)

	var forwardReached, reverseReached bool
	forwardDone := c.PlayForward(true, func(r bool) { forwardReached = r })

	v.Advance(50 * time.Millisecond)
	mid := c.Value()
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)

	reverseDone := c.PlayReverse(true, func(r bool) { reverseReached = r })

	// The superseded forward play resolves without reaching its target.
	assert.True(t, closed(forwardDone))
	assert.False(t, forwardReached)

	v.Advance(200 * time.Millisecond)
	assert.True(t, closed(reverseDone))
	assert.True(t, reverseReached)
	assert.Equal(t, 0.0, c.Value())
}

func TestController_ReplayAtTargetCompletesOnce(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 100*time.Millisecond)

	var firstCalls int
	first := c.PlayForward(false, func(bool) { firstCalls++ })
	require.True(t, closed(first))

	// Playing forward again while already at 1 must not animate and
	// must not re-fire the first play's completion.
	var secondCalls int
	second := c.PlayForward(true, func(bool) { secondCalls++ })

	assert.True(t, closed(second))
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 1, secondCalls)
	assert.False(t, c.Animating())
}

func TestController_StartDeferredDuringRenderPass(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 100*time.Millisecond)

	var done <-chan struct{}
	v.RenderPass(func() {
		done = c.PlayForward(false, nil)
		// Deferred: nothing moved inside the render pass.
		assert.Equal(t, 0.0, c.Value())
		assert.False(t, closed(done))
	})

	// The deferred snap lands at the next frame boundary and the
	// play's channel still resolves.
	v.Step()
	assert.True(t, closed(done))
	assert.Equal(t, 1.0, c.Value())
}

func TestController_StopReleasesWaiters(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 100*time.Millisecond)

	var reached bool
	done := c.PlayForward(true, func(r bool) { reached = r })

	v.Advance(30 * time.Millisecond)
	c.Stop()

	assert.True(t, closed(done))
	assert.False(t, reached)
	assert.False(t, c.Animating())

	// The value stays where the play stopped.
	assert.InDelta(t, 0.3, c.Value(), 0.11)
}

func TestController_DefaultDuration(t *testing.T) {
	v := frame.NewVirtual(testFrame)
	c := NewController(v, 0)
	assert.Equal(t, DefaultDuration, c.duration)
}

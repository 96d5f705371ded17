package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVirtual_AdvanceDeliversFrames(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	var frames int
	var rearm func(time.Time)
	rearm = func(time.Time) {
		frames++
		v.AfterFrame(rearm)
	}
	v.AfterFrame(rearm)

	v.Advance(100 * time.Millisecond)
	assert.Equal(t, 10, frames)
}

func TestVirtual_FrameCallbackRunsOncePerRegistration(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	var calls int
	v.AfterFrame(func(time.Time) { calls++ })

	v.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestVirtual_TimerFiresAtDeadline(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	var fired bool
	v.AfterDuration(30*time.Millisecond, func() { fired = true })

	v.Advance(20 * time.Millisecond)
	assert.False(t, fired)

	v.Advance(20 * time.Millisecond)
	assert.True(t, fired)
}

func TestVirtual_TimersFireInDeadlineOrder(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	var order []string
	v.AfterDuration(50*time.Millisecond, func() { order = append(order, "late") })
	v.AfterDuration(20*time.Millisecond, func() { order = append(order, "early") })

	v.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"early", "late"}, order)
}

func TestVirtual_CancelPendingTimer(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	var fired bool
	cancel := v.AfterDuration(30*time.Millisecond, func() { fired = true })

	assert.True(t, cancel())
	v.Advance(100 * time.Millisecond)
	assert.False(t, fired)

	// Cancelling again reports the timer as gone.
	assert.False(t, cancel())
}

func TestVirtual_CancelAfterFireIsNoop(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	var calls int
	cancel := v.AfterDuration(10*time.Millisecond, func() { calls++ })

	v.Advance(20 * time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.False(t, cancel())
}

func TestVirtual_TimerScheduledDuringAdvanceFires(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	var chained bool
	v.AfterDuration(10*time.Millisecond, func() {
		v.AfterDuration(20*time.Millisecond, func() { chained = true })
	})

	// One long advance behaves like repeated short ones.
	v.Advance(time.Second)
	assert.True(t, chained)
}

func TestVirtual_RenderPass(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	assert.False(t, v.InRenderPass())
	v.RenderPass(func() {
		assert.True(t, v.InRenderPass())
		// Nested passes keep the phase until the outermost exits.
		v.RenderPass(func() {
			assert.True(t, v.InRenderPass())
		})
		assert.True(t, v.InRenderPass())
	})
	assert.False(t, v.InRenderPass())
}

func TestVirtual_NowAdvances(t *testing.T) {
	v := NewVirtual(10 * time.Millisecond)

	start := v.Now()
	v.Advance(125 * time.Millisecond)
	assert.Equal(t, 125*time.Millisecond, v.Now().Sub(start))
}

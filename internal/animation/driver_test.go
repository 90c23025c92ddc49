package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/overpane/internal/animation"
)

const frame = 16 * time.Millisecond

func newDriver(t *testing.T) (*animation.Driver, *animation.ManualFrameSource) {
	t.Helper()
	frames := animation.NewManualFrameSource(time.Unix(0, 0))
	d, err := animation.NewDriver(frames)
	require.NoError(t, err)
	return d, frames
}

func TestNewDriver_NilFrameSource(t *testing.T) {
	d, err := animation.NewDriver(nil)
	require.ErrorIs(t, err, animation.ErrNilFrameSource)
	assert.Nil(t, d)
}

func TestDriver_RunsToEnd(t *testing.T) {
	// Arrange
	d, frames := newDriver(t)
	var values []float64
	finished := 0
	d.OnValue(func(v float64) { values = append(values, v) })
	d.OnFinished(func() { finished++ })

	// Act
	d.Start(animation.Run{From: 0, To: 100, Duration: 160 * time.Millisecond, Curve: animation.Linear})
	n := frames.Run(frame, 100)

	// Assert
	assert.Equal(t, 10, n)
	assert.Equal(t, 1, finished)
	assert.False(t, d.Running())
	assert.Equal(t, 100.0, d.Value())
	require.NotEmpty(t, values)
	assert.Equal(t, 100.0, values[len(values)-1])
	assert.InDelta(t, 10.0, values[0], 1e-9)
	assert.Equal(t, 0, frames.Pending())
}

func TestDriver_StopLeavesValue(t *testing.T) {
	// Arrange
	d, frames := newDriver(t)
	finished := false
	d.OnFinished(func() { finished = true })
	d.Start(animation.Run{From: 0, To: 100, Duration: 100 * time.Millisecond, Curve: animation.Linear})
	frames.Advance(50 * time.Millisecond)

	// Act
	d.Stop()
	frames.Run(frame, 20)

	// Assert
	assert.InDelta(t, 50.0, d.Value(), 1e-9)
	assert.False(t, d.Running())
	assert.False(t, finished)
	assert.Equal(t, 0, frames.Pending())
}

func TestDriver_RestartCancelsPrevious(t *testing.T) {
	// Arrange
	d, frames := newDriver(t)
	var values []float64
	finished := 0
	d.OnValue(func(v float64) { values = append(values, v) })
	d.OnFinished(func() { finished++ })
	d.Start(animation.Run{From: 0, To: -250, Duration: 250 * time.Millisecond, Curve: animation.FlingCurve})

	// Act
	d.Start(animation.Run{From: 0, To: 50, Duration: 100 * time.Millisecond, Curve: animation.TapCurve})
	frames.Run(frame, 100)

	// Assert
	assert.Equal(t, 1, finished)
	assert.Equal(t, 50.0, d.Value())
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0.0, "no frame from the cancelled run")
	}
}

func TestDriver_Retarget(t *testing.T) {
	// Arrange
	d, frames := newDriver(t)
	d.Start(animation.Run{From: 0, To: 100, Duration: 100 * time.Millisecond, Curve: animation.Linear})
	frames.Advance(50 * time.Millisecond)

	// Act
	d.Retarget(200)
	frames.Run(frame, 100)

	// Assert
	assert.Equal(t, 200.0, d.Value())
	assert.Equal(t, 200.0, d.Target())
}

func TestDriver_RetargetIdleIsNoop(t *testing.T) {
	d, _ := newDriver(t)
	d.Retarget(42)
	assert.Equal(t, 0.0, d.Target())
	assert.False(t, d.Running())
}

func TestDriver_ZeroDurationFinishesOnFirstFrame(t *testing.T) {
	d, frames := newDriver(t)
	finished := false
	d.OnFinished(func() { finished = true })

	d.Start(animation.Run{From: 3, To: 7})
	frames.Advance(frame)

	assert.True(t, finished)
	assert.Equal(t, 7.0, d.Value())
}

func TestDriver_StopFromValueCallback(t *testing.T) {
	d, frames := newDriver(t)
	calls := 0
	d.OnValue(func(float64) {
		calls++
		d.Stop()
	})

	d.Start(animation.Run{From: 0, To: 10, Duration: time.Second})
	frames.Run(frame, 10)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, frames.Pending())
}

func TestDriver_RestartFromFinishedCallback(t *testing.T) {
	d, frames := newDriver(t)
	runs := 0
	d.OnFinished(func() {
		runs++
		if runs == 1 {
			d.Start(animation.Run{From: 10, To: 0, Duration: 32 * time.Millisecond})
		}
	})

	d.Start(animation.Run{From: 0, To: 10, Duration: 32 * time.Millisecond})
	frames.Run(frame, 20)

	assert.Equal(t, 2, runs)
	assert.Equal(t, 0.0, d.Value())
	assert.Equal(t, 0, frames.Pending())
}

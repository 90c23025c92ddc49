package animation

import (
	"errors"
	"time"
)

// ErrNilFrameSource is returned when a driver is created without frames.
var ErrNilFrameSource = errors.New("frame source is nil")

// Run describes one animation of a scalar from From to To.
type Run struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    Curve
}

// Driver animates one scalar at a time. Starting a new run stops the
// previous one; a stopped run never emits another value.
type Driver struct {
	frames FrameSource

	run       Run
	startedAt time.Time
	value     float64
	running   bool
	tickID    uint
	// generation invalidates tick callbacks that belong to stopped runs
	generation uint64

	onValue    func(value float64)
	onFinished func()
}

// NewDriver creates a driver fed by the given frame source.
func NewDriver(frames FrameSource) (*Driver, error) {
	if frames == nil {
		return nil, ErrNilFrameSource
	}
	return &Driver{frames: frames}, nil
}

// OnValue sets the per-frame value callback.
func (d *Driver) OnValue(fn func(value float64)) {
	d.onValue = fn
}

// OnFinished sets the callback fired when a run reaches its end value.
// It is not fired for runs cancelled by Stop or Start.
func (d *Driver) OnFinished(fn func()) {
	d.onFinished = fn
}

// Start stops any run in flight and begins run.
func (d *Driver) Start(run Run) {
	d.Stop()

	if run.Curve == nil {
		run.Curve = Linear
	}

	d.generation++
	gen := d.generation
	d.run = run
	d.value = run.From
	d.startedAt = d.frames.Now()
	d.running = true
	d.tickID = d.frames.AddTickCallback(func(now time.Time) bool {
		return d.tick(gen, now)
	})
}

// Stop cancels the current run, leaving the value where it is.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.generation++
	if d.tickID != 0 {
		d.frames.RemoveTickCallback(d.tickID)
		d.tickID = 0
	}
}

// Retarget changes the end value of the current run without restarting
// its clock. It does nothing when no run is active.
func (d *Driver) Retarget(to float64) {
	if !d.running {
		return
	}
	d.run.To = to
}

// Running reports whether a run is active.
func (d *Driver) Running() bool {
	return d.running
}

// Value returns the last emitted value.
func (d *Driver) Value() float64 {
	return d.value
}

// Target returns the end value of the current or last run.
func (d *Driver) Target() float64 {
	return d.run.To
}

func (d *Driver) tick(gen uint64, now time.Time) bool {
	if gen != d.generation || !d.running {
		return false
	}

	progress := 1.0
	if d.run.Duration > 0 {
		progress = float64(now.Sub(d.startedAt)) / float64(d.run.Duration)
	}

	done := progress >= 1
	if done {
		d.value = d.run.To
	} else {
		d.value = d.run.From + (d.run.To-d.run.From)*d.run.Curve.Ease(progress)
	}

	if d.onValue != nil {
		d.onValue(d.value)
	}
	// the value callback may have stopped or restarted the driver
	if gen != d.generation {
		return false
	}
	if !done {
		return true
	}

	d.running = false
	d.tickID = 0
	if d.onFinished != nil {
		d.onFinished()
	}
	return false
}

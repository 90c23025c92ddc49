// Package gesture turns raw horizontal pointer motion into controller calls:
// per-frame deltas while dragging, then a release that is either a fling or
// a plain drop, resolved into a target layout state.
package gesture

import (
	"errors"
	"math"
	"time"

	"github.com/bnema/overpane/internal/panels"
)

// ErrInvalidOptions is returned for non-positive thresholds.
var ErrInvalidOptions = errors.New("gesture options must be positive")

// Options configures fling detection.
type Options struct {
	// FlingVelocity is the minimum horizontal release speed, in pixels per
	// second, that counts as a fling.
	FlingVelocity float64
	// SampleWindow is how far back samples are kept to measure release
	// velocity.
	SampleWindow time.Duration
	// TapSlop is the largest total travel, in pixels, still treated as a tap.
	TapSlop float64
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		FlingVelocity: 500,
		SampleWindow:  100 * time.Millisecond,
		TapSlop:       4,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.FlingVelocity <= 0 || o.SampleWindow <= 0 || o.TapSlop < 0 {
		return ErrInvalidOptions
	}
	return nil
}

type sample struct {
	x  float64
	at time.Time
}

// Tracker follows one pointer drag at a time.
type Tracker struct {
	opts    Options
	active  bool
	startX  float64
	lastX   float64
	lastY   float64
	samples []sample
}

// NewTracker creates a tracker.
func NewTracker(opts Options) (*Tracker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Tracker{opts: opts}, nil
}

// SetOptions replaces the thresholds.
func (t *Tracker) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	t.opts = opts
	return nil
}

// Active reports whether a drag is being tracked.
func (t *Tracker) Active() bool { return t.active }

// Begin starts tracking at pointer position (x, y).
func (t *Tracker) Begin(x, y float64, at time.Time) {
	t.active = true
	t.startX = x
	t.lastX = x
	t.lastY = y
	t.samples = append(t.samples[:0], sample{x: x, at: at})
}

// Move records a pointer position and returns the delta since the previous
// one. It returns zeros when no drag is active.
func (t *Tracker) Move(x, y float64, at time.Time) (dx, dy float64) {
	if !t.active {
		return 0, 0
	}
	dx, dy = x-t.lastX, y-t.lastY
	t.lastX, t.lastY = x, y
	t.samples = append(t.samples, sample{x: x, at: at})
	t.prune(at)
	return dx, dy
}

// Release describes how a drag ended.
type Release struct {
	// Velocity is the horizontal speed at release in pixels per second.
	Velocity float64
	// Distance is the total horizontal travel of the drag.
	Distance float64
	// Fling reports whether Velocity crossed the fling threshold.
	Fling bool
	// Tap reports whether the pointer barely moved.
	Tap bool
}

// End stops tracking at pointer position (x, y) and measures the release.
func (t *Tracker) End(x, y float64, at time.Time) Release {
	if !t.active {
		return Release{Tap: true}
	}
	t.Move(x, y, at)
	t.active = false

	v := t.velocity()
	distance := x - t.startX
	return Release{
		Velocity: v,
		Distance: distance,
		Fling:    math.Abs(v) >= t.opts.FlingVelocity,
		Tap:      math.Abs(distance) <= t.opts.TapSlop,
	}
}

// Cancel drops the current drag.
func (t *Tracker) Cancel() {
	t.active = false
	t.samples = t.samples[:0]
}

func (t *Tracker) prune(now time.Time) {
	cutoff := now.Add(-t.opts.SampleWindow)
	i := 0
	for i < len(t.samples)-1 && t.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		t.samples = append(t.samples[:0], t.samples[i:]...)
	}
}

func (t *Tracker) velocity() float64 {
	if len(t.samples) < 2 {
		return 0
	}
	first := t.samples[0]
	last := t.samples[len(t.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}

// Layout is the part of the controller a release is resolved against.
type Layout interface {
	State() panels.State
	CenterOffset() float64
	RestingOffset(s panels.State) float64
}

// Target picks the state a release settles into. A fling moves to the
// nearest resting offset in the flung direction, staying at the outermost
// state when there is none. Otherwise the nearest resting offset wins, and
// the committed state wins ties.
func (r Release) Target(l Layout) panels.State {
	offset := l.CenterOffset()

	if r.Fling && r.Velocity != 0 {
		best := panels.State(-1)
		bestDist := math.Inf(1)
		for _, s := range panels.States {
			rest := l.RestingOffset(s)
			d := rest - offset
			if r.Velocity < 0 {
				d = -d
			}
			if d > 0 && d < bestDist {
				best, bestDist = s, d
			}
		}
		if best.Valid() {
			return best
		}
		if r.Velocity > 0 {
			return panels.StateRight
		}
		return panels.StateLeft
	}

	best := l.State()
	bestDist := math.Abs(l.RestingOffset(best) - offset)
	for _, s := range panels.States {
		d := math.Abs(l.RestingOffset(s) - offset)
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// Commit resolves r against c and hands the result to the controller.
// A tap is not a drag: the drag it started is settled back into the
// committed state and false is returned, leaving the host to decide what the
// tap meant (see HitsCenter).
func Commit(c *panels.Controller, r Release) bool {
	if r.Tap {
		c.CommitGesture(c.State(), false)
		return false
	}
	c.CommitGesture(r.Target(c), r.Fling)
	return true
}

// HitsCenter reports whether container coordinate x falls on the center
// pane. Hosts close an open drawer when the exposed strip of the center pane
// is tapped.
func HitsCenter(c *panels.Controller, x float64) bool {
	width, _ := c.Size()
	left := c.CenterOffset()
	return x >= left && x < left+width
}

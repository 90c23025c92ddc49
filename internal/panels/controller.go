// Package panels implements the overlapping-panels navigation controller: a
// center pane that slides horizontally over a left and a right drawer and
// settles into one of three layout states.
//
// The controller is not safe for concurrent use. Every call, pane callback
// and frame tick must arrive on the UI thread.
package panels

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/overpane/internal/animation"
	"github.com/bnema/overpane/internal/logging"
)

// ErrInvalidHangFactor is returned when HangFactor is not greater than one.
var ErrInvalidHangFactor = errors.New("hang factor must be greater than 1")

// ErrInvalidOpacity is returned when DimmedOpacity is outside [0, 1].
var ErrInvalidOpacity = errors.New("dimmed opacity must be within [0, 1]")

// ErrInvalidDuration is returned for negative animation durations.
var ErrInvalidDuration = errors.New("animation durations must not be negative")

const fullOpacity = 1.0

// Options configures a Controller.
type Options struct {
	// HangFactor sets how much of the center pane stays on screen when a
	// drawer is open: width/HangFactor.
	HangFactor float64
	// DimmedOpacity is applied to the center pane once a drawer is open.
	DimmedOpacity float64
	// OpenDuration is used when settling into StateLeft or StateRight.
	OpenDuration time.Duration
	// CloseDuration is used when settling into StateCenter.
	CloseDuration time.Duration
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		HangFactor:    6,
		DimmedOpacity: 0.7,
		OpenDuration:  250 * time.Millisecond,
		CloseDuration: 200 * time.Millisecond,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if !(o.HangFactor > 1) || math.IsInf(o.HangFactor, 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidHangFactor, o.HangFactor)
	}
	if o.DimmedOpacity < 0 || o.DimmedOpacity > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidOpacity, o.DimmedOpacity)
	}
	if o.OpenDuration < 0 || o.CloseDuration < 0 {
		return ErrInvalidDuration
	}
	return nil
}

// ChangeKind identifies what a Change notification reports.
type ChangeKind int

const (
	// ChangeState reports a new committed State.
	ChangeState ChangeKind = iota
	// ChangeOffset reports a new center offset.
	ChangeOffset
	// ChangePanes reports that a different pane was attached.
	ChangePanes
)

// Change is delivered to ConnectChanged handlers.
type Change struct {
	Kind   ChangeKind
	State  State
	Offset float64
}

// Vector is a 2D displacement.
type Vector struct {
	X, Y float64
}

// Controller positions three panes and animates the center one between
// resting offsets.
type Controller struct {
	ctx       context.Context
	id        string
	container Container
	driver    *animation.Driver
	opts      Options

	width  float64
	height float64

	state  State
	offset float64
	// translation is the pointer displacement accumulated by the active
	// drag. The center pane sits at restingOffset(state) + translation.X.
	translation Vector
	dragging    bool

	left, center, right                         Pane
	leftBindings, centerBindings, rightBindings bindings

	containerResized signal[struct{}]
	changed          signal[Change]
}

// NewController creates a controller in StateCenter with no panes attached.
func NewController(ctx context.Context, container Container, frames animation.FrameSource, opts Options) (*Controller, error) {
	if container == nil {
		return nil, errors.New("container is nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	driver, err := animation.NewDriver(frames)
	if err != nil {
		return nil, fmt.Errorf("create animation driver: %w", err)
	}

	id := uuid.NewString()
	ctx = logging.WithControllerID(logging.WithComponent(ctx, "panels"), id)

	c := &Controller{
		ctx:       ctx,
		id:        id,
		container: container,
		driver:    driver,
		opts:      opts,
		state:     StateCenter,
	}
	driver.OnValue(c.setOffset)
	driver.OnFinished(c.settle)

	logging.FromContext(ctx).Debug().
		Float64("hang_factor", opts.HangFactor).
		Msg("panel controller created")

	return c, nil
}

// ID returns the controller's log correlation ID.
func (c *Controller) ID() string { return c.id }

// State returns the committed layout state.
func (c *Controller) State() State { return c.state }

// CenterOffset returns the current horizontal position of the center pane.
func (c *Controller) CenterOffset() float64 { return c.offset }

// LiveTranslation returns the displacement accumulated by the active drag.
func (c *Controller) LiveTranslation() Vector { return c.translation }

// IsAnimating reports whether a settle animation is running.
func (c *Controller) IsAnimating() bool { return c.driver.Running() }

// IsDragging reports whether a live drag is in progress.
func (c *Controller) IsDragging() bool { return c.dragging }

// Size returns the container size.
func (c *Controller) Size() (width, height float64) { return c.width, c.height }

// Options returns the active options.
func (c *Controller) Options() Options { return c.opts }

// RestingOffset returns the settled center offset for s at the current width.
func (c *Controller) RestingOffset(s State) float64 {
	return RestingOffset(s, c.width, c.opts.HangFactor)
}

// DrawerWidth returns the width given to both drawers.
func (c *Controller) DrawerWidth() float64 {
	return DrawerWidth(c.width, c.opts.HangFactor)
}

// LeftPanel returns the attached left pane, or nil.
func (c *Controller) LeftPanel() Pane { return c.left }

// CenterPanel returns the attached center pane, or nil.
func (c *Controller) CenterPanel() Pane { return c.center }

// RightPanel returns the attached right pane, or nil.
func (c *Controller) RightPanel() Pane { return c.right }

// ConnectChanged registers a handler for state, offset and pane changes.
func (c *Controller) ConnectChanged(fn func(Change)) uint32 {
	return c.changed.connect(fn)
}

// DisconnectChanged removes a handler registered with ConnectChanged.
func (c *Controller) DisconnectChanged(id uint32) {
	c.changed.disconnect(id)
}

// SetOptions replaces the options and lays the panes out again.
func (c *Controller) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	c.opts = opts
	c.containerResized.emit(struct{}{})
	c.relayout()
	return nil
}

// Resize updates the container size. Negative dimensions are treated as zero.
func (c *Controller) Resize(width, height float64) {
	width = max(width, 0)
	height = max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height

	c.containerResized.emit(struct{}{})
	c.relayout()
}

// BeginDrag starts a live drag. Any settle animation in flight is cancelled
// and the drag continues from the pane's current on-screen offset.
func (c *Controller) BeginDrag() {
	c.driver.Stop()
	c.dragging = true
	c.translation = Vector{X: c.offset - c.stateOffset()}
}

// UpdateLiveTranslation applies a pointer delta from the active drag and
// moves the center pane directly, without animation. A drag is begun
// implicitly when none is active.
func (c *Controller) UpdateLiveTranslation(dx, dy float64) {
	if !c.dragging {
		c.BeginDrag()
	}
	c.translation.X += dx
	c.translation.Y += dy
	c.setOffset(c.clampedOffset())
}

// CommitGesture ends the active drag and settles into target. fling selects
// the fling curve; the caller decides what counts as a fling.
func (c *Controller) CommitGesture(target State, fling bool) {
	c.dragging = false
	c.GoToState(target, fling)
}

// GoToState commits target and animates the center pane to its resting
// offset. Any animation in flight is cancelled first. When the pane is
// already at rest no animation runs and the pane is finalized immediately.
func (c *Controller) GoToState(target State, fling bool) {
	if !target.Valid() {
		panic(fmt.Sprintf("panels.GoToState: invalid state %d", int(target)))
	}

	log := logging.FromContext(c.ctx)

	prev := c.state
	c.state = target
	c.translation = Vector{}
	c.dragging = false
	c.driver.Stop()

	if prev != target {
		log.Debug().Stringer("from", prev).Stringer("to", target).Bool("fling", fling).Msg("layout state changed")
		c.changed.emit(Change{Kind: ChangeState, State: target, Offset: c.offset})
	}

	start := c.offset
	end := c.stateOffset()
	if start == end {
		log.Debug().Stringer("state", target).Msg("already at rest, skipping animation")
		c.settle()
		return
	}

	curve := animation.TapCurve
	if fling {
		curve = animation.FlingCurve
	}
	duration := c.opts.OpenDuration
	if target == StateCenter {
		duration = c.opts.CloseDuration
	}

	log.Debug().
		Float64("from", start).
		Float64("to", end).
		Dur("duration", duration).
		Bool("fling", fling).
		Msg("settle animation started")

	c.driver.Start(animation.Run{From: start, To: end, Duration: duration, Curve: curve})
}

// OpenLeft settles into StateLeft with the tap curve.
func (c *Controller) OpenLeft() { c.GoToState(StateLeft, false) }

// OpenRight settles into StateRight with the tap curve.
func (c *Controller) OpenRight() { c.GoToState(StateRight, false) }

// Close settles into StateCenter with the tap curve.
func (c *Controller) Close() { c.GoToState(StateCenter, false) }

// Toggle opens drawer s, or closes it when s is already the committed state.
func (c *Controller) Toggle(s State) {
	if c.state == s {
		c.Close()
		return
	}
	c.GoToState(s, false)
}

// SetCenterPanel attaches the center pane. It tracks the full container
// size and is stacked above both drawers.
func (c *Controller) SetCenterPanel(p Pane) {
	if p == nil {
		panic("panels.SetCenterPanel: pane must not be nil")
	}
	if p == c.center {
		return
	}

	c.centerBindings.reset()
	c.center = p

	c.container.Adopt(p)
	c.fitCenter()
	p.SetPosition(c.offset, 0)
	// Drawers go under the center, whatever order they were attached in.
	if c.left != nil {
		c.container.StackBelow(c.left, p)
	}
	if c.right != nil {
		c.container.StackBelow(c.right, p)
	}
	if !c.driver.Running() {
		c.applyOpacity()
	}

	c.bind(&c.centerBindings, p, c.fitCenter)
	c.paneAttached("center")
}

// SetLeftPanel attaches the left drawer. It is sized to DrawerWidth and
// anchored to the container's right edge.
func (c *Controller) SetLeftPanel(p Pane) {
	if p == nil {
		panic("panels.SetLeftPanel: pane must not be nil")
	}
	if p == c.left {
		return
	}

	c.leftBindings.reset()
	c.left = p

	c.container.Adopt(p)
	c.fitLeft()
	if c.center != nil {
		c.container.StackBelow(p, c.center)
	}

	c.bind(&c.leftBindings, p, c.fitLeft)
	c.paneAttached("left")
}

// SetRightPanel attaches the right drawer. It is sized to DrawerWidth and
// anchored to the container's left edge.
func (c *Controller) SetRightPanel(p Pane) {
	if p == nil {
		panic("panels.SetRightPanel: pane must not be nil")
	}
	if p == c.right {
		return
	}

	c.rightBindings.reset()
	c.right = p

	c.container.Adopt(p)
	c.fitRight()
	if c.center != nil {
		c.container.StackBelow(p, c.center)
	}

	c.bind(&c.rightBindings, p, c.fitRight)
	c.paneAttached("right")
}

// bind connects fit to container resizes, and fit plus a relayout to the
// pane's own size changes, recording every connection in b.
func (c *Controller) bind(b *bindings, p Pane, fit func()) {
	resizeID := c.containerResized.connect(func(struct{}) { fit() })
	b.add(func() { c.containerResized.disconnect(resizeID) })

	sizeID := p.ConnectSizeChanged(func() {
		fit()
		c.relayout()
	})
	b.add(func() { p.Disconnect(sizeID) })
}

func (c *Controller) paneAttached(slot string) {
	logging.FromContext(c.ctx).Debug().Str("slot", slot).Msg("pane attached")
	c.changed.emit(Change{Kind: ChangePanes, State: c.state, Offset: c.offset})
	c.updateVisibility()
}

func (c *Controller) fitCenter() {
	if c.center == nil {
		return
	}
	fitSize(c.center, c.width, c.height)
}

func (c *Controller) fitLeft() {
	if c.left == nil {
		return
	}
	w := c.DrawerWidth()
	fitSize(c.left, w, c.height)
	c.left.SetPosition(c.width-w, 0)
}

func (c *Controller) fitRight() {
	if c.right == nil {
		return
	}
	fitSize(c.right, c.DrawerWidth(), c.height)
	c.right.SetPosition(0, 0)
}

// fitSize writes the size only when it differs, so a pane echoing its own
// size change back does not loop.
func fitSize(p Pane, width, height float64) {
	if w, h := p.Size(); w == width && h == height {
		return
	}
	p.SetSize(width, height)
}

func (c *Controller) stateOffset() float64 {
	return c.RestingOffset(c.state)
}

// clampedOffset computes the live offset for the current drag. An open
// drawer cannot be dragged further open: the offset stops at its resting
// value and the accumulated translation is discarded. StateCenter is never
// clamped.
func (c *Controller) clampedOffset() float64 {
	rest := c.stateOffset()
	candidate := rest + c.translation.X

	switch c.state {
	case StateLeft:
		if candidate <= rest {
			c.clampAt(rest, candidate)
			return rest
		}
	case StateRight:
		if candidate >= rest {
			c.clampAt(rest, candidate)
			return rest
		}
	}
	return candidate
}

func (c *Controller) clampAt(rest, candidate float64) {
	if candidate != rest {
		logging.FromContext(c.ctx).Trace().
			Stringer("state", c.state).
			Float64("candidate", candidate).
			Float64("clamped", rest).
			Msg("drag clamped")
	}
	c.translation.X = 0
}

// relayout re-derives the center position after a geometry change. A running
// animation is retargeted to the new resting offset instead.
func (c *Controller) relayout() {
	if c.driver.Running() {
		c.driver.Retarget(c.stateOffset())
		c.updateVisibility()
		return
	}
	c.setOffset(c.clampedOffset())
}

// setOffset moves the center pane and recomputes drawer visibility in the
// same step.
func (c *Controller) setOffset(offset float64) {
	changed := offset != c.offset
	c.offset = offset
	if c.center != nil {
		c.center.SetPosition(offset, 0)
	}
	c.updateVisibility()
	if changed {
		c.changed.emit(Change{Kind: ChangeOffset, State: c.state, Offset: offset})
	}
}

// updateVisibility shows the drawer the center pane has moved away from.
// It depends only on the live offset, so a drawer peeks out during a drag
// before any state is committed.
func (c *Controller) updateVisibility() {
	containerCenter := c.width / 2
	itemCenter := c.offset + containerCenter

	leftVisible := itemCenter < containerCenter
	rightVisible := itemCenter > containerCenter

	if c.left != nil {
		c.left.SetVisible(leftVisible)
	}
	if c.right != nil {
		c.right.SetVisible(rightVisible)
	}
}

// settle finalizes a resting layout: opacity cue and exact resting position.
func (c *Controller) settle() {
	c.applyOpacity()
	logging.FromContext(c.ctx).Debug().
		Stringer("state", c.state).
		Float64("offset", c.offset).
		Msg("panels settled")
	c.relayout()
}

// applyOpacity dims the center pane while a drawer is the resting state.
func (c *Controller) applyOpacity() {
	if c.center == nil {
		return
	}
	if c.state != StateCenter {
		c.center.SetOpacity(c.opts.DimmedOpacity)
	} else {
		c.center.SetOpacity(fullOpacity)
	}
}

package panels_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/overpane/internal/animation"
	"github.com/bnema/overpane/internal/panels"
)

const frame = 10 * time.Millisecond

type harness struct {
	c         *panels.Controller
	frames    *animation.ManualFrameSource
	container *fakeContainer
	left      *fakePane
	center    *fakePane
	right     *fakePane
	changes   []panels.Change
}

// newHarness builds a 300x600 controller with HangFactor 6 and all three
// panes attached, so the drawer width is 250.
func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		frames:    animation.NewManualFrameSource(time.Unix(0, 0)),
		container: &fakeContainer{},
		left:      newFakePane("left"),
		center:    newFakePane("center"),
		right:     newFakePane("right"),
	}

	c, err := panels.NewController(context.Background(), h.container, h.frames, panels.DefaultOptions())
	require.NoError(t, err)
	h.c = c

	c.Resize(300, 600)
	c.SetLeftPanel(h.left)
	c.SetCenterPanel(h.center)
	c.SetRightPanel(h.right)
	c.ConnectChanged(func(ch panels.Change) { h.changes = append(h.changes, ch) })
	return h
}

func (h *harness) settle() int {
	return h.frames.Run(frame, 1000)
}

func TestRestingOffset_Law(t *testing.T) {
	for _, w := range []float64{1, 120, 300, 1920.5} {
		for _, hf := range []float64{1.01, 2, 6, 10} {
			right := panels.RestingOffset(panels.StateRight, w, hf)
			left := panels.RestingOffset(panels.StateLeft, w, hf)

			assert.Equal(t, -right, left)
			assert.Equal(t, w-w/hf, right)
			assert.Greater(t, right, 0.0)
			assert.Less(t, right, w)
			assert.Equal(t, 0.0, panels.RestingOffset(panels.StateCenter, w, hf))
		}
	}
}

func TestRestingOffset_DegenerateWidth(t *testing.T) {
	for _, s := range panels.States {
		assert.Equal(t, 0.0, panels.RestingOffset(s, 0, 6))
		assert.Equal(t, 0.0, panels.RestingOffset(s, -50, 6))
	}
}

func TestNewController_ValidatesOptions(t *testing.T) {
	frames := animation.NewManualFrameSource(time.Unix(0, 0))

	tests := []struct {
		name    string
		mutate  func(*panels.Options)
		wantErr error
	}{
		{"hang factor one", func(o *panels.Options) { o.HangFactor = 1 }, panels.ErrInvalidHangFactor},
		{"hang factor below one", func(o *panels.Options) { o.HangFactor = 0.5 }, panels.ErrInvalidHangFactor},
		{"hang factor infinite", func(o *panels.Options) { o.HangFactor = math.Inf(1) }, panels.ErrInvalidHangFactor},
		{"hang factor NaN", func(o *panels.Options) { o.HangFactor = math.NaN() }, panels.ErrInvalidHangFactor},
		{"opacity above one", func(o *panels.Options) { o.DimmedOpacity = 1.5 }, panels.ErrInvalidOpacity},
		{"negative duration", func(o *panels.Options) { o.OpenDuration = -time.Second }, panels.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := panels.DefaultOptions()
			tt.mutate(&opts)

			c, err := panels.NewController(context.Background(), &fakeContainer{}, frames, opts)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestNewController_NilCollaborators(t *testing.T) {
	frames := animation.NewManualFrameSource(time.Unix(0, 0))

	_, err := panels.NewController(context.Background(), nil, frames, panels.DefaultOptions())
	require.Error(t, err)

	_, err = panels.NewController(context.Background(), &fakeContainer{}, nil, panels.DefaultOptions())
	require.ErrorIs(t, err, animation.ErrNilFrameSource)
}

func TestController_InitialLayout(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, panels.StateCenter, h.c.State())
	assert.Equal(t, 0.0, h.c.CenterOffset())
	assert.NotEmpty(t, h.c.ID())

	assert.Equal(t, [2]float64{300, 600}, [2]float64{h.center.width, h.center.height})
	assert.Equal(t, [2]float64{250, 600}, [2]float64{h.left.width, h.left.height})
	assert.Equal(t, [2]float64{250, 600}, [2]float64{h.right.width, h.right.height})

	// left drawer is anchored to the right edge, right drawer to the left edge
	assert.Equal(t, 50.0, h.left.x)
	assert.Equal(t, 0.0, h.right.x)

	assert.False(t, h.left.visible)
	assert.False(t, h.right.visible)

	assert.Greater(t, h.container.indexOf(h.center), h.container.indexOf(h.left))
	assert.Greater(t, h.container.indexOf(h.center), h.container.indexOf(h.right))
}

func TestController_CenterStacksAboveDrawersInAnyAttachOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []string
	}{
		{"left center right", []string{"left", "center", "right"}},
		{"left right center", []string{"left", "right", "center"}},
		{"center left right", []string{"center", "left", "right"}},
		{"center right left", []string{"center", "right", "left"}},
		{"right left center", []string{"right", "left", "center"}},
		{"right center left", []string{"right", "center", "left"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			container := &fakeContainer{}
			c, err := panels.NewController(context.Background(), container, animation.NewManualFrameSource(time.Unix(0, 0)), panels.DefaultOptions())
			require.NoError(t, err)
			c.Resize(300, 600)

			center, left, right := newFakePane("center"), newFakePane("left"), newFakePane("right")
			attach := map[string]func(){
				"center": func() { c.SetCenterPanel(center) },
				"left":   func() { c.SetLeftPanel(left) },
				"right":  func() { c.SetRightPanel(right) },
			}

			// Act
			for _, slot := range tt.order {
				attach[slot]()
			}

			// Assert
			require.Len(t, container.order, 3)
			assert.Equal(t, 2, container.indexOf(center))
			assert.Greater(t, container.indexOf(center), container.indexOf(left))
			assert.Greater(t, container.indexOf(center), container.indexOf(right))
		})
	}
}

func TestController_SetPanelSameReferenceIsNoop(t *testing.T) {
	h := newHarness(t)
	adopted := len(h.container.adopted)

	h.c.SetLeftPanel(h.left)
	h.c.SetCenterPanel(h.center)
	h.c.SetRightPanel(h.right)

	assert.Len(t, h.container.adopted, adopted)
	assert.Empty(t, h.changes)
	assert.Len(t, h.left.handlers, 1)
}

func TestController_SetPanelNilPanics(t *testing.T) {
	h := newHarness(t)

	assert.Panics(t, func() { h.c.SetLeftPanel(nil) })
	assert.Panics(t, func() { h.c.SetCenterPanel(nil) })
	assert.Panics(t, func() { h.c.SetRightPanel(nil) })
}

func TestController_GoToStateInvalidPanics(t *testing.T) {
	h := newHarness(t)
	assert.Panics(t, func() { h.c.GoToState(panels.State(42), false) })
}

func TestController_DragFromCenter(t *testing.T) {
	// Arrange
	h := newHarness(t)

	// Act: drag left by 100px
	h.c.UpdateLiveTranslation(-100, 0)

	// Assert
	assert.Equal(t, panels.StateCenter, h.c.State())
	assert.Equal(t, -100.0, h.c.CenterOffset())
	assert.Equal(t, -100.0, h.center.x)
	assert.True(t, h.left.visible)
	assert.False(t, h.right.visible)
	assert.False(t, h.c.IsAnimating())
	assert.True(t, h.c.IsDragging())
}

func TestController_DragFromCenterIsNotClamped(t *testing.T) {
	h := newHarness(t)

	h.c.UpdateLiveTranslation(-400, 0)
	assert.Equal(t, -400.0, h.c.CenterOffset())

	h.c.UpdateLiveTranslation(800, 0)
	assert.Equal(t, 400.0, h.c.CenterOffset())
}

func TestController_ClampWhileLeftOpen(t *testing.T) {
	// Arrange
	h := newHarness(t)
	h.c.OpenLeft()
	h.settle()
	require.Equal(t, -250.0, h.c.CenterOffset())

	// Act: drag further open
	h.c.UpdateLiveTranslation(-10, 0)

	// Assert
	assert.Equal(t, -250.0, h.c.CenterOffset())
	assert.Equal(t, 0.0, h.c.LiveTranslation().X)

	h.c.UpdateLiveTranslation(-40, 0)
	assert.Equal(t, -250.0, h.c.CenterOffset(), "same direction after the clamp changes nothing")

	h.c.UpdateLiveTranslation(30, 0)
	assert.Equal(t, -220.0, h.c.CenterOffset(), "reversing moves immediately")
}

func TestController_ClampWhileRightOpen(t *testing.T) {
	h := newHarness(t)
	h.c.OpenRight()
	h.settle()
	require.Equal(t, 250.0, h.c.CenterOffset())

	h.c.UpdateLiveTranslation(25, 0)

	assert.Equal(t, 250.0, h.c.CenterOffset())
	assert.Equal(t, 0.0, h.c.LiveTranslation().X)
	assert.True(t, h.right.visible)
	assert.False(t, h.left.visible)

	h.c.UpdateLiveTranslation(-50, 0)
	assert.Equal(t, 200.0, h.c.CenterOffset())
}

func TestController_VisibilityLaw(t *testing.T) {
	for _, dx := range []float64{-300, -0.5, 0, 0.5, 120} {
		h := newHarness(t)

		h.c.UpdateLiveTranslation(dx, 0)

		off := h.c.CenterOffset()
		assert.Equal(t, off < 0, h.left.visible, "offset %v", off)
		assert.Equal(t, off > 0, h.right.visible, "offset %v", off)
		assert.False(t, h.left.visible && h.right.visible)
	}
}

func TestController_VisibilityDuringAnimation(t *testing.T) {
	h := newHarness(t)
	h.c.OpenRight()

	for h.frames.Pending() > 0 {
		h.frames.Advance(frame)
		off := h.c.CenterOffset()
		assert.Equal(t, off > 0, h.right.visible)
		assert.False(t, h.left.visible)
	}
}

func TestController_GoToStateAtRestIsNoop(t *testing.T) {
	h := newHarness(t)

	h.c.GoToState(panels.StateCenter, false)

	assert.False(t, h.c.IsAnimating())
	assert.Equal(t, 0, h.frames.Pending())
	assert.Empty(t, h.changes)
}

func TestController_GoToStateRestartsWhenDrifted(t *testing.T) {
	h := newHarness(t)
	h.c.UpdateLiveTranslation(40, 0)

	h.c.GoToState(panels.StateCenter, false)

	assert.True(t, h.c.IsAnimating())
	h.settle()
	assert.Equal(t, 0.0, h.c.CenterOffset())
	assert.Equal(t, 0.0, h.c.LiveTranslation().X)
}

func TestController_OpacityLaw(t *testing.T) {
	h := newHarness(t)

	h.c.GoToState(panels.StateLeft, true)
	assert.Equal(t, 1.0, h.center.opacity, "opacity changes only once settled")
	h.settle()
	assert.Equal(t, 0.7, h.center.opacity)

	h.c.GoToState(panels.StateRight, false)
	h.settle()
	assert.Equal(t, 0.7, h.center.opacity)

	h.c.GoToState(panels.StateCenter, false)
	h.settle()
	assert.Equal(t, 1.0, h.center.opacity)
}

func TestController_CenterAttachedWhileDrawerOpenIsDimmed(t *testing.T) {
	// Arrange
	h := newHarness(t)
	h.c.GoToState(panels.StateLeft, false)
	h.settle()
	replacement := newFakePane("replacement")

	// Act
	h.c.SetCenterPanel(replacement)

	// Assert
	assert.Equal(t, 0.7, replacement.opacity)
	assert.Greater(t, h.container.indexOf(replacement), h.container.indexOf(h.left))

	h.c.GoToState(panels.StateCenter, false)
	h.settle()
	assert.Equal(t, 1.0, replacement.opacity)
}

func TestController_CenterAttachedMidAnimationWaitsForSettle(t *testing.T) {
	// Arrange
	h := newHarness(t)
	h.c.GoToState(panels.StateRight, false)
	h.frames.Advance(frame)
	require.True(t, h.c.IsAnimating())
	replacement := newFakePane("replacement")
	replacement.opacity = 0.3

	// Act
	h.c.SetCenterPanel(replacement)

	// Assert
	assert.Equal(t, 0.3, replacement.opacity)
	h.settle()
	assert.Equal(t, 0.7, replacement.opacity)
}

func TestController_SettleDurations(t *testing.T) {
	h := newHarness(t)

	h.c.OpenLeft()
	assert.Equal(t, 25, h.settle(), "open takes 250ms")

	h.c.Close()
	assert.Equal(t, 20, h.settle(), "close takes 200ms")
}

func TestController_FlingCurveLeadsTapCurve(t *testing.T) {
	fling := newHarness(t)
	tap := newHarness(t)

	fling.c.GoToState(panels.StateRight, true)
	tap.c.GoToState(panels.StateRight, false)
	fling.frames.Advance(50 * time.Millisecond)
	tap.frames.Advance(50 * time.Millisecond)

	assert.Greater(t, fling.c.CenterOffset(), tap.c.CenterOffset())
	assert.Greater(t, fling.c.CenterOffset(), 0.0)
}

func TestController_SecondRequestCancelsFirst(t *testing.T) {
	// Arrange
	h := newHarness(t)
	var offsets []float64
	h.c.ConnectChanged(func(ch panels.Change) {
		if ch.Kind == panels.ChangeOffset {
			offsets = append(offsets, ch.Offset)
		}
	})

	// Act
	h.c.GoToState(panels.StateLeft, true)
	h.c.GoToState(panels.StateCenter, false)
	h.settle()

	// Assert
	assert.Equal(t, 0.0, h.c.CenterOffset())
	assert.Equal(t, panels.StateCenter, h.c.State())
	assert.Equal(t, 0, h.frames.Pending())
	for _, off := range offsets {
		assert.NotEqual(t, -250.0, off)
	}
	assert.Equal(t, 1.0, h.center.opacity)
}

func TestController_CancelMidFlight(t *testing.T) {
	h := newHarness(t)
	h.c.GoToState(panels.StateLeft, true)
	h.frames.Advance(100 * time.Millisecond)
	mid := h.c.CenterOffset()
	require.Less(t, mid, 0.0)
	require.Greater(t, mid, -250.0)

	h.c.GoToState(panels.StateCenter, false)
	h.settle()

	assert.Equal(t, 0.0, h.c.CenterOffset())
}

func TestController_BeginDragContinuesFromAnimatedOffset(t *testing.T) {
	h := newHarness(t)
	h.c.OpenLeft()
	h.frames.Advance(100 * time.Millisecond)
	mid := h.c.CenterOffset()

	h.c.BeginDrag()
	h.c.UpdateLiveTranslation(5, 0)

	assert.False(t, h.c.IsAnimating())
	assert.InDelta(t, mid+5, h.c.CenterOffset(), 1e-9)
	assert.Equal(t, 0, h.frames.Pending())
}

func TestController_CommitGesture(t *testing.T) {
	h := newHarness(t)
	h.c.UpdateLiveTranslation(-180, 0)

	h.c.CommitGesture(panels.StateLeft, true)

	assert.False(t, h.c.IsDragging())
	assert.Equal(t, panels.StateLeft, h.c.State())
	h.settle()
	assert.Equal(t, -250.0, h.c.CenterOffset())
	assert.Equal(t, 0.0, h.c.LiveTranslation().X)
}

func TestController_ResizeWhileAtRest(t *testing.T) {
	h := newHarness(t)
	h.c.OpenLeft()
	h.settle()

	h.c.Resize(600, 400)

	assert.Equal(t, -500.0, h.c.CenterOffset())
	assert.Equal(t, [2]float64{600, 400}, [2]float64{h.center.width, h.center.height})
	assert.Equal(t, [2]float64{500, 400}, [2]float64{h.left.width, h.left.height})
	assert.Equal(t, 100.0, h.left.x, "left drawer stays flush with the right edge")
	assert.Equal(t, 500.0, h.right.width)
}

func TestController_ResizeDuringAnimationRetargets(t *testing.T) {
	h := newHarness(t)
	h.c.OpenRight()
	h.frames.Advance(100 * time.Millisecond)

	h.c.Resize(600, 600)
	assert.True(t, h.c.IsAnimating())
	h.settle()

	assert.Equal(t, 500.0, h.c.CenterOffset())
}

func TestController_ResizeDuringDrag(t *testing.T) {
	h := newHarness(t)
	h.c.UpdateLiveTranslation(-100, 0)

	h.c.Resize(900, 600)

	assert.Equal(t, -100.0, h.c.CenterOffset())
	assert.True(t, h.left.visible)
}

func TestController_NegativeResizeDegenerates(t *testing.T) {
	h := newHarness(t)
	h.c.OpenRight()
	h.settle()

	h.c.Resize(-10, -10)

	w, ht := h.c.Size()
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 0.0, ht)
	assert.Equal(t, 0.0, h.c.CenterOffset())
	assert.False(t, h.left.visible)
	assert.False(t, h.right.visible)

	h.c.GoToState(panels.StateLeft, false)
	assert.False(t, h.c.IsAnimating(), "all offsets collapse to zero")
}

func TestController_PaneResizeIsCorrected(t *testing.T) {
	h := newHarness(t)

	h.center.hostResize(10, 10)
	h.left.hostResize(10, 10)

	assert.Equal(t, [2]float64{300, 600}, [2]float64{h.center.width, h.center.height})
	assert.Equal(t, [2]float64{250, 600}, [2]float64{h.left.width, h.left.height})
	assert.Equal(t, 50.0, h.left.x)
}

func TestController_ReplacingLeftPaneDropsOldBindings(t *testing.T) {
	// Arrange
	h := newHarness(t)
	replacement := newFakePane("left2")
	replacement.width = 999

	// Act
	h.c.SetLeftPanel(replacement)

	// Assert: old pane is detached
	assert.Empty(t, h.left.handlers)
	writes := h.center.positionWrites
	h.left.hostResize(5, 5)
	assert.Equal(t, [2]float64{5, 5}, [2]float64{h.left.width, h.left.height})
	assert.Equal(t, writes, h.center.positionWrites, "old pane resize no longer triggers layout")

	// new pane is sized and anchored on the right edge
	assert.Equal(t, 250.0, replacement.width)
	assert.Equal(t, 50.0, replacement.x)
	assert.Same(t, replacement, h.c.LeftPanel())

	h.c.Resize(600, 600)
	assert.Equal(t, 100.0, replacement.x)
	assert.Equal(t, 5.0, h.left.width, "container resize no longer reaches the old pane")

	require.NotEmpty(t, h.changes)
	assert.Equal(t, panels.ChangePanes, h.changes[0].Kind)
}

func TestController_ChangeNotifications(t *testing.T) {
	h := newHarness(t)

	h.c.OpenRight()
	h.settle()

	var states, offsets int
	for _, ch := range h.changes {
		switch ch.Kind {
		case panels.ChangeState:
			states++
			assert.Equal(t, panels.StateRight, ch.State)
		case panels.ChangeOffset:
			offsets++
		}
	}
	assert.Equal(t, 1, states)
	assert.Greater(t, offsets, 1)
	assert.Equal(t, 250.0, h.changes[len(h.changes)-1].Offset)
}

func TestController_DisconnectChanged(t *testing.T) {
	h := newHarness(t)
	calls := 0
	id := h.c.ConnectChanged(func(panels.Change) { calls++ })
	h.c.DisconnectChanged(id)

	h.c.UpdateLiveTranslation(10, 0)

	assert.Zero(t, calls)
}

func TestController_Toggle(t *testing.T) {
	h := newHarness(t)

	h.c.Toggle(panels.StateRight)
	h.settle()
	assert.Equal(t, panels.StateRight, h.c.State())

	h.c.Toggle(panels.StateRight)
	h.settle()
	assert.Equal(t, panels.StateCenter, h.c.State())
	assert.Equal(t, 0.0, h.c.CenterOffset())
}

func TestController_SetOptions(t *testing.T) {
	h := newHarness(t)
	h.c.OpenLeft()
	h.settle()

	opts := panels.DefaultOptions()
	opts.HangFactor = 3
	require.NoError(t, h.c.SetOptions(opts))

	assert.Equal(t, -200.0, h.c.CenterOffset())
	assert.Equal(t, 200.0, h.left.width)
	assert.Equal(t, 100.0, h.left.x)

	opts.HangFactor = 0
	require.ErrorIs(t, h.c.SetOptions(opts), panels.ErrInvalidHangFactor)
	assert.Equal(t, 3.0, h.c.Options().HangFactor)
}

func TestParseState(t *testing.T) {
	for _, s := range panels.States {
		got, err := panels.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := panels.ParseState("up")
	require.Error(t, err)
	assert.False(t, panels.State(9).Valid())
	assert.Equal(t, "state(9)", panels.State(9).String())
}

// Package component provides UI components for the overlapping panels host.
package component

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/overpane/internal/gesture"
	"github.com/bnema/overpane/internal/logging"
	"github.com/bnema/overpane/internal/panels"
	"github.com/bnema/overpane/internal/ui/layout"
	"github.com/bnema/overpane/internal/ui/mainloop"
)

// Coalescer keys.
const (
	resizeTask  = "panels-resize"
	optionsTask = "panels-options"
)

// OverlappingPanels hosts a panels.Controller inside a gtk.Fixed. The three
// pane widgets overlap; dragging anywhere on the container slides the center
// pane.
type OverlappingPanels struct {
	ctx       context.Context
	fixed     layout.FixedWidget
	ctrl      *panels.Controller
	frames    *tickFrames
	tracker   *gesture.Tracker
	coalescer *mainloop.Coalescer
	now       func() time.Time

	left, center, right *widgetPane

	dragStartX, dragStartY float64
}

// NewOverlappingPanels creates the host and its controller. Panes are
// attached afterwards with SetCenter, SetLeft and SetRight.
func NewOverlappingPanels(
	ctx context.Context,
	factory layout.WidgetFactory,
	coalescer *mainloop.Coalescer,
	panelOpts panels.Options,
	gestureOpts gesture.Options,
) (*OverlappingPanels, error) {
	return newOverlappingPanels(ctx, factory, coalescer, panelOpts, gestureOpts, time.Now)
}

func newOverlappingPanels(
	ctx context.Context,
	factory layout.WidgetFactory,
	coalescer *mainloop.Coalescer,
	panelOpts panels.Options,
	gestureOpts gesture.Options,
	now func() time.Time,
) (*OverlappingPanels, error) {
	if factory == nil {
		return nil, errors.New("widget factory is nil")
	}
	if coalescer == nil {
		return nil, errors.New("coalescer is nil")
	}

	tracker, err := gesture.NewTracker(gestureOpts)
	if err != nil {
		return nil, err
	}

	fixed := factory.NewFixed()
	fixed.SetHexpand(true)
	fixed.SetVexpand(true)
	fixed.AddCssClass("overlapping-panels")

	op := &OverlappingPanels{
		ctx:       logging.WithComponent(ctx, "overlapping-panels"),
		fixed:     fixed,
		frames:    newTickFrames(fixed, now),
		tracker:   tracker,
		coalescer: coalescer,
		now:       now,
	}

	op.ctrl, err = panels.NewController(ctx, op, op.frames, panelOpts)
	if err != nil {
		return nil, fmt.Errorf("create panel controller: %w", err)
	}

	return op, nil
}

// Widget returns the container to embed in a window.
func (op *OverlappingPanels) Widget() layout.Widget { return op.fixed }

// Controller returns the controller driving the layout.
func (op *OverlappingPanels) Controller() *panels.Controller { return op.ctrl }

// SetCenter attaches w as the center pane.
func (op *OverlappingPanels) SetCenter(w layout.Widget) {
	op.center = op.swap(op.center, w, op.ctrl.SetCenterPanel)
}

// SetLeft attaches w as the left drawer.
func (op *OverlappingPanels) SetLeft(w layout.Widget) {
	op.left = op.swap(op.left, w, op.ctrl.SetLeftPanel)
}

// SetRight attaches w as the right drawer.
func (op *OverlappingPanels) SetRight(w layout.Widget) {
	op.right = op.swap(op.right, w, op.ctrl.SetRightPanel)
}

// swap wraps w, hands it to the controller and then drops the widget it
// replaced from the container.
func (op *OverlappingPanels) swap(old *widgetPane, w layout.Widget, attach func(panels.Pane)) *widgetPane {
	if w == nil {
		panic("component.OverlappingPanels: widget must not be nil")
	}
	if old != nil && old.widget == w {
		return old
	}

	pane := newWidgetPane(op.fixed, w)
	attach(pane)

	if old != nil && old.adopted {
		op.fixed.Remove(old.widget)
		old.adopted = false
	}
	return pane
}

// Resize schedules a container size change. Bursts of window resizes are
// merged into one controller update on the main loop.
func (op *OverlappingPanels) Resize(width, height int) {
	op.coalescer.Post(resizeTask, func() {
		op.ctrl.Resize(float64(width), float64(height))
	})
}

// SyncAllocation reads the container's allocation and forwards it to the
// controller. Nothing happens before the container is allocated.
func (op *OverlappingPanels) SyncAllocation() {
	w, h := op.fixed.GetAllocatedWidth(), op.fixed.GetAllocatedHeight()
	if w <= 0 || h <= 0 {
		return
	}
	op.ctrl.Resize(float64(w), float64(h))
}

// QueueSync schedules SyncAllocation on the main loop, after GTK has laid
// out the container for its new size.
func (op *OverlappingPanels) QueueSync() {
	op.coalescer.Post(resizeTask, op.SyncAllocation)
}

// SetOptions applies new controller and gesture options on the main loop.
// Invalid options are logged and ignored.
func (op *OverlappingPanels) SetOptions(panelOpts panels.Options, gestureOpts gesture.Options) {
	op.coalescer.Post(optionsTask, func() {
		log := logging.FromContext(op.ctx)
		if err := op.ctrl.SetOptions(panelOpts); err != nil {
			log.Warn().Err(err).Msg("rejected panel options")
		}
		if err := op.tracker.SetOptions(gestureOpts); err != nil {
			log.Warn().Err(err).Msg("rejected gesture options")
		}
	})
}

// AttachDrag installs a drag gesture on the container.
func (op *OverlappingPanels) AttachDrag() {
	drag := gtk.NewGestureDrag()
	drag.ConnectDragBegin(op.handleDragBegin)
	drag.ConnectDragUpdate(op.handleDragUpdate)
	drag.ConnectDragEnd(op.handleDragEnd)
	op.fixed.AddController(drag)
}

// Destroy stops any frame callbacks the host registered.
func (op *OverlappingPanels) Destroy() {
	op.frames.stop()
}

func (op *OverlappingPanels) handleDragBegin(startX, startY float64) {
	op.SyncAllocation()
	op.dragStartX, op.dragStartY = startX, startY
	op.tracker.Begin(startX, startY, op.now())
	op.ctrl.BeginDrag()
}

// GestureDrag reports offsets relative to the drag start point.
func (op *OverlappingPanels) handleDragUpdate(offsetX, offsetY float64) {
	dx, dy := op.tracker.Move(op.dragStartX+offsetX, op.dragStartY+offsetY, op.now())
	op.ctrl.UpdateLiveTranslation(dx, dy)
}

func (op *OverlappingPanels) handleDragEnd(offsetX, offsetY float64) {
	x, y := op.dragStartX+offsetX, op.dragStartY+offsetY
	dx, dy := op.tracker.Move(x, y, op.now())
	op.ctrl.UpdateLiveTranslation(dx, dy)

	release := op.tracker.End(x, y, op.now())
	if gesture.Commit(op.ctrl, release) {
		return
	}
	if op.ctrl.State() != panels.StateCenter && gesture.HitsCenter(op.ctrl, x) {
		logging.FromContext(op.ctx).Debug().Float64("x", x).Msg("tap on center strip")
		op.ctrl.Close()
	}
}

// Adopt puts the pane's widget into the fixed container.
func (op *OverlappingPanels) Adopt(p panels.Pane) {
	wp := p.(*widgetPane)
	if wp.adopted {
		return
	}
	op.fixed.Put(wp.widget, wp.x, wp.y)
	wp.adopted = true
}

// StackAbove moves p directly after sibling among the container's children.
func (op *OverlappingPanels) StackAbove(p, sibling panels.Pane) {
	p.(*widgetPane).widget.InsertAfter(op.fixed, sibling.(*widgetPane).widget)
}

// StackBelow moves p directly before sibling among the container's children.
func (op *OverlappingPanels) StackBelow(p, sibling panels.Pane) {
	p.(*widgetPane).widget.InsertBefore(op.fixed, sibling.(*widgetPane).widget)
}

// widgetPane adapts a layout.Widget placed in a gtk.Fixed to panels.Pane.
type widgetPane struct {
	fixed  layout.FixedWidget
	widget layout.Widget

	x, y          float64
	width, height float64
	adopted       bool

	nextID   uint32
	handlers map[uint32]func()
}

func newWidgetPane(fixed layout.FixedWidget, w layout.Widget) *widgetPane {
	return &widgetPane{
		fixed:    fixed,
		widget:   w,
		handlers: make(map[uint32]func()),
	}
}

func (p *widgetPane) SetPosition(x, y float64) {
	p.x, p.y = x, y
	if p.adopted {
		p.fixed.Move(p.widget, x, y)
	}
}

func (p *widgetPane) SetSize(width, height float64) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	p.widget.SetSizeRequest(int(math.Round(width)), int(math.Round(height)))

	ids := make([]uint32, 0, len(p.handlers))
	for id := range p.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if fn, ok := p.handlers[id]; ok {
			fn()
		}
	}
}

func (p *widgetPane) Size() (float64, float64)   { return p.width, p.height }
func (p *widgetPane) SetVisible(visible bool)    { p.widget.SetVisible(visible) }
func (p *widgetPane) SetOpacity(opacity float64) { p.widget.SetOpacity(opacity) }

func (p *widgetPane) ConnectSizeChanged(callback func()) uint32 {
	p.nextID++
	p.handlers[p.nextID] = callback
	return p.nextID
}

func (p *widgetPane) Disconnect(id uint32) { delete(p.handlers, id) }

// tickFrames is an animation.FrameSource backed by the container's frame
// clock. A single GTK tick callback is kept alive while any animation
// callback is registered.
type tickFrames struct {
	widget layout.FixedWidget
	now    func() time.Time

	nextID    uint
	callbacks map[uint]func(time.Time) bool
	gtkID     uint
}

func newTickFrames(widget layout.FixedWidget, now func() time.Time) *tickFrames {
	return &tickFrames{
		widget:    widget,
		now:       now,
		callbacks: make(map[uint]func(time.Time) bool),
	}
}

func (f *tickFrames) Now() time.Time { return f.now() }

func (f *tickFrames) AddTickCallback(callback func(time.Time) bool) uint {
	f.nextID++
	f.callbacks[f.nextID] = callback
	if f.gtkID == 0 {
		f.gtkID = f.widget.AddTickCallback(f.tick)
	}
	return f.nextID
}

// RemoveTickCallback drops a callback. The GTK tick callback removes itself
// on the next frame once nothing is left.
func (f *tickFrames) RemoveTickCallback(id uint) {
	delete(f.callbacks, id)
}

func (f *tickFrames) tick() bool {
	now := f.now()
	ids := make([]uint, 0, len(f.callbacks))
	for id := range f.callbacks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		cb, ok := f.callbacks[id]
		if !ok {
			continue
		}
		if !cb(now) {
			delete(f.callbacks, id)
		}
	}

	if len(f.callbacks) == 0 {
		f.gtkID = 0
		return false
	}
	return true
}

func (f *tickFrames) stop() {
	f.callbacks = make(map[uint]func(time.Time) bool)
	if f.gtkID != 0 {
		f.widget.RemoveTickCallback(f.gtkID)
		f.gtkID = 0
	}
}

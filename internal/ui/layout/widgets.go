// Package layout provides GTK widget abstractions for the overlapping panels host.
// It defines interfaces that wrap GTK types, enabling unit testing without GTK runtime.
package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Orientation represents the orientation for box widgets.
type Orientation = gtk.Orientation

// Orientation constants matching GTK values.
const (
	OrientationHorizontal = gtk.OrientationHorizontal
	OrientationVertical   = gtk.OrientationVertical
)

// Widget is the base interface that all GTK widgets implement.
// It provides the widget operations the panels host needs.
type Widget interface {
	// Visibility
	SetVisible(visible bool)
	IsVisible() bool
	SetOpacity(opacity float64)
	GetOpacity() float64

	// Layout
	SetHexpand(expand bool)
	SetVexpand(expand bool)
	SetSizeRequest(width, height int)
	GetAllocatedWidth() int
	GetAllocatedHeight() int

	// Sibling order inside parent. A later sibling draws above an earlier one.
	InsertAfter(parent, previous Widget)
	InsertBefore(parent, next Widget)

	// CSS styling
	AddCssClass(cssClass string)

	// AddController adds an event controller to the widget
	AddController(controller gtk.EventControllerer)

	// GTK interop - returns the underlying GTK widget for embedding
	GtkWidget() *gtk.Widget
}

// FixedWidget wraps gtk.Fixed, which places children at absolute positions
// and lets them overlap.
type FixedWidget interface {
	Widget

	// Child management
	Put(child Widget, x, y float64)
	Move(child Widget, x, y float64)
	Remove(child Widget)

	// Tick callback for frame-based updates (returns callback ID)
	// Callback returns true to continue, false to stop
	AddTickCallback(callback func() bool) uint
	RemoveTickCallback(id uint)
}

// BoxWidget wraps gtk.Box for linear layouts.
type BoxWidget interface {
	Widget

	Append(child Widget)
}

// LabelWidget wraps gtk.Label for text display.
type LabelWidget interface {
	Widget

	SetText(text string)
	GetText() string
	SetWrap(wrap bool)
}

// WidgetFactory creates widget instances.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	// Container widgets
	NewFixed() FixedWidget
	NewBox(orientation Orientation, spacing int) BoxWidget

	// Display widgets
	NewLabel(text string) LabelWidget

	// Wrap existing GTK widget
	WrapWidget(w *gtk.Widget) Widget
}

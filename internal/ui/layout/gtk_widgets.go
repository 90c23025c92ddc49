package layout

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Ensure implementations satisfy interfaces at compile time.
var (
	_ Widget        = (*gtkWidget)(nil)
	_ FixedWidget   = (*gtkFixed)(nil)
	_ BoxWidget     = (*gtkBox)(nil)
	_ LabelWidget   = (*gtkLabel)(nil)
	_ WidgetFactory = (*GtkWidgetFactory)(nil)
)

// gtkWidget wraps a gtk.Widget to implement the Widget interface.
// The concrete wrappers embed it and point inner at their base widget.
type gtkWidget struct {
	inner *gtk.Widget
}

func (w *gtkWidget) SetVisible(visible bool)    { w.inner.SetVisible(visible) }
func (w *gtkWidget) IsVisible() bool            { return w.inner.IsVisible() }
func (w *gtkWidget) SetOpacity(opacity float64) { w.inner.SetOpacity(opacity) }
func (w *gtkWidget) GetOpacity() float64        { return w.inner.Opacity() }
func (w *gtkWidget) SetHexpand(expand bool)     { w.inner.SetHExpand(expand) }
func (w *gtkWidget) SetVexpand(expand bool)     { w.inner.SetVExpand(expand) }
func (w *gtkWidget) SetSizeRequest(w2, h int)   { w.inner.SetSizeRequest(w2, h) }
func (w *gtkWidget) GetAllocatedWidth() int     { return w.inner.AllocatedWidth() }
func (w *gtkWidget) GetAllocatedHeight() int    { return w.inner.AllocatedHeight() }
func (w *gtkWidget) AddCssClass(class string)   { w.inner.AddCSSClass(class) }
func (w *gtkWidget) GtkWidget() *gtk.Widget     { return w.inner }

func (w *gtkWidget) AddController(c gtk.EventControllerer) {
	w.inner.AddController(c)
}

func (w *gtkWidget) InsertAfter(parent, previous Widget) {
	w.inner.InsertAfter(unwrap(parent), unwrap(previous))
}

func (w *gtkWidget) InsertBefore(parent, next Widget) {
	w.inner.InsertBefore(unwrap(parent), unwrap(next))
}

// unwrap returns the GTK widget behind w, or nil. A nil interface is passed
// through so GTK sees a NULL sibling.
func unwrap(w Widget) gtk.Widgetter {
	if w == nil {
		return nil
	}
	inner := w.GtkWidget()
	if inner == nil {
		return nil
	}
	return inner
}

// gtkFixed wraps gtk.Fixed to implement FixedWidget.
type gtkFixed struct {
	gtkWidget
	fixed *gtk.Fixed
}

func (f *gtkFixed) Put(child Widget, x, y float64) {
	if child == nil {
		return
	}
	f.fixed.Put(child.GtkWidget(), x, y)
}

func (f *gtkFixed) Move(child Widget, x, y float64) {
	if child == nil {
		return
	}
	f.fixed.Move(child.GtkWidget(), x, y)
}

func (f *gtkFixed) Remove(child Widget) {
	if child == nil {
		return
	}
	f.fixed.Remove(child.GtkWidget())
}

func (f *gtkFixed) AddTickCallback(callback func() bool) uint {
	return f.fixed.AddTickCallback(func(gtk.Widgetter, gdk.FrameClocker) bool {
		return callback()
	})
}

func (f *gtkFixed) RemoveTickCallback(id uint) { f.fixed.RemoveTickCallback(id) }

// gtkBox wraps gtk.Box to implement BoxWidget.
type gtkBox struct {
	gtkWidget
	box *gtk.Box
}

func (b *gtkBox) Append(child Widget) {
	if child == nil {
		return
	}
	b.box.Append(child.GtkWidget())
}

// gtkLabel wraps gtk.Label to implement LabelWidget.
type gtkLabel struct {
	gtkWidget
	label *gtk.Label
}

func (l *gtkLabel) SetText(text string) { l.label.SetText(text) }
func (l *gtkLabel) GetText() string     { return l.label.Text() }
func (l *gtkLabel) SetWrap(wrap bool)   { l.label.SetWrap(wrap) }

// GtkWidgetFactory creates real GTK widgets.
type GtkWidgetFactory struct{}

// NewGtkWidgetFactory creates a new factory for GTK widgets.
func NewGtkWidgetFactory() *GtkWidgetFactory {
	return &GtkWidgetFactory{}
}

func (*GtkWidgetFactory) NewFixed() FixedWidget {
	fixed := gtk.NewFixed()
	return &gtkFixed{gtkWidget: gtkWidget{inner: &fixed.Widget}, fixed: fixed}
}

func (*GtkWidgetFactory) NewBox(orientation Orientation, spacing int) BoxWidget {
	box := gtk.NewBox(orientation, spacing)
	return &gtkBox{gtkWidget: gtkWidget{inner: &box.Widget}, box: box}
}

func (*GtkWidgetFactory) NewLabel(text string) LabelWidget {
	label := gtk.NewLabel(text)
	return &gtkLabel{gtkWidget: gtkWidget{inner: &label.Widget}, label: label}
}

func (*GtkWidgetFactory) WrapWidget(w *gtk.Widget) Widget {
	if w == nil {
		return nil
	}
	return &gtkWidget{inner: w}
}

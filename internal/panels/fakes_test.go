package panels_test

import (
	"slices"
	"sort"

	"github.com/bnema/overpane/internal/panels"
)

// fakePane records the last written geometry and can simulate host-driven
// size changes.
type fakePane struct {
	name          string
	x, y          float64
	width, height float64
	visible       bool
	opacity       float64

	positionWrites int
	nextID         uint32
	handlers       map[uint32]func()
}

func newFakePane(name string) *fakePane {
	return &fakePane{name: name, opacity: 1, handlers: make(map[uint32]func())}
}

func (p *fakePane) SetPosition(x, y float64) {
	p.x, p.y = x, y
	p.positionWrites++
}

func (p *fakePane) SetSize(width, height float64) {
	changed := width != p.width || height != p.height
	p.width, p.height = width, height
	if changed {
		p.emitSizeChanged()
	}
}

func (p *fakePane) Size() (float64, float64) { return p.width, p.height }
func (p *fakePane) SetVisible(visible bool)   { p.visible = visible }
func (p *fakePane) SetOpacity(opacity float64) {
	p.opacity = opacity
}

func (p *fakePane) ConnectSizeChanged(callback func()) uint32 {
	p.nextID++
	p.handlers[p.nextID] = callback
	return p.nextID
}

func (p *fakePane) Disconnect(id uint32) {
	delete(p.handlers, id)
}

// hostResize simulates the host resizing the pane behind the controller's back.
func (p *fakePane) hostResize(width, height float64) {
	p.SetSize(width, height)
}

func (p *fakePane) emitSizeChanged() {
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

// fakeContainer keeps a bottom-to-top stacking order.
type fakeContainer struct {
	adopted []panels.Pane
	order   []panels.Pane
}

func (c *fakeContainer) Adopt(p panels.Pane) {
	c.adopted = append(c.adopted, p)
	if !slices.Contains(c.order, p) {
		c.order = append(c.order, p)
	}
}

func (c *fakeContainer) StackAbove(p, sibling panels.Pane) {
	c.order = slices.DeleteFunc(c.order, func(q panels.Pane) bool { return q == p })
	i := slices.Index(c.order, sibling)
	c.order = slices.Insert(c.order, i+1, p)
}

func (c *fakeContainer) StackBelow(p, sibling panels.Pane) {
	c.order = slices.DeleteFunc(c.order, func(q panels.Pane) bool { return q == p })
	i := max(slices.Index(c.order, sibling), 0)
	c.order = slices.Insert(c.order, i, p)
}

func (c *fakeContainer) indexOf(p panels.Pane) int {
	return slices.Index(c.order, p)
}

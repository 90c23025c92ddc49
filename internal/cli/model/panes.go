package model

import (
	"sort"

	"github.com/bnema/overpane/internal/panels"
)

// cellPane is a panels.Pane whose geometry is kept in pixels and rasterized
// onto terminal cells at render time.
type cellPane struct {
	title string
	body  []string

	x, y          float64
	width, height float64
	visible       bool
	opacity       float64

	nextID   uint32
	handlers map[uint32]func()
}

func newCellPane(title string, body []string) *cellPane {
	return &cellPane{
		title:    title,
		body:     body,
		visible:  true,
		opacity:  1,
		handlers: make(map[uint32]func()),
	}
}

func (p *cellPane) SetPosition(x, y float64)   { p.x, p.y = x, y }
func (p *cellPane) Size() (float64, float64)   { return p.width, p.height }
func (p *cellPane) SetVisible(visible bool)    { p.visible = visible }
func (p *cellPane) SetOpacity(opacity float64) { p.opacity = opacity }

func (p *cellPane) SetSize(width, height float64) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height

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

func (p *cellPane) ConnectSizeChanged(callback func()) uint32 {
	p.nextID++
	p.handlers[p.nextID] = callback
	return p.nextID
}

func (p *cellPane) Disconnect(id uint32) { delete(p.handlers, id) }

// dimmed reports whether the pane is drawn below full opacity.
func (p *cellPane) dimmed() bool { return p.opacity < 1 }

// span converts the pane's horizontal extent to a column range for the
// given cell width. The range may lie partly off screen.
func (p *cellPane) span(cellWidth float64) (first, last int) {
	first = roundCells(p.x, cellWidth)
	last = first + roundCells(p.width, cellWidth) - 1
	return first, last
}

// paneStack is the panels.Container of the terminal host. Panes later in
// order are drawn on top.
type paneStack struct {
	order []*cellPane
}

func (s *paneStack) Adopt(p panels.Pane) {
	cp := p.(*cellPane)
	if s.index(cp) >= 0 {
		return
	}
	s.order = append(s.order, cp)
}

// StackAbove moves p directly above sibling, or to the top for a nil sibling.
func (s *paneStack) StackAbove(p, sibling panels.Pane) {
	cp := s.detach(p.(*cellPane))
	if sibling == nil {
		s.order = append(s.order, cp)
		return
	}
	i := s.index(sibling.(*cellPane))
	s.insert(i+1, cp)
}

// StackBelow moves p directly below sibling, or to the bottom for a nil
// sibling.
func (s *paneStack) StackBelow(p, sibling panels.Pane) {
	cp := s.detach(p.(*cellPane))
	if sibling == nil {
		s.insert(0, cp)
		return
	}
	s.insert(s.index(sibling.(*cellPane)), cp)
}

// remove drops p from the stack. Unknown panes are ignored.
func (s *paneStack) remove(p *cellPane) { s.detach(p) }

func (s *paneStack) index(p *cellPane) int {
	for i, q := range s.order {
		if q == p {
			return i
		}
	}
	return -1
}

func (s *paneStack) detach(p *cellPane) *cellPane {
	if i := s.index(p); i >= 0 {
		s.order = append(s.order[:i], s.order[i+1:]...)
	}
	return p
}

// insert places p at index i. A sibling missing from the stack yields -1 and
// lands p at the bottom.
func (s *paneStack) insert(i int, p *cellPane) {
	if i < 0 {
		i = 0
	}
	if i > len(s.order) {
		i = len(s.order)
	}
	s.order = append(s.order, nil)
	copy(s.order[i+1:], s.order[i:])
	s.order[i] = p
}

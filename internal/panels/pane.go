package panels

// Pane is a visual surface owned by the host. The controller only writes
// its geometry and appearance and listens for its size changes.
//
// Implementations must only fire size-changed callbacks when the size
// actually changes, since the controller answers a size change by writing
// the size it wants.
type Pane interface {
	SetPosition(x, y float64)
	SetSize(width, height float64)
	Size() (width, height float64)
	SetVisible(visible bool)
	SetOpacity(opacity float64)

	// ConnectSizeChanged registers a callback and returns a handler ID.
	ConnectSizeChanged(callback func()) uint32
	// Disconnect removes a handler. Unknown IDs are ignored.
	Disconnect(handlerID uint32)
}

// Container is the surface the three panes are parented to.
type Container interface {
	// Adopt reparents p into the container.
	Adopt(p Pane)
	// StackAbove places p directly above sibling in the stacking order.
	StackAbove(p, sibling Pane)
	// StackBelow places p directly below sibling in the stacking order.
	StackBelow(p, sibling Pane)
}

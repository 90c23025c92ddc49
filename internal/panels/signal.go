package panels

import "sort"

// signal is a minimal ordered callback list with uint32 handler IDs, in the
// style of GObject signal connections.
type signal[T any] struct {
	nextID   uint32
	handlers map[uint32]func(T)
}

func (s *signal[T]) connect(fn func(T)) uint32 {
	if s.handlers == nil {
		s.handlers = make(map[uint32]func(T))
	}
	s.nextID++
	s.handlers[s.nextID] = fn
	return s.nextID
}

func (s *signal[T]) disconnect(id uint32) {
	delete(s.handlers, id)
}

func (s *signal[T]) len() int {
	return len(s.handlers)
}

// emit calls handlers in connection order. Handlers disconnected by an
// earlier handler during the same emission are skipped.
func (s *signal[T]) emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	ids := make([]uint32, 0, len(s.handlers))
	for id := range s.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if fn, ok := s.handlers[id]; ok {
			fn(v)
		}
	}
}

// bindings holds the disconnect functions of every reactive connection made
// for one attached pane. reset tears them all down and may be called on an
// empty set.
type bindings struct {
	teardown []func()
}

func (b *bindings) add(disconnect func()) {
	b.teardown = append(b.teardown, disconnect)
}

func (b *bindings) reset() {
	for _, fn := range b.teardown {
		fn()
	}
	b.teardown = b.teardown[:0]
}

func (b *bindings) len() int {
	return len(b.teardown)
}

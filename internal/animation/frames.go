package animation

import (
	"sort"
	"sync"
	"time"
)

// FrameSource delivers frame ticks, modeled on gtk_widget_add_tick_callback.
// A callback returning false is removed.
type FrameSource interface {
	Now() time.Time
	AddTickCallback(callback func(now time.Time) bool) uint
	RemoveTickCallback(id uint)
}

// ManualFrameSource is a FrameSource whose clock only moves when Advance or
// AdvanceTo is called. The terminal host drives it from tea.Tick messages.
type ManualFrameSource struct {
	now       time.Time
	nextID    uint
	callbacks map[uint]func(time.Time) bool

	mu sync.Mutex
}

// NewManualFrameSource creates a frame source starting at the given time.
func NewManualFrameSource(start time.Time) *ManualFrameSource {
	return &ManualFrameSource{
		now:       start,
		callbacks: make(map[uint]func(time.Time) bool),
	}
}

// Now returns the current manual time.
func (m *ManualFrameSource) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AddTickCallback registers a callback invoked on every frame.
func (m *ManualFrameSource) AddTickCallback(callback func(now time.Time) bool) uint {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.callbacks[m.nextID] = callback
	return m.nextID
}

// RemoveTickCallback unregisters a callback. Unknown IDs are ignored.
func (m *ManualFrameSource) RemoveTickCallback(id uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.callbacks, id)
}

// Pending returns the number of registered callbacks.
func (m *ManualFrameSource) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.callbacks)
}

// Advance moves the clock forward by d and emits one frame.
func (m *ManualFrameSource) Advance(d time.Duration) {
	m.mu.Lock()
	now := m.now.Add(d)
	m.mu.Unlock()
	m.AdvanceTo(now)
}

// AdvanceTo sets the clock to t (never backwards) and emits one frame.
// Callbacks run in registration order without the lock held, so they may
// add or remove callbacks.
func (m *ManualFrameSource) AdvanceTo(t time.Time) {
	m.mu.Lock()
	if t.After(m.now) {
		m.now = t
	}
	now := m.now
	ids := make([]uint, 0, len(m.callbacks))
	for id := range m.callbacks {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		m.mu.Lock()
		cb, ok := m.callbacks[id]
		m.mu.Unlock()
		if !ok {
			continue
		}
		if !cb(now) {
			m.RemoveTickCallback(id)
		}
	}
}

// Run advances in fixed steps until no callbacks remain or limit frames have
// been emitted. It returns the number of frames emitted.
func (m *ManualFrameSource) Run(step time.Duration, limit int) int {
	frames := 0
	for frames < limit && m.Pending() > 0 {
		m.Advance(step)
		frames++
	}
	return frames
}

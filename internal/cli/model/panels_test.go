package model

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/overpane/internal/cli/styles"
	"github.com/bnema/overpane/internal/gesture"
	"github.com/bnema/overpane/internal/panels"
)

// testClock is a controllable time source shared by the model and the test.
type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func testModelConfig() PanelsModelConfig {
	return PanelsModelConfig{
		PanelOptions:   panels.DefaultOptions(),
		GestureOptions: gesture.DefaultOptions(),
		FrameInterval:  16 * time.Millisecond,
		CellWidth:      10,
		Left:           PaneContent{Title: "Channels", Body: []string{"#general"}},
		Center:         PaneContent{Title: "Messages", Body: []string{"hello"}},
		Right:          PaneContent{Title: "Members", Body: []string{"alice"}},
	}
}

func newTestModel(t *testing.T) (PanelsModel, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m, err := newPanelsModel(context.Background(), styles.NewTheme(), testModelConfig(), clock.now)
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return updated.(PanelsModel), clock
}

// settle feeds frame messages until no animation is pending.
func settle(t *testing.T, m PanelsModel, clock *testClock) PanelsModel {
	t.Helper()
	for range 100 {
		if m.frames.Pending() == 0 {
			return m
		}
		updated, _ := m.Update(frameMsg(clock.advance(16 * time.Millisecond)))
		m = updated.(PanelsModel)
	}
	t.Fatal("animation did not settle")
	return m
}

func press(m PanelsModel, keys string) PanelsModel {
	var msg tea.KeyMsg
	switch keys {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	updated, _ := m.Update(msg)
	return updated.(PanelsModel)
}

func mouse(m PanelsModel, action tea.MouseAction, x, y int) PanelsModel {
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
	return updated.(PanelsModel)
}

func TestNewPanelsModel_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PanelsModelConfig)
	}{
		{name: "zero frame interval", mutate: func(c *PanelsModelConfig) { c.FrameInterval = 0 }},
		{name: "zero cell width", mutate: func(c *PanelsModelConfig) { c.CellWidth = 0 }},
		{name: "bad hang factor", mutate: func(c *PanelsModelConfig) { c.PanelOptions.HangFactor = 1 }},
		{name: "bad gesture options", mutate: func(c *PanelsModelConfig) { c.GestureOptions.FlingVelocity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testModelConfig()
			tt.mutate(&cfg)
			_, err := NewPanelsModel(context.Background(), styles.NewTheme(), cfg)
			require.Error(t, err)
		})
	}

	_, err := NewPanelsModel(context.Background(), nil, testModelConfig())
	require.Error(t, err)
}

func TestPanelsModel_WindowSizeResizesController(t *testing.T) {
	m, _ := newTestModel(t)

	cols, rows := m.paneArea()
	width, height := m.ctrl.Size()

	assert.Equal(t, 60, cols)
	assert.Equal(t, float64(cols)*10, width)
	assert.Equal(t, float64(rows)*10*cellAspect, height)
	assert.Equal(t, -panels.DrawerWidth(600, 6), m.ctrl.RestingOffset(panels.StateLeft))
}

func TestPanelsModel_KeysOpenAndClose(t *testing.T) {
	// Arrange
	m, clock := newTestModel(t)

	// Act
	m = press(m, "[")
	require.True(t, m.ctrl.IsAnimating())
	m = settle(t, m, clock)

	// Assert
	assert.Equal(t, panels.StateLeft, m.ctrl.State())
	assert.InDelta(t, -500.0, m.ctrl.CenterOffset(), 1e-9)
	assert.True(t, m.left.visible)
	assert.False(t, m.right.visible)
	assert.InDelta(t, 0.7, m.center.opacity, 1e-9)
	assert.Equal(t, panels.StateLeft, m.chrome.state)

	m = press(m, "esc")
	m = settle(t, m, clock)
	assert.Equal(t, panels.StateCenter, m.ctrl.State())
	assert.Equal(t, 0.0, m.ctrl.CenterOffset())
	assert.Equal(t, 1.0, m.center.opacity)
}

func TestPanelsModel_ToggleKeyClosesOpenDrawer(t *testing.T) {
	m, clock := newTestModel(t)

	m = settle(t, press(m, "]"), clock)
	require.Equal(t, panels.StateRight, m.ctrl.State())

	m = settle(t, press(m, "]"), clock)
	assert.Equal(t, panels.StateCenter, m.ctrl.State())
}

func TestPanelsModel_SchedulesFramesOnlyWhileAnimating(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Nil(t, cmd, "help toggle starts no animation")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	require.NotNil(t, cmd)
	assert.True(t, updated.(PanelsModel).ticking)

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Nil(t, cmd, "a tick is already in flight")
}

func TestPanelsModel_QuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPanelsModel_MouseFlingOpensLeft(t *testing.T) {
	// Arrange
	m, clock := newTestModel(t)

	// Act: drag left quickly from column 40 to column 30.
	m = mouse(m, tea.MouseActionPress, 40, 5)
	clock.advance(10 * time.Millisecond)
	m = mouse(m, tea.MouseActionMotion, 35, 5)
	require.True(t, m.ctrl.IsDragging())
	assert.InDelta(t, -50.0, m.ctrl.CenterOffset(), 1e-9)
	assert.True(t, m.left.visible)

	clock.advance(10 * time.Millisecond)
	m = mouse(m, tea.MouseActionRelease, 30, 5)
	m = settle(t, m, clock)

	// Assert
	assert.Equal(t, panels.StateLeft, m.ctrl.State())
	assert.InDelta(t, m.ctrl.RestingOffset(panels.StateLeft), m.ctrl.CenterOffset(), 1e-9)
}

func TestPanelsModel_TapOnCenterStripCloses(t *testing.T) {
	m, clock := newTestModel(t)
	m = settle(t, press(m, "]"), clock)
	require.Equal(t, panels.StateRight, m.ctrl.State())

	// The center pane now starts at x=500, column 50.
	m = mouse(m, tea.MouseActionPress, 55, 5)
	clock.advance(50 * time.Millisecond)
	m = mouse(m, tea.MouseActionRelease, 55, 5)
	m = settle(t, m, clock)

	assert.Equal(t, panels.StateCenter, m.ctrl.State())
}

func TestPanelsModel_TapOnDrawerKeepsState(t *testing.T) {
	m, clock := newTestModel(t)
	m = settle(t, press(m, "]"), clock)

	m = mouse(m, tea.MouseActionPress, 10, 5)
	clock.advance(50 * time.Millisecond)
	m = mouse(m, tea.MouseActionRelease, 10, 5)
	m = settle(t, m, clock)

	assert.Equal(t, panels.StateRight, m.ctrl.State())
}

func TestPanelsModel_IgnoresMotionWithoutPress(t *testing.T) {
	m, _ := newTestModel(t)

	m = mouse(m, tea.MouseActionMotion, 10, 5)
	m = mouse(m, tea.MouseActionRelease, 10, 5)

	assert.False(t, m.ctrl.IsDragging())
	assert.Equal(t, 0.0, m.ctrl.CenterOffset())
}

func TestPanelsModel_OptionsMsgAppliesValidOptions(t *testing.T) {
	m, _ := newTestModel(t)

	opts := panels.DefaultOptions()
	opts.HangFactor = 3
	updated, _ := m.Update(OptionsMsg{
		PanelOptions:   opts,
		GestureOptions: gesture.DefaultOptions(),
		FrameInterval:  33 * time.Millisecond,
		CellWidth:      10,
	})
	m = updated.(PanelsModel)

	assert.Equal(t, 3.0, m.ctrl.Options().HangFactor)
	assert.Equal(t, 33*time.Millisecond, m.frameInterval)
	assert.InDelta(t, 400.0, m.ctrl.DrawerWidth(), 1e-9)

	bad := opts
	bad.HangFactor = 0.5
	updated, _ = m.Update(OptionsMsg{PanelOptions: bad, GestureOptions: gesture.DefaultOptions()})
	m = updated.(PanelsModel)
	assert.Equal(t, 3.0, m.ctrl.Options().HangFactor)
	assert.Equal(t, 33*time.Millisecond, m.frameInterval)
}

func TestPanelsModel_ViewDrawsVisiblePanes(t *testing.T) {
	m, clock := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Messages")
	assert.NotContains(t, view, "Channels", "drawers are hidden at rest")
	assert.Contains(t, view, "center")

	m = settle(t, press(m, "["), clock)
	view = m.View()
	assert.Contains(t, view, "Channels")
	assert.Contains(t, view, "left")
	assert.Equal(t, 20, len(strings.Split(view, "\n")))
}

func TestPaneStack_Order(t *testing.T) {
	a, b, c := newCellPane("a", nil), newCellPane("b", nil), newCellPane("c", nil)
	s := &paneStack{}

	s.Adopt(a)
	s.Adopt(b)
	s.Adopt(a)
	require.Equal(t, []*cellPane{a, b}, s.order)

	s.StackAbove(a, b)
	assert.Equal(t, []*cellPane{b, a}, s.order)

	s.Adopt(c)
	s.StackBelow(c, b)
	assert.Equal(t, []*cellPane{c, b, a}, s.order)

	s.StackAbove(c, nil)
	assert.Equal(t, []*cellPane{b, a, c}, s.order)

	s.remove(a)
	assert.Equal(t, []*cellPane{b, c}, s.order)
}

func TestCellPane_SizeChangedFiresOnlyOnChange(t *testing.T) {
	p := newCellPane("p", nil)
	var calls int
	id := p.ConnectSizeChanged(func() { calls++ })

	p.SetSize(10, 20)
	p.SetSize(10, 20)
	assert.Equal(t, 1, calls)

	p.Disconnect(id)
	p.SetSize(30, 20)
	assert.Equal(t, 1, calls)
}

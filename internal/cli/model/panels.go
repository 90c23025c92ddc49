// Package model contains the bubbletea models of the CLI.
package model

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/overpane/internal/animation"
	"github.com/bnema/overpane/internal/cli/styles"
	"github.com/bnema/overpane/internal/gesture"
	"github.com/bnema/overpane/internal/logging"
	"github.com/bnema/overpane/internal/panels"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// PaneContent is the text shown in one pane.
type PaneContent struct {
	Title string
	Body  []string
}

// PanelsModelConfig configures NewPanelsModel.
type PanelsModelConfig struct {
	PanelOptions   panels.Options
	GestureOptions gesture.Options
	// FrameInterval is the tea.Tick cadence while an animation runs.
	FrameInterval time.Duration
	// CellWidth is the number of controller pixels per terminal column.
	CellWidth float64

	Left, Center, Right PaneContent
}

// OptionsMsg replaces the controller, gesture and frame settings of a
// running PanelsModel. Hosts send it on config reload.
type OptionsMsg struct {
	PanelOptions   panels.Options
	GestureOptions gesture.Options
	FrameInterval  time.Duration
	CellWidth      float64
}

// frameMsg advances the animation clock.
type frameMsg time.Time

// chrome mirrors controller notifications for the status line, the way a
// hamburger icon would follow the layout.
type chrome struct {
	state   panels.State
	changes int
}

// PanelsModel hosts a panels.Controller in the terminal. Panes are drawn as
// boxes on a cell grid; mouse drags and keys drive the controller.
type PanelsModel struct {
	ctx     context.Context
	ctrl    *panels.Controller
	frames  *animation.ManualFrameSource
	tracker *gesture.Tracker
	stack   *paneStack
	chrome  *chrome
	now     func() time.Time

	left, center, right *cellPane

	frameInterval time.Duration
	cellWidth     float64
	ticking       bool

	keys  styles.PanelsKeyMap
	help  help.Model
	theme *styles.Theme

	width  int
	height int
}

// NewPanelsModel creates the terminal host and attaches the three panes.
func NewPanelsModel(ctx context.Context, theme *styles.Theme, cfg PanelsModelConfig) (PanelsModel, error) {
	return newPanelsModel(ctx, theme, cfg, time.Now)
}

func newPanelsModel(ctx context.Context, theme *styles.Theme, cfg PanelsModelConfig, now func() time.Time) (PanelsModel, error) {
	if theme == nil {
		return PanelsModel{}, errors.New("theme is nil")
	}
	if cfg.FrameInterval <= 0 {
		return PanelsModel{}, fmt.Errorf("frame interval must be positive: got %v", cfg.FrameInterval)
	}
	if cfg.CellWidth <= 0 {
		return PanelsModel{}, fmt.Errorf("cell width must be positive: got %v", cfg.CellWidth)
	}

	tracker, err := gesture.NewTracker(cfg.GestureOptions)
	if err != nil {
		return PanelsModel{}, err
	}

	m := PanelsModel{
		ctx:           logging.WithComponent(ctx, "tui"),
		frames:        animation.NewManualFrameSource(now()),
		tracker:       tracker,
		stack:         &paneStack{},
		chrome:        &chrome{state: panels.StateCenter},
		now:           now,
		left:          newCellPane(cfg.Left.Title, cfg.Left.Body),
		center:        newCellPane(cfg.Center.Title, cfg.Center.Body),
		right:         newCellPane(cfg.Right.Title, cfg.Right.Body),
		frameInterval: cfg.FrameInterval,
		cellWidth:     cfg.CellWidth,
		keys:          styles.DefaultPanelsKeyMap(),
		help:          styles.NewStyledHelp(theme),
		theme:         theme,
		width:         80,
		height:        24,
	}

	m.ctrl, err = panels.NewController(ctx, m.stack, m.frames, cfg.PanelOptions)
	if err != nil {
		return PanelsModel{}, fmt.Errorf("create panel controller: %w", err)
	}

	m.ctrl.SetLeftPanel(m.left)
	m.ctrl.SetRightPanel(m.right)
	m.ctrl.SetCenterPanel(m.center)

	state := m.chrome
	m.ctrl.ConnectChanged(func(c panels.Change) {
		if c.Kind == panels.ChangeState {
			state.state = c.State
			state.changes++
		}
	})

	m.resize()
	return m, nil
}

// Controller returns the controller driving the layout.
func (m PanelsModel) Controller() *panels.Controller { return m.ctrl }

// Init implements tea.Model.
func (m PanelsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PanelsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncClock()
		m.resize()

	case tea.KeyMsg:
		m.syncClock()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		case key.Matches(msg, m.keys.OpenLeft):
			m.ctrl.Toggle(panels.StateLeft)
		case key.Matches(msg, m.keys.OpenRight):
			m.ctrl.Toggle(panels.StateRight)
		case key.Matches(msg, m.keys.Close):
			m.ctrl.Close()
		}

	case tea.MouseMsg:
		m.syncClock()
		m.handleMouse(msg)

	case frameMsg:
		m.ticking = false
		m.frames.AdvanceTo(time.Time(msg))

	case OptionsMsg:
		m.applyOptions(msg)
	}

	return m.scheduleFrame()
}

// syncClock brings the frame clock up to wall time so an animation started
// by this event does not begin in the past.
func (m *PanelsModel) syncClock() {
	m.frames.AdvanceTo(m.now())
}

// scheduleFrame requests the next frame while an animation is pending.
func (m PanelsModel) scheduleFrame() (tea.Model, tea.Cmd) {
	if m.ticking || m.frames.Pending() == 0 {
		return m, nil
	}
	m.ticking = true
	return m, tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *PanelsModel) applyOptions(msg OptionsMsg) {
	log := logging.FromContext(m.ctx)
	if err := m.ctrl.SetOptions(msg.PanelOptions); err != nil {
		log.Warn().Err(err).Msg("rejected panel options")
	}
	if err := m.tracker.SetOptions(msg.GestureOptions); err != nil {
		log.Warn().Err(err).Msg("rejected gesture options")
	}
	if msg.FrameInterval > 0 {
		m.frameInterval = msg.FrameInterval
	}
	if msg.CellWidth > 0 && msg.CellWidth != m.cellWidth {
		m.cellWidth = msg.CellWidth
		m.resize()
	}
}

// handleMouse maps left-button drags to the gesture tracker. Coordinates
// are converted from cells to controller pixels.
func (m *PanelsModel) handleMouse(msg tea.MouseMsg) {
	x := float64(msg.X) * m.cellWidth
	y := float64(msg.Y) * m.cellWidth * cellAspect
	now := m.now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.tracker.Begin(x, y, now)
		m.ctrl.BeginDrag()

	case tea.MouseActionMotion:
		if !m.tracker.Active() {
			return
		}
		dx, dy := m.tracker.Move(x, y, now)
		m.ctrl.UpdateLiveTranslation(dx, dy)

	case tea.MouseActionRelease:
		if !m.tracker.Active() {
			return
		}
		dx, dy := m.tracker.Move(x, y, now)
		m.ctrl.UpdateLiveTranslation(dx, dy)

		release := m.tracker.End(x, y, now)
		if gesture.Commit(m.ctrl, release) {
			return
		}
		if m.ctrl.State() != panels.StateCenter && gesture.HitsCenter(m.ctrl, x) {
			logging.FromContext(m.ctx).Debug().Float64("x", x).Msg("tap on center strip")
			m.ctrl.Close()
		}
	}
}

// resize pushes the pane area, in pixels, to the controller.
func (m *PanelsModel) resize() {
	cols, rows := m.paneArea()
	m.ctrl.Resize(float64(cols)*m.cellWidth, float64(rows)*m.cellWidth*cellAspect)
}

// paneArea is the grid left for panes once the status and help lines are
// accounted for.
func (m PanelsModel) paneArea() (cols, rows int) {
	rows = m.height - 1 - lipgloss.Height(m.help.View(m.keys))
	return max(m.width, 0), max(rows, 0)
}

// View implements tea.Model.
func (m PanelsModel) View() string {
	cols, rows := m.paneArea()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderPanes(cols, rows),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m PanelsModel) renderStatus() string {
	t := m.theme

	icon := styles.IconMenu
	if m.chrome.state != panels.StateCenter {
		icon = styles.IconX
	}

	motion := "idle"
	switch {
	case m.ctrl.IsDragging():
		motion = "dragging"
	case m.ctrl.IsAnimating():
		motion = "settling"
	}

	fields := []string{
		icon,
		t.StatusKey.Render("state ") + t.StatusValue.Render(m.ctrl.State().String()),
		t.StatusKey.Render("offset ") + t.StatusValue.Render(fmt.Sprintf("%.0f", m.ctrl.CenterOffset())),
		t.StatusKey.Render(motion),
	}
	return t.StatusBar.Width(max(m.width, 0)).Render(strings.Join(fields, "  "))
}

// cell is one terminal cell of the pane grid.
type cell struct {
	r      rune
	owner  *cellPane
	border bool
}

// renderPanes rasterizes visible panes bottom to top, then renders each row
// as runs of cells sharing a pane and role.
func (m PanelsModel) renderPanes(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j].r = ' '
		}
	}

	for _, p := range m.stack.order {
		if !p.visible {
			continue
		}
		m.drawPane(grid, p)
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = m.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func (m PanelsModel) drawPane(grid [][]cell, p *cellPane) {
	first, last := p.span(m.cellWidth)
	if last < first {
		return
	}
	rows, cols := len(grid), len(grid[0])
	border := m.paneStyle(p).GetBorderStyle()

	put := func(row, col int, r rune, isBorder bool) {
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return
		}
		grid[row][col] = cell{r: r, owner: p, border: isBorder}
	}

	bottom := rows - 1
	for col := first; col <= last; col++ {
		for row := 0; row <= bottom; row++ {
			put(row, col, ' ', false)
		}
		put(0, col, firstRune(border.Top), true)
		put(bottom, col, firstRune(border.Bottom), true)
	}
	for row := 0; row <= bottom; row++ {
		put(row, first, firstRune(border.Left), true)
		put(row, last, firstRune(border.Right), true)
	}
	put(0, first, firstRune(border.TopLeft), true)
	put(0, last, firstRune(border.TopRight), true)
	put(bottom, first, firstRune(border.BottomLeft), true)
	put(bottom, last, firstRune(border.BottomRight), true)

	inner := last - first - 1
	lines := append([]string{p.title, ""}, p.body...)
	for i, line := range lines {
		row := 1 + i
		if row >= bottom {
			break
		}
		for j, r := range []rune(line) {
			if j >= inner-2 {
				break
			}
			put(row, first+2+j, r, false)
		}
	}
}

func (m PanelsModel) renderRow(row []cell) string {
	var sb strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].owner == row[start].owner && row[i].border == row[start].border {
			continue
		}
		runes := make([]rune, 0, i-start)
		for _, c := range row[start:i] {
			runes = append(runes, c.r)
		}
		sb.WriteString(m.cellStyle(row[start]).Render(string(runes)))
		start = i
	}
	return sb.String()
}

func (m PanelsModel) paneStyle(p *cellPane) lipgloss.Style {
	if p == m.center {
		return m.theme.CenterPane
	}
	return m.theme.DrawerPane
}

func (m PanelsModel) cellStyle(c cell) lipgloss.Style {
	if c.owner == nil {
		return lipgloss.NewStyle()
	}
	ps := m.paneStyle(c.owner)
	s := lipgloss.NewStyle().Background(ps.GetBackground()).Foreground(ps.GetForeground())
	if c.border {
		s = s.Foreground(ps.GetBorderTopForeground())
	}
	if c.owner.dimmed() {
		s = styles.Dimmed(s)
	}
	return s
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// roundCells converts a pixel length to whole cells.
func roundCells(px, cellWidth float64) int {
	return int(math.Round(px / cellWidth))
}

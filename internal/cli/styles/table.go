package styles

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Bold(false)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// OffsetsTableColumns returns columns for the resting offsets table.
func OffsetsTableColumns() []table.Column {
	return []table.Column{
		{Title: "State", Width: 8},
		{Title: "Offset", Width: 10},
		{Title: "Drawer X", Width: 10},
		{Title: "Drawer W", Width: 10},
	}
}

// OffsetsRow is one line of the offsets table.
type OffsetsRow struct {
	State       string
	Offset      float64
	DrawerX     float64
	DrawerWidth float64
	HasDrawer   bool
}

// ToRow converts to table.Row.
func (r OffsetsRow) ToRow() table.Row {
	x, w := "-", "-"
	if r.HasDrawer {
		x, w = formatPx(r.DrawerX), formatPx(r.DrawerWidth)
	}
	return table.Row{r.State, formatPx(r.Offset), x, w}
}

// formatPx prints a pixel value with at most two decimals.
func formatPx(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PanelsKeyMap defines keybindings for the panels demo.
type PanelsKeyMap struct {
	OpenLeft  key.Binding
	OpenRight key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PanelsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenLeft, k.OpenRight, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PanelsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenLeft, k.OpenRight, k.Close},
		{k.Help, k.Quit},
	}
}

// DefaultPanelsKeyMap returns the default panels keybindings.
func DefaultPanelsKeyMap() PanelsKeyMap {
	return PanelsKeyMap{
		OpenLeft: key.NewBinding(
			key.WithKeys("[", "h", "left"),
			key.WithHelp("[/h", "left drawer"),
		),
		OpenRight: key.NewBinding(
			key.WithKeys("]", "l", "right"),
			key.WithHelp("]/l", "right drawer"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

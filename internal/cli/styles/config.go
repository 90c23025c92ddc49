package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := r.theme.Subtle.Render("not created yet, defaults in use")
	if exists {
		status = r.theme.SuccessStyle.Render("in use")
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		iconStyle.Render(IconInfo),
		status,
	)
}

// RenderCreated renders the result of writing a default config file.
func (r *ConfigRenderer) RenderCreated(path string, created bool) string {
	if !created {
		return fmt.Sprintf(
			"\n  %s %s already exists, left untouched\n",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
			r.theme.Subtle.Render(path),
		)
	}

	return fmt.Sprintf(
		"\n  %s Wrote defaults to %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
	)
}

// RenderSchemaWritten renders the location of a written schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf(
		"\n  %s Schema %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderKey renders one key/value line for config show.
func (r *ConfigRenderer) RenderKey(key string, value any) string {
	return fmt.Sprintf(
		"    %s %s = %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCursor),
		r.theme.Highlight.Render(key),
		r.theme.Normal.Render(fmt.Sprint(value)),
	)
}

// RenderSection renders a config section header.
func (r *ConfigRenderer) RenderSection(name string) string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtitle.Render("["+name+"]"))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/overpane/internal/logging"
)

// Manager handles theme state and CSS application.
type Manager struct {
	scheme       string  // "prefer-light", "prefer-dark", "default"
	prefersDark  bool    // Resolved dark mode preference
	lightPalette Palette // Light theme colors
	darkPalette  Palette // Dark theme colors
	cssProvider  *gtk.CSSProvider
	system       func() bool
}

// NewManager creates a new theme manager for the given color scheme.
func NewManager(ctx context.Context, scheme string) *Manager {
	return newManager(ctx, scheme, DetectSystemDarkMode)
}

func newManager(ctx context.Context, scheme string, system func() bool) *Manager {
	m := &Manager{
		lightPalette: DefaultLightPalette(),
		darkPalette:  DefaultDarkPalette(),
		system:       system,
	}
	m.setScheme(scheme)

	logging.FromContext(ctx).Debug().
		Str("scheme", m.scheme).
		Bool("prefers_dark", m.prefersDark).
		Msg("theme manager initialized")
	return m
}

func (m *Manager) setScheme(scheme string) {
	if scheme == "" {
		scheme = "default"
	}
	m.scheme = scheme
	m.prefersDark = resolveColorScheme(scheme, m.system)
}

// PrefersDark returns true if dark mode is active.
func (m *Manager) PrefersDark() bool {
	return m.prefersDark
}

// GetCurrentPalette returns the active palette based on current scheme.
func (m *Manager) GetCurrentPalette() Palette {
	if m.prefersDark {
		return m.darkPalette
	}
	return m.lightPalette
}

// CSS returns the stylesheet for the current palette.
func (m *Manager) CSS() string {
	return GenerateCSS(m.GetCurrentPalette())
}

// ApplyToDisplay loads the theme CSS into the display.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	first := m.cssProvider == nil
	if first {
		m.cssProvider = gtk.NewCSSProvider()
	}
	m.cssProvider.LoadFromString(m.CSS())
	if first {
		gtk.StyleContextAddProviderForDisplay(
			display,
			m.cssProvider,
			gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
		)
	}

	log.Debug().
		Bool("dark_mode", m.prefersDark).
		Msg("theme CSS applied to display")
}

// SetColorScheme changes the active color scheme at runtime and reapplies
// the CSS when the resolved mode changed.
func (m *Manager) SetColorScheme(ctx context.Context, scheme string, display *gdk.Display) {
	wasDark := m.prefersDark
	m.setScheme(scheme)
	if m.prefersDark == wasDark {
		return
	}
	m.ApplyToDisplay(ctx, display)
}

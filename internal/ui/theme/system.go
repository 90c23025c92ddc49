package theme

import (
	"os"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// DetectSystemDarkMode checks if the system prefers dark mode.
// It checks multiple sources in order of preference:
// 1. GTK_THEME environment variable (contains "dark")
// 2. GTK Settings gtk-application-prefer-dark-theme property
// Returns true if dark mode is preferred.
func DetectSystemDarkMode() bool {
	if dark, ok := darkFromEnv(os.Getenv("GTK_THEME")); ok {
		return dark
	}

	settings := gtk.SettingsGetDefault()
	if settings != nil {
		if preferDark, ok := settings.ObjectProperty("gtk-application-prefer-dark-theme").(bool); ok {
			return preferDark
		}
	}

	// Default to dark mode if detection fails
	return true
}

// darkFromEnv interprets a GTK_THEME value. An empty value is undecided.
func darkFromEnv(gtkTheme string) (dark, ok bool) {
	if gtkTheme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(gtkTheme), "dark"), true
}

// ResolveColorScheme determines the effective dark mode preference.
// It takes the config value ("prefer-dark", "prefer-light", "default")
// and resolves "default" to the system preference.
func ResolveColorScheme(configScheme string) bool {
	return resolveColorScheme(configScheme, DetectSystemDarkMode)
}

func resolveColorScheme(configScheme string, system func() bool) bool {
	switch strings.ToLower(configScheme) {
	case "prefer-dark", "dark":
		return true
	case "prefer-light", "light":
		return false
	default:
		return system()
	}
}

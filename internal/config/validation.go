package config

import (
	"fmt"
	"strings"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePanels(config)...)
	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTUI(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePanels(config *Config) []string {
	var validationErrors []string
	if config.Panels.HangFactor <= 1 {
		validationErrors = append(validationErrors, "panels.hang_factor must be greater than 1")
	}
	if config.Panels.DimmedOpacity < 0 || config.Panels.DimmedOpacity > 1 {
		validationErrors = append(validationErrors, "panels.dimmed_opacity must be between 0 and 1")
	}
	if config.Panels.OpenDurationMs <= 0 {
		validationErrors = append(validationErrors, "panels.open_duration_ms must be positive")
	}
	if config.Panels.CloseDurationMs <= 0 {
		validationErrors = append(validationErrors, "panels.close_duration_ms must be positive")
	}
	return validationErrors
}

func validateGesture(config *Config) []string {
	var validationErrors []string
	if config.Gesture.FlingVelocity <= 0 {
		validationErrors = append(validationErrors, "gesture.fling_velocity must be positive")
	}
	if config.Gesture.SampleWindowMs <= 0 {
		validationErrors = append(validationErrors, "gesture.sample_window_ms must be positive")
	}
	if config.Gesture.TapSlop < 0 {
		validationErrors = append(validationErrors, "gesture.tap_slop must be non-negative")
	}
	return validationErrors
}

func validateAnimation(config *Config) []string {
	if config.Animation.FrameIntervalMs <= 0 {
		return []string{"animation.frame_interval_ms must be positive"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error, disabled", config.Logging.Level))
	}
	switch strings.ToLower(config.Logging.Format) {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	if config.Logging.FileMaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.file_max_size_mb must be at least 1")
	}
	if config.Logging.FileMaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.file_max_backups must be non-negative")
	}
	return validationErrors
}

func validateTUI(config *Config) []string {
	if config.TUI.CellWidth < 1 {
		return []string{"tui.cell_width must be at least 1"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	switch config.Appearance.ColorScheme {
	case "prefer-dark", "prefer-light", "default":
		return nil
	default:
		return []string{fmt.Sprintf("appearance.color_scheme %q must be prefer-dark, prefer-light or default", config.Appearance.ColorScheme)}
	}
}

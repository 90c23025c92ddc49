// Package config provides configuration management for overpane with Viper integration.
package config

import (
	"time"

	"github.com/bnema/overpane/internal/gesture"
	"github.com/bnema/overpane/internal/panels"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for overpane.
type Config struct {
	Panels     PanelsConfig     `mapstructure:"panels" toml:"panels"`
	Gesture    GestureConfig    `mapstructure:"gesture" toml:"gesture"`
	Animation  AnimationConfig  `mapstructure:"animation" toml:"animation"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging"`
	TUI        TUIConfig        `mapstructure:"tui" toml:"tui"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance"`
}

// PanelsConfig holds the controller geometry and timing.
type PanelsConfig struct {
	// HangFactor sets how much of the center pane stays visible when a
	// drawer is open: one HangFactor-th of the container width.
	HangFactor      float64 `mapstructure:"hang_factor" toml:"hang_factor" jsonschema:"minimum=1,default=6"`
	DimmedOpacity   float64 `mapstructure:"dimmed_opacity" toml:"dimmed_opacity" jsonschema:"minimum=0,maximum=1,default=0.7"`
	OpenDurationMs  int     `mapstructure:"open_duration_ms" toml:"open_duration_ms" jsonschema:"minimum=1,default=250"`
	CloseDurationMs int     `mapstructure:"close_duration_ms" toml:"close_duration_ms" jsonschema:"minimum=1,default=200"`
}

// GestureConfig holds the drag release thresholds.
type GestureConfig struct {
	// FlingVelocity is in pixels per second.
	FlingVelocity  float64 `mapstructure:"fling_velocity" toml:"fling_velocity" jsonschema:"minimum=0,default=500"`
	SampleWindowMs int     `mapstructure:"sample_window_ms" toml:"sample_window_ms" jsonschema:"minimum=1,default=100"`
	TapSlop        float64 `mapstructure:"tap_slop" toml:"tap_slop" jsonschema:"minimum=0,default=4"`
}

// AnimationConfig holds the terminal host frame cadence.
type AnimationConfig struct {
	FrameIntervalMs int `mapstructure:"frame_interval_ms" toml:"frame_interval_ms" jsonschema:"minimum=1,default=16"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json,default=console"`
	// The terminal host owns stderr, so it logs to a rotating file.
	FileMaxSizeMB  int `mapstructure:"file_max_size_mb" toml:"file_max_size_mb" jsonschema:"minimum=1,default=10"`
	FileMaxBackups int `mapstructure:"file_max_backups" toml:"file_max_backups" jsonschema:"minimum=0,default=3"`
}

// TUIConfig holds terminal host settings.
type TUIConfig struct {
	// CellWidth is how many pixels one terminal column stands for.
	CellWidth float64 `mapstructure:"cell_width" toml:"cell_width" jsonschema:"minimum=1,default=8"`
}

// AppearanceConfig holds GTK host styling.
type AppearanceConfig struct {
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" jsonschema:"enum=prefer-dark,enum=prefer-light,enum=default,default=default"`
}

// PanelOptions converts the panels section into controller options.
func (c *Config) PanelOptions() panels.Options {
	return panels.Options{
		HangFactor:    c.Panels.HangFactor,
		DimmedOpacity: c.Panels.DimmedOpacity,
		OpenDuration:  time.Duration(c.Panels.OpenDurationMs) * time.Millisecond,
		CloseDuration: time.Duration(c.Panels.CloseDurationMs) * time.Millisecond,
	}
}

// GestureOptions converts the gesture section into tracker options.
func (c *Config) GestureOptions() gesture.Options {
	return gesture.Options{
		FlingVelocity: c.Gesture.FlingVelocity,
		SampleWindow:  time.Duration(c.Gesture.SampleWindowMs) * time.Millisecond,
		TapSlop:       c.Gesture.TapSlop,
	}
}

// FrameInterval returns the terminal host frame cadence.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Animation.FrameIntervalMs) * time.Millisecond
}

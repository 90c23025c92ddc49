package config

import "github.com/spf13/viper"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Panels: PanelsConfig{
			HangFactor:      6,
			DimmedOpacity:   0.7,
			OpenDurationMs:  250,
			CloseDurationMs: 200,
		},
		Gesture: GestureConfig{
			FlingVelocity:  500,
			SampleWindowMs: 100,
			TapSlop:        4,
		},
		Animation: AnimationConfig{
			FrameIntervalMs: 16,
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "console",
			FileMaxSizeMB:  10,
			FileMaxBackups: 3,
		},
		TUI: TUIConfig{
			CellWidth: 8,
		},
		Appearance: AppearanceConfig{
			ColorScheme: "default",
		},
	}
}

// setDefaults registers every key with viper so environment overrides and
// Unmarshal see them even without a config file.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("panels.hang_factor", d.Panels.HangFactor)
	v.SetDefault("panels.dimmed_opacity", d.Panels.DimmedOpacity)
	v.SetDefault("panels.open_duration_ms", d.Panels.OpenDurationMs)
	v.SetDefault("panels.close_duration_ms", d.Panels.CloseDurationMs)

	v.SetDefault("gesture.fling_velocity", d.Gesture.FlingVelocity)
	v.SetDefault("gesture.sample_window_ms", d.Gesture.SampleWindowMs)
	v.SetDefault("gesture.tap_slop", d.Gesture.TapSlop)

	v.SetDefault("animation.frame_interval_ms", d.Animation.FrameIntervalMs)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file_max_size_mb", d.Logging.FileMaxSizeMB)
	v.SetDefault("logging.file_max_backups", d.Logging.FileMaxBackups)

	v.SetDefault("tui.cell_width", d.TUI.CellWidth)

	v.SetDefault("appearance.color_scheme", d.Appearance.ColorScheme)
}

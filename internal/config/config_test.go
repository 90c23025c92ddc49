package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	return m
}

func writeConfig(t *testing.T, m *Manager, body string) string {
	t.Helper()
	path := ConfigFilePath(m.Dir())
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, 6.0, v.GetFloat64("panels.hang_factor"))
	assert.Equal(t, 0.7, v.GetFloat64("panels.dimmed_opacity"))
	assert.Equal(t, 500.0, v.GetFloat64("gesture.fling_velocity"))
	assert.Equal(t, 16, v.GetInt("animation.frame_interval_ms"))
	assert.Equal(t, "info", v.GetString("logging.level"))
	assert.Equal(t, 10, v.GetInt("logging.file_max_size_mb"))
	assert.Equal(t, "default", v.GetString("appearance.color_scheme"))
}

func TestManager_LoadWithoutFileUsesDefaults(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Load())

	assert.Equal(t, DefaultConfig(), m.Get())
	_, err := os.Stat(m.ConfigFile())
	assert.True(t, os.IsNotExist(err), "Load does not create files")
}

func TestManager_LoadReadsFile(t *testing.T) {
	// Arrange
	m := newTestManager(t)
	writeConfig(t, m, `
[panels]
hang_factor = 4
close_duration_ms = 120

[gesture]
fling_velocity = 800
`)

	// Act
	require.NoError(t, m.Load())
	cfg := m.Get()

	// Assert
	assert.Equal(t, 4.0, cfg.Panels.HangFactor)
	assert.Equal(t, 120, cfg.Panels.CloseDurationMs)
	assert.Equal(t, 0.7, cfg.Panels.DimmedOpacity, "unset keys keep defaults")
	assert.Equal(t, 800.0, cfg.Gesture.FlingVelocity)
}

func TestManager_EnvOverridesFile(t *testing.T) {
	m := newTestManager(t)
	writeConfig(t, m, "[panels]\nhang_factor = 4\n")
	t.Setenv("OVERPANE_PANELS_HANG_FACTOR", "3")
	t.Setenv("OVERPANE_LOG_LEVEL", "debug")

	require.NoError(t, m.Load())

	assert.Equal(t, 3.0, m.Get().Panels.HangFactor)
	assert.Equal(t, "debug", m.Get().Logging.Level)
}

func TestManager_LoadAggregatesValidationErrors(t *testing.T) {
	m := newTestManager(t)
	writeConfig(t, m, `
[panels]
hang_factor = 1
dimmed_opacity = 2

[logging]
level = "loud"

[appearance]
color_scheme = "sepia"
`)

	err := m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panels.hang_factor")
	assert.Contains(t, err.Error(), "panels.dimmed_opacity")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "appearance.color_scheme")
	assert.Equal(t, DefaultConfig(), m.Get(), "failed load keeps previous config")
}

func TestManager_LoadRejectsMalformedFile(t *testing.T) {
	m := newTestManager(t)
	writeConfig(t, m, "[panels\nhang_factor = ")

	err := m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_WriteDefault(t *testing.T) {
	// Arrange
	dir := filepath.Join(t.TempDir(), "nested", "overpane")
	m, err := NewManager(dir)
	require.NoError(t, err)

	// Act
	path, created, err := m.WriteDefault()

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, filepath.Join(dir, "config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hang_factor")

	_, created, err = m.WriteDefault()
	require.NoError(t, err)
	assert.False(t, created, "existing file is left alone")

	require.NoError(t, m.Load())
	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Panels.HangFactor = 99

	assert.Equal(t, 6.0, m.Get().Panels.HangFactor)
}

func TestManager_WatchRequiresLoadedFile(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Load())

	assert.ErrorIs(t, m.Watch(), ErrNotLoaded)
}

func TestManager_ConfigEventReloadsAndNotifies(t *testing.T) {
	// Arrange
	m := newTestManager(t)
	path := writeConfig(t, m, "[panels]\nhang_factor = 6\n")
	require.NoError(t, m.Load())

	var got []float64
	m.OnConfigChange(func(cfg *Config) { got = append(got, cfg.Panels.HangFactor) })

	// Act
	writeConfig(t, m, "[panels]\nhang_factor = 3\n")
	m.handleConfigEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	writeConfig(t, m, "[panels]\nhang_factor = 0.5\n")
	m.handleConfigEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	// Assert
	assert.Equal(t, []float64{3}, got, "invalid edits are not delivered")
	assert.Equal(t, 3.0, m.Get().Panels.HangFactor)
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()

	popts := cfg.PanelOptions()
	assert.Equal(t, 6.0, popts.HangFactor)
	assert.Equal(t, 250*time.Millisecond, popts.OpenDuration)
	assert.Equal(t, 200*time.Millisecond, popts.CloseDuration)
	require.NoError(t, popts.Validate())

	gopts := cfg.GestureOptions()
	assert.Equal(t, 500.0, gopts.FlingVelocity)
	assert.Equal(t, 100*time.Millisecond, gopts.SampleWindow)
	require.NoError(t, gopts.Validate())

	assert.Equal(t, 16*time.Millisecond, cfg.FrameInterval())
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Overpane Configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"panels", "gesture", "animation", "logging", "tui", "appearance"} {
		assert.Contains(t, props, key)
	}
	assert.Contains(t, string(data), "hang_factor")
	assert.Contains(t, string(data), "fling_velocity")
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteSchemaFile(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.schema.json"), path)
	assert.FileExists(t, path)
}

func TestDefaultConfigDir_EnvOverride(t *testing.T) {
	t.Setenv("OVERPANE_CONFIG_DIR", "/tmp/overpane-test")
	assert.Equal(t, "/tmp/overpane-test", DefaultConfigDir())
}

func TestDefaultLogDir(t *testing.T) {
	assert.Equal(t, appName, filepath.Base(DefaultLogDir()))
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// ErrNotLoaded is returned by Watch before Load succeeded with a file.
var ErrNotLoaded = errors.New("no config file loaded")

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	dir       string
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading config.toml from dir. An empty dir
// selects DefaultConfigDir.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// Set up environment variable support
	v.SetEnvPrefix("OVERPANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging keys share the short names logging.NewFromEnv reads.
	if err := v.BindEnv("logging.level", "OVERPANE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OVERPANE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "OVERPANE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind OVERPANE_LOG_FORMAT: %w", err)
	}

	setDefaults(v)

	return &Manager{
		dir:   dir,
		viper: v,
	}, nil
}

// Dir returns the configuration directory.
func (m *Manager) Dir() string { return m.dir }

// ConfigFile returns the path of the config file, whether or not it exists.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return ConfigFilePath(m.dir)
}

// Load reads the config file and environment. A missing file is not an
// error: defaults and environment overrides apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.decode()
}

// Get returns a copy of the current configuration. Before Load it returns
// the defaults.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// WriteDefault writes a default config.toml unless one exists. It reports
// the path and whether a file was created.
func (m *Manager) WriteDefault() (string, bool, error) {
	path := ConfigFilePath(m.dir)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return path, false, fmt.Errorf("failed to create config directory %s: %w", m.dir, err)
	}

	// Write defaults only, without environment overrides leaking into the file.
	w := viper.New()
	w.SetConfigType("toml")
	setDefaults(w)
	if err := w.SafeWriteConfigAs(path); err != nil {
		return path, false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}
	return nil
}

// decode unmarshals and validates, replacing the current config only when
// the new one is valid. Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.ConfigFile(),
			err,
		)
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Settings returns the merged key/value tree viper resolved from defaults,
// the config file and the environment.
func (m *Manager) Settings() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.AllSettings()
}

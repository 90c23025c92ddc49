package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName        = "overpane"
	configName     = "config"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
)

// DefaultConfigDir returns $XDG_CONFIG_HOME/overpane. OVERPANE_CONFIG_DIR
// overrides it.
func DefaultConfigDir() string {
	if dir := os.Getenv("OVERPANE_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// ConfigFilePath returns the config file location inside dir.
func ConfigFilePath(dir string) string {
	return filepath.Join(dir, configFileName)
}

// DefaultLogDir returns $XDG_STATE_HOME/overpane, where the terminal host
// writes its log file.
func DefaultLogDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

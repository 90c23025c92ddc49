// Package cli provides the command-line front end of overpane.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/overpane/internal/cli/styles"
	"github.com/bnema/overpane/internal/config"
	"github.com/bnema/overpane/internal/logging"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo BuildInfo
	// LoadErr is set when the config file could not be used. Config then
	// holds the defaults.
	LoadErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration from configDir (the XDG default when
// empty) and builds a stderr logger from it.
func NewApp(configDir string) (*App, error) {
	mgr, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	loadErr := mgr.Load()
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	if loadErr != nil {
		logger.Warn().Err(loadErr).Str("path", mgr.ConfigFile()).Msg("config not usable, falling back to defaults")
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		LoadErr: loadErr,
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// LogToFile switches the logger to a rotating JSON file in dir and returns
// the file path. On failure logging is disabled, since the caller is about
// to take over the terminal.
func (a *App) LogToFile(dir string) (string, error) {
	logger, cleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(a.Config.Logging.Level),
			Format:     "json",
			TimeFormat: time.RFC3339,
		},
		logging.FileConfig{
			Dir:        dir,
			MaxSizeMB:  a.Config.Logging.FileMaxSizeMB,
			MaxBackups: a.Config.Logging.FileMaxBackups,
		},
	)
	if err != nil {
		a.setLogger(zerolog.Nop(), nil)
		return "", fmt.Errorf("open log file: %w", err)
	}

	a.setLogger(logger, cleanup)
	return logging.LogFilePath(dir), nil
}

func (a *App) setLogger(logger zerolog.Logger, cleanup func()) {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

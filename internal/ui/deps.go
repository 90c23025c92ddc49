// Package ui provides the GTK4 host for the overlapping panels.
package ui

import (
	"context"

	"github.com/bnema/overpane/internal/config"
	"github.com/bnema/overpane/internal/ui/layout"
	"github.com/bnema/overpane/internal/ui/theme"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to the App.
type Dependencies struct {
	// Core context and configuration
	Ctx    context.Context
	Config *config.Config

	// Manager is optional. Without it config changes are not followed.
	Manager *config.Manager

	// Theme defaults to a manager built from Config.Appearance.
	Theme *theme.Manager

	// Factory defaults to real GTK widgets.
	Factory layout.WidgetFactory
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d == nil {
		return ErrMissingDependency("Dependencies")
	}
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}

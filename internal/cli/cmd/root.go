// Package cmd provides Cobra CLI commands for overpane.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/overpane/internal/cli"
)

var (
	app       *cli.App
	buildInfo cli.BuildInfo
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "overpane",
		Short: "Three overlapping panes you slide with a drag",
		Long: `Overpane - a chat-style layout of three overlapping panes.

The center pane slides left or right to reveal a drawer underneath. Drag it,
fling it, or use the keyboard. A tap on the strip of center pane left visible
closes the open drawer.

Use 'overpane tui' to run it in the terminal or 'overpane gtk' for the GTK4
window. The other subcommands inspect configuration and logs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gtk", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// gtkCmd is a placeholder for help - actual execution is in main.go
var gtkCmd = &cobra.Command{
	Use:   "gtk",
	Short: "Open the panels in a GTK4 window",
	Long: `Open the overlapping panels in a GTK4 window.

The window follows config changes while it runs.

Examples:
  overpane gtk
  overpane gtk --config-dir ./dev-config`,
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default $XDG_CONFIG_HOME/overpane)")
	rootCmd.AddCommand(gtkCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info cli.BuildInfo) {
	buildInfo = info
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/bnema/overpane/internal/cli"
	"github.com/bnema/overpane/internal/cli/cmd"
	"github.com/bnema/overpane/internal/logging"
	"github.com/bnema/overpane/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	// Run GUI mode for gtk command
	if len(os.Args) > 1 && os.Args[1] == "gtk" {
		os.Exit(runGUI(os.Args[2:]))
		return
	}

	// Pass build info to CLI
	cmd.SetBuildInfo(buildInfo())

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}

func buildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}

// parseGUIFlags reads the flags the gtk subcommand accepts. Cobra never
// sees them since GTK must own the main thread.
func parseGUIFlags(args []string) (configDir string, err error) {
	flags := pflag.NewFlagSet("gtk", pflag.ContinueOnError)
	flags.StringVar(&configDir, "config-dir", "", "configuration directory")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	return configDir, nil
}

func runGUI(args []string) int {
	runtime.LockOSThread()

	configDir, err := parseGUIFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	app, err := cli.NewApp(configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = app.Close() }()
	app.BuildInfo = buildInfo()

	ctx := app.Ctx()
	log := logging.FromContext(ctx)
	logCoreDumpLimits(ctx)

	deps := &ui.Dependencies{
		Ctx:     ctx,
		Config:  app.Config,
		Manager: app.Manager,
	}
	gui, err := ui.New(deps)
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	setupSignalHandler(ctx, gui)

	return gui.Run(os.Args[:1])
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}

package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/overpane/internal/cli/model"
	"github.com/bnema/overpane/internal/config"
	"github.com/bnema/overpane/internal/demo"
	"github.com/bnema/overpane/internal/logging"
)

var tuiLogDir string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the panels in the terminal",
	Long: `Run the overlapping panels in the terminal.

Drag with the mouse or use the keys shown at the bottom. Logs go to a
rotating file since the terminal is taken over; read them with
'overpane logs'. Config changes apply while it runs.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&tuiLogDir, "log-dir", "", "log directory (default $XDG_STATE_HOME/overpane)")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	dir := tuiLogDir
	if dir == "" {
		dir = config.DefaultLogDir()
	}
	if _, err := app.LogToFile(dir); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.WarningStyle.Render(err.Error()+", logging disabled"))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = app.Ctx()
	} else {
		ctx = logging.WithContext(ctx, *logging.FromContext(app.Ctx()))
	}
	log := logging.FromContext(ctx)

	m, err := model.NewPanelsModel(ctx, app.Theme, panelsModelConfig(app.Config))
	if err != nil {
		return fmt.Errorf("create panels model: %w", err)
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	// Reloads arrive on the watcher goroutine; Send hands them to the
	// program loop.
	app.Manager.OnConfigChange(func(cfg *config.Config) {
		log.Info().Msg("config changed, applying options")
		p.Send(optionsMsg(cfg))
	})
	if err := app.Manager.Watch(); err != nil && !errors.Is(err, config.ErrNotLoaded) {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	log.Info().Msg("tui started")
	_, err = p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info().Msg("tui stopped")
	return nil
}

func panelsModelConfig(cfg *config.Config) model.PanelsModelConfig {
	left, center, right := demo.Content()
	return model.PanelsModelConfig{
		PanelOptions:   cfg.PanelOptions(),
		GestureOptions: cfg.GestureOptions(),
		FrameInterval:  cfg.FrameInterval(),
		CellWidth:      cfg.TUI.CellWidth,
		Left:           paneContent(left),
		Center:         paneContent(center),
		Right:          paneContent(right),
	}
}

func optionsMsg(cfg *config.Config) model.OptionsMsg {
	return model.OptionsMsg{
		PanelOptions:   cfg.PanelOptions(),
		GestureOptions: cfg.GestureOptions(),
		FrameInterval:  cfg.FrameInterval(),
		CellWidth:      cfg.TUI.CellWidth,
	}
}

func paneContent(p demo.Pane) model.PaneContent {
	return model.PaneContent{Title: p.Title, Body: p.Body}
}

package cmd

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/overpane/internal/cli/styles"
	"github.com/bnema/overpane/internal/panels"
)

var (
	offsetsWidth      float64
	offsetsHangFactor float64
)

var offsetsCmd = &cobra.Command{
	Use:   "offsets",
	Short: "Print the resting layout for each state",
	Long: `Print where the center pane and the revealed drawer rest in each state
for a container of the given width.

Examples:
  overpane offsets                      # 1080px wide, configured hang factor
  overpane offsets --width 400 --hang-factor 4`,
	RunE: runOffsets,
}

func init() {
	rootCmd.AddCommand(offsetsCmd)
	offsetsCmd.Flags().Float64Var(&offsetsWidth, "width", 1080, "container width in pixels")
	offsetsCmd.Flags().Float64Var(&offsetsHangFactor, "hang-factor", 0, "hang factor (default from config)")
}

func runOffsets(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	hang := offsetsHangFactor
	if !cmd.Flags().Changed("hang-factor") {
		hang = app.Config.Panels.HangFactor
	}
	opts := panels.DefaultOptions()
	opts.HangFactor = hang
	if err := opts.Validate(); err != nil {
		return err
	}
	if !(offsetsWidth > 0) || math.IsInf(offsetsWidth, 1) {
		return fmt.Errorf("width must be a positive finite number, got %v", offsetsWidth)
	}

	rows := offsetRows(offsetsWidth, hang)
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, r.ToRow())
	}

	t := styles.NewStyledTable(app.Theme, styles.OffsetsTableColumns(), tableRows, 44, len(rows)+3)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, app.Theme.Title.Render(fmt.Sprintf("width %g, hang factor %g", offsetsWidth, hang)))
	fmt.Fprintln(out, t.View())
	return nil
}

// offsetRows computes the settled layout of every state. The left drawer
// sits against the right edge since the center pane slides left to reveal
// it.
func offsetRows(width, hangFactor float64) []styles.OffsetsRow {
	drawer := panels.DrawerWidth(width, hangFactor)

	rows := make([]styles.OffsetsRow, 0, len(panels.States))
	for _, s := range panels.States {
		row := styles.OffsetsRow{
			State:  s.String(),
			Offset: panels.RestingOffset(s, width, hangFactor),
		}
		switch s {
		case panels.StateLeft:
			row.HasDrawer, row.DrawerX, row.DrawerWidth = true, width-drawer, drawer
		case panels.StateRight:
			row.HasDrawer, row.DrawerX, row.DrawerWidth = true, 0, drawer
		}
		rows = append(rows, row)
	}
	return rows
}

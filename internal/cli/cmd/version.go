package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := buildInfo
		if info.Version == "" {
			info.Version = "dev"
		}
		if info.GoVersion == "" {
			info.GoVersion = runtime.Version()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "overpane %s\n", info.Version)
		if info.Commit != "" {
			fmt.Fprintf(out, "  commit  %s\n", info.Commit)
		}
		if info.BuildDate != "" {
			fmt.Fprintf(out, "  built   %s\n", info.BuildDate)
		}
		fmt.Fprintf(out, "  go      %s\n", info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mararual/practicegraph/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for practicegraph",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "practicegraph version %s\n", build.Version)
		fmt.Fprintf(out, "Built from commit: %s\n", build.Commit)
		fmt.Fprintf(out, "Build date: %s\n", build.BuildDate)
		fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

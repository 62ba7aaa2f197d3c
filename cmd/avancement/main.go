// Package main provides the entry point for the avancement CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/cmd/avancement/commands"
	"github.com/chantier-labs/avancement/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "avancement",
		Short: "Avancement - construction progress analysis and earned value",
		Long: `Avancement reconciles a reference schedule against field progress
reports and computes deviation series, earned value metrics, discipline
breakdowns, and weekly rollups.

Commands:
  analyze   Daily planned vs actual progress series`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to config file")

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewEvmCommand())
	rootCmd.AddCommand(commands.NewBreakdownCommand())
	rootCmd.AddCommand(commands.NewWeeklyCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewSnapshotsCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "avancement %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/config"
	"github.com/chantier-labs/avancement/internal/report"
)

const (
	renderCmdUse   = "render"
	renderCmdShort = "Render the S-curves as an interactive HTML chart"
	renderCmdLong  = `Render the planned and actual progress S-curves as a standalone HTML
page. The series comes either from the input files or from a previously
saved snapshot.`

	flagOutput   = "output"
	flagSnapshot = "snapshot"
	flagTitle    = "title"

	renderFilePerm = 0o644
)

// ErrNoRenderInput is returned when neither input files nor a snapshot name
// are provided.
var ErrNoRenderInput = errors.New("either --tasks and --reports or --snapshot is required")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		in           inputFlags
		asOfStr      string
		outputPath   string
		snapshotName string
		title        string
	)

	cmd := &cobra.Command{
		Use:           renderCmdUse,
		Short:         renderCmdShort,
		Long:          renderCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			series, err := renderSeries(cmd, cfg, in, asOfStr, snapshotName)
			if err != nil {
				return err
			}

			if title == "" {
				title = cfg.Output.ChartTitle
			}

			f, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, renderFilePerm)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()

			return report.WriteHTML(f, series, title)
		},
	}

	cmd.Flags().StringVarP(&in.tasksPath, flagTasks, "t", "", usageTasks)
	cmd.Flags().StringVarP(&in.reportsPath, flagReports, "r", "", usageReports)
	cmd.Flags().StringVar(&asOfStr, flagAsOf, "", usageAsOf)
	cmd.Flags().StringVarP(&outputPath, flagOutput, "o", "", "output HTML file")
	cmd.Flags().StringVar(&snapshotName, flagSnapshot, "", "render a saved snapshot instead of input files")
	cmd.Flags().String(flagStore, "", usageStore)
	cmd.Flags().StringVar(&title, flagTitle, "", "chart title")

	_ = cmd.MarkFlagRequired(flagOutput)

	return cmd
}

// renderSeries resolves the series to draw, from the snapshot store or from
// fresh input files.
func renderSeries(cmd *cobra.Command, cfg *config.Config, in inputFlags, asOfStr, snapshotName string) (analysis.Series, error) {
	if snapshotName != "" {
		store := report.NewStore(resolveStoreDir(cmd, cfg))

		snap, err := store.Load(snapshotName)
		if err != nil {
			return nil, err
		}

		return snap.Series, nil
	}

	if in.tasksPath == "" || in.reportsPath == "" {
		return nil, ErrNoRenderInput
	}

	return computeSeries(in, asOfStr)
}

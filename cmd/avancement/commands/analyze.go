package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/config"
	"github.com/chantier-labs/avancement/internal/report"
)

const (
	analyzeCmdUse   = "analyze"
	analyzeCmdShort = "Compute the daily planned vs actual progress series"
	analyzeCmdLong  = `Compute the daily analysis series for a reference schedule and its
progress reports: planned fraction, cumulative actual fraction, and the
deviation between them, one point per calendar day.`
)

// NewAnalyzeCommand creates the analyze subcommand.
func NewAnalyzeCommand() *cobra.Command {
	var (
		in       inputFlags
		asOfStr  string
		summary  bool
		saveName string
	)

	cmd := &cobra.Command{
		Use:           analyzeCmdUse,
		Short:         analyzeCmdShort,
		Long:          analyzeCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			format, err := resolveFormat(cmd, cfg)
			if err != nil {
				return err
			}

			series, err := computeSeries(in, asOfStr)
			if err != nil {
				return err
			}

			if saveName != "" {
				store := report.NewStore(resolveStoreDir(cmd, cfg))

				saveErr := store.Save(saveName, report.Snapshot{Series: series})
				if saveErr != nil {
					return fmt.Errorf("save snapshot: %w", saveErr)
				}
			}

			out := cmd.OutOrStdout()

			if format != config.FormatText {
				return writeStructured(out, format, series)
			}

			if summary {
				report.WriteSeriesSummary(out, series)
			} else {
				report.WriteSeries(out, series)
			}

			return nil
		},
	}

	registerInputFlags(cmd, &in)
	cmd.Flags().StringVar(&asOfStr, flagAsOf, "", usageAsOf)
	cmd.Flags().StringVar(&saveName, flagSave, "", usageSave)
	cmd.Flags().String(flagStore, "", usageStore)
	cmd.Flags().StringP(flagFormat, "f", config.DefaultOutputFormat, usageFormat)
	cmd.Flags().BoolVar(&summary, "summary", false, "print only the latest point")

	return cmd
}

// computeSeries loads inputs and runs the analysis engine, honoring an
// optional as-of date.
func computeSeries(in inputFlags, asOfStr string) (analysis.Series, error) {
	tasks, reports, err := in.load()
	if err != nil {
		return nil, err
	}

	asOf, err := parseAsOfFlag(asOfStr)
	if err != nil {
		return nil, err
	}

	var series analysis.Series
	if asOf.IsZero() {
		series, err = analysis.Compute(tasks, reports)
	} else {
		series, err = analysis.ComputeAsOf(tasks, reports, asOf)
	}

	if err != nil {
		return nil, fmt.Errorf("compute analysis: %w", err)
	}

	return series, nil
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/internal/config"
	"github.com/chantier-labs/avancement/internal/report"
	"github.com/chantier-labs/avancement/internal/rollup"
)

const (
	weeklyCmdUse   = "weekly"
	weeklyCmdShort = "Aggregate the analysis series into weekly points"
	weeklyCmdLong  = `Resample the daily analysis series into Monday-anchored calendar weeks.
Each week carries the last daily value observed in it plus the change from
the previous week.`
)

// NewWeeklyCommand creates the weekly subcommand.
func NewWeeklyCommand() *cobra.Command {
	var (
		in      inputFlags
		asOfStr string
	)

	cmd := &cobra.Command{
		Use:           weeklyCmdUse,
		Short:         weeklyCmdShort,
		Long:          weeklyCmdLong,
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

			points := rollup.Weekly(series)
			out := cmd.OutOrStdout()

			if format != config.FormatText {
				return writeStructured(out, format, points)
			}

			report.WriteWeekly(out, points)

			return nil
		},
	}

	registerInputFlags(cmd, &in)
	cmd.Flags().StringVar(&asOfStr, flagAsOf, "", usageAsOf)
	cmd.Flags().StringP(flagFormat, "f", config.DefaultOutputFormat, usageFormat)

	return cmd
}

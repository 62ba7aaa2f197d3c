package commands

import (
	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/internal/breakdown"
	"github.com/chantier-labs/avancement/internal/config"
	"github.com/chantier-labs/avancement/internal/report"
)

const (
	breakdownCmdUse   = "breakdown"
	breakdownCmdShort = "Group progress by discipline"
	breakdownCmdLong  = `Group the latest reported progress of each task by discipline and show
the mean progress percentage and task count per discipline. Tasks without a
discipline fall into the "Non spécifié" bucket.`
)

// NewBreakdownCommand creates the breakdown subcommand.
func NewBreakdownCommand() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:           breakdownCmdUse,
		Short:         breakdownCmdShort,
		Long:          breakdownCmdLong,
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

			tasks, reports, err := in.load()
			if err != nil {
				return err
			}

			buckets := breakdown.Compute(tasks, reports)
			out := cmd.OutOrStdout()

			if format != config.FormatText {
				return writeStructured(out, format, buckets)
			}

			report.WriteBreakdown(out, buckets)

			return nil
		},
	}

	registerInputFlags(cmd, &in)
	cmd.Flags().StringP(flagFormat, "f", config.DefaultOutputFormat, usageFormat)

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/internal/config"
	"github.com/chantier-labs/avancement/internal/evm"
	"github.com/chantier-labs/avancement/internal/report"
)

const (
	evmCmdUse   = "evm"
	evmCmdShort = "Compute earned value metrics"
	evmCmdLong  = `Compute earned value metrics from the reference schedule and progress
reports: planned value, earned value, proxy actual cost, schedule and cost
performance indices, estimate at completion, and the projected finish date.

Each task carries a flat planned value (the unit value); the actual cost is
derived from earned value through a configurable overrun factor.`

	flagUnitValue = "unit-value"
	flagOverrun   = "overrun"
)

// NewEvmCommand creates the evm subcommand.
func NewEvmCommand() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:           evmCmdUse,
		Short:         evmCmdShort,
		Long:          evmCmdLong,
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

			opts, err := evmOptions(cmd, cfg)
			if err != nil {
				return err
			}

			tasks, reports, err := in.load()
			if err != nil {
				return err
			}

			metrics, err := evm.ComputeWith(tasks, reports, opts)
			if err != nil {
				return fmt.Errorf("compute earned value: %w", err)
			}

			out := cmd.OutOrStdout()

			if format != config.FormatText {
				return writeStructured(out, format, metrics)
			}

			report.WriteEvm(out, metrics)

			return nil
		},
	}

	registerInputFlags(cmd, &in)
	cmd.Flags().Float64(flagUnitValue, config.DefaultUnitValue, "flat planned value per task")
	cmd.Flags().Float64(flagOverrun, config.DefaultOverrunFactor, "actual cost overrun multiplier")
	cmd.Flags().StringP(flagFormat, "f", config.DefaultOutputFormat, usageFormat)

	return cmd
}

// evmOptions merges config defaults with explicit flag overrides.
func evmOptions(cmd *cobra.Command, cfg *config.Config) (evm.Options, error) {
	unitValue := cfg.Evm.UnitValue
	if cmd.Flags().Changed(flagUnitValue) {
		v, err := cmd.Flags().GetFloat64(flagUnitValue)
		if err != nil {
			return evm.Options{}, fmt.Errorf("get --%s: %w", flagUnitValue, err)
		}

		unitValue = v
	}

	overrun := cfg.Evm.OverrunFactor
	if cmd.Flags().Changed(flagOverrun) {
		v, err := cmd.Flags().GetFloat64(flagOverrun)
		if err != nil {
			return evm.Options{}, fmt.Errorf("get --%s: %w", flagOverrun, err)
		}

		overrun = v
	}

	return evm.Options{
		Model:         evm.NewFlatRate(unitValue),
		OverrunFactor: overrun,
	}, nil
}

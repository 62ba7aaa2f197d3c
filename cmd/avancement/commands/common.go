// Package commands implements the avancement CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chantier-labs/avancement/internal/config"
	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/pkg/dateutil"
)

// Shared flag names.
const (
	flagTasks   = "tasks"
	flagReports = "reports"
	flagAsOf    = "as-of"
	flagFormat  = "format"
	flagSave    = "save"
	flagStore   = "store"
	flagConfig  = "config"
)

// Shared flag usage strings.
const (
	usageTasks   = "path to the reference schedule file (csv, json, yaml)"
	usageReports = "path to the progress reports file (csv, json, yaml)"
	usageAsOf    = "extend the analysis window to this date (2006-01-02)"
	usageFormat  = "output format: text, json, or yaml"
	usageSave    = "save the result as a named snapshot"
	usageStore   = "snapshot store directory"
)

// inputFlags holds the file inputs common to every engine command.
type inputFlags struct {
	tasksPath   string
	reportsPath string
}

func registerInputFlags(cmd *cobra.Command, in *inputFlags) {
	cmd.Flags().StringVarP(&in.tasksPath, flagTasks, "t", "", usageTasks)
	cmd.Flags().StringVarP(&in.reportsPath, flagReports, "r", "", usageReports)

	_ = cmd.MarkFlagRequired(flagTasks)
	_ = cmd.MarkFlagRequired(flagReports)
}

// load reads both input files.
func (in inputFlags) load() ([]schedule.Task, []schedule.Report, error) {
	tasks, err := schedule.LoadTasksFile(in.tasksPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load tasks: %w", err)
	}

	reports, err := schedule.LoadReportsFile(in.reportsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load reports: %w", err)
	}

	return tasks, reports, nil
}

// loadConfig reads the configuration honoring the root --config flag and
// applies presentation settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString(flagConfig)
	if err != nil {
		path = ""
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.Output.NoColor {
		color.NoColor = true
	}

	return cfg, nil
}

// parseAsOfFlag parses the optional --as-of value. Empty means no window
// extension.
func parseAsOfFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --%s: %w", flagAsOf, err)
	}

	return dateutil.Day(t), nil
}

// writeStructured marshals value as JSON or YAML to w.
func writeStructured(w io.Writer, format string, value any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)

		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", config.ErrInvalidFormat, format)
	}

	return nil
}

// resolveFormat returns the --format flag when set, otherwise the configured
// default.
func resolveFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if !cmd.Flags().Changed(flagFormat) {
		return cfg.Output.Format, nil
	}

	format, err := cmd.Flags().GetString(flagFormat)
	if err != nil {
		return "", fmt.Errorf("get --%s: %w", flagFormat, err)
	}

	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", config.ErrInvalidFormat, format)
	}
}

// resolveStoreDir returns the --store flag when set, otherwise the
// configured default.
func resolveStoreDir(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed(flagStore) {
		dir, err := cmd.Flags().GetString(flagStore)
		if err == nil && dir != "" {
			return dir
		}
	}

	return cfg.Store.Dir
}

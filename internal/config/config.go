// Package config loads avancement configuration from file, environment,
// and defaults.
package config

import "errors"

// Defaults applied before any config source is read.
const (
	DefaultUnitValue     = 1000.0
	DefaultOverrunFactor = 1.10
	DefaultOutputFormat  = "text"
	DefaultStoreDir      = ".avancement-store"
	DefaultChartTitle    = "Avancement"
)

// Output format names accepted by the CLI and config file.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidUnitValue indicates a non-positive per-task unit value.
	ErrInvalidUnitValue = errors.New("config: unit_value must be positive")

	// ErrInvalidOverrun indicates a non-positive cost overrun factor.
	ErrInvalidOverrun = errors.New("config: overrun_factor must be positive")

	// ErrInvalidFormat indicates an unknown output format name.
	ErrInvalidFormat = errors.New("config: unknown output format")
)

// Config is the top-level configuration struct. Field tags use
// mapstructure for viper unmarshalling.
type Config struct {
	Evm    EvmConfig    `mapstructure:"evm"`
	Output OutputConfig `mapstructure:"output"`
	Store  StoreConfig  `mapstructure:"store"`
}

// EvmConfig holds the earned-value cost proxy knobs.
type EvmConfig struct {
	// UnitValue is the flat planned value per reference task.
	UnitValue float64 `mapstructure:"unit_value"`

	// OverrunFactor scales EV into the proxy actual cost.
	OverrunFactor float64 `mapstructure:"overrun_factor"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	// Format selects text, json, or yaml output.
	Format string `mapstructure:"format"`

	// NoColor disables colored terminal output.
	NoColor bool `mapstructure:"no_color"`

	// ChartTitle is the heading used on rendered HTML charts.
	ChartTitle string `mapstructure:"chart_title"`
}

// StoreConfig holds snapshot store settings.
type StoreConfig struct {
	// Dir is the directory holding compressed analysis snapshots.
	Dir string `mapstructure:"dir"`
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Evm.UnitValue <= 0 {
		return ErrInvalidUnitValue
	}

	if c.Evm.OverrunFactor <= 0 {
		return ErrInvalidOverrun
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return ErrInvalidFormat
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chantier-labs/avancement/internal/config"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	// An explicit path that does not exist is a read error, not defaults.
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.InDelta(t, config.DefaultUnitValue, cfg.Evm.UnitValue, 0)
	assert.InDelta(t, config.DefaultOverrunFactor, cfg.Evm.OverrunFactor, 1e-12)
	assert.Equal(t, config.FormatText, cfg.Output.Format)
	assert.Equal(t, config.DefaultStoreDir, cfg.Store.Dir)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "avancement.yaml")
	content := []byte("evm:\n  unit_value: 2500\n  overrun_factor: 1.25\noutput:\n  format: json\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.InDelta(t, 2500.0, cfg.Evm.UnitValue, 0)
	assert.InDelta(t, 1.25, cfg.Evm.OverrunFactor, 1e-12)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	// Untouched keys keep their defaults.
	assert.Equal(t, config.DefaultStoreDir, cfg.Store.Dir)
}

func TestLoad_InvalidFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "avancement.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

	_, err := config.Load(path)

	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestValidate_NonPositiveUnitValue(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Evm:    config.EvmConfig{UnitValue: 0, OverrunFactor: 1.1},
		Output: config.OutputConfig{Format: config.FormatText},
	}

	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidUnitValue)
}

func TestValidate_NonPositiveOverrun(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Evm:    config.EvmConfig{UnitValue: 100, OverrunFactor: -1},
		Output: config.OutputConfig{Format: config.FormatYAML},
	}

	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidOverrun)
}

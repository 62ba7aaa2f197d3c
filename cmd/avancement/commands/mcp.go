package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/internal/mcp"
	"github.com/chantier-labs/avancement/internal/observability"
	"github.com/chantier-labs/avancement/pkg/version"
)

const (
	mcpCmdUse   = "mcp"
	mcpCmdShort = "Start MCP server for AI agent integration"
	mcpCmdLong  = `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes the analysis engine as tools that AI agents can
discover and invoke:
  - progress_analysis: daily planned vs actual series with deviation
  - earned_value: PV, EV, AC, SPI, CPI, EAC and projected completion
  - discipline_breakdown: mean progress per discipline
  - weekly_rollup: Monday-anchored weekly aggregation`

	flagDebug       = "debug"
	flagMetricsAddr = "metrics-addr"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	var (
		debug       bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:           mcpCmdUse,
		Short:         mcpCmdShort,
		Long:          mcpCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			providers, err := initMCPObservability(debug)
			if err != nil {
				return err
			}

			defer func() {
				shutdownErr := providers.Shutdown(context.Background())
				if shutdownErr != nil {
					providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
				}
			}()

			metrics, err := observability.NewEngineMetrics(providers.Meter)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				diag, diagErr := observability.NewDiagnosticsServer(metricsAddr)
				if diagErr != nil {
					return diagErr
				}

				defer func() {
					closeErr := diag.Close()
					if closeErr != nil {
						providers.Logger.Warn("diagnostics shutdown failed", "error", closeErr)
					}
				}()

				// Prefer the Prometheus-backed instruments so tool calls
				// show up on the scrape endpoint.
				metrics = diag.Metrics()

				providers.Logger.Info("diagnostics server listening", "addr", diag.Addr())
			}

			deps := mcp.ServerDeps{Logger: providers.Logger, Metrics: metrics, Tracer: providers.Tracer}

			srv := mcp.NewServer(deps)

			return srv.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&debug, flagDebug, false, "Enable debug logging to stderr")
	cmd.Flags().StringVar(&metricsAddr, flagMetricsAddr, "", "Serve /metrics, /healthz and /readyz on this address")

	return cmd
}

func initMCPObservability(debug bool) (observability.Providers, error) {
	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version.Version
	cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	cfg.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
	cfg.OTLPInsecure = os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true"
	cfg.Mode = observability.ModeMCP
	cfg.LogJSON = true

	if debug {
		cfg.LogLevel = slog.LevelDebug
	}

	return observability.Init(cfg)
}

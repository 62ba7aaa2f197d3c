package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/chantier-labs/avancement/internal/report"
)

const (
	snapshotsCmdUse   = "snapshots"
	snapshotsCmdShort = "List saved analysis snapshots"
)

// NewSnapshotsCommand creates the snapshots subcommand.
func NewSnapshotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           snapshotsCmdUse,
		Short:         snapshotsCmdShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store := report.NewStore(resolveStoreDir(cmd, cfg))

			names, err := store.List()
			if err != nil {
				return fmt.Errorf("list snapshots: %w", err)
			}

			out := cmd.OutOrStdout()

			if len(names) == 0 {
				fmt.Fprintln(out, "no snapshots")

				return nil
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(out)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Name", "Saved", "Days"})

			for _, name := range names {
				snap, loadErr := store.Load(name)
				if loadErr != nil {
					return fmt.Errorf("load snapshot %s: %w", name, loadErr)
				}

				tbl.AppendRow(table.Row{name, humanize.Time(snap.SavedAt), len(snap.Series)})
			}

			tbl.Render()

			return nil
		},
	}

	cmd.Flags().String(flagStore, "", usageStore)

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gehtsoft-usa/go_aerotable"
	"github.com/gehtsoft-usa/go_aerotable/internal/archive"
	"github.com/gehtsoft-usa/go_aerotable/internal/preview"
)

func newArchiveCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect the archived sweeps",
	}
	cmd.PersistentFlags().StringVar(&path, "db", "", "Archive database (default: from the configuration)")

	open := func() (*archive.Archive, error) {
		if path == "" {
			path = a.cfg.Archive.Path
		}
		return archive.Open(path, a.logger)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the archived sweeps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.ListSweeps(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, len(records))
			for i, r := range records {
				rows[i] = []string{
					r.ID,
					r.Vehicle,
					fmt.Sprintf("%.3f..%.3f/%.3f", r.MachStart, r.MachStop, r.MachStep),
					fmt.Sprintf("%.2f", r.AOA),
					r.CreatedAt.Format("2006-01-02 15:04:05"),
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), preview.Columns([]string{"ID", "Vehicle", "Mach", "AOA", "Created"}, rows))
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print an archived sweep in the report format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			rec, err := db.LoadSweep(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return go_aerotable.EncodeReport(cmd.OutOrStdout(), rec.Table)
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

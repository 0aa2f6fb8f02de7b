package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gehtsoft-usa/go_aerotable"
)

var columnNames = [go_aerotable.ColumnCount]string{"Mach", "CD", "CP", "CN", "CNa"}

func newCompareCmd(a *app) *cobra.Command {
	var tolerance float64
	cmd := &cobra.Command{
		Use:   "compare <reference> [table]",
		Short: "Compare a table with reference data",
		Long: `Compares the computed table with a reference file in the report format and
prints the largest deviation per column.

Without the table argument the sweep of the configuration is computed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := go_aerotable.ReadReport(args[0])
			if err != nil {
				return err
			}

			var table go_aerotable.Table
			if len(args) == 2 {
				table, err = go_aerotable.ReadReport(args[1])
			} else {
				table, err = computeTable(cmd.Context(), a)
			}
			if err != nil {
				return err
			}

			diff := go_aerotable.CompareTables(table, reference, tolerance)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Matched %d of %d reference rows\n", diff.Matched, len(reference))
			for c := go_aerotable.ColumnCD; c < go_aerotable.ColumnCount; c++ {
				fmt.Fprintf(out, "%-4s max |delta| %.6f at M=%.3f\n", columnNames[c], diff.MaxDelta[c], diff.WorstMach[c])
			}
			for _, m := range diff.Unmatched {
				fmt.Fprintf(out, "No computed row for M=%.3f\n", m)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.0005, "Largest Mach difference of matching rows")
	return cmd
}

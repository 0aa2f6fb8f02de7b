package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gehtsoft-usa/go_aerotable"
)

func newRangeCmd(a *app) *cobra.Command {
	var f sweepFlags
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the Mach numbers of the sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applySweepFlags(cmd, a, f)
			s := a.cfg.Sweep
			machs, err := go_aerotable.CreateMachRange(s.MachStart, s.MachStop, s.MachStep)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range machs {
				fmt.Fprintln(out, strconv.FormatFloat(m, 'f', 3, 64))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&f.start, "start", 0, "First Mach number")
	cmd.Flags().Float64Var(&f.stop, "stop", 0, "Mach number the sweep ends before")
	cmd.Flags().Float64Var(&f.step, "step", 0, "Mach increment")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gehtsoft-usa/go_aerotable"
	"github.com/gehtsoft-usa/go_aerotable/internal/archive"
	"github.com/gehtsoft-usa/go_aerotable/internal/preview"
)

type sweepFlags struct {
	start, stop, step, aoa float64
	output, archivePath    string
	print                  int
}

func newSweepCmd(a *app) *cobra.Command {
	var f sweepFlags
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute the coefficient table and write the report",
		Long: `Computes the configured vehicle at every Mach number of the sweep and
writes the report. The flags override the configuration file.

Example:
  aerotable sweep --stop 1.51 --step 0.05 --aoa 2 --output alpha.csv --print 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runSweep(ctx, cmd, a, f)
		},
	}

	cmd.Flags().Float64Var(&f.start, "start", 0, "First Mach number")
	cmd.Flags().Float64Var(&f.stop, "stop", 0, "Mach number the sweep ends before")
	cmd.Flags().Float64Var(&f.step, "step", 0, "Mach increment")
	cmd.Flags().Float64Var(&f.aoa, "aoa", 0, "Angle of attack in degrees")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Report file")
	cmd.Flags().StringVar(&f.archivePath, "archive", "", "Store the sweep in this archive database")
	cmd.Flags().IntVar(&f.print, "print", 0, "Print every n-th row to the terminal (0 = off)")
	return cmd
}

//applySweepFlags copies the flags the user set over the configuration
func applySweepFlags(cmd *cobra.Command, a *app, f sweepFlags) {
	flags := cmd.Flags()
	if flags.Changed("start") {
		a.cfg.Sweep.MachStart = f.start
	}
	if flags.Changed("stop") {
		a.cfg.Sweep.MachStop = f.stop
	}
	if flags.Changed("step") {
		a.cfg.Sweep.MachStep = f.step
	}
	if flags.Changed("aoa") {
		a.cfg.Sweep.AOA = f.aoa
	}
	if flags.Changed("output") {
		a.cfg.Report.Output = f.output
	}
	if flags.Changed("archive") {
		a.cfg.Archive.Enabled = true
		a.cfg.Archive.Path = f.archivePath
	}
}

//computeTable builds the table for the configuration loaded
func computeTable(ctx context.Context, a *app) (go_aerotable.Table, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	vehicle, err := a.cfg.BuildConfiguration()
	if err != nil {
		return nil, err
	}
	atmosphere, err := a.cfg.BuildAtmosphere()
	if err != nil {
		return nil, err
	}

	calc, err := a.cfg.BuildCalculator()
	if err != nil {
		return nil, err
	}

	table := go_aerotable.CreateAerodynamicTable(vehicle, calc)
	table.SetMachRange(a.cfg.Sweep.MachStart, a.cfg.Sweep.MachStop, a.cfg.Sweep.MachStep)
	table.SetAOA(a.cfg.Sweep.AOAAngle())
	table.SetOptions(
		go_aerotable.WithLogger(a.logger),
		go_aerotable.WithAtmosphere(atmosphere))

	a.logger.Debug("Vehicle", zap.Stringer("configuration", vehicle), zap.Stringer("atmosphere", atmosphere))
	return table.Table(ctx)
}

func runSweep(ctx context.Context, cmd *cobra.Command, a *app, f sweepFlags) error {
	applySweepFlags(cmd, a, f)

	table, err := computeTable(ctx, a)
	if err != nil {
		return err
	}

	if err := go_aerotable.WriteReport(table, a.cfg.Report.Output); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d rows to %s\n", len(table), a.cfg.Report.Output)

	if a.cfg.Archive.Enabled {
		db, err := archive.Open(a.cfg.Archive.Path, a.logger)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := db.SaveSweep(ctx, archive.SweepRecord{
			Vehicle:   a.cfg.Vehicle.Name,
			MachStart: a.cfg.Sweep.MachStart,
			MachStop:  a.cfg.Sweep.MachStop,
			MachStep:  a.cfg.Sweep.MachStep,
			AOA:       a.cfg.Sweep.AOA,
			Table:     table,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Archived as %s in %s\n", id, db.Path())
	}

	if f.print > 0 {
		fmt.Fprintln(out, preview.Render(table, f.print))
	}
	return nil
}

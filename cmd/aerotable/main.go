//Command aerotable computes the aerodynamic coefficients of a vehicle over a
//range of Mach numbers and writes them as a comparison table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gehtsoft-usa/go_aerotable/internal/config"
)

const defaultConfigPath = "aerotable.yaml"

//app is the state shared by the commands of one invocation
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	//newLogger builds the logger once the configuration is loaded
	newLogger func(cfg *config.Config, verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{newLogger: productionLogger}
}

func productionLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	level, err := cfg.Logging.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = cfg.Logging.Format
	if zc.Encoding == "console" {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "aerotable",
		Short: "Aerodynamic coefficient tables over a Mach sweep",
		Long: `aerotable evaluates a vehicle at a fixed angle of attack over a range of
Mach numbers and writes CD, CP, CN and CNa per sample, for comparison with
wind tunnel or flight test data.

The vehicle, the atmosphere and the sweep are read from a YAML
configuration file; run "aerotable config init" to create one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := a.newLogger(cfg, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfigPath, "Configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newSweepCmd(a))
	root.AddCommand(newRangeCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newArchiveCmd(a))
	return root
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

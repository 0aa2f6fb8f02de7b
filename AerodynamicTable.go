package go_aerotable

import (
	"context"

	"go.uber.org/zap"

	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
)

//Column indexes of a table row
const (
	ColumnMach = iota
	ColumnCD
	ColumnCP
	ColumnCN
	ColumnCNa
	ColumnCount
)

//DefaultMachStart, DefaultMachStop and DefaultMachStep are the sweep bounds
//an AerodynamicTable uses unless SetMachRange is called. They give 301
//samples, 0.00 to 3.00.
const (
	DefaultMachStart float64 = 0.0
	DefaultMachStop  float64 = 3.01
	DefaultMachStep  float64 = 0.01
)

//Row is one sample of the sweep: Mach, CD, CP distance from the nose tip
//in meters, CN and CNa, in this order
type Row [ColumnCount]float64

//Mach returns the Mach number of the sample
func (r Row) Mach() float64 { return r[ColumnMach] }

//CD returns the drag coefficient
func (r Row) CD() float64 { return r[ColumnCD] }

//CP returns the distance from the nose tip to the center of pressure in meters
func (r Row) CP() float64 { return r[ColumnCP] }

//CN returns the normal force coefficient
func (r Row) CN() float64 { return r[ColumnCN] }

//CNa returns the normal force coefficient slope
func (r Row) CNa() float64 { return r[ColumnCNa] }

//Table is the result of a sweep, ordered by ascending Mach
type Table []Row

//WarningHandler receives the warnings the calculator reported for one sample
type WarningHandler func(mach float64, warnings *WarningSet)

//TableOption changes how BuildTable runs
type TableOption func(*tableOptions)

type tableOptions struct {
	logger     *zap.Logger
	atmosphere Atmosphere
	onWarnings WarningHandler
}

//WithLogger makes the sweep log its progress and the calculator warnings
func WithLogger(logger *zap.Logger) TableOption {
	return func(o *tableOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

//WithAtmosphere sets the atmosphere of the flight conditions.
//The sea level standard atmosphere is used by default.
func WithAtmosphere(atmosphere Atmosphere) TableOption {
	return func(o *tableOptions) {
		o.atmosphere = atmosphere
	}
}

//WithWarningHandler sets the function to receive the calculator warnings.
//
//Without a handler the warnings of every sample are dropped once the sample
//is evaluated; only the logger, if set, sees them.
func WithWarningHandler(handler WarningHandler) TableOption {
	return func(o *tableOptions) {
		o.onWarnings = handler
	}
}

//BuildTable evaluates the configuration at each Mach number of
//CreateMachRange(machStart, machStop, machStep) and returns one row per
//sample.
//
//The flight conditions are created once: zero theta, zero roll rate, the
//angle of attack aoa in the positive pitch direction. Only the Mach number
//changes between the samples; the calculator receives a copy of the
//conditions and a fresh warning set every time.
//
//The sweep is all or nothing. A range error is returned as
//*InvalidRangeError, a calculator failure as *CalculatorError and a
//cancelled context as the context error; no table is returned in any of
//these cases.
func BuildTable(ctx context.Context, configuration Configuration, calculator Calculator,
	machStart, machStop, machStep float64, aoa unit.Angular, opts ...TableOption) (Table, error) {

	o := tableOptions{logger: zap.NewNop(), atmosphere: CreateDefaultAtmosphere()}
	for _, opt := range opts {
		opt(&o)
	}

	conditions := CreateFlightConditionsWithAtmosphere(configuration, o.atmosphere)
	conditions.SetTheta(unit.MustCreateAngular(0, unit.AngularRadian))
	conditions.SetMach(0)
	conditions.SetRollRate(0)
	conditions.SetAOA(aoa, 1)

	machs, err := CreateMachRange(machStart, machStop, machStep)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Sweep started",
		zap.String("vehicle", configuration.Name()),
		zap.Float64("mach_start", machStart),
		zap.Float64("mach_stop", machStop),
		zap.Float64("mach_step", machStep),
		zap.Int("samples", len(machs)),
		zap.Stringer("aoa", aoa))

	table := make(Table, 0, len(machs))
	for i, mach := range machs {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("Sweep cancelled", zap.Int("sample", i), zap.Error(err))
			return nil, err
		}

		conditions.SetMach(mach)
		warnings := NewWarningSet()
		forces, err := calculator.AerodynamicForces(configuration, conditions, warnings)
		if err != nil {
			o.logger.Error("Calculator failed", zap.Int("sample", i), zap.Float64("mach", mach), zap.Error(err))
			return nil, &CalculatorError{Index: i, Mach: mach, Err: err}
		}

		if !warnings.IsEmpty() {
			o.logger.Warn("Calculator warnings", zap.Float64("mach", mach), zap.Strings("warnings", warnings.Warnings()))
			if o.onWarnings != nil {
				o.onWarnings(mach, warnings)
			}
		}

		table = append(table, Row{mach, forces.CD(), forces.CP().Magnitude(), forces.CN(), forces.CNa()})
		o.logger.Debug("Sample evaluated", zap.Float64("mach", mach), zap.Stringer("forces", forces))
	}

	o.logger.Info("Sweep finished", zap.Int("rows", len(table)))
	return table, nil
}

//AerodynamicTable iterates a vehicle over a range of Mach numbers at a fixed
//angle of attack and returns or writes the table of its coefficients.
//
//The table is meant for comparison of the computed aerodynamics with
//published wind tunnel or flight test curves.
type AerodynamicTable struct {
	configuration Configuration
	calculator    Calculator
	machStart     float64
	machStop      float64
	machStep      float64
	aoa           unit.Angular
	options       []TableOption
}

//CreateAerodynamicTable creates the table for the configuration and the
//calculator specified with the default sweep: Mach 0.00 to 3.00 by 0.01 at
//zero angle of attack
func CreateAerodynamicTable(configuration Configuration, calculator Calculator) AerodynamicTable {
	return AerodynamicTable{
		configuration: configuration,
		calculator:    calculator,
		machStart:     DefaultMachStart,
		machStop:      DefaultMachStop,
		machStep:      DefaultMachStep,
		aoa:           unit.MustCreateAngular(0, unit.AngularDegree),
	}
}

//Configuration returns the vehicle the table is computed for
func (v AerodynamicTable) Configuration() Configuration {
	return v.configuration
}

//MachRange returns the sweep bounds
func (v AerodynamicTable) MachRange() (start, stop, step float64) {
	return v.machStart, v.machStop, v.machStep
}

//SetMachRange sets the sweep bounds. See CreateMachRange for how stop is treated.
func (v *AerodynamicTable) SetMachRange(start, stop, step float64) {
	v.machStart = start
	v.machStop = stop
	v.machStep = step
}

//AOA returns the angle of attack
func (v AerodynamicTable) AOA() unit.Angular {
	return v.aoa
}

//SetAOA sets the angle of attack
func (v *AerodynamicTable) SetAOA(aoa unit.Angular) {
	v.aoa = aoa
}

//SetOptions sets the options passed to BuildTable
func (v *AerodynamicTable) SetOptions(opts ...TableOption) {
	v.options = opts
}

//Table computes the table
func (v AerodynamicTable) Table(ctx context.Context) (Table, error) {
	return BuildTable(ctx, v.configuration, v.calculator, v.machStart, v.machStop, v.machStep, v.aoa, v.options...)
}

//WriteTable computes the table and writes it to the file specified.
//
//The file is overwritten if it exists. Nothing is written if the table
//can't be computed.
func (v AerodynamicTable) WriteTable(ctx context.Context, path string) error {
	table, err := v.Table(ctx)
	if err != nil {
		return err
	}
	return WriteReport(table, path)
}

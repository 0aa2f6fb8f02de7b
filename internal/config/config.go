//Package config keeps the settings of the aerotable command: the vehicle,
//the atmosphere, the sweep bounds and where the results go.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/gehtsoft-usa/go_aerotable"
	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
)

//Config holds all aerotable configuration
type Config struct {
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Atmosphere AtmosphereConfig `yaml:"atmosphere"`
	Sweep      SweepConfig      `yaml:"sweep"`
	Barrowman  BarrowmanConfig  `yaml:"barrowman"`
	Report     ReportConfig     `yaml:"report"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Logging    LoggingConfig    `yaml:"logging"`
}

//VehicleConfig describes the vehicle. All the lengths are in meters.
type VehicleConfig struct {
	Name         string                   `yaml:"name"`
	NoseShape    string                   `yaml:"nose_shape"` // conical, ogive, parabolic
	NoseLength   float64                  `yaml:"nose_length"`
	BodyLength   float64                  `yaml:"body_length"`
	BodyDiameter float64                  `yaml:"body_diameter"`
	FormFactor   float64                  `yaml:"form_factor"`
	DragTable    string                   `yaml:"drag_table"` // g1, g7, custom
	DragPoints   []go_aerotable.DataPoint `yaml:"drag_points,omitempty"`
	Fins         *FinConfig               `yaml:"fins,omitempty"`
}

//FinConfig describes the fin set. All the lengths are in meters.
type FinConfig struct {
	Count     int     `yaml:"count"`
	RootChord float64 `yaml:"root_chord"`
	TipChord  float64 `yaml:"tip_chord"`
	Span      float64 `yaml:"span"`
	Sweep     float64 `yaml:"sweep"`
	Position  float64 `yaml:"position"`
}

//AtmosphereConfig describes the air.
//
//The icao model uses only the altitude; the custom model uses all the fields.
type AtmosphereConfig struct {
	Model       string  `yaml:"model"`       // icao, custom
	Altitude    float64 `yaml:"altitude"`    // m
	Pressure    float64 `yaml:"pressure"`    // hPa
	Temperature float64 `yaml:"temperature"` // °C
	Humidity    float64 `yaml:"humidity"`    // %
}

//SweepConfig keeps the sweep bounds and the angle of attack in degrees
type SweepConfig struct {
	MachStart float64 `yaml:"mach_start"`
	MachStop  float64 `yaml:"mach_stop"`
	MachStep  float64 `yaml:"mach_step"`
	AOA       float64 `yaml:"aoa"`
}

//BarrowmanConfig tunes the Barrowman calculator
type BarrowmanConfig struct {
	MinimumBeta float64 `yaml:"minimum_beta"` // lower limit of sqrt(|1-M²|), 0 < β <= 1
}

//ReportConfig configures the report file
type ReportConfig struct {
	Output string `yaml:"output"`
}

//ArchiveConfig configures the sweep archive
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

//LoggingConfig configures logging
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

//DefaultConfig returns the default configuration: a small three fin rocket
//at the sea level, swept from Mach 0.00 to 3.00
func DefaultConfig() *Config {
	return &Config{
		Vehicle: VehicleConfig{
			Name:         "Alpha",
			NoseShape:    "ogive",
			NoseLength:   0.07,
			BodyLength:   0.31,
			BodyDiameter: 0.025,
			FormFactor:   1,
			DragTable:    "g7",
			Fins: &FinConfig{
				Count:     3,
				RootChord: 0.05,
				TipChord:  0.025,
				Span:      0.04,
				Sweep:     0.025,
				Position:  0.26,
			},
		},
		Atmosphere: AtmosphereConfig{
			Model:       "icao",
			Pressure:    1013.25,
			Temperature: 15,
		},
		Sweep: SweepConfig{
			MachStart: go_aerotable.DefaultMachStart,
			MachStop:  go_aerotable.DefaultMachStop,
			MachStep:  go_aerotable.DefaultMachStep,
		},
		Barrowman: BarrowmanConfig{
			MinimumBeta: go_aerotable.CreateBarrowmanCalculator().MinimumBeta(),
		},
		Report: ReportConfig{
			Output: "aerotable.csv",
		},
		Archive: ArchiveConfig{
			Path: "aerotable.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

//Load loads configuration from a YAML file.
//
//A missing file gives the defaults. The environment overrides are applied
//in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

//Save saves configuration to a YAML file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("AEROTABLE_OUTPUT"); path != "" {
		c.Report.Output = path
	}
	if path := os.Getenv("AEROTABLE_ARCHIVE"); path != "" {
		c.Archive.Path = path
		c.Archive.Enabled = true
	}
	if level := os.Getenv("AEROTABLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

//Validate checks that a sweep can be run with the configuration
func (c *Config) Validate() error {
	if _, err := c.BuildConfiguration(); err != nil {
		return err
	}
	if _, err := c.BuildAtmosphere(); err != nil {
		return err
	}
	if _, err := go_aerotable.CreateMachRange(c.Sweep.MachStart, c.Sweep.MachStop, c.Sweep.MachStep); err != nil {
		return err
	}
	if _, err := c.BuildCalculator(); err != nil {
		return err
	}
	if c.Report.Output == "" {
		return fmt.Errorf("report output path is not set")
	}
	if c.Archive.Enabled && c.Archive.Path == "" {
		return fmt.Errorf("archive is enabled but its path is not set")
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Logging.Format)
	}
	return nil
}

var noseShapes = map[string]byte{
	"conical":   go_aerotable.NoseConical,
	"ogive":     go_aerotable.NoseOgive,
	"parabolic": go_aerotable.NoseParabolic,
}

var dragTables = map[string]byte{
	"g1":     go_aerotable.DragTableG1,
	"g7":     go_aerotable.DragTableG7,
	"custom": go_aerotable.DragTableCustom,
}

func meters(v float64) unit.Distance {
	return unit.MustCreateDistance(v, unit.DistanceMeter)
}

//BuildConfiguration converts the vehicle section to the vehicle description.
//
//The configuration returned is validated.
func (c *Config) BuildConfiguration() (go_aerotable.Configuration, error) {
	v := c.Vehicle

	shape, ok := noseShapes[strings.ToLower(v.NoseShape)]
	if !ok {
		return go_aerotable.Configuration{}, fmt.Errorf("%w: unknown nose shape %q", go_aerotable.ErrInvalidConfiguration, v.NoseShape)
	}
	table, ok := dragTables[strings.ToLower(v.DragTable)]
	if !ok {
		return go_aerotable.Configuration{}, fmt.Errorf("%w: unknown drag table %q", go_aerotable.ErrInvalidConfiguration, v.DragTable)
	}

	var curve go_aerotable.DragCurve
	var err error
	if table == go_aerotable.DragTableCustom {
		curve, err = go_aerotable.CreateDragCurve(v.DragPoints)
	} else {
		curve, err = go_aerotable.StandardDragCurve(table)
	}
	if err != nil {
		return go_aerotable.Configuration{}, fmt.Errorf("%w: %v", go_aerotable.ErrInvalidConfiguration, err)
	}

	nose := go_aerotable.CreateNoseCone(shape, meters(v.NoseLength))
	var cfg go_aerotable.Configuration
	if v.Fins != nil {
		f := v.Fins
		fins := go_aerotable.CreateFinSet(f.Count, meters(f.RootChord), meters(f.TipChord), meters(f.Span), meters(f.Sweep), meters(f.Position))
		cfg = go_aerotable.CreateConfigurationWithFins(v.Name, nose, meters(v.BodyLength), meters(v.BodyDiameter), curve, fins)
	} else {
		cfg = go_aerotable.CreateConfiguration(v.Name, nose, meters(v.BodyLength), meters(v.BodyDiameter), curve)
	}
	if v.FormFactor != 0 {
		cfg.SetFormFactor(v.FormFactor)
	}

	if err := cfg.Validate(); err != nil {
		return go_aerotable.Configuration{}, err
	}
	return cfg, nil
}

//BuildAtmosphere converts the atmosphere section
func (c *Config) BuildAtmosphere() (go_aerotable.Atmosphere, error) {
	a := c.Atmosphere
	altitude := meters(a.Altitude)

	switch strings.ToLower(a.Model) {
	case "", "icao":
		return go_aerotable.CreateICAOAtmosphere(altitude), nil
	case "custom":
		temperature, err := unit.CreateTemperature(a.Temperature, unit.TemperatureCelsius)
		if err != nil {
			return go_aerotable.Atmosphere{}, err
		}
		pressure, err := unit.CreatePressure(a.Pressure, unit.PressureHPa)
		if err != nil {
			return go_aerotable.Atmosphere{}, err
		}
		return go_aerotable.CreateAtmosphere(altitude, pressure, temperature, a.Humidity)
	default:
		return go_aerotable.Atmosphere{}, fmt.Errorf("invalid atmosphere model: %s (valid: icao, custom)", a.Model)
	}
}

//BuildCalculator creates the Barrowman calculator tuned by the barrowman section
func (c *Config) BuildCalculator() (go_aerotable.BarrowmanCalculator, error) {
	calc := go_aerotable.CreateBarrowmanCalculator()
	beta := c.Barrowman.MinimumBeta
	if math.IsNaN(beta) || beta <= 0 || beta > 1 {
		return calc, fmt.Errorf("invalid barrowman minimum_beta: %g (must be in (0, 1])", beta)
	}
	calc.SetMinimumBeta(beta)
	return calc, nil
}

//AOAAngle returns the angle of attack
func (s SweepConfig) AOAAngle() unit.Angular {
	return unit.MustCreateAngular(s.AOA, unit.AngularDegree)
}

//ZapLevel parses the log level
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}
	return level, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/gehtsoft-usa/go_aerotable"
	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
)

func clearEnv(t *testing.T) {
	t.Setenv("AEROTABLE_OUTPUT", "")
	t.Setenv("AEROTABLE_ARCHIVE", "")
	t.Setenv("AEROTABLE_LOG_LEVEL", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Alpha", cfg.Vehicle.Name)
	assert.Equal(t, 3.01, cfg.Sweep.MachStop)
	assert.False(t, cfg.Archive.Enabled)

	vehicle, err := cfg.BuildConfiguration()
	require.NoError(t, err)
	assert.True(t, vehicle.HasFins())
	assert.Equal(t, go_aerotable.DragTableG7, vehicle.DragCurve().Table())
	assert.InDelta(t, 0.025, vehicle.BodyDiameter().In(unit.DistanceMeter), 1e-12)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "aerotable.yaml")

	cfg := DefaultConfig()
	cfg.Vehicle.Name = "Bravo"
	cfg.Vehicle.DragTable = "custom"
	cfg.Vehicle.DragPoints = []go_aerotable.DataPoint{{Mach: 0, CD: 0.4}, {Mach: 2, CD: 0.6}}
	cfg.Vehicle.Fins.Count = 4
	cfg.Sweep.AOA = 3
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	vehicle, err := loaded.BuildConfiguration()
	require.NoError(t, err)
	assert.Equal(t, 4, vehicle.Fins().Count())
	assert.Equal(t, go_aerotable.DragTableCustom, vehicle.DragCurve().Table())
	assert.InDelta(t, 0.5, vehicle.DragCurve().CD(1), 1e-12)
	assert.InDelta(t, 3, loaded.Sweep.AOAAngle().In(unit.AngularDegree), 1e-12)
}

func TestConfig_BodyWithoutFins(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "aerotable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicle:\n  fins: null\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	vehicle, err := cfg.BuildConfiguration()
	require.NoError(t, err)
	assert.False(t, vehicle.HasFins())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "aerotable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep:\n  mach_stop: 1.51\n  mach_step: 0.05\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.51, cfg.Sweep.MachStop)
	assert.Equal(t, 0.05, cfg.Sweep.MachStep)
	assert.Equal(t, "Alpha", cfg.Vehicle.Name)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aerotable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep: [1, 2\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AEROTABLE_OUTPUT", "/tmp/out.csv")
	t.Setenv("AEROTABLE_ARCHIVE", "/tmp/sweeps.db")
	t.Setenv("AEROTABLE_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/tmp/out.csv", cfg.Report.Output)
	assert.Equal(t, "/tmp/sweeps.db", cfg.Archive.Path)
	assert.True(t, cfg.Archive.Enabled)

	level, err := cfg.Logging.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown nose", func(c *Config) { c.Vehicle.NoseShape = "blunt" }},
		{"unknown drag table", func(c *Config) { c.Vehicle.DragTable = "g8" }},
		{"custom drag without points", func(c *Config) { c.Vehicle.DragTable = "custom" }},
		{"zero diameter", func(c *Config) { c.Vehicle.BodyDiameter = 0 }},
		{"fins off the body", func(c *Config) { c.Vehicle.Fins.Position = 1 }},
		{"bad sweep", func(c *Config) { c.Sweep.MachStep = 0 }},
		{"zero minimum beta", func(c *Config) { c.Barrowman.MinimumBeta = 0 }},
		{"minimum beta above one", func(c *Config) { c.Barrowman.MinimumBeta = 1.5 }},
		{"unknown atmosphere", func(c *Config) { c.Atmosphere.Model = "mars" }},
		{"humidity out of range", func(c *Config) { c.Atmosphere.Model = "custom"; c.Atmosphere.Humidity = 150 }},
		{"no output", func(c *Config) { c.Report.Output = "" }},
		{"archive without path", func(c *Config) { c.Archive.Enabled = true; c.Archive.Path = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_BuildCalculator(t *testing.T) {
	clearEnv(t)
	cfg := DefaultConfig()
	calc, err := cfg.BuildCalculator()
	require.NoError(t, err)
	assert.Equal(t, 0.3, calc.MinimumBeta())

	path := filepath.Join(t.TempDir(), "aerotable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("barrowman:\n  minimum_beta: 0.5\n"), 0644))
	loaded, err := Load(path)
	require.NoError(t, err)
	calc, err = loaded.BuildCalculator()
	require.NoError(t, err)
	assert.Equal(t, 0.5, calc.MinimumBeta())
}

func TestConfig_BuildAtmosphere(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Atmosphere.Altitude = 11000

	icao, err := cfg.BuildAtmosphere()
	require.NoError(t, err)
	assert.InDelta(t, 216.65, icao.Temperature().In(unit.TemperatureKelvin), 1e-9)

	cfg.Atmosphere.Model = "custom"
	cfg.Atmosphere.Temperature = 30
	cfg.Atmosphere.Humidity = 80
	custom, err := cfg.BuildAtmosphere()
	require.NoError(t, err)
	assert.InDelta(t, 303.15, custom.Temperature().In(unit.TemperatureKelvin), 1e-9)
	assert.Equal(t, 0.8, custom.Humidity())
	assert.InDelta(t, 101325, custom.Pressure().In(unit.PressurePascal), 1e-6)
}

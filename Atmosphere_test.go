package go_aerotable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gehtsoft-usa/go_aerotable"
	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
)

func TestDefaultAtmosphere(t *testing.T) {
	a := go_aerotable.CreateDefaultAtmosphere()
	assert.InDelta(t, 288.15, a.Temperature().In(unit.TemperatureKelvin), 1e-9)
	assert.InDelta(t, 101325, a.Pressure().In(unit.PressurePascal), 1e-6)
	assert.InDelta(t, 340.292, a.SpeedOfSound().In(unit.VelocityMPS), 1e-3)
	assert.InDelta(t, 1.22501, a.Density(), 1e-5)
	assert.InDelta(t, 1.4607e-5, a.KinematicViscosity(), 1e-9)
	assert.Equal(t, 0.0, a.Humidity())
}

func TestICAOAtmosphere(t *testing.T) {
	tropopause := go_aerotable.CreateICAOAtmosphere(unit.MustCreateDistance(11, unit.DistanceKilometer))
	assert.InDelta(t, 216.65, tropopause.Temperature().In(unit.TemperatureKelvin), 1e-9)
	assert.InDelta(t, 22631.7, tropopause.Pressure().In(unit.PressurePascal), 0.1)

	stratosphere := go_aerotable.CreateICAOAtmosphere(unit.MustCreateDistance(15, unit.DistanceKilometer))
	assert.InDelta(t, 216.65, stratosphere.Temperature().In(unit.TemperatureKelvin), 1e-9)
	assert.InDelta(t, 12044.3, stratosphere.Pressure().In(unit.PressurePascal), 0.1)

	assert.Less(t, stratosphere.Density(), tropopause.Density())
	assert.Less(t, tropopause.SpeedOfSound().In(unit.VelocityMPS), 300.0)
}

func TestCustomAtmosphere(t *testing.T) {
	a, err := go_aerotable.CreateAtmosphere(
		unit.MustCreateDistance(0, unit.DistanceMeter),
		unit.MustCreatePressure(1013.25, unit.PressureHPa),
		unit.MustCreateTemperature(15, unit.TemperatureCelsius),
		50)
	require.NoError(t, err)
	assert.Equal(t, 0.5, a.Humidity())
	assert.InDelta(t, 1.22112, a.Density(), 1e-5)

	_, err = go_aerotable.CreateAtmosphere(
		unit.MustCreateDistance(0, unit.DistanceMeter),
		unit.MustCreatePressure(1013.25, unit.PressureHPa),
		unit.MustCreateTemperature(15, unit.TemperatureCelsius),
		101)
	assert.Error(t, err)

	_, err = go_aerotable.CreateAtmosphere(
		unit.MustCreateDistance(0, unit.DistanceMeter),
		unit.MustCreatePressure(0, unit.PressureHPa),
		unit.MustCreateTemperature(15, unit.TemperatureCelsius),
		0)
	assert.Error(t, err)
}

func TestFlightConditionsVelocity(t *testing.T) {
	fc := go_aerotable.CreateFlightConditions(testConfiguration())
	fc.SetMach(2)
	assert.InDelta(t, 680.585, fc.Velocity().In(unit.VelocityMPS), 1e-3)
	assert.InDelta(t, 0.025, fc.ReferenceLength().In(unit.DistanceMeter), 1e-12)
	assert.InDelta(t, testConfiguration().ReferenceArea(), fc.ReferenceArea(), 1e-15)
}

package go_aerotable

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
)

const cIcaoStandardTemperatureK float64 = 288.15
const cIcaoStandardPressurePa float64 = 101325
const cIcaoTemperatureGradient float64 = -0.0065
const cIcaoTropopause float64 = 11000
const cGasConstantDryAir float64 = 287.05
const cGasConstantVapor float64 = 461.495
const cHeatCapacityRatio float64 = 1.4
const cGravity float64 = 9.80665
const cSutherlandReference float64 = 1.458e-6
const cSutherlandTemperature float64 = 110.4

//Atmosphere describes the air the vehicle flies through
type Atmosphere struct {
	altitude     unit.Distance
	pressure     unit.Pressure
	temperature  unit.Temperature
	humidity     float64
	density      float64
	speedOfSound unit.Velocity
	viscosity    float64
}

//CreateDefaultAtmosphere creates the ICAO standard atmosphere at the sea level
func CreateDefaultAtmosphere() Atmosphere {
	return CreateICAOAtmosphere(unit.MustCreateDistance(0, unit.DistanceMeter))
}

//CreateAtmosphere creates the atmosphere with the parameters specified.
//
//humidity may be set either as 0..1 or as 0..100 percent.
func CreateAtmosphere(altitude unit.Distance, pressure unit.Pressure, temperature unit.Temperature, humidity float64) (Atmosphere, error) {
	if humidity < 0 || humidity > 100 {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: humidity must be in 0..1 or 0..100 range")
	}
	if pressure.In(unit.PressurePascal) <= 0 {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: pressure must be greater than zero")
	}

	if humidity > 1 {
		humidity = humidity / 100
	}

	a := Atmosphere{
		altitude:    altitude,
		pressure:    pressure,
		temperature: temperature,
		humidity:    humidity,
	}
	a.calculate()
	return a, nil
}

//CreateICAOAtmosphere creates the dry ICAO standard atmosphere for the altitude specified.
//
//Above the tropopause the temperature is held constant.
func CreateICAOAtmosphere(altitude unit.Distance) Atmosphere {
	h := altitude.In(unit.DistanceMeter)
	var t, p float64
	if h <= cIcaoTropopause {
		t = cIcaoStandardTemperatureK + cIcaoTemperatureGradient*h
		p = cIcaoStandardPressurePa * math.Pow(t/cIcaoStandardTemperatureK, -cGravity/(cIcaoTemperatureGradient*cGasConstantDryAir))
	} else {
		t11 := cIcaoStandardTemperatureK + cIcaoTemperatureGradient*cIcaoTropopause
		p11 := cIcaoStandardPressurePa * math.Pow(t11/cIcaoStandardTemperatureK, -cGravity/(cIcaoTemperatureGradient*cGasConstantDryAir))
		t = t11
		p = p11 * math.Exp(-cGravity*(h-cIcaoTropopause)/(cGasConstantDryAir*t11))
	}

	a := Atmosphere{
		altitude:    altitude,
		temperature: unit.MustCreateTemperature(t, unit.TemperatureKelvin),
		pressure:    unit.MustCreatePressure(p, unit.PressurePascal),
	}
	a.calculate()
	return a
}

//Altitude returns the altitude over the sea level
func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

//Temperature returns the air temperature
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure returns the static pressure
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//Humidity returns the relative humidity as 0 to 1 coefficient
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

//SpeedOfSound returns the speed of sound at the atmosphere with such parameters
func (a Atmosphere) SpeedOfSound() unit.Velocity {
	return a.speedOfSound
}

//Density returns the air density in kg/m³
func (a Atmosphere) Density() float64 {
	return a.density
}

//KinematicViscosity returns the kinematic viscosity of the air in m²/s
func (a Atmosphere) KinematicViscosity() float64 {
	return a.viscosity
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%s,Pressure:%s,Temperature:%s,Humidity:%.2f%%",
		a.altitude, a.pressure, a.temperature, a.humidity*100)
}

func (a *Atmosphere) calculate() {
	t := a.temperature.In(unit.TemperatureKelvin)
	p := a.pressure.In(unit.PressurePascal)

	//partial pressure of the water vapor (Tetens)
	tc := t - 273.15
	pv := a.humidity * 610.78 * math.Exp(17.27*tc/(tc+237.3))
	if pv > p {
		pv = p
	}
	a.density = (p-pv)/(cGasConstantDryAir*t) + pv/(cGasConstantVapor*t)

	a.speedOfSound = unit.MustCreateVelocity(math.Sqrt(cHeatCapacityRatio*cGasConstantDryAir*t), unit.VelocityMPS)

	mu := cSutherlandReference * math.Pow(t, 1.5) / (t + cSutherlandTemperature)
	a.viscosity = mu / a.density
}

package unit

import "fmt"

//TemperatureKelvin is the value indicating that temperature value is expressed in kelvins
const TemperatureKelvin byte = 50

//TemperatureCelsius is the value indicating that temperature value is expressed in degrees of Celsius
const TemperatureCelsius byte = 51

//TemperatureFahrenheit is the value indicating that temperature value is expressed in degrees of Fahrenheit
const TemperatureFahrenheit byte = 52

//TemperatureRankine is the value indicating that temperature value is expressed in degrees of Rankine
const TemperatureRankine byte = 53

func temperatureToDefault(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureKelvin:
		return value, nil
	case TemperatureCelsius:
		return value + 273.15, nil
	case TemperatureFahrenheit:
		return (value-32)*5/9 + 273.15, nil
	case TemperatureRankine:
		return value * 5 / 9, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
	}
}

func temperatureFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureKelvin:
		return value, nil
	case TemperatureCelsius:
		return value - 273.15, nil
	case TemperatureFahrenheit:
		return (value-273.15)*9/5 + 32, nil
	case TemperatureRankine:
		return value * 9 / 5, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
	}
}

//Temperature keeps an absolute temperature. Internally the value is stored in kelvins.
type Temperature struct {
	value        float64
	defaultUnits byte
}

//CreateTemperature creates a temperature value.
//
//units may be any of the unit.Temperature* constants.
func CreateTemperature(value float64, units byte) (Temperature, error) {
	v, err := temperatureToDefault(value, units)
	if err != nil {
		return Temperature{}, err
	}
	if v <= 0 {
		return Temperature{}, fmt.Errorf("Temperature: %f is below absolute zero", value)
	}
	return Temperature{value: v, defaultUnits: units}, nil
}

//MustCreateTemperature creates the temperature value but panics instead of returning an error
func MustCreateTemperature(value float64, units byte) Temperature {
	v, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the temperature in the units specified or an error if the units are unknown
func (v Temperature) Value(units byte) (float64, error) {
	return temperatureFromDefault(v.value, units)
}

//Convert returns the same temperature displayed in other units
func (v Temperature) Convert(units byte) Temperature {
	return Temperature{value: v.value, defaultUnits: units}
}

//In returns the temperature in the units specified, or 0 if the units are unknown
func (v Temperature) In(units byte) float64 {
	x, e := temperatureFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Temperature) String() string {
	x, e := temperatureFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	switch v.defaultUnits {
	case TemperatureKelvin:
		unitName = "K"
	case TemperatureCelsius:
		unitName = "°C"
	case TemperatureFahrenheit:
		unitName = "°F"
	case TemperatureRankine:
		unitName = "°R"
	default:
		unitName = "?"
	}
	return fmt.Sprintf("%.1f%s", x, unitName)
}

//Units returns the units in which the value was created
func (v Temperature) Units() byte {
	return v.defaultUnits
}

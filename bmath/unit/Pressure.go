package unit

import "fmt"

//PressurePascal is the value indicating that pressure value is expressed in pascals
const PressurePascal byte = 40

//PressureHPa is the value indicating that pressure value is expressed in hectopascals
const PressureHPa byte = 41

//PressureBar is the value indicating that pressure value is expressed in bars
const PressureBar byte = 42

//PressureMmHg is the value indicating that pressure value is expressed in millimeters of mercury
const PressureMmHg byte = 43

//PressureInHg is the value indicating that pressure value is expressed in inches of mercury
const PressureInHg byte = 44

//PressurePSI is the value indicating that pressure value is expressed in pounds per square inch
const PressurePSI byte = 45

func pressureToDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressurePascal:
		return value, nil
	case PressureHPa:
		return value * 100, nil
	case PressureBar:
		return value * 100000, nil
	case PressureMmHg:
		return value * 133.322387415, nil
	case PressureInHg:
		return value * 3386.388640341, nil
	case PressurePSI:
		return value * 6894.757293168, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", units)
	}
}

func pressureFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressurePascal:
		return value, nil
	case PressureHPa:
		return value / 100, nil
	case PressureBar:
		return value / 100000, nil
	case PressureMmHg:
		return value / 133.322387415, nil
	case PressureInHg:
		return value / 3386.388640341, nil
	case PressurePSI:
		return value / 6894.757293168, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", units)
	}
}

//Pressure keeps a static pressure. Internally the value is stored in pascals.
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure value.
//
//units may be any of the unit.Pressure* constants.
func CreatePressure(value float64, units byte) (Pressure, error) {
	v, err := pressureToDefault(value, units)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure creates the pressure value but panics instead of returning an error
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the pressure in the units specified or an error if the units are unknown
func (v Pressure) Value(units byte) (float64, error) {
	return pressureFromDefault(v.value, units)
}

//Convert returns the same pressure displayed in other units
func (v Pressure) Convert(units byte) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

//In returns the pressure in the units specified, or 0 if the units are unknown
func (v Pressure) In(units byte) float64 {
	x, e := pressureFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Pressure) String() string {
	x, e := pressureFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case PressurePascal:
		unitName, accuracy = "Pa", 0
	case PressureHPa:
		unitName, accuracy = "hPa", 2
	case PressureBar:
		unitName, accuracy = "bar", 4
	case PressureMmHg:
		unitName, accuracy = "mmHg", 1
	case PressureInHg:
		unitName, accuracy = "inHg", 2
	case PressurePSI:
		unitName, accuracy = "psi", 3
	default:
		unitName, accuracy = "?", 6
	}
	return fmt.Sprintf("%.*f%s", accuracy, x, unitName)
}

//Units returns the units in which the value was created
func (v Pressure) Units() byte {
	return v.defaultUnits
}

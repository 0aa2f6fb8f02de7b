package unit

import "fmt"

//VelocityMPS is the value indicating that velocity value is expressed in meters per second
const VelocityMPS byte = 60

//VelocityKMH is the value indicating that velocity value is expressed in kilometers per hour
const VelocityKMH byte = 61

//VelocityFPS is the value indicating that velocity value is expressed in feet per second
const VelocityFPS byte = 62

//VelocityKT is the value indicating that velocity value is expressed in knots
const VelocityKT byte = 63

func velocityToDefault(value float64, units byte) (float64, error) {
	switch units {
	case VelocityMPS:
		return value, nil
	case VelocityKMH:
		return value / 3.6, nil
	case VelocityFPS:
		return value * 0.3048, nil
	case VelocityKT:
		return value / 1.94384449, nil
	default:
		return 0, fmt.Errorf("Velocity: unit %d is not supported", units)
	}
}

func velocityFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case VelocityMPS:
		return value, nil
	case VelocityKMH:
		return value * 3.6, nil
	case VelocityFPS:
		return value / 0.3048, nil
	case VelocityKT:
		return value * 1.94384449, nil
	default:
		return 0, fmt.Errorf("Velocity: unit %d is not supported", units)
	}
}

//Velocity keeps an airspeed or a speed of sound. Internally the value is stored in m/s.
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity value.
//
//units may be any of the unit.Velocity* constants.
func CreateVelocity(value float64, units byte) (Velocity, error) {
	v, err := velocityToDefault(value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity creates the velocity value but panics instead of returning an error
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the velocity in the units specified or an error if the units are unknown
func (v Velocity) Value(units byte) (float64, error) {
	return velocityFromDefault(v.value, units)
}

//Convert returns the same velocity displayed in other units
func (v Velocity) Convert(units byte) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

//In returns the velocity in the units specified, or 0 if the units are unknown
func (v Velocity) In(units byte) float64 {
	x, e := velocityFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Velocity) String() string {
	x, e := velocityFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	switch v.defaultUnits {
	case VelocityMPS:
		unitName = "m/s"
	case VelocityKMH:
		unitName = "km/h"
	case VelocityFPS:
		unitName = "ft/s"
	case VelocityKT:
		unitName = "kt"
	default:
		unitName = "?"
	}
	return fmt.Sprintf("%.1f%s", x, unitName)
}

//Units returns the units in which the value was created
func (v Velocity) Units() byte {
	return v.defaultUnits
}

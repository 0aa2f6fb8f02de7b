package unit

import (
	"fmt"
	"math"
)

//AngularRadian is the value indicating that the angle is set in radians
const AngularRadian byte = 0

//AngularDegree is the value indicating that the angle is set in degrees
const AngularDegree byte = 1

//AngularMRad is the value indicating that the angle is set in milliradians
const AngularMRad byte = 2

//AngularMOA is the value indicating that the angle is set in minutes of arc
const AngularMOA byte = 3

//Angular keeps an angle. Internally the value is stored in radians.
type Angular struct {
	value        float64
	defaultUnits byte
}

func toRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value / 180 * math.Pi, nil
	case AngularMRad:
		return value / 1000, nil
	case AngularMOA:
		return value / 180 * math.Pi / 60, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

func fromRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value * 180 / math.Pi, nil
	case AngularMRad:
		return value * 1000, nil
	case AngularMOA:
		return value * 180 / math.Pi * 60, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

//CreateAngular creates an angular value.
//
//units may be any of the unit.Angular* constants.
func CreateAngular(value float64, units byte) (Angular, error) {
	v, err := toRadians(value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

//MustCreateAngular creates the angular value but panics instead of returning an error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the angle in the units specified or an error if the units are unknown
func (v Angular) Value(units byte) (float64, error) {
	return fromRadians(v.value, units)
}

//Convert returns the same angle displayed in other units
func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

//In returns the angle in the units specified, or 0 if the units are unknown
func (v Angular) In(units byte) float64 {
	x, e := fromRadians(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Angular) String() string {
	x, e := fromRadians(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case AngularRadian:
		return fmt.Sprintf("%.6frad", x)
	case AngularDegree:
		return fmt.Sprintf("%.4f°", x)
	case AngularMRad:
		return fmt.Sprintf("%.2fmrad", x)
	case AngularMOA:
		return fmt.Sprintf("%.2fmoa", x)
	}
	return fmt.Sprintf("%.6f?", x)
}

//Units returns the units in which the value was created
func (v Angular) Units() byte {
	return v.defaultUnits
}

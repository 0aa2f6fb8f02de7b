package unit

import "fmt"

//DistanceMillimeter is the value indicating that the distance value is set in millimeters
const DistanceMillimeter byte = 10

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 11

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 12

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 13

//DistanceInch is the value indicating that the distance value is set in inches
const DistanceInch byte = 14

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 15

//Distance keeps a length value. Internally the value is stored in meters.
type Distance struct {
	value        float64
	defaultUnits byte
}

func distanceToDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceMillimeter:
		return value / 1000, nil
	case DistanceCentimeter:
		return value / 100, nil
	case DistanceMeter:
		return value, nil
	case DistanceKilometer:
		return value * 1000, nil
	case DistanceInch:
		return value * 0.0254, nil
	case DistanceFoot:
		return value * 0.3048, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

func distanceFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceMillimeter:
		return value * 1000, nil
	case DistanceCentimeter:
		return value * 100, nil
	case DistanceMeter:
		return value, nil
	case DistanceKilometer:
		return value / 1000, nil
	case DistanceInch:
		return value / 0.0254, nil
	case DistanceFoot:
		return value / 0.3048, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

//CreateDistance creates a distance value.
//
//units may be any of the unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceToDefault(value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returning an error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the distance in the units specified or an error if the units are unknown
func (v Distance) Value(units byte) (float64, error) {
	return distanceFromDefault(v.value, units)
}

//Convert returns the same distance displayed in other units
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In returns the distance in the units specified, or 0 if the units are unknown
func (v Distance) In(units byte) float64 {
	x, e := distanceFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Distance) String() string {
	x, e := distanceFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case DistanceMillimeter:
		unitName, accuracy = "mm", 1
	case DistanceCentimeter:
		unitName, accuracy = "cm", 2
	case DistanceMeter:
		unitName, accuracy = "m", 4
	case DistanceKilometer:
		unitName, accuracy = "km", 3
	case DistanceInch:
		unitName, accuracy = "\"", 2
	case DistanceFoot:
		unitName, accuracy = "'", 3
	default:
		unitName, accuracy = "?", 6
	}
	return fmt.Sprintf("%.*f%s", accuracy, x, unitName)
}

//Units returns the units in which the value was created
func (v Distance) Units() byte {
	return v.defaultUnits
}

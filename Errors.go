package go_aerotable

import (
	"errors"
	"fmt"
)

//ErrInvalidConfiguration is returned (wrapped) when a vehicle configuration
//cannot be evaluated: missing body, non-positive reference diameter etc.
var ErrInvalidConfiguration = errors.New("aerotable: invalid vehicle configuration")

//ErrInvalidFlightConditions is returned (wrapped) by a calculator when the
//flight conditions are outside of the physically meaningful domain
var ErrInvalidFlightConditions = errors.New("aerotable: invalid flight conditions")

//InvalidRangeError is returned when the sweep bounds can't produce a range
type InvalidRangeError struct {
	Start, Stop, Step float64
	Reason            string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("aerotable: invalid Mach range [%g, %g) step %g: %s", e.Start, e.Stop, e.Step, e.Reason)
}

//CalculatorError is returned when the aerodynamic calculator fails on a
//sample. The whole sweep is aborted.
type CalculatorError struct {
	Index int     //index of the failed sample in the range
	Mach  float64 //Mach number of the failed sample
	Err   error
}

func (e *CalculatorError) Error() string {
	return fmt.Sprintf("aerotable: calculator failed at sample %d (M=%.3f): %v", e.Index, e.Mach, e.Err)
}

func (e *CalculatorError) Unwrap() error {
	return e.Err
}

//IOError is returned when a report can't be written or read
type IOError struct {
	Op   string //create, write, close, rename, open, read, parse
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("aerotable: report %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("aerotable: report %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

package go_aerotable

import "math"

//CreateMachRange creates the list of Mach numbers to sweep over.
//
//The list starts at start and advances by step. The number of samples is
//floor((stop - start) / step), so stop itself is never included and the
//last partial interval is dropped: CreateMachRange(0, 2, 0.5) returns
//0, 0.5, 1.0, 1.5. Pass a slightly larger stop (e.g. 3.01 instead of 3.0)
//to get the upper bound as a sample.
//
//Each value is computed as start + step*i, so there is no accumulated
//rounding error along the range.
func CreateMachRange(start, stop, step float64) ([]float64, error) {
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsNaN(step) ||
		math.IsInf(start, 0) || math.IsInf(stop, 0) || math.IsInf(step, 0) {
		return nil, &InvalidRangeError{Start: start, Stop: stop, Step: step, Reason: "bounds must be finite"}
	}
	if step <= 0 {
		return nil, &InvalidRangeError{Start: start, Stop: stop, Step: step, Reason: "step must be greater than zero"}
	}
	if stop <= start {
		return nil, &InvalidRangeError{Start: start, Stop: stop, Step: step, Reason: "stop must be greater than start"}
	}

	size := int((stop - start) / step)
	if size < 1 {
		return nil, &InvalidRangeError{Start: start, Stop: stop, Step: step, Reason: "range is shorter than one step"}
	}

	result := make([]float64, size)
	for i := range result {
		result[i] = start + step*float64(i)
	}
	return result, nil
}

//MustCreateMachRange creates the Mach range but panics instead of returning an error
func MustCreateMachRange(start, stop, step float64) []float64 {
	r, err := CreateMachRange(start, stop, step)
	if err != nil {
		panic(err)
	}
	return r
}

package go_aerotable

//Calculator computes the aerodynamic coefficients of a vehicle.
//
//Implementations must return the same result for the same input and must
//not keep state between the calls. Non-fatal modeling caveats go to the
//warning set; an error means no result could be produced at all.
type Calculator interface {
	AerodynamicForces(configuration Configuration, conditions FlightConditions, warnings *WarningSet) (AerodynamicForces, error)
}

//CalculatorFunc adapts an ordinary function to the Calculator interface
type CalculatorFunc func(configuration Configuration, conditions FlightConditions, warnings *WarningSet) (AerodynamicForces, error)

//AerodynamicForces calls f
func (f CalculatorFunc) AerodynamicForces(configuration Configuration, conditions FlightConditions, warnings *WarningSet) (AerodynamicForces, error) {
	return f(configuration, conditions, warnings)
}

package go_aerotable

import (
	"fmt"

	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
)

//FlightConditions keeps the state of the flight the aerodynamic forces are
//computed for.
//
//The sweep creates one FlightConditions value and changes only the Mach
//number between the samples.
type FlightConditions struct {
	referenceLength unit.Distance
	referenceArea   float64
	atmosphere      Atmosphere
	theta           unit.Angular
	mach            float64
	rollRate        float64
	aoa             unit.Angular
	aoaDirection    float64
}

//CreateFlightConditions creates flight conditions for the vehicle in the
//standard sea level atmosphere.
//
//All the angles, the roll rate and the Mach number are zero.
func CreateFlightConditions(configuration Configuration) FlightConditions {
	return CreateFlightConditionsWithAtmosphere(configuration, CreateDefaultAtmosphere())
}

//CreateFlightConditionsWithAtmosphere creates flight conditions for the
//vehicle in the atmosphere specified
func CreateFlightConditionsWithAtmosphere(configuration Configuration, atmosphere Atmosphere) FlightConditions {
	return FlightConditions{
		referenceLength: configuration.BodyDiameter(),
		referenceArea:   configuration.ReferenceArea(),
		atmosphere:      atmosphere,
		theta:           unit.MustCreateAngular(0, unit.AngularRadian),
		aoa:             unit.MustCreateAngular(0, unit.AngularRadian),
		aoaDirection:    1,
	}
}

//ReferenceLength returns the length the moment coefficients are normalized by
func (v FlightConditions) ReferenceLength() unit.Distance {
	return v.referenceLength
}

//ReferenceArea returns the area in m² the force coefficients are normalized by
func (v FlightConditions) ReferenceArea() float64 {
	return v.referenceArea
}

//Atmosphere returns the atmosphere the vehicle flies in
func (v FlightConditions) Atmosphere() Atmosphere {
	return v.atmosphere
}

//SetAtmosphere changes the atmosphere the vehicle flies in
func (v *FlightConditions) SetAtmosphere(atmosphere Atmosphere) {
	v.atmosphere = atmosphere
}

//Theta returns the direction of the lateral airflow around the vehicle axis
func (v FlightConditions) Theta() unit.Angular {
	return v.theta
}

//SetTheta sets the direction of the lateral airflow around the vehicle axis
func (v *FlightConditions) SetTheta(theta unit.Angular) {
	v.theta = theta
}

//Mach returns the Mach number of the flight
func (v FlightConditions) Mach() float64 {
	return v.mach
}

//SetMach sets the Mach number of the flight
func (v *FlightConditions) SetMach(mach float64) {
	v.mach = mach
}

//RollRate returns the roll rate in rad/s
func (v FlightConditions) RollRate() float64 {
	return v.rollRate
}

//SetRollRate sets the roll rate in rad/s
func (v *FlightConditions) SetRollRate(rate float64) {
	v.rollRate = rate
}

//AOA returns the angle of attack
func (v FlightConditions) AOA() unit.Angular {
	return v.aoa
}

//AOADirection returns the direction of the angle of attack in the pitch
//plane: 1 for a positive pitch, -1 for a negative one
func (v FlightConditions) AOADirection() float64 {
	return v.aoaDirection
}

//SetAOA sets the angle of attack as a (magnitude, direction) pair
func (v *FlightConditions) SetAOA(aoa unit.Angular, direction float64) {
	v.aoa = aoa
	v.aoaDirection = direction
}

//Velocity returns the airspeed that corresponds to the Mach number in the current atmosphere
func (v FlightConditions) Velocity() unit.Velocity {
	return unit.MustCreateVelocity(v.mach*v.atmosphere.SpeedOfSound().In(unit.VelocityMPS), unit.VelocityMPS)
}

func (v FlightConditions) String() string {
	return fmt.Sprintf("M=%.3f,AOA=%s,Theta=%s,RollRate=%.3f", v.mach, v.aoa, v.theta, v.rollRate)
}

package go_aerotable

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
	"github.com/gehtsoft-usa/go_aerotable/bmath/vector"
)

const cNoseNormalForceSlope float64 = 2.0
const cMinimumBeta float64 = 0.3
const cTransonicLow float64 = 0.8
const cTransonicHigh float64 = 1.2
const cLargeAOA float64 = 17.0 //degrees
const cLaminarReynolds float64 = 1e4
const cLaminarFriction float64 = 1.48e-2
const cMaxBarrowmanFins int = 8

//BarrowmanCalculator estimates the aerodynamic coefficients of a
//nose + cylinder + fin set vehicle by Barrowman's method, extended with a
//Prandtl-Glauert compressibility correction of the fin normal force and a
//skin friction drag estimate.
//
//The calculator has no state and can be shared.
type BarrowmanCalculator struct {
	minimumBeta float64
}

//CreateBarrowmanCalculator creates an instance of the calculator
func CreateBarrowmanCalculator() BarrowmanCalculator {
	return BarrowmanCalculator{minimumBeta: cMinimumBeta}
}

//MinimumBeta returns the lower limit of the compressibility factor sqrt(|1-M²|)
func (c BarrowmanCalculator) MinimumBeta() float64 {
	return c.minimumBeta
}

//SetMinimumBeta sets the lower limit of the compressibility factor.
//
//The correction 1/β diverges at M=1, so β is clamped in the transonic band.
func (c *BarrowmanCalculator) SetMinimumBeta(beta float64) {
	c.minimumBeta = beta
}

//AerodynamicForces computes the coefficients of the configuration at the conditions specified
func (c BarrowmanCalculator) AerodynamicForces(configuration Configuration, conditions FlightConditions, warnings *WarningSet) (AerodynamicForces, error) {
	if err := configuration.Validate(); err != nil {
		return AerodynamicForces{}, err
	}
	mach := conditions.Mach()
	if math.IsNaN(mach) || math.IsInf(mach, 0) || mach < 0 {
		return AerodynamicForces{}, fmt.Errorf("%w: Mach %g", ErrInvalidFlightConditions, mach)
	}
	if warnings == nil {
		warnings = NewWarningSet()
	}

	if mach > cTransonicLow && mach < cTransonicHigh {
		warnings.Add("Transonic flight at M=%.2f, normal force estimate is unreliable", mach)
	}
	aoa := conditions.AOA().In(unit.AngularRadian)
	if math.Abs(conditions.AOA().In(unit.AngularDegree)) > cLargeAOA {
		warnings.Add("Large angle of attack %.1f°, linear normal force model is inaccurate", conditions.AOA().In(unit.AngularDegree))
	}

	cna, cp, err := c.normalForce(configuration, mach, warnings)
	if err != nil {
		return AerodynamicForces{}, err
	}
	cn := cna * math.Sin(aoa) * conditions.AOADirection()
	cd := c.drag(configuration, conditions, warnings)

	return CreateAerodynamicForces(cd, cn, cna, cp), nil
}

func (c BarrowmanCalculator) beta(mach float64) float64 {
	beta := math.Sqrt(math.Abs(1 - mach*mach))
	if beta < c.minimumBeta {
		beta = c.minimumBeta
	}
	return beta
}

//normalForce returns the normal force slope and the center of pressure
func (c BarrowmanCalculator) normalForce(configuration Configuration, mach float64, warnings *WarningSet) (float64, vector.Vector, error) {
	k, err := configuration.Nose().cpFactor()
	if err != nil {
		return 0, vector.Zero, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	slopes := []float64{cNoseNormalForceSlope}
	points := []vector.Vector{vector.Create(k*configuration.Nose().Length().In(unit.DistanceMeter), 0, 0)}

	if configuration.HasFins() {
		f := configuration.Fins()
		if f.Count() > cMaxBarrowmanFins {
			warnings.Add("%d fins, fin-fin interference is not modeled", f.Count())
		}
		d := configuration.BodyDiameter().In(unit.DistanceMeter)
		r := d / 2
		s := f.Span().In(unit.DistanceMeter)
		cr := f.RootChord().In(unit.DistanceMeter)
		ct := f.TipChord().In(unit.DistanceMeter)
		xr := f.Sweep().In(unit.DistanceMeter)
		xb := f.Position().In(unit.DistanceMeter)

		midChord := math.Sqrt(s*s + math.Pow(xr+ct/2-cr/2, 2))
		interference := 1 + r/(s+r)
		cnaFins := interference * (4 * float64(f.Count()) * math.Pow(s/d, 2)) /
			(1 + math.Sqrt(1+math.Pow(2*midChord/(cr+ct), 2)))
		cnaFins = cnaFins / c.beta(mach)

		xf := xb + xr*(cr+2*ct)/(3*(cr+ct)) + ((cr+ct)-cr*ct/(cr+ct))/6

		slopes = append(slopes, cnaFins)
		points = append(points, vector.Create(xf, 0, 0))
	}

	var cna float64
	for _, s := range slopes {
		cna += s
	}
	return cna, vector.WeightedAverage(points, slopes), nil
}

//drag returns the zero-lift drag coefficient: the pressure and base drag
//from the drag curve plus the skin friction drag
func (c BarrowmanCalculator) drag(configuration Configuration, conditions FlightConditions, warnings *WarningSet) float64 {
	mach := conditions.Mach()
	curve := configuration.DragCurve()
	if mach > curve.MaxMach() {
		warnings.Add("M=%.2f is beyond the drag data (M=%.2f), drag is extrapolated linearly", mach, curve.MaxMach())
	}
	pressure := configuration.FormFactor() * curve.CD(mach)

	length := configuration.BodyLength().In(unit.DistanceMeter)
	velocity := conditions.Velocity().In(unit.VelocityMPS)
	reynolds := velocity * length / conditions.Atmosphere().KinematicViscosity()

	cf := cLaminarFriction
	if reynolds > cLaminarReynolds {
		cf = 1 / math.Pow(1.50*math.Log(reynolds)-5.6, 2)
	}
	if mach < 1 {
		cf = cf * (1 - 0.1*mach*mach)
	} else {
		cf = cf / math.Pow(1+0.15*mach*mach, 0.58)
	}
	friction := cf * configuration.WettedArea() / configuration.ReferenceArea()

	return pressure + friction
}

package go_aerotable

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_aerotable/bmath/unit"
)

//NoseConical is a straight cone nose
const NoseConical byte = 1

//NoseOgive is a tangent ogive nose
const NoseOgive byte = 2

//NoseParabolic is a parabolic series nose
const NoseParabolic byte = 3

//NoseCone keeps the description of the vehicle nose cone
type NoseCone struct {
	shape  byte
	length unit.Distance
}

//CreateNoseCone creates the nose cone description.
//
//shape must be one of the Nose* constants.
func CreateNoseCone(shape byte, length unit.Distance) NoseCone {
	return NoseCone{shape: shape, length: length}
}

//Shape returns the shape of the nose cone
func (v NoseCone) Shape() byte {
	return v.shape
}

//Length returns the length of the nose cone
func (v NoseCone) Length() unit.Distance {
	return v.length
}

//cpFactor returns the position of the nose center of pressure as a fraction of its length
func (v NoseCone) cpFactor() (float64, error) {
	switch v.shape {
	case NoseConical:
		return 0.666, nil
	case NoseOgive:
		return 0.466, nil
	case NoseParabolic:
		return 0.5, nil
	default:
		return 0, fmt.Errorf("unknown nose shape %d", v.shape)
	}
}

//FinSet keeps the description of a set of identical trapezoidal fins
type FinSet struct {
	count     int
	rootChord unit.Distance
	tipChord  unit.Distance
	span      unit.Distance
	sweep     unit.Distance
	position  unit.Distance
}

//CreateFinSet creates the fin set description.
//
//sweep is the axial distance between the leading edges of the root and the
//tip chords, position is the distance from the nose tip to the leading edge
//of the root chord.
func CreateFinSet(count int, rootChord, tipChord, span, sweep, position unit.Distance) FinSet {
	return FinSet{
		count:     count,
		rootChord: rootChord,
		tipChord:  tipChord,
		span:      span,
		sweep:     sweep,
		position:  position,
	}
}

//Count returns the number of fins
func (v FinSet) Count() int {
	return v.count
}

//RootChord returns the length of the fin root chord
func (v FinSet) RootChord() unit.Distance {
	return v.rootChord
}

//TipChord returns the length of the fin tip chord
func (v FinSet) TipChord() unit.Distance {
	return v.tipChord
}

//Span returns the fin semi-span measured from the body surface
func (v FinSet) Span() unit.Distance {
	return v.span
}

//Sweep returns the axial offset of the tip chord leading edge
func (v FinSet) Sweep() unit.Distance {
	return v.sweep
}

//Position returns the distance from the nose tip to the root chord leading edge
func (v FinSet) Position() unit.Distance {
	return v.position
}

//planformArea returns the area of one fin in m²
func (v FinSet) planformArea() float64 {
	return (v.rootChord.In(unit.DistanceMeter) + v.tipChord.In(unit.DistanceMeter)) / 2 * v.span.In(unit.DistanceMeter)
}

//Configuration is the vehicle description the aerodynamic table is computed for.
//
//The sweep passes it to the calculator unmodified.
type Configuration struct {
	name         string
	nose         NoseCone
	bodyLength   unit.Distance
	bodyDiameter unit.Distance
	hasFins      bool
	fins         FinSet
	drag         DragCurve
	formFactor   float64
}

//CreateConfiguration creates a vehicle without fins.
//
//bodyLength is the overall length including the nose cone.
func CreateConfiguration(name string, nose NoseCone, bodyLength, bodyDiameter unit.Distance, drag DragCurve) Configuration {
	return Configuration{
		name:         name,
		nose:         nose,
		bodyLength:   bodyLength,
		bodyDiameter: bodyDiameter,
		drag:         drag,
		formFactor:   1,
	}
}

//CreateConfigurationWithFins creates a vehicle with a fin set
func CreateConfigurationWithFins(name string, nose NoseCone, bodyLength, bodyDiameter unit.Distance, drag DragCurve, fins FinSet) Configuration {
	c := CreateConfiguration(name, nose, bodyLength, bodyDiameter, drag)
	c.hasFins = true
	c.fins = fins
	return c
}

//Name returns the name of the vehicle
func (v Configuration) Name() string {
	return v.name
}

//Nose returns the nose cone of the vehicle
func (v Configuration) Nose() NoseCone {
	return v.nose
}

//BodyLength returns the overall length of the vehicle
func (v Configuration) BodyLength() unit.Distance {
	return v.bodyLength
}

//BodyDiameter returns the body diameter, which is also the reference length
func (v Configuration) BodyDiameter() unit.Distance {
	return v.bodyDiameter
}

//HasFins returns the flag indicating whether the vehicle has a fin set
func (v Configuration) HasFins() bool {
	return v.hasFins
}

//Fins returns the fin set of the vehicle
func (v Configuration) Fins() FinSet {
	return v.fins
}

//DragCurve returns the zero-lift pressure drag curve of the vehicle
func (v Configuration) DragCurve() DragCurve {
	return v.drag
}

//FormFactor returns the multiplier applied to the drag curve
func (v Configuration) FormFactor() float64 {
	return v.formFactor
}

//SetFormFactor sets the multiplier applied to the drag curve.
//
//The form factor plays the same role as the inverse of a ballistic
//coefficient: 1 means the vehicle follows the curve exactly.
func (v *Configuration) SetFormFactor(f float64) {
	v.formFactor = f
}

//ReferenceArea returns the body cross-section area in m²
func (v Configuration) ReferenceArea() float64 {
	r := v.bodyDiameter.In(unit.DistanceMeter) / 2
	return math.Pi * r * r
}

//WettedArea returns the area exposed to the flow in m²
func (v Configuration) WettedArea() float64 {
	d := v.bodyDiameter.In(unit.DistanceMeter)
	ln := v.nose.length.In(unit.DistanceMeter)
	area := math.Pi * d * (v.bodyLength.In(unit.DistanceMeter) - ln)
	area += math.Pi * d / 2 * math.Sqrt(ln*ln+d*d/4)
	if v.hasFins {
		area += 2 * float64(v.fins.count) * v.fins.planformArea()
	}
	return area
}

//Validate checks that the vehicle can be evaluated.
//
//The error returned wraps ErrInvalidConfiguration.
func (v Configuration) Validate() error {
	d := v.bodyDiameter.In(unit.DistanceMeter)
	l := v.bodyLength.In(unit.DistanceMeter)
	ln := v.nose.length.In(unit.DistanceMeter)

	switch {
	case d <= 0:
		return fmt.Errorf("%w: body diameter must be greater than zero", ErrInvalidConfiguration)
	case l <= 0:
		return fmt.Errorf("%w: body length must be greater than zero", ErrInvalidConfiguration)
	case ln <= 0 || ln > l:
		return fmt.Errorf("%w: nose length must be in (0, body length]", ErrInvalidConfiguration)
	case len(v.drag.Points()) < 2:
		return fmt.Errorf("%w: drag curve is not set", ErrInvalidConfiguration)
	case v.formFactor <= 0:
		return fmt.Errorf("%w: form factor must be greater than zero", ErrInvalidConfiguration)
	}
	if _, err := v.nose.cpFactor(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	if !v.hasFins {
		return nil
	}
	f := v.fins
	switch {
	case f.count < 1:
		return fmt.Errorf("%w: fin count must be at least 1", ErrInvalidConfiguration)
	case f.rootChord.In(unit.DistanceMeter) <= 0:
		return fmt.Errorf("%w: fin root chord must be greater than zero", ErrInvalidConfiguration)
	case f.tipChord.In(unit.DistanceMeter) < 0:
		return fmt.Errorf("%w: fin tip chord must not be negative", ErrInvalidConfiguration)
	case f.span.In(unit.DistanceMeter) <= 0:
		return fmt.Errorf("%w: fin span must be greater than zero", ErrInvalidConfiguration)
	case f.position.In(unit.DistanceMeter) < 0 || f.position.In(unit.DistanceMeter)+f.rootChord.In(unit.DistanceMeter) > l+1e-9:
		return fmt.Errorf("%w: fins must be placed within the body", ErrInvalidConfiguration)
	}
	return nil
}

func (v Configuration) String() string {
	return fmt.Sprintf("%s (L=%s, D=%s)", v.name, v.bodyLength, v.bodyDiameter)
}

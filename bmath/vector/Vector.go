//Package vector provides the 3D vector operations used to place
//aerodynamic forces along the vehicle.
//
//X runs along the vehicle axis from the nose tip, Y and Z are the
//lateral axes.
package vector

import (
	"fmt"
	"math"
)

//Vector is a 3D vector
type Vector struct {
	X float64 //X-coordinate
	Y float64 //Y-coordinate
	Z float64 //Z-coordinate
}

//Zero is the vector at the origin
var Zero = Vector{}

func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f,Z=%f]", v.X, v.Y, v.Z)
}

//Create creates a vector from its coordinates
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

//Dot returns the scalar product of two vectors
func (v Vector) Dot(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

//Magnitude returns the length of the vector, i.e. the distance
//from (0,0,0) to the point set by the coordinates
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

//MultiplyByConst multiplies the vector by a scalar
func (v Vector) MultiplyByConst(a float64) Vector {
	return Create(a*v.X, a*v.Y, a*v.Z)
}

//Add adds two vectors
func (v Vector) Add(b Vector) Vector {
	return Create(v.X+b.X, v.Y+b.Y, v.Z+b.Z)
}

//WeightedAverage returns the average of the points weighted by w.
//
//This is how component centers of pressure combine into the vehicle
//center of pressure. Zero is returned when the weights sum to zero.
func WeightedAverage(points []Vector, w []float64) Vector {
	var sum Vector
	var total float64
	for i, p := range points {
		if i >= len(w) {
			break
		}
		sum = sum.Add(p.MultiplyByConst(w[i]))
		total += w[i]
	}
	if math.Abs(total) < 1e-10 {
		return Zero
	}
	return sum.MultiplyByConst(1.0 / total)
}

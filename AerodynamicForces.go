package go_aerotable

import (
	"fmt"

	"github.com/gehtsoft-usa/go_aerotable/bmath/vector"
)

//AerodynamicForces keeps the coefficients computed for one set of flight conditions
type AerodynamicForces struct {
	cd  float64
	cn  float64
	cna float64
	cp  vector.Vector
}

//CreateAerodynamicForces creates the coefficient set.
//
//cp is the center of pressure measured from the nose tip in meters.
func CreateAerodynamicForces(cd, cn, cna float64, cp vector.Vector) AerodynamicForces {
	return AerodynamicForces{cd: cd, cn: cn, cna: cna, cp: cp}
}

//CD returns the drag coefficient
func (v AerodynamicForces) CD() float64 {
	return v.cd
}

//CN returns the normal force coefficient
func (v AerodynamicForces) CN() float64 {
	return v.cn
}

//CNa returns the normal force coefficient derivative by the angle of attack (per radian)
func (v AerodynamicForces) CNa() float64 {
	return v.cna
}

//CP returns the position of the center of pressure
func (v AerodynamicForces) CP() vector.Vector {
	return v.cp
}

func (v AerodynamicForces) String() string {
	return fmt.Sprintf("CD=%.6f,CN=%.6f,CNa=%.6f,CP=%s", v.cd, v.cn, v.cna, v.cp)
}

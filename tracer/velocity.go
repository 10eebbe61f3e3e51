package tracer

import (
	"fmt"
	"math"

	"github.com/fieldtrace/gobem/utils"
)

// eVToMmNs converts the square root of an energy in electronvolt to a
// speed in mm/ns for an electron.
const eVToMmNs = 0.5930969604919433

// VelocityVec computes an initial velocity vector with the magnitude
// corresponding to the supplied energy (eV) along the given direction,
// which need not be normalized. Energies above 10 keV print a warning, as
// relativistic tracing is not implemented.
func VelocityVec(eV float64, direction [3]float64) (v [3]float64) {
	if eV <= 0.0 {
		panic(fmt.Errorf("velocity vector requires a positive energy, have %v eV", eV))
	}
	if eV > 10000 {
		fmt.Printf("WARNING: velocity vector with large energy (%v eV) requested. Note that relativistic tracing is not yet implemented.\n", eV)
	}
	var (
		V    = eVToMmNs * math.Sqrt(eV)
		norm = utils.Norm3D(direction[0], direction[1], direction[2])
	)
	for i := range v {
		v[i] = V * direction[i] / norm
	}
	return
}

// VelocityVecSpherical computes the initial velocity vector from an energy
// and spherical angles: theta with the z axis, phi with the x axis.
func VelocityVecSpherical(eV, theta, phi float64) [3]float64 {
	return VelocityVec(eV, [3]float64{
		math.Sin(theta) * math.Cos(phi),
		math.Sin(theta) * math.Sin(phi),
		math.Cos(theta),
	})
}

// VelocityVecXZPlane computes the initial velocity vector in the xz plane
// from an energy and the angle with the z axis.
func VelocityVecXZPlane(eV, angle float64, downward bool) [3]float64 {
	sign := 1.0
	if downward {
		sign = -1.0
	}
	return VelocityVec(eV, [3]float64{math.Sin(angle), 0.0, sign * math.Cos(angle)})
}

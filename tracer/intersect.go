package tracer

import (
	"math"
)

// Plane crossing utilities. These scan a trajectory backward from its last
// sample and linearly interpolate the first consecutive pair straddling
// the target coordinate, so for oscillating trajectories the crossing
// closest to the end wins.

// XYPlaneIntersection2D interpolates a 4-component (r, z, vr, vz)
// axisymmetric trajectory to its crossing with the plane at the given z.
// The second state component carries z. Returns false if the trajectory
// never crosses the plane.
func XYPlaneIntersection2D(positions [][4]float64, z float64) (result [4]float64, ok bool) {
	for i := len(positions) - 1; i > 0; i-- {
		var (
			z1 = positions[i-1][1]
			z2 = positions[i][1]
		)
		if math.Min(z1, z2) <= z && z <= math.Max(z1, z2) {
			ratio := math.Abs((z - z1) / (z1 - z2))
			for k := 0; k < 4; k++ {
				result[k] = positions[i-1][k] + ratio*(positions[i][k]-positions[i-1][k])
			}
			return result, true
		}
	}
	return
}

// XYPlaneIntersection3D interpolates a 6-component trajectory to its
// crossing with the plane at the given z.
func XYPlaneIntersection3D(positions [][6]float64, z float64) (result [6]float64, ok bool) {
	for i := len(positions) - 1; i > 0; i-- {
		var (
			z1 = positions[i-1][2]
			z2 = positions[i][2]
		)
		if math.Min(z1, z2) <= z && z <= math.Max(z1, z2) {
			ratio := math.Abs((z - z1) / (z1 - z2))
			for k := 0; k < 6; k++ {
				result[k] = positions[i-1][k] + ratio*(positions[i][k]-positions[i-1][k])
			}
			return result, true
		}
	}
	return
}

// PlaneIntersection interpolates the trajectory to its crossing with the
// plane at the given z coordinate.
func (tr *Trajectory) PlaneIntersection(z float64) ([6]float64, bool) {
	return XYPlaneIntersection3D(tr.Positions, z)
}

// AxisIntersection computes the z coordinate where an axisymmetric
// trajectory crosses the optical axis (r = 0), by locating the first sign
// change of r and interpolating linearly. Only meaningful in radial
// symmetry; a 3D trajectory never passes exactly through the axis.
// Returns false if r never changes sign.
func AxisIntersection(positions [][6]float64) (z float64, ok bool) {
	for i := 1; i < len(positions); i++ {
		var (
			r1 = positions[i-1][0]
			r2 = positions[i][0]
		)
		if r1 == r2 || (r1 > 0) == (r2 > 0) && r2 != 0 {
			continue
		}
		ratio := math.Abs(r1) / math.Abs(r2-r1)
		return positions[i-1][1] + ratio*(positions[i][1]-positions[i-1][1]), true
	}
	return
}

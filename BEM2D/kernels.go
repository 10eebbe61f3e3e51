package BEM2D

import (
	"math"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// Closed form potential and first derivative kernels of a charged ring,
// derived from the Green's function of the axisymmetric Laplace equation.
// Arguments are the target point (r0,z0) and the ring position (r,z); the
// overall units absorb the 1/(4 pi eps0) prefactor so that the 3D point
// kernel is 1/(4 r).

// PotentialRadialRing is K(t) r / sqrt((r+r0)^2 + (z-z0)^2) with the
// parameter t = 4 r r0 / ((r+r0)^2 + (z-z0)^2).
func PotentialRadialRing(r0, z0, r, z float64) float64 {
	rz2 := utils.POW(r+r0, 2) + utils.POW(z-z0, 2)
	t := 4.0 * r * r0 / rz2
	return utils.EllipK(t) * r / math.Sqrt(rz2)
}

// Dr1PotentialRadialRing is the partial derivative of the ring potential
// with respect to the target radial coordinate r0. On the symmetry axis the
// derivative vanishes by symmetry; the guard keeps the evaluation out of
// the removable singularity.
func Dr1PotentialRadialRing(r0, z0, r, z float64) float64 {
	if math.Abs(r0) < types.MinDistanceAxis {
		return 0.0
	}
	s := utils.Norm2D(z-z0, r+r0)
	s1 := (r0 + r) / s
	t := 4.0 * r * r0 / utils.POW(s, 2)
	A := utils.EllipE(t)
	B := utils.EllipK(t)
	ellipeTerm := -(2.0*r*r0*s1 - r*s) / (2.0*r0*utils.POW(s, 2) - 8.0*utils.POW(r0, 2)*r)
	ellipkTerm := -r / (2.0 * r0 * s)
	return A*ellipeTerm + B*ellipkTerm
}

// Dz1PotentialRadialRing is the partial derivative of the ring potential
// with respect to the target axial coordinate z0.
func Dz1PotentialRadialRing(r0, z0, r, z float64) float64 {
	rz2 := utils.POW(r+r0, 2) + utils.POW(z-z0, 2)
	t := 4.0 * r * r0 / rz2
	numerator := r * (z - z0) * utils.EllipE(t)
	denominator := (utils.POW(z-z0, 2) + utils.POW(r-r0, 2)) * math.Sqrt(rz2)
	return numerator / denominator
}

// FieldDotNormalRadial dots the negative potential gradient with the
// supplied unit normal. Dielectric rows of the influence matrix integrate
// this kernel over the source elements.
func FieldDotNormalRadial(normal [2]float64) IntegrationFunc2D {
	return func(r0, z0, r, z float64) float64 {
		Er := -Dr1PotentialRadialRing(r0, z0, r, z)
		Ez := -Dz1PotentialRadialRing(r0, z0, r, z)
		return normal[0]*Er + normal[1]*Ez
	}
}

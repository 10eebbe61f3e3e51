package BEM3D

import (
	"github.com/fieldtrace/gobem/utils"
)

// Coulomb kernel of a unit point charge, in units where the potential at
// distance r is 1/(4r), matching the axisymmetric ring kernel.
func Potential3DPoint(x0, y0, z0, x, y, z float64) float64 {
	r := utils.Norm3D(x-x0, y-y0, z-z0)
	return 1 / (4 * r)
}

// Analytic gradient components of the point kernel with respect to the
// target coordinates.

func Dx1Potential3DPoint(x0, y0, z0, x, y, z float64) float64 {
	r := utils.Norm3D(x-x0, y-y0, z-z0)
	return (x - x0) / (4 * utils.POW(r, 3))
}

func Dy1Potential3DPoint(x0, y0, z0, x, y, z float64) float64 {
	r := utils.Norm3D(x-x0, y-y0, z-z0)
	return (y - y0) / (4 * utils.POW(r, 3))
}

func Dz1Potential3DPoint(x0, y0, z0, x, y, z float64) float64 {
	r := utils.Norm3D(x-x0, y-y0, z-z0)
	return (z - z0) / (4 * utils.POW(r, 3))
}

// FieldDotNormal3D dots the negative kernel gradient with the supplied
// unit normal, used when assembling Dielectric rows.
func FieldDotNormal3D(normal [3]float64) IntegrationFunc3D {
	return func(x0, y0, z0, x, y, z float64) float64 {
		Ex := -Dx1Potential3DPoint(x0, y0, z0, x, y, z)
		Ey := -Dy1Potential3DPoint(x0, y0, z0, x, y, z)
		Ez := -Dz1Potential3DPoint(x0, y0, z0, x, y, z)
		return normal[0]*Ex + normal[1]*Ey + normal[2]*Ez
	}
}

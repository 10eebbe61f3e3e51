package BEM3D

import (
	"fmt"
	"math"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// Potential3D sums the point kernel over all triangles, the direct
// O(#elements) evaluation.
func Potential3D(point [3]float64, triangles []types.TriangleElement, charges utils.Vector) (sum float64) {
	checkChargeDims(charges, len(triangles))
	q := charges.DataP()
	for i := range triangles {
		t := triangles[i]
		sum += q[i] * TriangleIntegral(point, t.V1, t.V2, t.V3, Potential3DPoint)
	}
	return
}

// Field3D is the direct negative gradient of Potential3D.
func Field3D(point [3]float64, triangles []types.TriangleElement, charges utils.Vector) (field [3]float64) {
	checkChargeDims(charges, len(triangles))
	q := charges.DataP()
	for i := range triangles {
		t := triangles[i]
		field[0] -= q[i] * TriangleIntegral(point, t.V1, t.V2, t.V3, Dx1Potential3DPoint)
		field[1] -= q[i] * TriangleIntegral(point, t.V1, t.V2, t.V3, Dy1Potential3DPoint)
		field[2] -= q[i] * TriangleIntegral(point, t.V1, t.V2, t.V3, Dz1Potential3DPoint)
	}
	return
}

// Potential3DDerivs reconstructs the potential at a point from the fitted
// multipole coefficients: sum over (nu,m) of
// (A cos(m phi) + B sin(m phi)) r^(2 nu + m). Zero outside the tabulated
// z range.
func Potential3DDerivs(point [3]float64, zs []float64, coeffs MultipoleFit) float64 {
	xp, yp, zp := point[0], point[1], point[2]
	index, z, inside := locateSegment(zp, zs, len(coeffs))
	if !inside {
		return 0.0
	}

	var A, B [types.NuMax][types.MMax]float64
	C := &coeffs[index]
	for nu := 0; nu < types.NuMax; nu++ {
		for m := 0; m < types.MMax; m++ {
			A[nu][m] = utils.POW(z, 3)*C[0][nu][m][0] + utils.POW(z, 2)*C[0][nu][m][1] + z*C[0][nu][m][2] + C[0][nu][m][3]
			B[nu][m] = utils.POW(z, 3)*C[1][nu][m][0] + utils.POW(z, 2)*C[1][nu][m][1] + z*C[1][nu][m][2] + C[1][nu][m][3]
		}
	}

	var (
		r   = utils.Norm2D(xp, yp)
		phi = math.Atan2(yp, xp)
		sum float64
	)
	for nu := 0; nu < types.NuMax; nu++ {
		for m := 0; m < types.MMax; m++ {
			sum += (A[nu][m]*math.Cos(float64(m)*phi) + B[nu][m]*math.Sin(float64(m)*phi)) * utils.POW(r, m+2*nu)
		}
	}
	return sum
}

// Field3DDerivs is the series accelerated field evaluation matching
// Potential3DDerivs. Within MinDistanceAxis of the symmetry axis the
// (x/r, y/r) direction factors become 0/0, so the field switches to the
// closed form in the lowest order coefficients, for which the limit is
// finite.
func Field3DDerivs(point [3]float64, zs []float64, coeffs MultipoleFit) (field [3]float64) {
	xp, yp, zp := point[0], point[1], point[2]
	index, z, inside := locateSegment(zp, zs, len(coeffs))
	if !inside {
		return
	}

	var A, B, Adiff, Bdiff [types.NuMax][types.MMax]float64
	C := &coeffs[index]
	for nu := 0; nu < types.NuMax; nu++ {
		for m := 0; m < types.MMax; m++ {
			A[nu][m] = utils.POW(z, 3)*C[0][nu][m][0] + utils.POW(z, 2)*C[0][nu][m][1] + z*C[0][nu][m][2] + C[0][nu][m][3]
			B[nu][m] = utils.POW(z, 3)*C[1][nu][m][0] + utils.POW(z, 2)*C[1][nu][m][1] + z*C[1][nu][m][2] + C[1][nu][m][3]

			Adiff[nu][m] = 3*utils.POW(z, 2)*C[0][nu][m][0] + 2*z*C[0][nu][m][1] + C[0][nu][m][2]
			Bdiff[nu][m] = 3*utils.POW(z, 2)*C[1][nu][m][0] + 2*z*C[1][nu][m][1] + C[1][nu][m][2]
		}
	}

	var (
		r   = utils.Norm2D(xp, yp)
		phi = math.Atan2(yp, xp)
	)
	if r < types.MinDistanceAxis {
		field[0] = -A[0][1]
		field[1] = -B[0][1]
		field[2] = -Adiff[0][0]
		return
	}

	for nu := 0; nu < types.NuMax; nu++ {
		for m := 0; m < types.MMax; m++ {
			var (
				exp       = 2*nu + m
				cosm      = math.Cos(float64(m) * phi)
				sinm      = math.Sin(float64(m) * phi)
				diffR     = (A[nu][m]*cosm + B[nu][m]*sinm) * float64(exp) * utils.POW(r, exp-1)
				diffTheta = float64(m) * (-A[nu][m]*sinm + B[nu][m]*cosm) * utils.POW(r, exp)
			)
			field[0] -= diffR*xp/r + diffTheta*-yp/utils.POW(r, 2)
			field[1] -= diffR*yp/r + diffTheta*xp/utils.POW(r, 2)
			field[2] -= (Adiff[nu][m]*cosm + Bdiff[nu][m]*sinm) * utils.POW(r, exp)
		}
	}
	return
}

func locateSegment(z float64, zs []float64, nSegments int) (index int, diffz float64, inside bool) {
	var (
		z0    = zs[0]
		zlast = zs[len(zs)-1]
	)
	if !(z0 < z && z < zlast) {
		return
	}
	dz := zs[1] - zs[0]
	index = int((z - z0) / dz)
	if index >= nSegments {
		panic(fmt.Errorf("coefficient table has %d segments, need index %d", nSegments, index))
	}
	diffz = z - zs[index]
	inside = true
	return
}

func checkChargeDims(charges utils.Vector, n int) {
	if charges.Len() != n {
		panic(fmt.Errorf("charge vector must have %d entries, have %d", n, charges.Len()))
	}
}

package BEM2D

import (
	"fmt"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// DerivCoeffs holds the externally fitted quintic polynomial coefficients
// of the on-axis derivatives, one [DerivMax2D][6] block per z segment. The
// coefficient order within a block row is highest power first, so that
// deriv = C[0] dz^5 + C[1] dz^4 + ... + C[5].
type DerivCoeffs [][types.DerivMax2D][6]float64

// PotentialRadial sums the ring kernel over all elements and their charge
// density samples, the direct O(#elements) evaluation.
func PotentialRadial(point [2]float64, lines []types.LineElement, charges utils.Matrix) (sum float64) {
	checkChargeDims(charges, len(lines))
	for i := range lines {
		var (
			v1, v2 = lines[i].P1, lines[i].P2
			length = utils.Length2D(v1, v2)
			qRow   = charges.Row(i)
		)
		for j := 0; j < types.NQuad2D; j++ {
			factor := utils.GaussQuadPoints[j]/2 + 1/2.
			sampleX := v1[0] + factor*(v2[0]-v1[0])
			sampleY := v1[1] + factor*(v2[1]-v1[1])
			sum += length / 2 * utils.GaussQuadWeights[j] * qRow[j] * PotentialRadialRing(point[0], point[1], sampleX, sampleY)
		}
	}
	return
}

// FieldRadial is the direct negative gradient of PotentialRadial. The
// returned vector is (Er, Ez, 0).
func FieldRadial(point [2]float64, lines []types.LineElement, charges utils.Matrix) (field [3]float64) {
	checkChargeDims(charges, len(lines))
	var Ex, Ey float64
	for i := range lines {
		var (
			v1, v2 = lines[i].P1, lines[i].P2
			length = utils.Length2D(v1, v2)
			qRow   = charges.Row(i)
		)
		for k := 0; k < types.NQuad2D; k++ {
			factor := utils.GaussQuadPoints[k]/2 + 1/2.
			r := v1[0] + factor*(v2[0]-v1[0])
			z := v1[1] + factor*(v2[1]-v1[1])
			weight := utils.GaussQuadWeights[k] * length / 2.

			Ex -= weight * qRow[k] * Dr1PotentialRadialRing(point[0], point[1], r, z)
			Ey -= weight * qRow[k] * Dz1PotentialRadialRing(point[0], point[1], r, z)
		}
	}
	field[0], field[1] = Ex, Ey
	return
}

// PotentialRadialDerivs reconstructs the potential at an off-axis point
// from the fitted on-axis derivative polynomials, a Taylor expansion of
// the axisymmetric Green's function in the radial coordinate. Points
// outside the tabulated z range return zero; extrapolation is disallowed.
func PotentialRadialDerivs(point [2]float64, zs []float64, coeff DerivCoeffs) float64 {
	r, z := point[0], point[1]
	index, diffz, inside := locateSegment(z, zs, len(coeff))
	if !inside {
		return 0.0
	}

	var derivs [types.DerivMax2D]float64
	C := &coeff[index]
	for i := 0; i < types.DerivMax2D; i++ {
		derivs[i] = C[i][0]*utils.POW(diffz, 5) + C[i][1]*utils.POW(diffz, 4) + C[i][2]*utils.POW(diffz, 3) +
			C[i][3]*utils.POW(diffz, 2) + C[i][4]*diffz + C[i][5]
	}

	return derivs[0] - utils.POW(r, 2)/4.*derivs[2] + utils.POW(r, 4)/64.*derivs[4] -
		utils.POW(r, 6)/2304.*derivs[6] + utils.POW(r, 8)/147456.*derivs[8]
}

// FieldRadialDerivs is the series accelerated field evaluation matching
// PotentialRadialDerivs. The returned vector is (Er, Ez, 0), zero outside
// the tabulated z range.
func FieldRadialDerivs(point [2]float64, zs []float64, coeff DerivCoeffs) (field [3]float64) {
	r, z := point[0], point[1]
	index, diffz, inside := locateSegment(z, zs, len(coeff))
	if !inside {
		return
	}

	var derivs [types.DerivMax2D]float64
	C := &coeff[index]
	for i := 0; i < types.DerivMax2D; i++ {
		derivs[i] = C[i][0]*utils.POW(diffz, 5) + C[i][1]*utils.POW(diffz, 4) + C[i][2]*utils.POW(diffz, 3) +
			C[i][3]*utils.POW(diffz, 2) + C[i][4]*diffz + C[i][5]
	}

	field[0] = r / 2 * (derivs[2] - utils.POW(r, 2)/8*derivs[4] + utils.POW(r, 4)/192*derivs[6] - utils.POW(r, 6)/9216*derivs[8])
	field[1] = -derivs[1] + utils.POW(r, 2)/4*derivs[3] - utils.POW(r, 4)/64*derivs[5] + utils.POW(r, 6)/2304*derivs[7]
	return
}

// locateSegment finds the enclosing segment of z on the uniform grid zs.
// The grid must have at least two points and nSegments fitted segments.
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

func checkChargeDims(charges utils.Matrix, nLines int) {
	qr, qc := charges.Dims()
	if qr != nLines || qc != types.NQuad2D {
		panic(fmt.Errorf("charge distribution must be %dx%d, have %dx%d", nLines, types.NQuad2D, qr, qc))
	}
}

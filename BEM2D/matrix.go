package BEM2D

import (
	"fmt"
	"math"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// FillMatrixRadial assembles the influence matrix rows of the elements in
// the half-open range [start,end). The matrix must be pre-sized to
// NQuad2D*len(lines) square; row 8i+l encodes the boundary condition of
// element i evaluated at its Gauss sample l, column 8j+k weights the
// charge density at Gauss node k of source element j.
//
// Only rows belonging to [start,end) are written, so disjoint ranges may
// be assembled concurrently by the caller without further synchronization.
// An unknown excitation type is a configuration error and panics.
func FillMatrixRadial(matrix utils.Matrix, lines []types.LineElement, start, end int) {
	var (
		nLines  = len(lines)
		nMatrix = types.NQuad2D * nLines
	)
	checkRange(matrix, nMatrix, nLines, start, end)

	for i := start; i < end; i++ {
		switch lines[i].Type {
		case types.VoltageFixed, types.VoltageFun, types.FloatingConductor:
			fillVoltageRows(matrix, lines, i)
		case types.Dielectric:
			fillDielectricRows(matrix, lines, i)
		default:
			panic(fmt.Errorf("ExcitationType unknown: %d", lines[i].Type))
		}
	}

	fillSelfVoltages(matrix, lines, start, end)
}

func checkRange(matrix utils.Matrix, nMatrix, nLines, start, end int) {
	nr, nc := matrix.Dims()
	if nr != nMatrix || nc != nMatrix {
		panic(fmt.Errorf("influence matrix must be %dx%d, have %dx%d", nMatrix, nMatrix, nr, nc))
	}
	if start < 0 || end > nLines || start > end {
		panic(fmt.Errorf("element range [%d,%d) out of bounds for %d elements", start, end, nLines))
	}
}

func fillVoltageRows(matrix utils.Matrix, lines []types.LineElement, i int) {
	target := lines[i]
	for j := range lines {
		if i == j {
			continue // the singular self block is handled by fillSelfVoltages
		}
		v1, v2 := lines[j].P1, lines[j].P2
		sourceLength := utils.Length2D(v1, v2)

		for l := 0; l < types.NQuad2D; l++ {
			targetFactor := utils.GaussQuadPoints[l]/2 + 1/2.
			targetX := target.P1[0] + targetFactor*(target.P2[0]-target.P1[0])
			targetY := target.P1[1] + targetFactor*(target.P2[1]-target.P1[1])
			row := matrix.Row(types.NQuad2D*i + l)

			for k := 0; k < types.NQuad2D; k++ {
				factor := utils.GaussQuadPoints[k]/2 + 1/2.
				sourceX := v1[0] + factor*(v2[0]-v1[0])
				sourceY := v1[1] + factor*(v2[1]-v1[1])
				weight := utils.GaussQuadWeights[k] * sourceLength / 2.

				row[types.NQuad2D*j+k] = weight * PotentialRadialRing(targetX, targetY, sourceX, sourceY)
			}
		}
	}
}

// fillDielectricRows encodes the charge continuity condition at a
// dielectric interface: the normal field average over both sides, scaled
// by (2K-2)/(pi(1+K)), must reproduce the surface charge itself. The
// latter is the -1 on the diagonal. The principal value of an element's
// own normal field is taken as zero (flat element approximation), so the
// self block carries only the diagonal closure.
func fillDielectricRows(matrix utils.Matrix, lines []types.LineElement, i int) {
	var (
		target = lines[i]
		normal = utils.Normal2D(target.P1, target.P2)
		K      = target.Value
		factor = (2*K - 2) / (math.Pi * (1 + K))
		kernel = FieldDotNormalRadial(normal)
	)
	for j := range lines {
		v1, v2 := lines[j].P1, lines[j].P2
		sourceLength := utils.Length2D(v1, v2)

		for l := 0; l < types.NQuad2D; l++ {
			targetFactor := utils.GaussQuadPoints[l]/2 + 1/2.
			targetX := target.P1[0] + targetFactor*(target.P2[0]-target.P1[0])
			targetY := target.P1[1] + targetFactor*(target.P2[1]-target.P1[1])
			row := matrix.Row(types.NQuad2D*i + l)

			for k := 0; k < types.NQuad2D; k++ {
				if i == j {
					if l == k {
						row[types.NQuad2D*j+k] = -1.0
					}
					continue
				}
				factorK := utils.GaussQuadPoints[k]/2 + 1/2.
				sourceX := v1[0] + factorK*(v2[0]-v1[0])
				sourceY := v1[1] + factorK*(v2[1]-v1[1])
				weight := utils.GaussQuadWeights[k] * sourceLength / 2.

				row[types.NQuad2D*j+k] = factor * weight * kernel(targetX, targetY, sourceX, sourceY)
			}
		}
	}
}

// fillSelfVoltages computes the singular self blocks of the voltage rows
// in [start,end). Naive quadrature diverges at the coincident point, so
// the element is split at each sample and integrated with the logarithmic
// rule against a Legendre expansion of the nodal charge basis.
func fillSelfVoltages(matrix utils.Matrix, lines []types.LineElement, start, end int) {
	for i := start; i < end; i++ {
		if lines[i].Type == types.Dielectric {
			continue
		}
		v1, v2 := lines[i].P1, lines[i].P2

		for l := 0; l < types.NQuad2D; l++ {
			row := matrix.Row(types.NQuad2D*i + l)
			for k := 0; k < types.NQuad2D; k++ {
				row[types.NQuad2D*i+k] = logIntegral(v1, v2, l, k)
			}
		}
	}
}

// logIntegral integrates the ring kernel over the element with the
// singular point placed at Gauss sample l, weighting the charge at node k
// through its Legendre cardinal expansion. The element is split into the
// sub-intervals on both sides of the singularity and each side is handled
// by the logarithmic quadrature rule.
func logIntegral(v1, v2 [3]float64, l, k int) float64 {
	var (
		length         = utils.Length2D(v1, v2)
		lengthFactor   = utils.GaussQuadPoints[l]/2. + 1/2.
		singularX      = v1[0] + lengthFactor*(v2[0]-v1[0])
		singularY      = v1[1] + lengthFactor*(v2[1]-v1[1])
		singularLength = length * lengthFactor
		sum            float64
	)
	for o := 0; o < len(utils.LogQuadPoints); o++ {
		p := utils.LogQuadPoints[o]
		w := utils.LogQuadWeights[o]

		// Walk away from the singularity towards v1.
		lengthLeft := singularLength - singularLength*p
		sampledX := v1[0] + lengthLeft/length*(v2[0]-v1[0])
		sampledY := v1[1] + lengthLeft/length*(v2[1]-v1[1])
		legendreArg := 2*lengthLeft/length - 1

		for m := 0; m < types.NQuad2D; m++ {
			potRing := PotentialRadialRing(singularX, singularY, sampledX, sampledY)
			sum += w * singularLength * utils.LegendreCoefficient(m, k) * utils.Legendre(m, legendreArg) * potRing
		}

		// And towards v2.
		lengthRight := singularLength + (length-singularLength)*p
		sampledX = v1[0] + lengthRight/length*(v2[0]-v1[0])
		sampledY = v1[1] + lengthRight/length*(v2[1]-v1[1])
		legendreArg = 2*lengthRight/length - 1

		for m := 0; m < types.NQuad2D; m++ {
			potRing := PotentialRadialRing(singularX, singularY, sampledX, sampledY)
			sum += w * (length - singularLength) * utils.LegendreCoefficient(m, k) * utils.Legendre(m, legendreArg) * potRing
		}
	}
	return sum
}

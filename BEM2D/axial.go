package BEM2D

import (
	"fmt"
	"math"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// AxialDerivativesRadialRing accumulates the raw on-axis potential
// derivatives D[0..8] at every z grid position into derivs (len(z) rows,
// DerivMax2D columns). The derivative orders follow from the three term
// recursion
//
//	D[0] = 1/R,  D[1] = -dz/R^3,
//	D[n+1] = -( (2n+1) dz D[n] + n^2 D[n-1] ) / R^2,
//
// which avoids an elliptic integral evaluation per order. Contributions
// are weighted by the Gauss weight, pi r/2 and the local charge density.
// The raw samples are fed to the external quintic fit whose coefficients
// PotentialRadialDerivs consumes.
func AxialDerivativesRadialRing(derivs utils.Matrix, lines []types.LineElement, charges utils.Matrix, z []float64) {
	checkDerivDims(derivs, charges, len(lines), len(z))

	for i := range z {
		row := derivs.Row(i)
		for j := range lines {
			var (
				v1, v2 = lines[j].P1, lines[j].P2
				length = utils.Length2D(v1, v2)
				qRow   = charges.Row(j)
			)
			for k := 0; k < types.NQuad2D; k++ {
				lengthFactor := utils.GaussQuadPoints[k]/2 + 1/2.
				r := v1[0] + lengthFactor*(v2[0]-v1[0])
				zs := v1[1] + lengthFactor*(v2[1]-v1[1])

				weight := utils.GaussQuadWeights[k] * length / 2.
				R := utils.Norm2D(z[i]-zs, r)

				var D [types.DerivMax2D]float64
				D[0] = 1 / R
				D[1] = -(z[i] - zs) / utils.POW(R, 3)
				for n := 1; n+1 < types.DerivMax2D; n++ {
					D[n+1] = -1. / utils.POW(R, 2) * (float64(2*n+1)*(z[i]-zs)*D[n] + float64(n*n)*D[n-1])
				}

				for l := 0; l < types.DerivMax2D; l++ {
					row[l] += weight * math.Pi * r / 2 * qRow[k] * D[l]
				}
			}
		}
	}
}

func checkDerivDims(derivs, charges utils.Matrix, nLines, nZ int) {
	nr, nc := derivs.Dims()
	if nr != nZ || nc != types.DerivMax2D {
		panic(fmt.Errorf("derivative table must be %dx%d, have %dx%d", nZ, types.DerivMax2D, nr, nc))
	}
	qr, qc := charges.Dims()
	if qr != nLines || qc != types.NQuad2D {
		panic(fmt.Errorf("charge distribution must be %dx%d, have %dx%d", nLines, types.NQuad2D, qr, qc))
	}
}

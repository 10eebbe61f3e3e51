package BEM3D

import (
	"fmt"
	"math"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// ThetaCoeffs holds the externally fitted cubic-in-theta basis functions
// of the multipole expansion, one [NuMax][MMax][4] block per theta
// segment, highest power first.
type ThetaCoeffs [][types.NuMax][types.MMax][4]float64

// MultipoleCoeffs holds the raw (cosine, sine) coefficient accumulators of
// the multipole expansion, one [2][NuMax][MMax] block per z sample. These
// raw samples are handed to the external cubic fit whose output
// Potential3DDerivs consumes.
type MultipoleCoeffs [][2][types.NuMax][types.MMax]float64

// MultipoleFit holds the fitted cubic-in-z multipole coefficients, one
// [2][NuMax][MMax][4] block per z segment, highest power first.
type MultipoleFit [][2][types.NuMax][types.MMax][4]float64

// AxialCoefficients3D accumulates, for every z sample, the weighted
// multipole contributions of every triangle into the (cosine, sine)
// channels of out. Each quadrature node contributes through the fitted
// theta basis, the angular factors cos(m mu)/sin(m mu) and the radial
// dependence r^(-2 nu - m - 1), weighted by charge, area and quadrature
// weight.
func AxialCoefficients3D(out MultipoleCoeffs, triangles []types.TriangleElement, charges utils.Vector,
	zs []float64, thetas []float64, thetaCoeffs ThetaCoeffs) {

	if len(out) != len(zs) {
		panic(fmt.Errorf("output coefficients must have %d z samples, have %d", len(zs), len(out)))
	}
	if charges.Len() != len(triangles) {
		panic(fmt.Errorf("charge vector must have %d entries, have %d", len(triangles), charges.Len()))
	}
	var (
		theta0 = thetas[0]
		dtheta = thetas[1] - thetas[0]
		q      = charges.DataP()
	)
	for h := range triangles {
		var (
			t      = triangles[h]
			area   = utils.TriangleArea(t.V1, t.V2, t.V3)
			charge = q[h]
		)
		for i := range zs {
			for k := 0; k < types.NTriangleQuad; k++ {
				b1 := utils.TriQuadB1[k]
				b2 := utils.TriQuadB2[k]
				w := utils.TriQuadWeights[k]

				x := t.V1[0] + b1*(t.V2[0]-t.V1[0]) + b2*(t.V3[0]-t.V1[0])
				y := t.V1[1] + b1*(t.V2[1]-t.V1[1]) + b2*(t.V3[1]-t.V1[1])
				z := t.V1[2] + b1*(t.V2[2]-t.V1[2]) + b2*(t.V3[2]-t.V1[2])

				r := utils.Norm3D(x, y, z-zs[i])
				theta := math.Atan2(z-zs[i], utils.Norm2D(x, y))
				mu := math.Atan2(y, x)

				index := int((theta - theta0) / dtheta)
				tt := theta - thetas[index]
				C := &thetaCoeffs[index]

				for nu := 0; nu < types.NuMax; nu++ {
					for m := 0; m < types.MMax; m++ {
						base := utils.POW(tt, 3)*C[nu][m][0] + utils.POW(tt, 2)*C[nu][m][1] + tt*C[nu][m][2] + C[nu][m][3]
						rDependence := math.Pow(r, float64(-2*nu-m-1))

						out[i][0][nu][m] += charge * area * w * base * math.Cos(float64(m)*mu) * rDependence
						out[i][1][nu][m] += charge * area * w * base * math.Sin(float64(m)*mu) * rDependence
					}
				}
			}
		}
	}
}

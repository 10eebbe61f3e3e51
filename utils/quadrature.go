package utils

import (
	"fmt"
)

// Fixed quadrature tables. All of these are package data, initialized once
// and never mutated, so they can be shared freely across goroutines.

// GaussQuadPoints and GaussQuadWeights define the 8-point Gauss-Legendre
// rule on [-1,1] used to parametrize line elements.
var GaussQuadPoints = [8]float64{
	-0.1834346424956498, 0.1834346424956498,
	-0.5255324099163290, 0.5255324099163290,
	-0.7966664774136267, 0.7966664774136267,
	-0.9602898564975363, 0.9602898564975363,
}

var GaussQuadWeights = [8]float64{
	0.3626837833783620, 0.3626837833783620,
	0.3137066458778873, 0.3137066458778873,
	0.2223810344533745, 0.2223810344533745,
	0.1012285362903763, 0.1012285362903763,
}

// 9-point symmetric triangle rule, barycentric coordinates (B1, B2) with
// weights normalized to sum to 1 over the unit triangle.
var TriQuadB1 = [9]float64{
	0.124949503233232, 0.437525248383384, 0.437525248383384,
	0.797112651860071, 0.797112651860071, 0.165409927389841,
	0.165409927389841, 0.037477420750088, 0.037477420750088,
}

var TriQuadB2 = [9]float64{
	0.437525248383384, 0.124949503233232, 0.437525248383384,
	0.165409927389841, 0.037477420750088, 0.797112651860071,
	0.037477420750088, 0.797112651860071, 0.165409927389841,
}

var TriQuadWeights = [9]float64{
	0.205950504760887, 0.205950504760887, 0.205950504760887,
	0.063691414286223, 0.063691414286223, 0.063691414286223,
	0.063691414286223, 0.063691414286223, 0.063691414286223,
}

// 7-point rule for integrands with a logarithmic endpoint singularity:
// plain weighted summation integrates p(t) + q(t) log(1/t) on (0,1)
// exactly for low-degree p and q, without node placement at t=0.
// John A. Crow, "Quadrature of Integrands with a Logarithmic Singularity",
// 1993.
var LogQuadPoints = [7]float64{
	0.175965211846577428056264284949e-2,
	0.244696507125133674276453373497e-1,
	0.106748056858788954180259781083,
	0.275807641295917383077859512057,
	0.517855142151833716158668961982,
	0.771815485362384900274646869494,
	0.952841340581090558994306588503,
}

var LogQuadWeights = [7]float64{
	0.663266631902570511783904989051e-2,
	0.457997079784753341255767348120e-1,
	0.123840208071318194550489564922,
	0.212101926023811930107914875456,
	0.261390645672007725646580606859,
	0.231636180290909384318815526104,
	0.118598665644451726132783641957,
}

// Legendre evaluates the Legendre polynomial P_N at x for orders up to 8,
// the highest order needed by the singular self-integration path. Higher
// orders are a configuration error.
func Legendre(N int, x float64) float64 {
	switch N {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return (3*POW(x, 2) - 1) / 2.
	case 3:
		return (5*POW(x, 3) - 3*x) / 2.
	case 4:
		return (35*POW(x, 4) - 30*POW(x, 2) + 3) / 8.
	case 5:
		return (63*POW(x, 5) - 70*POW(x, 3) + 15*x) / 8.
	case 6:
		return (231*POW(x, 6) - 315*POW(x, 4) + 105*POW(x, 2) - 5) / 16.
	case 7:
		return (429*POW(x, 7) - 693*POW(x, 5) + 315*POW(x, 3) - 35*x) / 16.
	case 8:
		return (6435*POW(x, 8) - 12012*POW(x, 6) + 6930*POW(x, 4) - 1260*POW(x, 2) + 35) / 128
	}
	panic(fmt.Errorf("legendre polynomial order %d not supported", N))
}

// LegendreCoefficient projects the cardinal function of Gauss node j onto
// Legendre mode i using the Gauss rule itself.
func LegendreCoefficient(i, j int) float64 {
	return GaussQuadWeights[j] * Legendre(i, GaussQuadPoints[j]) * float64(2*i+1) / 2
}

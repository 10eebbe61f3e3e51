package BEM2D

import (
	"github.com/fieldtrace/gobem/utils"
)

// IntegrationFunc2D is a kernel callback evaluated at a target point
// (x0,y0) against a source point (x,y) in the (r,z) half plane.
type IntegrationFunc2D func(x0, y0, x, y float64) float64

// farFieldRatio is the distance, in element lengths, beyond which a line
// integral collapses to a single midpoint evaluation. Far interactions
// dominate the assembly cost and lose negligible accuracy this way.
const farFieldRatio = 20

// LineIntegral maps the 8-point Gauss rule onto the segment v1->v2 and
// returns the weighted kernel sum scaled by the element length. Targets
// more than farFieldRatio element lengths away short-circuit to a midpoint
// evaluation.
func LineIntegral(target [2]float64, v1, v2 [3]float64, function IntegrationFunc2D) float64 {
	var (
		middleX  = (v1[0] + v2[0]) / 2
		middleY  = (v1[1] + v2[1]) / 2
		length   = utils.Length2D(v1, v2)
		distance = utils.Norm2D(middleX-target[0], middleY-target[1])
	)
	if distance > farFieldRatio*length {
		return function(target[0], target[1], middleX, middleY) * length
	}

	var sum float64
	for k := 0; k < len(utils.GaussQuadPoints); k++ {
		factor := utils.GaussQuadPoints[k]/2 + 1/2.
		x := v1[0] + factor*(v2[0]-v1[0])
		y := v1[1] + factor*(v2[1]-v1[1])
		sum += utils.GaussQuadWeights[k] * function(target[0], target[1], x, y)
	}
	return sum * length / 2
}

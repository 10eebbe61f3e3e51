package BEM3D

import (
	"github.com/fieldtrace/gobem/utils"
)

// IntegrationFunc3D is a kernel callback evaluated at a target point
// (x0,y0,z0) against a source point (x,y,z).
type IntegrationFunc3D func(x0, y0, z0, x, y, z float64) float64

// TriangleIntegral maps the 9-point symmetric rule onto the triangle
// (v1,v2,v3), evaluates the kernel at every mapped node and returns the
// weighted sum scaled by the triangle area.
func TriangleIntegral(target [3]float64, v1, v2, v3 [3]float64, function IntegrationFunc3D) float64 {
	var (
		area = utils.TriangleArea(v1, v2, v3)
		sum  float64
	)
	for k := 0; k < len(utils.TriQuadWeights); k++ {
		b1 := utils.TriQuadB1[k]
		b2 := utils.TriQuadB2[k]
		w := utils.TriQuadWeights[k]

		x := v1[0] + b1*(v2[0]-v1[0]) + b2*(v3[0]-v1[0])
		y := v1[1] + b1*(v2[1]-v1[1]) + b2*(v3[1]-v1[1])
		z := v1[2] + b1*(v2[2]-v1[2]) + b2*(v3[2]-v1[2])

		sum += w * function(target[0], target[1], target[2], x, y, z)
	}
	return area * sum
}

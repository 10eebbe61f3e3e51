package BEM3D

import (
	"fmt"
	"math"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// FillMatrix3D assembles the influence matrix rows of the triangles in the
// half-open range [start,end). The matrix dimension equals the triangle
// count; targets are element centroids and each triangle carries a single
// uniform charge value. Only rows in [start,end) are written, so the
// caller may assemble disjoint ranges concurrently. An unknown excitation
// type panics.
func FillMatrix3D(matrix utils.Matrix, triangles []types.TriangleElement, start, end int) {
	var (
		n      = len(triangles)
		nr, nc = matrix.Dims()
	)
	if nr != n || nc != n {
		panic(fmt.Errorf("influence matrix must be %dx%d, have %dx%d", n, n, nr, nc))
	}
	if start < 0 || end > n || start > end {
		panic(fmt.Errorf("element range [%d,%d) out of bounds for %d elements", start, end, n))
	}

	for i := start; i < end; i++ {
		var (
			t      = triangles[i]
			target = centroid(t)
			row    = matrix.Row(i)
		)
		switch t.Type {
		case types.VoltageFixed, types.VoltageFun, types.FloatingConductor:
			for j := range triangles {
				s := triangles[j]
				row[j] = TriangleIntegral(target, s.V1, s.V2, s.V3, Potential3DPoint)
			}
		case types.Dielectric:
			var (
				normal = utils.Normal3D(t.V1, t.V2, t.V3)
				K      = t.Value
				factor = (2*K - 2) / (math.Pi * (1 + K))
				kernel = FieldDotNormal3D(normal)
			)
			for j := range triangles {
				s := triangles[j]
				row[j] = factor * TriangleIntegral(target, s.V1, s.V2, s.V3, kernel)
				if i == j {
					// Charge continuity closure at the interface.
					row[j] -= 1.0
				}
			}
		default:
			panic(fmt.Errorf("ExcitationType unknown: %d", t.Type))
		}
	}
}

func centroid(t types.TriangleElement) [3]float64 {
	return [3]float64{
		(t.V1[0] + t.V2[0] + t.V3[0]) / 3,
		(t.V1[1] + t.V2[1] + t.V3[1]) / 3,
		(t.V1[2] + t.V2[2] + t.V3[2]) / 3,
	}
}

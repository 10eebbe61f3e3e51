package utils

import (
	"math"
)

func Norm2D(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

func Norm3D(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// Length2D is the length of the segment between v1 and v2 in the (r,z)
// half plane. The third coordinate of axisymmetric points is unused.
func Length2D(v1, v2 [3]float64) float64 {
	return Norm2D(v2[0]-v1[0], v2[1]-v1[1])
}

// Normal2D returns the unit normal of the segment p1->p2, obtained by
// rotating the tangent a quarter turn clockwise.
func Normal2D(p1, p2 [3]float64) (normal [2]float64) {
	var (
		tangentX = p2[0] - p1[0]
		tangentY = p2[1] - p1[1]
	)
	length := Norm2D(tangentY, -tangentX)
	normal[0] = tangentY / length
	normal[1] = -tangentX / length
	return
}

// Normal3D returns the unit normal of the triangle (p1,p2,p3), oriented by
// the right-hand rule on the vertex order.
func Normal3D(p1, p2, p3 [3]float64) (normal [3]float64) {
	var (
		nx = (p2[1]-p1[1])*(p3[2]-p1[2]) - (p3[1]-p1[1])*(p2[2]-p1[2])
		ny = (p3[0]-p1[0])*(p2[2]-p1[2]) - (p2[0]-p1[0])*(p3[2]-p1[2])
		nz = (p2[0]-p1[0])*(p3[1]-p1[1]) - (p3[0]-p1[0])*(p2[1]-p1[1])
	)
	length := Norm3D(nx, ny, nz)
	normal[0] = nx / length
	normal[1] = ny / length
	normal[2] = nz / length
	return
}

// TriangleArea is the area of the flat triangle (v1,v2,v3).
func TriangleArea(v1, v2, v3 [3]float64) float64 {
	var (
		cx = (v2[1]-v1[1])*(v3[2]-v1[2]) - (v2[2]-v1[2])*(v3[1]-v1[1])
		cy = (v2[2]-v1[2])*(v3[0]-v1[0]) - (v2[0]-v1[0])*(v3[2]-v1[2])
		cz = (v2[0]-v1[0])*(v3[1]-v1[1]) - (v2[1]-v1[1])*(v3[0]-v1[0])
	)
	return 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
}

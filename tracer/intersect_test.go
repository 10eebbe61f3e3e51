package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXYPlaneIntersection2D(t *testing.T) {
	// Straight line z = 2 t, r = 1 - 0.1 t sampled at integer t.
	var positions [][4]float64
	for i := 0; i <= 10; i++ {
		time := float64(i)
		positions = append(positions, [4]float64{1 - 0.1*time, 2 * time, -0.1, 2})
	}

	result, ok := XYPlaneIntersection2D(positions, 5.0)
	require.True(t, ok)
	assert.InDelta(t, 0.75, result[0], 1.e-12)
	assert.InDelta(t, 5.0, result[1], 1.e-12)
	assert.InDelta(t, -0.1, result[2], 1.e-12)
	assert.InDelta(t, 2.0, result[3], 1.e-12)

	_, ok = XYPlaneIntersection2D(positions, 25.0)
	assert.False(t, ok)
	_, ok = XYPlaneIntersection2D(positions, -1.0)
	assert.False(t, ok)
}

func TestXYPlaneIntersection3D(t *testing.T) {
	var positions [][6]float64
	for i := 0; i <= 10; i++ {
		time := float64(i)
		positions = append(positions, [6]float64{0.5 * time, -time, 2 * time, 0.5, -1, 2})
	}

	result, ok := XYPlaneIntersection3D(positions, 7.0)
	require.True(t, ok)
	assert.InDelta(t, 1.75, result[0], 1.e-12)
	assert.InDelta(t, -3.5, result[1], 1.e-12)
	assert.InDelta(t, 7.0, result[2], 1.e-12)

	tr := Trajectory{Positions: positions}
	viaMethod, ok := tr.PlaneIntersection(7.0)
	require.True(t, ok)
	assert.Equal(t, result, viaMethod)
}

func TestPlaneIntersectionPicksLastCrossing(t *testing.T) {
	// A trajectory that oscillates through the plane: the crossing closest
	// to the trajectory end wins.
	positions := [][6]float64{
		{0, 0, 0, 0, 0, 0},
		{1, 0, 2, 0, 0, 0},
		{2, 0, -1, 0, 0, 0},
		{3, 0, 3, 0, 0, 0},
	}
	result, ok := XYPlaneIntersection3D(positions, 1.0)
	require.True(t, ok)
	// Interpolated between the last two samples: z from -1 to 3.
	assert.InDelta(t, 2.5, result[0], 1.e-12)
}

func TestAxisIntersection(t *testing.T) {
	// r decreases linearly through zero between the third and fourth
	// sample; z advances by 1 per sample.
	positions := [][6]float64{
		{0.5, 0, 0, 0, 0, 0},
		{0.3, 1, 0, 0, 0, 0},
		{0.1, 2, 0, 0, 0, 0},
		{-0.1, 3, 0, 0, 0, 0},
		{-0.3, 4, 0, 0, 0, 0},
	}
	z, ok := AxisIntersection(positions)
	require.True(t, ok)
	assert.InDelta(t, 2.5, z, 1.e-12)
}

func TestAxisIntersectionNoCrossing(t *testing.T) {
	positions := [][6]float64{
		{0.5, 0, 0, 0, 0, 0},
		{0.4, 1, 0, 0, 0, 0},
		{0.3, 2, 0, 0, 0, 0},
	}
	_, ok := AxisIntersection(positions)
	assert.False(t, ok)
}

package tracer

import (
	"math"

	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// Runge-Kutta-Fehlberg embedded 4(5) pair.
//
// Erwin Fehlberg. Low-Order Classical Runge-Kutta Formulas With Stepsize
// Control and their Application to Some Heat Transfer Problems. 1969.
// National Aeronautics and Space Administration.
var (
	rkfB2 = [1]float64{2. / 9.}
	rkfB3 = [2]float64{1. / 12., 1. / 4.}
	rkfB4 = [3]float64{69. / 128., -243. / 128., 135. / 64.}
	rkfB5 = [4]float64{-17. / 12., 27. / 4., -27. / 5., 16. / 15.}
	rkfB6 = [5]float64{65. / 432., -5. / 16., 13. / 16., 4. / 27., 5. / 144.}

	// Solution weights and embedded error weights.
	rkfCH = [6]float64{47. / 450., 0., 12. / 25., 32. / 225., 1. / 30., 6. / 25.}
	rkfCT = [6]float64{-1. / 150., 0., 3. / 100., -16. / 75., -1. / 20., 6. / 25.}
)

// rkfStage returns the tableau row of stage index (1..5).
func rkfStage(index int) []float64 {
	switch index {
	case 1:
		return rkfB2[:]
	case 2:
		return rkfB3[:]
	case 3:
		return rkfB4[:]
	case 4:
		return rkfB5[:]
	case 5:
		return rkfB6[:]
	}
	return nil
}

// FieldSource evaluates the electric field at a point. The tracer is
// generic over its four concrete variants: direct ring or triangle
// integration and their series accelerated counterparts.
type FieldSource interface {
	Field(point [3]float64) (field [3]float64)
}

// FieldFunc adapts a plain function to a FieldSource.
type FieldFunc func(point [3]float64) [3]float64

func (f FieldFunc) Field(point [3]float64) [3]float64 { return f(point) }

// Bounds is a 3D bounding box, [axis][min,max]. For axisymmetric tracing
// the first two axes bound (r, z) and the third is unused by the field
// but still checked.
type Bounds [3][2]float64

func (b Bounds) Inside(y *[6]float64) bool {
	return b[0][0] <= y[0] && y[0] <= b[0][1] &&
		b[1][0] <= y[1] && y[1] <= b[1][1] &&
		b[2][0] <= y[2] && y[2] <= b[2][1]
}

// Trajectory is an append-only, time-stamped sequence of 6-vector states
// (position, velocity). A single tracer invocation appends at most
// types.TracingBlockSize samples; a full block signals the caller to
// resume from the last sample.
type Trajectory struct {
	Times     []float64
	Positions [][6]float64
}

func (tr *Trajectory) Len() int { return len(tr.Positions) }

func (tr *Trajectory) Last() (t float64, y [6]float64) {
	n := tr.Len()
	return tr.Times[n-1], tr.Positions[n-1]
}

// Blocked reports whether the trajectory filled a whole tracing block, in
// which case tracing should be resumed from the last sample.
func (tr *Trajectory) Blocked() bool { return tr.Len() == types.TracingBlockSize }

// Tracer integrates the electrostatic equations of motion
//
//	dx/dt = v,  dv/dt = EM * E(x)
//
// with the adaptive RKF45 pair, bounded by Bounds. Atol is the absolute
// tolerance on the embedded error estimate.
type Tracer struct {
	Field  FieldSource
	Bounds Bounds
	Atol   float64
}

func NewTracer(field FieldSource, bounds Bounds, atol float64) *Tracer {
	return &Tracer{Field: field, Bounds: bounds, Atol: atol}
}

// Trace integrates from the given position and velocity at t=0.
func (tc *Tracer) Trace(position, velocity [3]float64) Trajectory {
	y := [6]float64{position[0], position[1], position[2], velocity[0], velocity[1], velocity[2]}
	return tc.resume(0, y)
}

// Resume continues a blocked trajectory from its last sample.
func (tc *Tracer) Resume(prev Trajectory) Trajectory {
	t, y := prev.Last()
	return tc.resume(t, y)
}

func (tc *Tracer) resume(t0 float64, y [6]float64) (tr Trajectory) {
	var (
		V    = utils.Norm3D(y[3], y[4], y[5])
		hmax = types.TracingStepMax / V
		h    = hmax
		time = t0
	)
	tr.Times = append(tr.Times, time)
	tr.Positions = append(tr.Positions, y)

	for tc.Bounds.Inside(&y) {
		var k, ys [6][6]float64

		for index := 0; index < 6; index++ {
			produceNewY(&y, &ys, &k, index)
			produceNewK(tc.Field, &ys, &k, index, h)
		}

		// Embedded error estimate: max abs component of the 4th/5th
		// order difference.
		var TE float64
		for i := 0; i < 6; i++ {
			var err float64
			for j := 0; j < 6; j++ {
				err += rkfCT[j] * k[j][i]
			}
			if math.Abs(err) > TE {
				TE = math.Abs(err)
			}
		}

		if TE <= tc.Atol {
			for i := 0; i < 6; i++ {
				y[i] += rkfCH[0]*k[0][i] + rkfCH[1]*k[1][i] + rkfCH[2]*k[2][i] +
					rkfCH[3]*k[3][i] + rkfCH[4]*k[4][i] + rkfCH[5]*k[5][i]
			}
			time += h
			tr.Times = append(tr.Times, time)
			tr.Positions = append(tr.Positions, y)
			if tr.Len() == types.TracingBlockSize {
				return
			}
		}

		h = math.Min(0.9*h*math.Pow(tc.Atol/TE, 0.2), hmax)
	}
	return
}

func produceNewY(y *[6]float64, ys, k *[6][6]float64, index int) {
	coefficients := rkfStage(index)
	for i := 0; i < 6; i++ {
		ys[index][i] = y[i]
		for j := 0; j < index; j++ {
			ys[index][i] += coefficients[j] * k[j][i]
		}
	}
}

func produceNewK(source FieldSource, ys, k *[6][6]float64, index int, h float64) {
	field := source.Field([3]float64{ys[index][0], ys[index][1], ys[index][2]})

	k[index][0] = h * ys[index][3]
	k[index][1] = h * ys[index][4]
	k[index][2] = h * ys[index][5]
	k[index][3] = h * types.EM * field[0]
	k[index][4] = h * types.EM * field[1]
	k[index][5] = h * types.EM * field[2]
}

package tracer

import (
	"github.com/fieldtrace/gobem/BEM2D"
	"github.com/fieldtrace/gobem/BEM3D"
	"github.com/fieldtrace/gobem/types"
	"github.com/fieldtrace/gobem/utils"
)

// The four concrete field sources the tracer can be parametrized over.
// Axisymmetric sources interpret the state coordinates as (r, z, unused).

// FieldRadial integrates the ring derivative kernels over the charge
// distribution on every evaluation.
type FieldRadial struct {
	Lines   []types.LineElement
	Charges utils.Matrix
}

func (f *FieldRadial) Field(point [3]float64) [3]float64 {
	return BEM2D.FieldRadial([2]float64{point[0], point[1]}, f.Lines, f.Charges)
}

// FieldRadialDerivs evaluates the fitted on-axis derivative series, the
// fast path for axisymmetric tracing.
type FieldRadialDerivs struct {
	Z      []float64
	Coeffs BEM2D.DerivCoeffs
}

func (f *FieldRadialDerivs) Field(point [3]float64) [3]float64 {
	return BEM2D.FieldRadialDerivs([2]float64{point[0], point[1]}, f.Z, f.Coeffs)
}

// Field3D integrates the point kernel gradient over every triangle on
// every evaluation.
type Field3D struct {
	Triangles []types.TriangleElement
	Charges   utils.Vector
}

func (f *Field3D) Field(point [3]float64) [3]float64 {
	return BEM3D.Field3D(point, f.Triangles, f.Charges)
}

// Field3DDerivs evaluates the fitted multipole series, the fast path for
// 3D tracing.
type Field3DDerivs struct {
	Z      []float64
	Coeffs BEM3D.MultipoleFit
}

func (f *Field3DDerivs) Field(point [3]float64) [3]float64 {
	return BEM3D.Field3DDerivs(point, f.Z, f.Coeffs)
}

package types

// ExcitationType is the boundary condition assigned to a boundary element.
// The integer values match the excitation tags used in mesh files produced
// by the surrounding application, so they must not be renumbered.
type ExcitationType uint8

const (
	VoltageFixed ExcitationType = iota + 1
	VoltageFun
	Dielectric
	FloatingConductor
)

func (et ExcitationType) String() string {
	switch et {
	case VoltageFixed:
		return "VoltageFixed"
	case VoltageFun:
		return "VoltageFun"
	case Dielectric:
		return "Dielectric"
	case FloatingConductor:
		return "FloatingConductor"
	}
	return "Unknown"
}

// Compile time maxima shared with the external fitting step. Callers size
// their coefficient buffers against these.
const (
	// DerivMax2D is the number of on-axis potential derivative orders
	// produced for axisymmetric geometry, D[0] through D[8].
	DerivMax2D = 9
	// NuMax and MMax bound the radial and angular orders of the 3D
	// multipole expansion.
	NuMax = 4
	MMax  = 8
	// NQuad2D is the number of Gauss-Legendre nodes per line element. Each
	// axisymmetric element carries one charge density sample per node, so
	// the influence matrix dimension is NQuad2D times the element count.
	NQuad2D = 8
	// NTriangleQuad is the number of nodes of the symmetric triangle rule.
	NTriangleQuad = 9
)

// EM is the electron charge to mass ratio in units of ns and mm. The value
// is fixed bit-for-bit; downstream physics was validated against it.
const EM = -0.1758820022723908

// TracingBlockSize caps the number of samples appended by a single tracer
// invocation. Reaching the cap is a signal to resume from the last sample,
// not an error.
const TracingBlockSize = 100000

// TracingStepMax is the maximum physical step length (mm) of the adaptive
// tracer. The time step bound is TracingStepMax divided by particle speed.
const TracingStepMax = 0.01

// MinDistanceAxis is the radial distance below which kernels and series
// evaluators switch to their on-axis closed forms.
const MinDistanceAxis = 1e-10

// Point3 is a point or vector in (x,y,z), or (r,z,0) for axisymmetric
// geometry where the third coordinate is unused.
type Point3 [3]float64

// LineElement is an axisymmetric boundary element: a segment in the (r,z)
// half plane representing a charged ring swept around the z axis.
type LineElement struct {
	P1, P2 Point3
	Type   ExcitationType
	// Value is the fixed voltage, or the relative permittivity for
	// Dielectric elements.
	Value float64
}

// TriangleElement is a flat triangle boundary element in 3D.
type TriangleElement struct {
	V1, V2, V3 Point3
	Type       ExcitationType
	Value      float64
}

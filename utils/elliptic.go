package utils

import (
	"math"
)

// Complete elliptic integrals K(m) and E(m) of the parameter m = k^2.
//
// Chebyshev approximations from W. J. Cody, "Chebyshev Approximations for
// the Complete Elliptic Integrals K and E", 1965, augmented with the
// reciprocal-modulus transformations so that any m <= 1 is accepted.

var ellipkA = [8]float64{
	math.Log(4.0),
	9.65736020516771e-2,
	3.08909633861795e-2,
	1.52618320622534e-2,
	1.25565693543211e-2,
	1.68695685967517e-2,
	1.09423810688623e-2,
	1.40704915496101e-3,
}

var ellipkB = [8]float64{
	1.0 / 2.0,
	1.24999998585309e-1,
	7.03114105853296e-2,
	4.87379510945218e-2,
	3.57218443007327e-2,
	2.09857677336790e-2,
	5.81807961871996e-3,
	3.42805719229748e-4,
}

var ellipeA = [8]float64{
	1,
	4.43147193467733e-1,
	5.68115681053803e-2,
	2.21862206993846e-2,
	1.56847700239786e-2,
	1.92284389022977e-2,
	1.21819481486695e-2,
	1.55618744745296e-3,
}

var ellipeB = [8]float64{
	0,
	2.49999998448655e-1,
	9.37488062098189e-2,
	5.84950297066166e-2,
	4.09074821593164e-2,
	2.35091602564984e-2,
	6.45682247315060e-3,
	3.78886487349367e-4,
}

func ellipkSingularity(m float64) (sum float64) {
	var (
		eta  = 1 - m
		L    = math.Log(1. / eta)
		etaP = 1.0
	)
	for i := 0; i < 8; i++ {
		sum += (ellipkA[i] + L*ellipkB[i]) * etaP
		etaP *= eta
	}
	return
}

// EllipK evaluates the complete elliptic integral of the first kind for any
// parameter m < 1 (and m = 1-eta with eta > 0; callers must keep eta
// positive so the log term stays finite).
func EllipK(m float64) float64 {
	if m > -1 {
		return ellipkSingularity(m)
	}
	return ellipkSingularity(1-1./(1-m)) / math.Sqrt(1-m)
}

func ellipe01(m float64) (sum float64) {
	var (
		eta  = 1 - m
		L    = math.Log(1. / eta)
		etaP = 1.0
	)
	for i := 0; i < 8; i++ {
		sum += (ellipeA[i] + L*ellipeB[i]) * etaP
		etaP *= eta
	}
	return
}

// EllipE evaluates the complete elliptic integral of the second kind, valid
// for any m <= 1 through the reciprocal-modulus identity.
func EllipE(m float64) float64 {
	if 0 <= m && m <= 1 {
		return ellipe01(m)
	}
	return ellipe01(m/(m-1.)) * math.Sqrt(1-m)
}

// SPDX-License-Identifier: MIT

package mathx

// Lerp returns a + t·(b − a).
//
// t is not clamped: t outside [0,1] extrapolates.
// Complexity: O(1).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// CubicInterp performs cubic interpolation between n1 and n2 using the outer
// samples n0 and n3 to shape the tangents. alpha=0 yields n1, alpha=1 yields n2.
//
// The polynomial is p·a³ + q·a² + r·a + s with
//
//	p = (n3 − n2) − (n0 − n1)
//	q = (n0 − n1) − p
//	r = n2 − n0
//	s = n1
//
// Complexity: O(1).
func CubicInterp(n0, n1, n2, n3, alpha float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1
	a2 := alpha * alpha

	return p*a2*alpha + q*a2 + r*alpha + s
}

// ScaleShift returns v·s − 1. With s=2 it maps a value in [0,1] onto [−1,1].
func ScaleShift(v, s float64) float64 {
	return v*s - 1.0
}

// Clamp bounds v to [lo, hi]. The caller guarantees lo ≤ hi.
// NaN is returned unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

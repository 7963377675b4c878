// SPDX-License-Identifier: MIT

package mathx

// Cubic is the Hermite s-curve 3t² − 2t³.
// First derivative is zero at t=0 and t=1.
func Cubic(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// Quintic is the s-curve 6t⁵ − 15t⁴ + 10t³.
// First and second derivatives are zero at t=0 and t=1, which is what keeps
// lattice noise C² across cell boundaries.
func Quintic(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

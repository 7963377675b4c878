// SPDX-License-Identifier: MIT

// Package mathx holds the small numeric kernels shared by every noise
// primitive and node: interpolation, s-curves and fixed-size vector helpers.
//
// What:
//
//   - Lerp, CubicInterp             — linear and four-point cubic interpolation.
//   - Cubic, Quintic                — fade curves 3t²−2t³ and 6t⁵−15t⁴+10t³.
//   - ScaleShift                    — v·s − 1, maps [0,1] back to [−1,1] with s=2.
//   - Add, Sub, Mul, Scale, Dot     — element-wise ops over [2|3|4]float64.
//   - Split, MapQuintic             — lattice cell + fractional part, faded weights.
//
// Numeric policy:
//
//   - Floors round toward −∞ (math.Floor), so the fractional part is always in [0,1).
//   - Nothing here checks for NaN/±Inf; non-finite inputs propagate.
//   - All functions are pure and allocation-free.
package mathx

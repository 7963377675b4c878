// SPDX-License-Identifier: MIT

// Package kernel contains the raw sampling kernels behind every lattice noise
// primitive: value, gradient (Perlin), simplex and cellular (Worley) noise in
// two, three and four dimensions.
//
// Each kernel is a plain function of a permtable.Hasher and a point:
//
//	v := kernel.Perlin3D(table, [3]float64{x, y, z})
//
// Contract:
//   - Output is in [−1, +1]. Gradient and simplex kernels are normalised by a
//     fixed factor and then clamped, so rounding never escapes the range.
//   - Value and Perlin kernels fade with the quintic s-curve and are C²
//     across lattice boundaries; simplex kernels use radius² = 0.5 so every
//     corner contribution vanishes before its simplex is left; Worley F1
//     distance is C⁰.
//   - Non-finite input propagates; nothing is checked.
//   - Kernels are pure: no allocation, no shared state.
//
// Higher-level, seedable nodes wrapping these kernels live in package noise.
package kernel

// SPDX-License-Identifier: MIT

// Package sampler evaluates a noise graph over a regular 2D lattice of
// points and analyses the resulting height field.
//
// What:
//
//   - Plane samples any noise.Source[P] on a Width×Height grid, spreading rows
//     over goroutines. Points span the rectangle set by WithBounds; extra
//     axes of 3D/4D sources are held at the WithFixed coordinates.
//   - Grid stores the samples row-major with At, Range and Coordinate helpers.
//   - Regions finds connected areas of cells at or above a threshold
//     ("land" in a heightmap) using 4- or 8-connectivity.
//
// Complexity:
//
//   - Plane:   O(W×H×cost(Sample)) work, O(W×H) memory.
//   - Regions: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//
// Errors:
//
//   - ErrBadSize: width or height below 1.
//   - ErrBadBounds: an empty or non-finite sampling rectangle.
//   - ErrTooManyAxes: more fixed coordinates than the source has extra axes.
//
// Option constructors panic on meaningless input; Plane returns errors.
package sampler

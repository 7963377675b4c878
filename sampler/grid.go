// SPDX-License-Identifier: MIT

package sampler

import "math"

// Grid is a Width×Height field of samples stored row-major:
// Values[y*Width + x]. It is immutable once returned by Plane.
type Grid struct {
	Width, Height int
	Values        []float64
}

// At returns the sample at column x, row y.
// Panics when (x, y) is outside the grid, as slice indexing does.
func (g *Grid) At(x, y int) float64 {
	return g.Values[g.index(x, y)]
}

// Range returns the smallest and largest sample. NaN samples are skipped;
// an all-NaN grid reports (NaN, NaN).
//
// Complexity: O(W×H).
func (g *Grid) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return math.NaN(), math.NaN()
	}

	return lo, hi
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x, y) to y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x, y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

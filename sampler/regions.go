// SPDX-License-Identifier: MIT

package sampler

// Connectivity selects which neighbouring cells touch.
type Connectivity int

const (
	// Conn4 links N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links the diagonals.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// offsets returns the neighbour deltas for c. Unknown values act as Conn4.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// Regions finds every connected area of cells whose value is ≥ threshold.
// Each region is a slice of row-major indices in BFS order, starting from its
// top-left-most cell; regions are ordered by that first cell. NaN cells are
// never part of a region.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(threshold float64, conn Connectivity) [][]int {
	seen := make([]bool, len(g.Values))
	deltas := conn.offsets()
	var regions [][]int

	for i0, v := range g.Values {
		if seen[i0] || !(v >= threshold) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range deltas {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] && g.Values[vi] >= threshold {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Coverage returns the fraction of cells whose value is ≥ threshold.
func (g *Grid) Coverage(threshold float64) float64 {
	if len(g.Values) == 0 {
		return 0
	}
	n := 0
	for _, v := range g.Values {
		if v >= threshold {
			n++
		}
	}

	return float64(n) / float64(len(g.Values))
}

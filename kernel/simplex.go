// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/lvnoise/mathx"
	"github.com/katalvlaran/lvnoise/permtable"
)

// Skew (F) and unskew (G) factors for the simplex lattice:
// F = (√(n+1) − 1)/n, G = (1 − 1/√(n+1))/n.
var (
	skew2   = (math.Sqrt(3) - 1) / 2
	unskew2 = (3 - math.Sqrt(3)) / 6
	skew4   = (math.Sqrt(5) - 1) / 4
	unskew4 = (5 - math.Sqrt(5)) / 20
)

const (
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0

	// radius2 is the squared support radius of each corner kernel. At 0.5
	// a corner's contribution reaches zero before any point that could be
	// assigned to a simplex without that corner, so the sum is continuous.
	radius2 = 0.5

	simplex2Scale = 70.0
	simplex3Scale = 76.0
	simplex4Scale = 62.0
)

// falloff returns (r² − |d|²)⁴ clipped at zero.
func falloff(dist2 float64) float64 {
	t := radius2 - dist2
	if t <= 0 {
		return 0
	}
	t *= t

	return t * t
}

// Simplex2D samples 2D simplex noise.
func Simplex2D(h permtable.Hasher, p [2]float64) float64 {
	s := (p[0] + p[1]) * skew2
	i := int(math.Floor(p[0] + s))
	j := int(math.Floor(p[1] + s))

	t := float64(i+j) * unskew2
	x0 := p[0] - (float64(i) - t)
	y0 := p[1] - (float64(j) - t)

	// Lower or upper triangle of the skewed cell.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	var n float64
	if k := falloff(x0*x0 + y0*y0); k > 0 {
		g := grad3[h.Hash2(i, j)%12]
		n += k * (g[0]*x0 + g[1]*y0)
	}
	if k := falloff(x1*x1 + y1*y1); k > 0 {
		g := grad3[h.Hash2(i+i1, j+j1)%12]
		n += k * (g[0]*x1 + g[1]*y1)
	}
	if k := falloff(x2*x2 + y2*y2); k > 0 {
		g := grad3[h.Hash2(i+1, j+1)%12]
		n += k * (g[0]*x2 + g[1]*y2)
	}

	return mathx.Clamp(n*simplex2Scale, -1, 1)
}

// Simplex3D samples 3D simplex noise.
func Simplex3D(h permtable.Hasher, p [3]float64) float64 {
	s := (p[0] + p[1] + p[2]) * skew3
	var cell [3]int
	for a := 0; a < 3; a++ {
		cell[a] = int(math.Floor(p[a] + s))
	}

	t := float64(cell[0]+cell[1]+cell[2]) * unskew3
	var d0 [3]float64
	for a := 0; a < 3; a++ {
		d0[a] = p[a] - (float64(cell[a]) - t)
	}

	// Traversal order: step first along the largest offset, then the second.
	var o1, o2 [3]int
	switch {
	case d0[0] >= d0[1] && d0[1] >= d0[2]:
		o1, o2 = [3]int{1, 0, 0}, [3]int{1, 1, 0}
	case d0[0] >= d0[2] && d0[2] >= d0[1]:
		o1, o2 = [3]int{1, 0, 0}, [3]int{1, 0, 1}
	case d0[2] >= d0[0] && d0[0] >= d0[1]:
		o1, o2 = [3]int{0, 0, 1}, [3]int{1, 0, 1}
	case d0[1] >= d0[0] && d0[0] >= d0[2]:
		o1, o2 = [3]int{0, 1, 0}, [3]int{1, 1, 0}
	case d0[1] >= d0[2] && d0[2] >= d0[0]:
		o1, o2 = [3]int{0, 1, 0}, [3]int{0, 1, 1}
	default:
		o1, o2 = [3]int{0, 0, 1}, [3]int{0, 1, 1}
	}
	offsets := [4][3]int{{0, 0, 0}, o1, o2, {1, 1, 1}}

	var n float64
	for m, o := range offsets {
		var d [3]float64
		for a := 0; a < 3; a++ {
			d[a] = d0[a] - float64(o[a]) + float64(m)*unskew3
		}
		k := falloff(mathx.Dot(d, d))
		if k == 0 {
			continue
		}
		g := grad3[h.Hash3(cell[0]+o[0], cell[1]+o[1], cell[2]+o[2])%12]
		n += k * mathx.Dot(g, d)
	}

	return mathx.Clamp(n*simplex3Scale, -1, 1)
}

// Simplex4D samples 4D simplex noise. The simplex is found by ranking the
// four offset components: the corner after m steps has a 1 on every axis
// whose rank is at least 4−m.
func Simplex4D(h permtable.Hasher, p [4]float64) float64 {
	s := (p[0] + p[1] + p[2] + p[3]) * skew4
	var cell [4]int
	for a := 0; a < 4; a++ {
		cell[a] = int(math.Floor(p[a] + s))
	}

	t := float64(cell[0]+cell[1]+cell[2]+cell[3]) * unskew4
	var d0 [4]float64
	for a := 0; a < 4; a++ {
		d0[a] = p[a] - (float64(cell[a]) - t)
	}

	var rank [4]int
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			if d0[a] > d0[b] {
				rank[a]++
			} else {
				rank[b]++
			}
		}
	}

	var n float64
	for m := 0; m <= 4; m++ {
		var (
			o [4]int
			d [4]float64
		)
		for a := 0; a < 4; a++ {
			if rank[a] >= 4-m {
				o[a] = 1
			}
			d[a] = d0[a] - float64(o[a]) + float64(m)*unskew4
		}
		k := falloff(mathx.Dot(d, d))
		if k == 0 {
			continue
		}
		g := grad4[h.Hash4(cell[0]+o[0], cell[1]+o[1], cell[2]+o[2], cell[3]+o[3])&31]
		n += k * mathx.Dot(g, d)
	}

	return mathx.Clamp(n*simplex4Scale, -1, 1)
}

// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/lvnoise/permtable"
)

// Distance selects the metric used by the Worley kernels.
type Distance int

const (
	// Euclidean is the straight-line distance.
	Euclidean Distance = iota
	// EuclideanSquared skips the square root.
	EuclideanSquared
	// Chebyshev is the largest per-axis distance.
	Chebyshev
)

// ReturnType selects what a Worley kernel reports for the nearest feature.
type ReturnType int

const (
	// ReturnDistance reports the distance to the nearest feature point (F1).
	ReturnDistance ReturnType = iota
	// ReturnValue reports a per-cell constant derived from the nearest
	// feature's cell hash. The result is piecewise constant.
	ReturnValue
)

// Feature points lie in [featureMin, featureMin+featureSpan] on every axis of
// their cell. With the span below 0.5 the nearest feature of any point always
// lies in the surrounding 3ⁿ block of cells, for n ≤ 4.
const (
	featureMin  = 0.35
	featureSpan = 0.3
	featureMax  = featureMin + featureSpan
)

// String implements fmt.Stringer.
func (d Distance) String() string {
	switch d {
	case Euclidean:
		return "euclidean"
	case EuclideanSquared:
		return "euclidean-squared"
	case Chebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the defined metrics.
func (d Distance) Valid() bool {
	return d >= Euclidean && d <= Chebyshev
}

// Valid reports whether r is one of the defined return types.
func (r ReturnType) Valid() bool {
	return r == ReturnDistance || r == ReturnValue
}

// eval measures the first n components of delta.
func (d Distance) eval(delta [4]float64, n int) float64 {
	switch d {
	case Chebyshev:
		var m float64
		for a := 0; a < n; a++ {
			m = math.Max(m, math.Abs(delta[a]))
		}

		return m
	case EuclideanSquared:
		var s float64
		for a := 0; a < n; a++ {
			s += delta[a] * delta[a]
		}

		return s
	default:
		var s float64
		for a := 0; a < n; a++ {
			s += delta[a] * delta[a]
		}

		return math.Sqrt(s)
	}
}

// bound is the largest F1 value possible in n dimensions: a sample at a cell
// corner whose own feature sits at the far extreme.
func (d Distance) bound(n int) float64 {
	switch d {
	case Chebyshev:
		return featureMax
	case EuclideanSquared:
		return float64(n) * featureMax * featureMax
	default:
		return math.Sqrt(float64(n)) * featureMax
	}
}

// Worley2D samples 2D cellular noise.
func Worley2D(h permtable.Hasher, p [2]float64, dist Distance, ret ReturnType) float64 {
	return worley(h, [4]float64{p[0], p[1]}, 2, dist, ret)
}

// Worley3D samples 3D cellular noise.
func Worley3D(h permtable.Hasher, p [3]float64, dist Distance, ret ReturnType) float64 {
	return worley(h, [4]float64{p[0], p[1], p[2]}, 3, dist, ret)
}

// Worley4D samples 4D cellular noise.
func Worley4D(h permtable.Hasher, p [4]float64, dist Distance, ret ReturnType) float64 {
	return worley(h, p, 4, dist, ret)
}

// cellHash hashes the first n components of c.
func cellHash(h permtable.Hasher, c [4]int, n int) uint8 {
	switch n {
	case 2:
		return h.Hash2(c[0], c[1])
	case 3:
		return h.Hash3(c[0], c[1], c[2])
	default:
		return h.Hash4(c[0], c[1], c[2], c[3])
	}
}

// worley scans the 3ⁿ cells around p for the nearest feature point.
//
// Feature point of cell c on axis a: c[a] + featureMin + featureSpan·H(hash(c), a)/255.
func worley(h permtable.Hasher, p [4]float64, n int, dist Distance, ret ReturnType) float64 {
	var base [4]int
	for a := 0; a < n; a++ {
		base[a] = int(math.Floor(p[a]))
	}

	total := 1
	for a := 0; a < n; a++ {
		total *= 3
	}

	best := math.Inf(1)
	var bestHash uint8
	for idx := 0; idx < total; idx++ {
		var (
			c     [4]int
			delta [4]float64
		)
		rest := idx
		for a := 0; a < n; a++ {
			c[a] = base[a] + rest%3 - 1
			rest /= 3
		}
		ch := cellHash(h, c, n)
		for a := 0; a < n; a++ {
			feature := float64(c[a]) + featureMin + featureSpan*unit(h.Hash2(int(ch), a))
			delta[a] = feature - p[a]
		}
		if d := dist.eval(delta, n); d < best {
			best, bestHash = d, ch
		}
	}

	if ret == ReturnValue {
		return unit(bestHash)*2 - 1
	}

	return math.Min(best/dist.bound(n), 1)*2 - 1
}

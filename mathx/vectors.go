// SPDX-License-Identifier: MIT

package mathx

import "math"

// Vec is the set of fixed-size coordinate tuples the library samples at.
// Dimensionality is part of the static type; generic helpers below loop over
// len(v) so a single body serves all three sizes.
type Vec interface {
	[2]float64 | [3]float64 | [4]float64
}

// Add returns a + b element-wise.
func Add[V Vec](a, b V) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = a[i] + b[i]
	}

	return out
}

// Sub returns a − b element-wise.
func Sub[V Vec](a, b V) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = a[i] - b[i]
	}

	return out
}

// Mul returns the Hadamard product a ⊙ b.
func Mul[V Vec](a, b V) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = a[i] * b[i]
	}

	return out
}

// Scale returns v·k.
func Scale[V Vec](v V, k float64) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = v[i] * k
	}

	return out
}

// Dot returns Σ a[i]·b[i].
func Dot[V Vec](a, b V) float64 {
	var sum float64
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// Split floors every component of v toward −∞ and returns the integer lattice
// cell together with the fractional remainder v − floor(v) ∈ [0,1).
//
// The cell is padded to four entries; only the first len(v) are meaningful.
// Conversion to int is undefined for |v| beyond the int range, as with any
// float→int conversion in Go.
func Split[V Vec](v V) (cell [4]int, frac V) {
	for i := 0; i < len(v); i++ {
		f := math.Floor(v[i])
		cell[i] = int(f)
		frac[i] = v[i] - f
	}

	return cell, frac
}

// MapQuintic applies Quintic to every component.
func MapQuintic[V Vec](v V) V {
	var out V
	for i := 0; i < len(v); i++ {
		out[i] = Quintic(v[i])
	}

	return out
}

// Widen copies v into a [4]float64, zero-padding the unused axes.
func Widen[V Vec](v V) (w [4]float64) {
	for i := 0; i < len(v); i++ {
		w[i] = v[i]
	}

	return w
}

// Narrow is the inverse of Widen: it keeps the first len(V) components of w.
func Narrow[V Vec](w [4]float64) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = w[i]
	}

	return out
}

// Dims reports the dimensionality of V.
func Dims[V Vec]() int {
	var v V

	return len(v)
}

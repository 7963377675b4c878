// SPDX-License-Identifier: MIT

package noise

import "math"

// mustSource panics when src is nil.
func mustSource[P Point](node string, src Source[P]) {
	if src == nil {
		configPanic(node, ErrNilSource)
	}
}

// mustFinite panics when v is NaN or ±Inf.
func mustFinite(node, name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		configPanicf(node, ErrNonFinite, "%s=%v", name, v)
	}
}

// mustOctaves panics unless 1 ≤ n ≤ MaxOctaves.
func mustOctaves(node string, n int) {
	if n < 1 || n > MaxOctaves {
		configPanicf(node, ErrOctaves, "got %d, want [1,%d]", n, MaxOctaves)
	}
}

// mustInterval panics unless lo and hi are finite and lo ≤ hi.
func mustInterval(node string, lo, hi float64) {
	mustFinite(node, "lower", lo)
	mustFinite(node, "upper", hi)
	if lo > hi {
		configPanicf(node, ErrBounds, "lower %v > upper %v", lo, hi)
	}
}

// mustAxes panics when n per-axis values do not fit dims.
func mustAxes(node string, n, dims int) {
	if n > dims {
		configPanicf(node, ErrTooManyAxes, "%d values for %d axes", n, dims)
	}
}

// mustAxis panics unless 0 ≤ axis < dims.
func mustAxis(node string, axis, dims int) {
	if axis < 0 || axis >= dims {
		configPanicf(node, ErrTooManyAxes, "axis %d, dimensions %d", axis, dims)
	}
}

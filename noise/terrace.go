// SPDX-License-Identifier: MIT

package noise

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvnoise/mathx"
)

// Terrace remaps the source through a terrace-forming curve: between two
// adjacent control points the output rises quadratically, flattening at the
// lower point; Inverted flattens at the upper point instead. Outside the
// control range the output is held at the outermost point.
//
// Control points are kept sorted and distinct; there are always at least
// MinTerracePoints of them.
type Terrace[P Point] struct {
	unary[P]
	points   []float64
	inverted bool
}

// NewTerrace wraps src with the given control points, in any order.
// Fewer than MinTerracePoints distinct points panics with ErrControlPoints;
// a repeated point panics with ErrDuplicatePoint.
func NewTerrace[P Point](src Source[P], points ...float64) Terrace[P] {
	t := Terrace[P]{unary: newUnary(NodeTerrace, src)}
	t.points = sortedTerracePoints(points)

	return t
}

// NewTerraceSteps wraps src with n control points evenly spaced over [−1, 1].
func NewTerraceSteps[P Point](src Source[P], n int) Terrace[P] {
	if n < MinTerracePoints {
		configPanicf(NodeTerrace, ErrControlPoints, "got %d, want ≥ %d", n, MinTerracePoints)
	}
	points := make([]float64, n)
	step := 2.0 / float64(n-1)
	for i := range points {
		points[i] = -1 + float64(i)*step
	}

	return NewTerrace(src, points...)
}

func sortedTerracePoints(points []float64) []float64 {
	out := slices.Clone(points)
	for _, v := range out {
		mustFinite(NodeTerrace, "point", v)
	}
	slices.Sort(out)
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1] {
			configPanicf(NodeTerrace, ErrDuplicatePoint, "%v", out[i])
		}
	}
	if len(out) < MinTerracePoints {
		configPanicf(NodeTerrace, ErrControlPoints, "got %d, want ≥ %d", len(out), MinTerracePoints)
	}

	return out
}

// Sample applies the terrace curve.
func (m Terrace[P]) Sample(p P) float64 {
	v := m.source.Sample(p)
	if math.IsNaN(v) {
		return v
	}
	n := len(m.points)

	// First control point strictly above v.
	idx := 0
	for idx < n && v >= m.points[idx] {
		idx++
	}

	i0 := clampIndex(idx-1, n)
	i1 := clampIndex(idx, n)
	if i0 == i1 {
		return m.points[i1]
	}

	in0, in1 := m.points[i0], m.points[i1]
	alpha := (v - in0) / (in1 - in0)
	if m.inverted {
		alpha = 1 - alpha
		in0, in1 = in1, in0
	}

	return mathx.Lerp(in0, in1, alpha*alpha)
}

// ControlPoints returns a copy of the sorted control points.
func (m Terrace[P]) ControlPoints() []float64 {
	return slices.Clone(m.points)
}

// Inverted reports whether the curve is inverted.
func (m Terrace[P]) Inverted() bool {
	return m.inverted
}

// WithControlPoint returns a copy with v added.
func (m Terrace[P]) WithControlPoint(v float64) Terrace[P] {
	m.points = sortedTerracePoints(append(slices.Clone(m.points), v))

	return m
}

// WithInverted sets the inversion flag.
func (m Terrace[P]) WithInverted(inverted bool) Terrace[P] {
	m.inverted = inverted

	return m
}

// WithSeed reseeds the source; control points are kept.
func (m Terrace[P]) WithSeed(seed uint32) Terrace[P] {
	m.unary = m.reseeded(seed)

	return m
}

// Reseed implements Seedable.
func (m Terrace[P]) Reseed(seed uint32) Source[P] { return m.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (m Terrace[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	m.unary = m.withFractal(cfg)

	return m
}

// clampIndex bounds i to [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}

	return i
}

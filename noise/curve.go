// SPDX-License-Identifier: MIT

package noise

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/lvnoise/mathx"
)

// ControlPoint maps an input value of the source to an output value.
type ControlPoint struct {
	In, Out float64
}

// Curve remaps the source through a cubic spline passing through its control
// points. Outside the control range the spline is held at the outermost
// output.
type Curve[P Point] struct {
	unary[P]
	points []ControlPoint
}

// NewCurve wraps src with the given control points, in any order. Fewer than
// MinCurvePoints panics with ErrControlPoints; two points with the same In
// panic with ErrDuplicatePoint.
func NewCurve[P Point](src Source[P], points ...ControlPoint) Curve[P] {
	c := Curve[P]{unary: newUnary(NodeCurve, src)}
	c.points = sortedCurvePoints(points)

	return c
}

func sortedCurvePoints(points []ControlPoint) []ControlPoint {
	out := slices.Clone(points)
	for _, cp := range out {
		mustFinite(NodeCurve, "in", cp.In)
		mustFinite(NodeCurve, "out", cp.Out)
	}
	slices.SortFunc(out, func(a, b ControlPoint) int { return cmp.Compare(a.In, b.In) })
	for i := 1; i < len(out); i++ {
		if out[i].In == out[i-1].In {
			configPanicf(NodeCurve, ErrDuplicatePoint, "in=%v", out[i].In)
		}
	}
	if len(out) < MinCurvePoints {
		configPanicf(NodeCurve, ErrControlPoints, "got %d, want ≥ %d", len(out), MinCurvePoints)
	}

	return out
}

// Sample evaluates the spline at the source value.
func (m Curve[P]) Sample(p P) float64 {
	v := m.source.Sample(p)
	if math.IsNaN(v) {
		return v
	}
	n := len(m.points)

	// First control point whose input is strictly above v.
	idx := 0
	for idx < n && v >= m.points[idx].In {
		idx++
	}

	i0 := clampIndex(idx-2, n)
	i1 := clampIndex(idx-1, n)
	i2 := clampIndex(idx, n)
	i3 := clampIndex(idx+1, n)
	if i1 == i2 {
		return m.points[i1].Out
	}

	in0, in1 := m.points[i1].In, m.points[i2].In
	alpha := (v - in0) / (in1 - in0)

	return mathx.CubicInterp(m.points[i0].Out, m.points[i1].Out, m.points[i2].Out, m.points[i3].Out, alpha)
}

// ControlPoints returns a copy of the control points sorted by input.
func (m Curve[P]) ControlPoints() []ControlPoint {
	return slices.Clone(m.points)
}

// WithControlPoint returns a copy with cp added.
func (m Curve[P]) WithControlPoint(cp ControlPoint) Curve[P] {
	m.points = sortedCurvePoints(append(slices.Clone(m.points), cp))

	return m
}

// WithSeed reseeds the source; control points are kept.
func (m Curve[P]) WithSeed(seed uint32) Curve[P] {
	m.unary = m.reseeded(seed)

	return m
}

// Reseed implements Seedable.
func (m Curve[P]) Reseed(seed uint32) Source[P] { return m.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (m Curve[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	m.unary = m.withFractal(cfg)

	return m
}

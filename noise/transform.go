// SPDX-License-Identifier: MIT

package noise

import "github.com/katalvlaran/lvnoise/mathx"

// TranslatePoint moves the input point by a per-axis offset before sampling
// the source: out(p) = src(p + Δ).
type TranslatePoint[P Point] struct {
	unary[P]
	offset [4]float64
}

// NewTranslatePoint wraps src with a zero offset.
func NewTranslatePoint[P Point](src Source[P]) TranslatePoint[P] {
	return TranslatePoint[P]{unary: newUnary(NodeTranslate, src)}
}

// Sample returns src(p + Δ).
func (t TranslatePoint[P]) Sample(p P) float64 {
	for i := 0; i < len(p); i++ {
		p[i] += t.offset[i]
	}

	return t.source.Sample(p)
}

// Translation returns the offsets for the point's axes.
func (t TranslatePoint[P]) Translation() P {
	return mathx.Narrow[P](t.offset)
}

// WithTranslation sets the offsets of the leading axes; omitted axes keep
// their value. More values than axes panics with ErrTooManyAxes.
func (t TranslatePoint[P]) WithTranslation(offsets ...float64) TranslatePoint[P] {
	mustAxes(NodeTranslate, len(offsets), mathx.Dims[P]())
	for i, v := range offsets {
		mustFinite(NodeTranslate, "offset", v)
		t.offset[i] = v
	}

	return t
}

// WithAxis sets the offset of a single axis.
func (t TranslatePoint[P]) WithAxis(axis int, offset float64) TranslatePoint[P] {
	mustAxis(NodeTranslate, axis, mathx.Dims[P]())
	mustFinite(NodeTranslate, "offset", offset)
	t.offset[axis] = offset

	return t
}

// WithSeed reseeds the source; offsets are kept.
func (t TranslatePoint[P]) WithSeed(seed uint32) TranslatePoint[P] {
	t.unary = t.reseeded(seed)

	return t
}

// Reseed implements Seedable.
func (t TranslatePoint[P]) Reseed(seed uint32) Source[P] { return t.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (t TranslatePoint[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	t.unary = t.withFractal(cfg)

	return t
}

// ScalePoint multiplies the input point per axis before sampling the source:
// out(p) = src(p ⊙ k).
type ScalePoint[P Point] struct {
	unary[P]
	factor [4]float64
}

// NewScalePoint wraps src with unit factors.
func NewScalePoint[P Point](src Source[P]) ScalePoint[P] {
	return ScalePoint[P]{unary: newUnary(NodeScalePoint, src), factor: [4]float64{1, 1, 1, 1}}
}

// Sample returns src(p ⊙ k).
func (t ScalePoint[P]) Sample(p P) float64 {
	for i := 0; i < len(p); i++ {
		p[i] *= t.factor[i]
	}

	return t.source.Sample(p)
}

// Factors returns the factors for the point's axes.
func (t ScalePoint[P]) Factors() P {
	return mathx.Narrow[P](t.factor)
}

// WithScale sets the factors of the leading axes; omitted axes keep their
// value. More values than axes panics with ErrTooManyAxes.
func (t ScalePoint[P]) WithScale(factors ...float64) ScalePoint[P] {
	mustAxes(NodeScalePoint, len(factors), mathx.Dims[P]())
	for i, v := range factors {
		mustFinite(NodeScalePoint, "factor", v)
		t.factor[i] = v
	}

	return t
}

// WithUniformScale sets every axis to k.
func (t ScalePoint[P]) WithUniformScale(k float64) ScalePoint[P] {
	mustFinite(NodeScalePoint, "factor", k)
	t.factor = [4]float64{k, k, k, k}

	return t
}

// WithAxis sets the factor of a single axis.
func (t ScalePoint[P]) WithAxis(axis int, k float64) ScalePoint[P] {
	mustAxis(NodeScalePoint, axis, mathx.Dims[P]())
	mustFinite(NodeScalePoint, "factor", k)
	t.factor[axis] = k

	return t
}

// WithSeed reseeds the source; factors are kept.
func (t ScalePoint[P]) WithSeed(seed uint32) ScalePoint[P] {
	t.unary = t.reseeded(seed)

	return t
}

// Reseed implements Seedable.
func (t ScalePoint[P]) Reseed(seed uint32) Source[P] { return t.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (t ScalePoint[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	t.unary = t.withFractal(cfg)

	return t
}

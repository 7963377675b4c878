// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	"github.com/katalvlaran/lvnoise/mathx"
)

// Abs outputs |v|.
type Abs[P Point] struct {
	unary[P]
}

// NewAbs wraps src.
func NewAbs[P Point](src Source[P]) Abs[P] {
	return Abs[P]{unary: newUnary(NodeAbs, src)}
}

// Sample returns |src(p)|.
func (m Abs[P]) Sample(p P) float64 {
	return math.Abs(m.source.Sample(p))
}

// WithSeed reseeds the source.
func (m Abs[P]) WithSeed(seed uint32) Abs[P] {
	m.unary = m.reseeded(seed)

	return m
}

// Reseed implements Seedable.
func (m Abs[P]) Reseed(seed uint32) Source[P] { return m.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (m Abs[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	m.unary = m.withFractal(cfg)

	return m
}

// Invert outputs −v.
type Invert[P Point] struct {
	unary[P]
}

// NewInvert wraps src.
func NewInvert[P Point](src Source[P]) Invert[P] {
	return Invert[P]{unary: newUnary(NodeInvert, src)}
}

// Sample returns −src(p).
func (m Invert[P]) Sample(p P) float64 {
	return -m.source.Sample(p)
}

// WithSeed reseeds the source.
func (m Invert[P]) WithSeed(seed uint32) Invert[P] {
	m.unary = m.reseeded(seed)

	return m
}

// Reseed implements Seedable.
func (m Invert[P]) Reseed(seed uint32) Source[P] { return m.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (m Invert[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	m.unary = m.withFractal(cfg)

	return m
}

// Exponent maps the source onto [0,1], raises it to a power and maps it back:
//
//	((|v+1| / 2)^e)·2 − 1
//
// so e > 1 pulls values toward −1 and e < 1 pushes them toward +1.
type Exponent[P Point] struct {
	unary[P]
	exponent float64
}

// NewExponent wraps src with DefaultExponent.
func NewExponent[P Point](src Source[P]) Exponent[P] {
	return Exponent[P]{unary: newUnary(NodeExponent, src), exponent: DefaultExponent}
}

// Sample applies the exponent curve.
func (m Exponent[P]) Sample(p P) float64 {
	v := (m.source.Sample(p) + 1) / 2

	return mathx.ScaleShift(math.Pow(math.Abs(v), m.exponent), 2)
}

// Exponent returns the configured exponent.
func (m Exponent[P]) Exponent() float64 {
	return m.exponent
}

// WithExponent sets e. Non-finite values panic.
func (m Exponent[P]) WithExponent(e float64) Exponent[P] {
	mustFinite(NodeExponent, "exponent", e)
	m.exponent = e

	return m
}

// WithSeed reseeds the source; the exponent is kept.
func (m Exponent[P]) WithSeed(seed uint32) Exponent[P] {
	m.unary = m.reseeded(seed)

	return m
}

// Reseed implements Seedable.
func (m Exponent[P]) Reseed(seed uint32) Source[P] { return m.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (m Exponent[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	m.unary = m.withFractal(cfg)

	return m
}

// Clamp bounds the source to [lower, upper].
type Clamp[P Point] struct {
	unary[P]
	lower, upper float64
}

// NewClamp wraps src with bounds [DefaultClampLower, DefaultClampUpper].
func NewClamp[P Point](src Source[P]) Clamp[P] {
	return Clamp[P]{unary: newUnary(NodeClamp, src), lower: DefaultClampLower, upper: DefaultClampUpper}
}

// Sample returns min(max(v, lower), upper).
func (m Clamp[P]) Sample(p P) float64 {
	return mathx.Clamp(m.source.Sample(p), m.lower, m.upper)
}

// Bounds returns the clamping interval.
func (m Clamp[P]) Bounds() (lower, upper float64) {
	return m.lower, m.upper
}

// WithBounds sets the interval. lower > upper panics with ErrBounds.
func (m Clamp[P]) WithBounds(lower, upper float64) Clamp[P] {
	mustInterval(NodeClamp, lower, upper)
	m.lower, m.upper = lower, upper

	return m
}

// WithSeed reseeds the source; the bounds are kept.
func (m Clamp[P]) WithSeed(seed uint32) Clamp[P] {
	m.unary = m.reseeded(seed)

	return m
}

// Reseed implements Seedable.
func (m Clamp[P]) Reseed(seed uint32) Source[P] { return m.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (m Clamp[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	m.unary = m.withFractal(cfg)

	return m
}

// ScaleBias outputs v·scale + bias.
type ScaleBias[P Point] struct {
	unary[P]
	scale, bias float64
}

// NewScaleBias wraps src with scale DefaultScale and bias DefaultBias.
func NewScaleBias[P Point](src Source[P]) ScaleBias[P] {
	return ScaleBias[P]{unary: newUnary(NodeScaleBias, src), scale: DefaultScale, bias: DefaultBias}
}

// Sample returns src(p)·scale + bias.
func (m ScaleBias[P]) Sample(p P) float64 {
	return m.source.Sample(p)*m.scale + m.bias
}

// ScaleFactor returns the multiplier.
func (m ScaleBias[P]) ScaleFactor() float64 {
	return m.scale
}

// Bias returns the offset.
func (m ScaleBias[P]) Bias() float64 {
	return m.bias
}

// WithScale sets the multiplier.
func (m ScaleBias[P]) WithScale(scale float64) ScaleBias[P] {
	mustFinite(NodeScaleBias, "scale", scale)
	m.scale = scale

	return m
}

// WithBias sets the offset.
func (m ScaleBias[P]) WithBias(bias float64) ScaleBias[P] {
	mustFinite(NodeScaleBias, "bias", bias)
	m.bias = bias

	return m
}

// WithSeed reseeds the source; scale and bias are kept.
func (m ScaleBias[P]) WithSeed(seed uint32) ScaleBias[P] {
	m.unary = m.reseeded(seed)

	return m
}

// Reseed implements Seedable.
func (m ScaleBias[P]) Reseed(seed uint32) Source[P] { return m.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (m ScaleBias[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	m.unary = m.withFractal(cfg)

	return m
}

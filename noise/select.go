// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/lvnoise/mathx"
)

// Select chooses between two sources by the value of a control source:
// b where control lies inside [lower, upper], a outside. Within falloff of
// either bound the two are cross-faded with the cubic s-curve.
//
// Only the sources needed for a sample are evaluated.
type Select[P Point] struct {
	binary[P]
	control      Source[P]
	lower, upper float64
	// falloff is the requested edge width; Falloff clamps it.
	falloff float64
}

// NewSelect combines a and b under control with bounds
// [DefaultSelectLower, DefaultSelectUpper] and DefaultSelectFalloff.
func NewSelect[P Point](a, b, control Source[P]) Select[P] {
	mustSource(NodeSelect, control)

	return Select[P]{
		binary:  newBinary(NodeSelect, a, b),
		control: control,
		lower:   DefaultSelectLower,
		upper:   DefaultSelectUpper,
		falloff: DefaultSelectFalloff,
	}
}

// Sample selects or cross-fades a and b.
func (c Select[P]) Sample(p P) float64 {
	v := c.control.Sample(p)
	lo, hi, f := c.lower, c.upper, c.Falloff()

	if f > 0 {
		switch {
		case v < lo-f:
			return c.a.Sample(p)
		case v < lo+f:
			alpha := mathx.Cubic((v - (lo - f)) / (2 * f))

			return mathx.Lerp(c.a.Sample(p), c.b.Sample(p), alpha)
		case v < hi-f:
			return c.b.Sample(p)
		case v < hi+f:
			alpha := mathx.Cubic((v - (hi - f)) / (2 * f))

			return mathx.Lerp(c.b.Sample(p), c.a.Sample(p), alpha)
		default:
			return c.a.Sample(p)
		}
	}

	if v < lo || v > hi {
		return c.a.Sample(p)
	}

	return c.b.Sample(p)
}

// Control returns the control source.
func (c Select[P]) Control() Source[P] {
	return c.control
}

// Bounds returns the selection interval.
func (c Select[P]) Bounds() (lower, upper float64) {
	return c.lower, c.upper
}

// Falloff returns the effective edge width: the requested one, clamped to
// half the interval width.
func (c Select[P]) Falloff() float64 {
	return min(c.falloff, (c.upper-c.lower)/2)
}

// WithBounds sets the interval. The requested falloff is kept and clamped
// against the new width. lower > upper panics with ErrBounds.
func (c Select[P]) WithBounds(lower, upper float64) Select[P] {
	mustInterval(NodeSelect, lower, upper)
	c.lower, c.upper = lower, upper

	return c
}

// WithFalloff sets the requested edge width; Falloff reports it clamped to
// half the interval width.
// A negative falloff panics with ErrBounds.
func (c Select[P]) WithFalloff(falloff float64) Select[P] {
	mustFinite(NodeSelect, "falloff", falloff)
	if falloff < 0 {
		configPanicf(NodeSelect, ErrBounds, "falloff %v < 0", falloff)
	}
	c.falloff = falloff

	return c
}

// Seed reports the seed of the first seedable of a, b and control.
func (c Select[P]) Seed() uint32 {
	seed, _ := c.seedOf()

	return seed
}

func (c Select[P]) seedOf() (uint32, bool) {
	return firstSeed(c.a, c.b, c.control)
}

// Fractal reports the first fractal configuration among a, b and control.
func (c Select[P]) Fractal() (FractalConfig, bool) {
	return firstFractal(c.a, c.b, c.control)
}

// WithSeed reseeds all three sources with seed; bounds are kept.
func (c Select[P]) WithSeed(seed uint32) Select[P] {
	c.binary = c.reseeded(seed)
	c.control = WithSeed(c.control, seed)

	return c
}

// Reseed implements Seedable.
func (c Select[P]) Reseed(seed uint32) Source[P] { return c.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (c Select[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	c.binary = c.withFractal(cfg)
	c.control = WithFractal(c.control, cfg)

	return c
}

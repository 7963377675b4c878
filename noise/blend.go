// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/lvnoise/mathx"
)

// Blend interpolates linearly from a to b as control goes from −1 to +1.
type Blend[P Point] struct {
	binary[P]
	control Source[P]
}

// NewBlend combines a and b under control.
func NewBlend[P Point](a, b, control Source[P]) Blend[P] {
	mustSource(NodeBlend, control)

	return Blend[P]{binary: newBinary(NodeBlend, a, b), control: control}
}

// Sample returns lerp(a, b, (control+1)/2).
func (c Blend[P]) Sample(p P) float64 {
	t := (c.control.Sample(p) + 1) / 2

	return mathx.Lerp(c.a.Sample(p), c.b.Sample(p), t)
}

// Control returns the control source.
func (c Blend[P]) Control() Source[P] {
	return c.control
}

// Seed reports the seed of the first seedable of a, b and control.
func (c Blend[P]) Seed() uint32 {
	seed, _ := c.seedOf()

	return seed
}

func (c Blend[P]) seedOf() (uint32, bool) {
	return firstSeed(c.a, c.b, c.control)
}

// Fractal reports the first fractal configuration among a, b and control.
func (c Blend[P]) Fractal() (FractalConfig, bool) {
	return firstFractal(c.a, c.b, c.control)
}

// WithSeed reseeds all three sources with seed.
func (c Blend[P]) WithSeed(seed uint32) Blend[P] {
	c.binary = c.reseeded(seed)
	c.control = WithSeed(c.control, seed)

	return c
}

// Reseed implements Seedable.
func (c Blend[P]) Reseed(seed uint32) Source[P] { return c.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (c Blend[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	c.binary = c.withFractal(cfg)
	c.control = WithFractal(c.control, cfg)

	return c
}

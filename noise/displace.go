// SPDX-License-Identifier: MIT

package noise

import "github.com/katalvlaran/lvnoise/mathx"

// Displace warps the input point by per-axis displacement sources before
// sampling the source:
//
//	out(p) = src(p + (d₀(p), d₁(p), …))
//
// Every displacement is evaluated at the original p. A missing or nil
// displacement leaves its axis unchanged.
type Displace[P Point] struct {
	unary[P]
	axes [4]Source[P]
}

// NewDisplace wraps src with displacements for the leading axes. More
// displacements than the point has axes panics with ErrTooManyAxes.
func NewDisplace[P Point](src Source[P], displacements ...Source[P]) Displace[P] {
	mustAxes(NodeDisplace, len(displacements), mathx.Dims[P]())
	d := Displace[P]{unary: newUnary(NodeDisplace, src)}
	copy(d.axes[:], displacements)

	return d
}

// Sample returns src(p + d(p)).
func (d Displace[P]) Sample(p P) float64 {
	q := p
	for i := 0; i < len(p); i++ {
		if d.axes[i] != nil {
			q[i] += d.axes[i].Sample(p)
		}
	}

	return d.source.Sample(q)
}

// Displacement returns the source displacing axis, or nil.
func (d Displace[P]) Displacement(axis int) Source[P] {
	mustAxis(NodeDisplace, axis, mathx.Dims[P]())

	return d.axes[axis]
}

// WithDisplacement sets or clears (nil) the displacement of one axis.
func (d Displace[P]) WithDisplacement(axis int, src Source[P]) Displace[P] {
	mustAxis(NodeDisplace, axis, mathx.Dims[P]())
	d.axes[axis] = src

	return d
}

// Seed reports the seed of the first seedable among the source and the
// displacements.
func (d Displace[P]) Seed() uint32 {
	seed, _ := d.seedOf()

	return seed
}

func (d Displace[P]) seedOf() (uint32, bool) {
	return firstSeed(d.source, d.axes[0], d.axes[1], d.axes[2], d.axes[3])
}

// Fractal reports the first fractal configuration among the source and the
// displacements.
func (d Displace[P]) Fractal() (FractalConfig, bool) {
	return firstFractal(d.source, d.axes[0], d.axes[1], d.axes[2], d.axes[3])
}

// WithSeed reseeds the source and every displacement with seed.
func (d Displace[P]) WithSeed(seed uint32) Displace[P] {
	d.unary = d.reseeded(seed)
	for i := range d.axes {
		if d.axes[i] != nil {
			d.axes[i] = WithSeed(d.axes[i], seed)
		}
	}

	return d
}

// Reseed implements Seedable.
func (d Displace[P]) Reseed(seed uint32) Source[P] { return d.WithSeed(seed) }

// ApplyFractal forwards cfg to the source and every displacement.
func (d Displace[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	d.unary = d.withFractal(cfg)
	for i := range d.axes {
		if d.axes[i] != nil {
			d.axes[i] = WithFractal(d.axes[i], cfg)
		}
	}

	return d
}

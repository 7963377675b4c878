// SPDX-License-Identifier: MIT

package noise

// Point is the set of coordinate tuples a noise graph can be sampled at.
// The dimension is part of the static type of every node.
type Point interface {
	[2]float64 | [3]float64 | [4]float64
}

// Convenience aliases for the three point shapes.
type (
	Point2 = [2]float64
	Point3 = [3]float64
	Point4 = [4]float64
)

// Source is the one capability every node has: a total, pure function from a
// point to a scalar. Implementations must be safe for concurrent use.
type Source[P Point] interface {
	Sample(p P) float64
}

// Seedable is implemented by nodes carrying a seed.
//
// Reseed returns a copy whose seedable leaves are rebuilt from seed; the
// receiver is left untouched. Concrete types also offer a typed WithSeed.
type Seedable[P Point] interface {
	Source[P]
	Seed() uint32
	Reseed(seed uint32) Source[P]
}

// MultiFractal is implemented by octave-summing nodes and by every node that
// can forward fractal settings to one of its sources.
//
// Fractal reports the effective configuration; ok is false when nothing
// below the node is fractal. ApplyFractal validates cfg and panics with
// *ConfigurationError on invalid input.
type MultiFractal[P Point] interface {
	Source[P]
	Fractal() (cfg FractalConfig, ok bool)
	ApplyFractal(cfg FractalConfig) Source[P]
}

// Generator builds the primitive used for one octave of a fractal.
type Generator[P Point] func(seed uint32) Source[P]

// SourceFunc adapts a plain function to Source. It is neither seedable nor
// fractal.
type SourceFunc[P Point] func(p P) float64

// Sample calls f(p).
func (f SourceFunc[P]) Sample(p P) float64 {
	return f(p)
}

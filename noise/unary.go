// SPDX-License-Identifier: MIT

package noise

// unary holds the single source of a modifier or transformer and forwards
// the Seedable and MultiFractal capabilities to it. Embedding types keep
// their own configuration and only swap the source.
type unary[P Point] struct {
	source Source[P]
}

func newUnary[P Point](node string, src Source[P]) unary[P] {
	mustSource(node, src)

	return unary[P]{source: src}
}

// Source returns the wrapped source.
func (u unary[P]) Source() Source[P] {
	return u.source
}

// Seed reports the source's seed, or 0 when it is not seedable; SeedOf
// tells the two apart.
func (u unary[P]) Seed() uint32 {
	seed, _ := u.seedOf()

	return seed
}

func (u unary[P]) seedOf() (uint32, bool) {
	return firstSeed(u.source)
}

// Fractal reports the source's fractal configuration, if any.
func (u unary[P]) Fractal() (FractalConfig, bool) {
	return FractalOf(u.source)
}

func (u unary[P]) reseeded(seed uint32) unary[P] {
	return unary[P]{source: WithSeed(u.source, seed)}
}

func (u unary[P]) withFractal(cfg FractalConfig) unary[P] {
	return unary[P]{source: WithFractal(u.source, cfg)}
}

// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/lvnoise/mathx"
)

var defaultOpenSimplex = opensimplex.New(int64(DefaultSeed))

// OpenSimplex is Kurt Spencer's OpenSimplex noise, which avoids the
// directional artefacts of classic simplex noise. Raw output reaches
// slightly past ±1 in 4D, so results are clamped.
type OpenSimplex[P Point] struct {
	seed uint32
	gen  opensimplex.Noise
}

// NewOpenSimplex returns OpenSimplex noise for seed.
func NewOpenSimplex[P Point](seed uint32) OpenSimplex[P] {
	return OpenSimplex[P]{seed: seed, gen: opensimplex.New(int64(seed))}
}

// Sample returns the noise value at p, in [−1, 1].
func (n OpenSimplex[P]) Sample(p P) float64 {
	gen := n.gen
	if gen == nil {
		gen = defaultOpenSimplex
	}

	var v float64
	w := mathx.Widen(p)
	switch len(p) {
	case 2:
		v = gen.Eval2(w[0], w[1])
	case 3:
		v = gen.Eval3(w[0], w[1], w[2])
	default:
		v = gen.Eval4(w[0], w[1], w[2], w[3])
	}

	return mathx.Clamp(v, -1, 1)
}

// Seed returns the generator seed.
func (n OpenSimplex[P]) Seed() uint32 {
	return n.seed
}

// WithSeed returns a copy using seed.
func (n OpenSimplex[P]) WithSeed(seed uint32) OpenSimplex[P] {
	return NewOpenSimplex[P](seed)
}

// Reseed implements Seedable.
func (n OpenSimplex[P]) Reseed(seed uint32) Source[P] {
	return n.WithSeed(seed)
}

// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/katalvlaran/lvnoise/mathx"
)

// Ken Perlin's reference parameters: one octave, so alpha and beta only
// matter if the octave count is ever raised.
const (
	classicAlpha   = 2.0
	classicBeta    = 2.0
	classicOctaves = 1
)

var defaultClassicPerlin = perlin.NewPerlin(classicAlpha, classicBeta, classicOctaves, int64(DefaultSeed))

// ClassicPerlin is Ken Perlin's original 2D gradient noise with random unit
// gradients and the cubic fade. It exists for compatibility with images
// produced by the reference implementation; new graphs should prefer Perlin.
//
// The reference lattice is offset by 4096, so inputs must stay above −4096
// on both axes for the output to be continuous.
type ClassicPerlin struct {
	seed uint32
	gen  *perlin.Perlin
}

var _ Seedable[Point2] = ClassicPerlin{}

// NewClassicPerlin returns classic Perlin noise for seed.
func NewClassicPerlin(seed uint32) ClassicPerlin {
	return ClassicPerlin{seed: seed, gen: perlin.NewPerlin(classicAlpha, classicBeta, classicOctaves, int64(seed))}
}

// Sample returns the noise value at p, in [−1, 1].
func (n ClassicPerlin) Sample(p Point2) float64 {
	gen := n.gen
	if gen == nil {
		gen = defaultClassicPerlin
	}

	return mathx.Clamp(gen.Noise2D(p[0], p[1])*math.Sqrt2, -1, 1)
}

// Seed returns the generator seed.
func (n ClassicPerlin) Seed() uint32 {
	return n.seed
}

// WithSeed returns a copy using seed.
func (n ClassicPerlin) WithSeed(seed uint32) ClassicPerlin {
	return NewClassicPerlin(seed)
}

// Reseed implements Seedable.
func (n ClassicPerlin) Reseed(seed uint32) Source[Point2] {
	return n.WithSeed(seed)
}

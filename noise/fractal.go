// SPDX-License-Identifier: MIT

package noise

import (
	"sync"

	"github.com/katalvlaran/lvnoise/mathx"
)

// PerlinGenerator builds the default octave primitive.
func PerlinGenerator[P Point]() Generator[P] {
	return func(seed uint32) Source[P] { return NewPerlin[P](seed) }
}

// octaves is the state shared by the fractal aggregators: a seed, a
// configuration and one primitive per octave, octave i seeded seed+i.
//
// The sources slice is rebuilt, never mutated, so copies may share it.
// A zero value behaves as newOctaves(DefaultSeed).
type octaves[P Point] struct {
	seed    uint32
	cfg     FractalConfig
	gen     Generator[P]
	sources []Source[P]
}

func newOctaves[P Point](seed uint32) octaves[P] {
	return newOctavesConfig[P](seed, DefaultFractalConfig())
}

// newOctavesConfig expects cfg to be valid.
func newOctavesConfig[P Point](seed uint32, cfg FractalConfig) octaves[P] {
	o := octaves[P]{seed: seed, cfg: cfg, gen: PerlinGenerator[P]()}
	o.sources = o.build()

	return o
}

// zeroOctaves caches the octaves of zero-value aggregators, keyed by
// dimension.
var zeroOctaves sync.Map

// active returns o, or the DefaultSeed octaves when o is a zero value.
func (o octaves[P]) active() octaves[P] {
	if o.sources != nil {
		return o
	}
	dims := mathx.Dims[P]()
	if v, ok := zeroOctaves.Load(dims); ok {
		return v.(octaves[P])
	}
	v, _ := zeroOctaves.LoadOrStore(dims, newOctaves[P](DefaultSeed))

	return v.(octaves[P])
}

func (o octaves[P]) build() []Source[P] {
	out := make([]Source[P], o.cfg.Octaves)
	for i := range out {
		out[i] = o.gen(o.seed + uint32(i))
	}

	return out
}

// Seed returns the seed of the first octave.
func (o octaves[P]) Seed() uint32 {
	return o.seed
}

// Fractal returns the octave layout.
func (o octaves[P]) Fractal() (FractalConfig, bool) {
	return o.active().cfg, true
}

// Octaves returns the octave primitives. The slice must not be modified.
func (o octaves[P]) Octaves() []Source[P] {
	return o.active().sources
}

func (o octaves[P]) reseeded(seed uint32) octaves[P] {
	o = o.active()
	o.seed = seed
	o.sources = o.build()

	return o
}

func (o octaves[P]) configured(node string, cfg FractalConfig) octaves[P] {
	cfg.mustValid(node)
	o = o.active()
	rebuild := cfg.Octaves != o.cfg.Octaves
	o.cfg = cfg
	if rebuild {
		o.sources = o.build()
	}

	return o
}

func (o octaves[P]) generated(node string, gen Generator[P]) octaves[P] {
	if gen == nil {
		configPanic(node, ErrNilSource)
	}
	o = o.active()
	o.gen = gen
	o.sources = o.build()

	return o
}

func (o octaves[P]) withOctaves(node string, n int) octaves[P] {
	mustOctaves(node, n)
	o = o.active()
	cfg := o.cfg
	cfg.Octaves = n

	return o.configured(node, cfg)
}

func (o octaves[P]) withFrequency(node string, f float64) octaves[P] {
	o = o.active()
	cfg := o.cfg
	cfg.Frequency = f

	return o.configured(node, cfg)
}

func (o octaves[P]) withLacunarity(node string, l float64) octaves[P] {
	o = o.active()
	cfg := o.cfg
	cfg.Lacunarity = l

	return o.configured(node, cfg)
}

func (o octaves[P]) withPersistence(node string, p float64) octaves[P] {
	o = o.active()
	cfg := o.cfg
	cfg.Persistence = p

	return o.configured(node, cfg)
}

// start scales p by the base frequency.
func (o octaves[P]) start(p P) P {
	return mathx.Scale(p, o.cfg.Frequency)
}

// next scales an octave's point by the lacunarity.
func (o octaves[P]) next(p P) P {
	return mathx.Scale(p, o.cfg.Lacunarity)
}

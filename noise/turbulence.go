// SPDX-License-Identifier: MIT

package noise

import "github.com/katalvlaran/lvnoise/mathx"

// turbulenceOffsets shift the input of each displacement axis so the axes
// sample unrelated regions even where their seeds produce similar noise.
var turbulenceOffsets = [4][4]float64{
	{12414.0 / 65536, 65124.0 / 65536, 31337.0 / 65536, 60493.0 / 65536},
	{26519.0 / 65536, 18128.0 / 65536, 60493.0 / 65536, 41675.0 / 65536},
	{53820.0 / 65536, 11213.0 / 65536, 44845.0 / 65536, 39138.0 / 65536},
	{40159.0 / 65536, 27931.0 / 65536, 5197.0 / 65536, 24561.0 / 65536},
}

// Turbulence randomly displaces the input point by an independent fBm per
// axis before sampling the source:
//
//	out(p) = src(p + power · (d₀(p + o₀), d₁(p + o₁), …))
//
// Displacement axis i is an Fbm over Perlin noise seeded seed+i with
// Frequency = frequency and Octaves = roughness. With power = 0 the node
// returns the source unchanged.
type Turbulence[P Point] struct {
	unary[P]
	seed  uint32
	power float64
	axes  [4]Fbm[P]
}

// NewTurbulence wraps src with DefaultTurbulencePower,
// DefaultTurbulenceFrequency and DefaultTurbulenceRoughness. The
// displacement axes take their seed from src, or DefaultSeed when src is not
// seedable.
func NewTurbulence[P Point](src Source[P]) Turbulence[P] {
	mustSource(NodeTurbulence, src)
	seed, ok := SeedOf(src)
	if !ok {
		seed = DefaultSeed
	}
	t := Turbulence[P]{
		unary: newUnary(NodeTurbulence, src),
		seed:  seed,
		power: DefaultTurbulencePower,
	}
	cfg := DefaultFractalConfig()
	cfg.Frequency = DefaultTurbulenceFrequency
	cfg.Octaves = DefaultTurbulenceRoughness
	t.axes = t.buildAxes(cfg)

	return t
}

func (t Turbulence[P]) buildAxes(cfg FractalConfig) [4]Fbm[P] {
	var axes [4]Fbm[P]
	for i := 0; i < mathx.Dims[P](); i++ {
		axes[i] = Fbm[P]{octaves: newOctavesConfig[P](t.seed+uint32(i), cfg)}
	}

	return axes
}

// Sample displaces p and samples the source.
func (t Turbulence[P]) Sample(p P) float64 {
	q := p
	for i := 0; i < len(p); i++ {
		shifted := p
		for a := 0; a < len(p); a++ {
			shifted[a] += turbulenceOffsets[i][a]
		}
		q[i] += t.axes[i].Sample(shifted) * t.power
	}

	return t.source.Sample(q)
}

// Power returns the displacement scale.
func (t Turbulence[P]) Power() float64 {
	return t.power
}

// Frequency returns the frequency of the displacement fBm.
func (t Turbulence[P]) Frequency() float64 {
	return t.axes[0].cfg.Frequency
}

// Roughness returns the octave count of the displacement fBm.
func (t Turbulence[P]) Roughness() int {
	return t.axes[0].cfg.Octaves
}

// WithPower sets the displacement scale.
func (t Turbulence[P]) WithPower(power float64) Turbulence[P] {
	mustFinite(NodeTurbulence, "power", power)
	t.power = power

	return t
}

// WithFrequency sets the frequency of every displacement axis.
func (t Turbulence[P]) WithFrequency(frequency float64) Turbulence[P] {
	cfg := t.axes[0].cfg
	cfg.Frequency = frequency

	return t.ApplyFractal(cfg).(Turbulence[P])
}

// WithRoughness sets the octave count of every displacement axis,
// 1..MaxOctaves.
func (t Turbulence[P]) WithRoughness(roughness int) Turbulence[P] {
	mustOctaves(NodeTurbulence, roughness)
	cfg := t.axes[0].cfg
	cfg.Octaves = roughness

	return t.ApplyFractal(cfg).(Turbulence[P])
}

// Seed returns the seed of the displacement axes.
func (t Turbulence[P]) Seed() uint32 {
	return t.seed
}

// seedOf overrides the source-driven report of unary: the displacement axes
// are always seeded.
func (t Turbulence[P]) seedOf() (uint32, bool) {
	return t.seed, true
}

// Fractal returns the configuration of the displacement axes.
func (t Turbulence[P]) Fractal() (FractalConfig, bool) {
	return t.axes[0].cfg, true
}

// WithSeed reseeds the source with seed and displacement axis i with seed+i.
func (t Turbulence[P]) WithSeed(seed uint32) Turbulence[P] {
	t.unary = t.reseeded(seed)
	t.seed = seed
	t.axes = t.buildAxes(t.axes[0].cfg)

	return t
}

// Reseed implements Seedable.
func (t Turbulence[P]) Reseed(seed uint32) Source[P] { return t.WithSeed(seed) }

// ApplyFractal configures every displacement axis. The source is untouched.
func (t Turbulence[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	cfg.mustValid(NodeTurbulence)
	t.axes = t.buildAxes(cfg)

	return t
}

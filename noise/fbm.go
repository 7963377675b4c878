// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	"github.com/katalvlaran/lvnoise/mathx"
)

// Fbm is fractal Brownian motion: octaves of a primitive at geometrically
// increasing frequency and decreasing amplitude,
//
//	Σ pⁱ · sᵢ(x · f · lⁱ) / Σ pⁱ
//
// The division keeps the output inside [−1, 1] for any persistence.
// The zero value behaves as NewFbm(DefaultSeed).
type Fbm[P Point] struct {
	octaves[P]
}

// NewFbm returns fBm over Perlin noise with DefaultFractalConfig.
func NewFbm[P Point](seed uint32) Fbm[P] {
	return Fbm[P]{octaves: newOctaves[P](seed)}
}

// Sample sums the octaves at p.
func (f Fbm[P]) Sample(p P) float64 {
	o := f.active()
	var (
		sum float64
		amp = 1.0
		q   = o.start(p)
	)
	for _, s := range o.sources {
		sum += s.Sample(q) * amp
		amp *= o.cfg.Persistence
		q = o.next(q)
	}

	return sum / o.cfg.amplitudeSum()
}

// Billow is fBm over |s|·2 − 1: every octave folds at zero, producing
// rounded, cloud-like lumps.
// The zero value behaves as NewBillow(DefaultSeed).
type Billow[P Point] struct {
	octaves[P]
}

// NewBillow returns billow noise over Perlin noise with DefaultFractalConfig.
func NewBillow[P Point](seed uint32) Billow[P] {
	return Billow[P]{octaves: newOctaves[P](seed)}
}

// Sample sums the folded octaves at p.
func (f Billow[P]) Sample(p P) float64 {
	o := f.active()
	var (
		sum float64
		amp = 1.0
		q   = o.start(p)
	)
	for _, s := range o.sources {
		sum += mathx.ScaleShift(math.Abs(s.Sample(q)), 2) * amp
		amp *= o.cfg.Persistence
		q = o.next(q)
	}

	return sum / o.cfg.amplitudeSum()
}

// BasicMulti is Musgrave's multifractal in which each octave is scaled by the
// running result, so detail grows where the field is already large:
//
//	r₀ = s₀;  rᵢ = rᵢ₋₁ + sᵢ · pⁱ · rᵢ₋₁
//
// The result is divided by Π(1 + pⁱ), its largest possible magnitude.
// The zero value behaves as NewBasicMulti(DefaultSeed).
type BasicMulti[P Point] struct {
	octaves[P]
}

// NewBasicMulti returns a basic multifractal over Perlin noise.
func NewBasicMulti[P Point](seed uint32) BasicMulti[P] {
	return BasicMulti[P]{octaves: newOctaves[P](seed)}
}

// Sample evaluates the multifractal at p.
func (f BasicMulti[P]) Sample(p P) float64 {
	o := f.active()
	q := o.start(p)
	result := o.sources[0].Sample(q)
	bound := 1.0
	amp := 1.0
	for _, s := range o.sources[1:] {
		q = o.next(q)
		amp *= o.cfg.Persistence
		result += s.Sample(q) * amp * result
		bound *= 1 + math.Abs(amp)
	}

	return result / bound
}

// HybridMulti is Musgrave's hybrid multifractal: each octave is weighted by
// the product of the previous signals, clamped to [−1, 1], giving smooth
// valleys and rough peaks.
// The zero value behaves as NewHybridMulti(DefaultSeed).
type HybridMulti[P Point] struct {
	octaves[P]
}

// NewHybridMulti returns a hybrid multifractal over Perlin noise.
func NewHybridMulti[P Point](seed uint32) HybridMulti[P] {
	return HybridMulti[P]{octaves: newOctaves[P](seed)}
}

// Sample evaluates the multifractal at p.
func (f HybridMulti[P]) Sample(p P) float64 {
	o := f.active()
	q := o.start(p)
	result := o.sources[0].Sample(q)
	weight := result
	amp := 1.0
	for _, s := range o.sources[1:] {
		q = o.next(q)
		amp *= o.cfg.Persistence
		weight = mathx.Clamp(weight, -1, 1)
		signal := s.Sample(q) * amp
		result += weight * signal
		weight *= signal
	}

	return result / o.cfg.amplitudeSum()
}

// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	"github.com/katalvlaran/lvnoise/mathx"
)

// RidgedMulti is Musgrave's ridged multifractal. Each octave is inverted
// around offset and squared, turning zero crossings into sharp ridges, and
// weighted by the previous octave so ridges gather detail:
//
//	signal = (offset − |sᵢ|)² · weight
//	weight = clamp(signal · gain, 0, 1)
//	result += signal · pⁱ
//
// The sum is normalised by its largest possible value and mapped to [−1, 1].
// The zero value behaves as NewRidgedMulti(DefaultSeed).
type RidgedMulti[P Point] struct {
	octaves[P]
	offset float64
	gain   float64
}

// NewRidgedMulti returns ridged noise over Perlin noise with
// DefaultRidgedOffset and DefaultRidgedGain.
func NewRidgedMulti[P Point](seed uint32) RidgedMulti[P] {
	return RidgedMulti[P]{
		octaves: newOctaves[P](seed),
		offset:  DefaultRidgedOffset,
		gain:    DefaultRidgedGain,
	}
}

// resolved fills in the defaults of a zero value.
func (f RidgedMulti[P]) resolved() RidgedMulti[P] {
	if f.sources == nil {
		f.octaves = f.active()
		f.offset, f.gain = DefaultRidgedOffset, DefaultRidgedGain
	}

	return f
}

// Sample evaluates the ridged sum at p.
func (f RidgedMulti[P]) Sample(p P) float64 {
	f = f.resolved()
	var (
		sum    float64
		amp    = 1.0
		weight = 1.0
		q      = f.start(p)
	)
	for _, s := range f.sources {
		signal := f.offset - math.Abs(s.Sample(q))
		signal *= signal * weight
		weight = mathx.Clamp(signal*f.gain, 0, 1)

		sum += signal * amp
		amp *= f.cfg.Persistence
		q = f.next(q)
	}

	return mathx.Clamp(mathx.ScaleShift(sum/f.peak(), 2), -1, 1)
}

// peak bounds the ridged sum: each octave's signal never exceeds
// max(offset², (offset−1)²).
func (f RidgedMulti[P]) peak() float64 {
	top := math.Max(f.offset*f.offset, (f.offset-1)*(f.offset-1))
	if top == 0 {
		top = 1
	}

	return top * f.cfg.amplitudeSum()
}

// Offset returns the ridge offset.
func (f RidgedMulti[P]) Offset() float64 {
	return f.resolved().offset
}

// Gain returns the weight feedback gain.
func (f RidgedMulti[P]) Gain() float64 {
	return f.resolved().gain
}

// WithOffset sets the ridge offset.
func (f RidgedMulti[P]) WithOffset(offset float64) RidgedMulti[P] {
	mustFinite(NodeRidgedMulti, "offset", offset)
	f = f.resolved()
	f.offset = offset

	return f
}

// WithGain sets the weight feedback gain.
func (f RidgedMulti[P]) WithGain(gain float64) RidgedMulti[P] {
	mustFinite(NodeRidgedMulti, "gain", gain)
	f = f.resolved()
	f.gain = gain

	return f
}

// SPDX-License-Identifier: MIT

package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvnoise/noise"
)

// TestCombinerAlgebra checks each combiner against the scalar operation.
func TestCombinerAlgebra(t *testing.T) {
	a := noise.NewPerlin[noise.Point3](1)
	b := noise.NewSimplex[noise.Point3](2)
	// A strictly positive base keeps Power real-valued.
	base := noise.NewScaleBias[noise.Point3](noise.NewAbs[noise.Point3](a)).WithBias(0.5)

	add := noise.NewAdd[noise.Point3](a, b)
	mul := noise.NewMultiply[noise.Point3](a, b)
	lo := noise.NewMin[noise.Point3](a, b)
	hi := noise.NewMax[noise.Point3](a, b)
	pow := noise.NewPower[noise.Point3](base, b)

	for _, p := range randomPoints[noise.Point3](500, 60, 10) {
		va, vb := a.Sample(p), b.Sample(p)
		assert.Equal(t, va+vb, add.Sample(p))
		assert.Equal(t, va*vb, mul.Sample(p))
		assert.Equal(t, math.Min(va, vb), lo.Sample(p))
		assert.Equal(t, math.Max(va, vb), hi.Sample(p))
		assert.Equal(t, math.Pow(base.Sample(p), vb), pow.Sample(p))
	}
}

// TestCombinerSeeding reseeds both operands with the same seed.
func TestCombinerSeeding(t *testing.T) {
	add := noise.NewAdd[noise.Point2](noise.NewPerlin[noise.Point2](1), noise.NewValue[noise.Point2](2)).WithSeed(6)

	a, b := add.Sources()
	sa, _ := noise.SeedOf(a)
	sb, _ := noise.SeedOf(b)
	assert.Equal(t, uint32(6), sa)
	assert.Equal(t, uint32(6), sb)
	assert.Equal(t, uint32(6), add.Seed())

	// The first seedable operand wins when only one is seedable.
	mixed := noise.NewMax[noise.Point2](noise.NewConstant[noise.Point2](0), noise.NewPerlin[noise.Point2](4))
	assert.Equal(t, uint32(4), mixed.Seed())

	requireConfigError(t, noise.ErrNilSource, func() { noise.NewAdd[noise.Point2](nil, noise.NewPerlin[noise.Point2](0)) })
}

// TestBlend interpolates between constant operands.
func TestBlend(t *testing.T) {
	lo := noise.NewConstant[noise.Point2](-4)
	hi := noise.NewConstant[noise.Point2](4)
	at := func(control float64) float64 {
		return noise.NewBlend[noise.Point2](lo, hi, noise.NewConstant[noise.Point2](control)).Sample(noise.Point2{})
	}

	assert.Equal(t, -4.0, at(-1))
	assert.Equal(t, 0.0, at(0))
	assert.Equal(t, 4.0, at(1))
	assert.Equal(t, 2.0, at(0.5))

	b := noise.NewBlend[noise.Point2](noise.NewPerlin[noise.Point2](1), lo, noise.NewPerlin[noise.Point2](2)).WithSeed(3)
	s, _ := noise.SeedOf(b.Control())
	assert.Equal(t, uint32(3), s, "control is reseeded too")
}

// TestSelectHardEdges covers the zero-falloff selection rule.
func TestSelectHardEdges(t *testing.T) {
	a := noise.NewConstant[noise.Point2](-5)
	b := noise.NewConstant[noise.Point2](5)
	at := func(control float64) float64 {
		return noise.NewSelect[noise.Point2](a, b, noise.NewConstant[noise.Point2](control)).WithBounds(0, 1).Sample(noise.Point2{})
	}

	assert.Equal(t, -5.0, at(-0.1))
	assert.Equal(t, 5.0, at(0))
	assert.Equal(t, 5.0, at(0.5))
	assert.Equal(t, 5.0, at(1))
	assert.Equal(t, -5.0, at(1.1))
}

// TestSelectFalloff covers the cubic cross-fade at both bounds.
func TestSelectFalloff(t *testing.T) {
	a := noise.NewConstant[noise.Point2](-5)
	b := noise.NewConstant[noise.Point2](5)
	sel := func(control float64) noise.Select[noise.Point2] {
		return noise.NewSelect[noise.Point2](a, b, noise.NewConstant[noise.Point2](control)).WithBounds(0, 1).WithFalloff(0.25)
	}
	at := func(control float64) float64 { return sel(control).Sample(noise.Point2{}) }

	assert.Equal(t, -5.0, at(-0.3))
	assert.InDelta(t, 0.0, at(0), eps, "half way through the lower fade")
	assert.Equal(t, 5.0, at(0.5))
	assert.InDelta(t, 0.0, at(1), eps, "half way through the upper fade")
	assert.Equal(t, -5.0, at(1.3))

	// Continuity at the fade edges.
	assert.InDelta(t, at(-0.25-1e-9), at(-0.25+1e-9), 1e-6)
	assert.InDelta(t, at(0.25-1e-9), at(0.25+1e-9), 1e-6)
	assert.InDelta(t, at(1.25-1e-9), at(1.25+1e-9), 1e-6)

	// Falloff is clamped to half the interval.
	wide := sel(0).WithFalloff(10)
	assert.Equal(t, 0.5, wide.Falloff())
	narrowed := sel(0).WithBounds(0, 0.2)
	assert.InDelta(t, 0.1, narrowed.Falloff(), eps)
	lower, upper := narrowed.Bounds()
	assert.Equal(t, [2]float64{0, 0.2}, [2]float64{lower, upper})

	// The requested falloff is kept, so call order does not matter.
	first := sel(-4).WithFalloff(3).WithBounds(-5, 5)
	second := sel(-4).WithBounds(-5, 5).WithFalloff(3)
	assert.Equal(t, 3.0, first.Falloff())
	assert.Equal(t, second.Falloff(), first.Falloff())
	assert.Equal(t, second.Sample(noise.Point2{}), first.Sample(noise.Point2{}))
	assert.Equal(t, 0.25, sel(0).WithBounds(0, 0.2).WithBounds(0, 1).Falloff())

	requireConfigError(t, noise.ErrBounds, func() { sel(0).WithFalloff(-1) })
	requireConfigError(t, noise.ErrBounds, func() { sel(0).WithBounds(2, 1) })
}

// TestSelectSeedsControl verifies the control source follows WithSeed.
func TestSelectSeedsControl(t *testing.T) {
	s := noise.NewSelect[noise.Point3](
		noise.NewPerlin[noise.Point3](1),
		noise.NewValue[noise.Point3](2),
		noise.NewSimplex[noise.Point3](3),
	).WithSeed(11)

	seed, ok := noise.SeedOf(s.Control())
	assert.True(t, ok)
	assert.Equal(t, uint32(11), seed)
	assert.Equal(t, uint32(11), s.Seed())
}

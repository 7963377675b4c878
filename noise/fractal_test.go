// SPDX-License-Identifier: MIT

package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/noise"
)

// fractals3 lists every aggregator at its defaults.
func fractals3(seed uint32) map[string]noise.Source[noise.Point3] {
	return map[string]noise.Source[noise.Point3]{
		"fbm":    noise.NewFbm[noise.Point3](seed),
		"billow": noise.NewBillow[noise.Point3](seed),
		"ridged": noise.NewRidgedMulti[noise.Point3](seed),
		"hybrid": noise.NewHybridMulti[noise.Point3](seed),
		"basic":  noise.NewBasicMulti[noise.Point3](seed),
	}
}

// TestFractalDefaults verifies the documented configuration.
func TestFractalDefaults(t *testing.T) {
	for name, f := range fractals3(0) {
		cfg, ok := noise.FractalOf(f)
		require.Truef(t, ok, "%s", name)
		assert.Equal(t, noise.DefaultFractalConfig(), cfg, name)
		assert.Equal(t, noise.FractalConfig{Octaves: 6, Frequency: 1, Lacunarity: 2, Persistence: 0.5}, cfg, name)
	}
}

// TestFractalRange samples each aggregator and checks |v| ≤ 1.
func TestFractalRange(t *testing.T) {
	for name, f := range fractals3(12) {
		for _, p := range randomPoints[noise.Point3](1500, 100, 15) {
			require.LessOrEqualf(t, math.Abs(f.Sample(p)), 1+eps, "%s", name)
		}
	}

	// Extreme persistence still stays in range thanks to normalisation.
	loud := noise.NewFbm[noise.Point2](1).WithPersistence(1.5).WithOctaves(4)
	hybrid := noise.NewHybridMulti[noise.Point2](1).WithPersistence(-0.8)
	basic := noise.NewBasicMulti[noise.Point2](1).WithPersistence(0.9)
	for _, p := range randomPoints[noise.Point2](1500, 100, 16) {
		require.LessOrEqual(t, math.Abs(loud.Sample(p)), 1+eps)
		require.LessOrEqual(t, math.Abs(hybrid.Sample(p)), 1+eps)
		require.LessOrEqual(t, math.Abs(basic.Sample(p)), 1+eps)
	}
}

// TestSingleOctaveReducesToPrimitive checks the octave loop with n = 1.
func TestSingleOctaveReducesToPrimitive(t *testing.T) {
	prim := noise.NewPerlin[noise.Point2](3)
	fbm := noise.NewFbm[noise.Point2](3).WithOctaves(1).WithFrequency(2.5)
	billow := noise.NewBillow[noise.Point2](3).WithOctaves(1)
	basic := noise.NewBasicMulti[noise.Point2](3).WithOctaves(1)
	hybrid := noise.NewHybridMulti[noise.Point2](3).WithOctaves(1)
	ridged := noise.NewRidgedMulti[noise.Point2](3).WithOctaves(1)

	for _, p := range randomPoints[noise.Point2](200, 30, 17) {
		v := prim.Sample(p)
		assert.Equal(t, prim.Sample(noise.Point2{p[0] * 2.5, p[1] * 2.5}), fbm.Sample(p))
		assert.InDelta(t, math.Abs(v)*2-1, billow.Sample(p), 1e-12)
		assert.Equal(t, v, basic.Sample(p))
		assert.Equal(t, v, hybrid.Sample(p))
		r := 1 - math.Abs(v)
		assert.InDelta(t, r*r*2-1, ridged.Sample(p), 1e-12)
	}
}

// TestFbmTwoOctaves spells out the weighted sum for two octaves.
func TestFbmTwoOctaves(t *testing.T) {
	fbm := noise.NewFbm[noise.Point3](10).WithOctaves(2).WithLacunarity(3).WithPersistence(0.25)
	o0, o1 := noise.NewPerlin[noise.Point3](10), noise.NewPerlin[noise.Point3](11)

	for _, p := range randomPoints[noise.Point3](100, 20, 18) {
		want := (o0.Sample(p) + 0.25*o1.Sample(noise.Point3{p[0] * 3, p[1] * 3, p[2] * 3})) / 1.25
		assert.InDelta(t, want, fbm.Sample(p), 1e-12)
	}
}

// TestOctaveSeeds checks octave i is seeded seed+i, also after WithSeed.
func TestOctaveSeeds(t *testing.T) {
	f := noise.NewRidgedMulti[noise.Point2](100).WithOctaves(4).WithSeed(math.MaxUint32)
	assert.Equal(t, uint32(math.MaxUint32), f.Seed())
	require.Len(t, f.Octaves(), 4)
	for i, o := range f.Octaves() {
		s, ok := noise.SeedOf(o)
		require.True(t, ok)
		assert.Equal(t, uint32(math.MaxUint32)+uint32(i), s, "seeds wrap around")
	}
}

// TestFractalGenerator swaps the octave primitive.
func TestFractalGenerator(t *testing.T) {
	gen := func(seed uint32) noise.Source[noise.Point2] { return noise.NewValue[noise.Point2](seed) }
	f := noise.NewFbm[noise.Point2](2).WithOctaves(1).WithGenerator(gen)
	ref := noise.NewValue[noise.Point2](2)

	p := noise.Point2{0.3, 0.8}
	assert.Equal(t, ref.Sample(p), f.Sample(p))
	assert.Equal(t, ref.Sample(p), f.WithSeed(2).Sample(p), "generator survives reseeding")

	classic := noise.NewBillow[noise.Point2](1).WithGenerator(func(seed uint32) noise.Source[noise.Point2] {
		return noise.NewClassicPerlin(seed)
	})
	assert.LessOrEqual(t, math.Abs(classic.Sample(p)), 1.0)

	requireConfigError(t, noise.ErrNilSource, func() { noise.NewFbm[noise.Point2](0).WithGenerator(nil) })
}

// TestRidgedParameters covers offset and gain.
func TestRidgedParameters(t *testing.T) {
	r := noise.NewRidgedMulti[noise.Point3](1).WithOffset(0.8).WithGain(1.5)
	assert.Equal(t, 0.8, r.Offset())
	assert.Equal(t, 1.5, r.Gain())
	for _, p := range randomPoints[noise.Point3](500, 50, 19) {
		require.LessOrEqual(t, math.Abs(r.Sample(p)), 1+eps)
	}
	requireConfigError(t, noise.ErrNonFinite, func() { r.WithGain(math.NaN()) })
}

// TestFractalZeroValues checks that an unbuilt aggregator behaves like one
// built with DefaultSeed.
func TestFractalZeroValues(t *testing.T) {
	var (
		fbm    noise.Fbm[noise.Point2]
		billow noise.Billow[noise.Point2]
		basic  noise.BasicMulti[noise.Point2]
		hybrid noise.HybridMulti[noise.Point2]
		ridged noise.RidgedMulti[noise.Point2]
	)
	pairs := map[string][2]noise.Source[noise.Point2]{
		"fbm":    {fbm, noise.NewFbm[noise.Point2](noise.DefaultSeed)},
		"billow": {billow, noise.NewBillow[noise.Point2](noise.DefaultSeed)},
		"basic":  {basic, noise.NewBasicMulti[noise.Point2](noise.DefaultSeed)},
		"hybrid": {hybrid, noise.NewHybridMulti[noise.Point2](noise.DefaultSeed)},
		"ridged": {ridged, noise.NewRidgedMulti[noise.Point2](noise.DefaultSeed)},
	}
	pts := randomPoints[noise.Point2](200, 20, 23)
	for name, pair := range pairs {
		cfg, ok := noise.FractalOf(pair[0])
		require.Truef(t, ok, "%s", name)
		assert.Equal(t, noise.DefaultFractalConfig(), cfg, name)
		for _, p := range pts {
			v := pair[0].Sample(p)
			require.Falsef(t, math.IsNaN(v), "%s at %v", name, p)
			require.Equalf(t, pair[1].Sample(p), v, "%s at %v", name, p)
		}
	}

	assert.Len(t, fbm.Octaves(), noise.DefaultFractalConfig().Octaves)
	assert.Equal(t, noise.DefaultRidgedOffset, ridged.Offset())
	assert.Equal(t, noise.DefaultRidgedGain, ridged.Gain())

	built := noise.NewHybridMulti[noise.Point2](noise.DefaultSeed).WithOctaves(3)
	tuned := ridged.WithOctaves(3)
	want := noise.NewRidgedMulti[noise.Point2](noise.DefaultSeed).WithOctaves(3)
	for _, p := range pts[:50] {
		assert.Equal(t, built.Sample(p), hybrid.WithOctaves(3).Sample(p))
		assert.Equal(t, want.Sample(p), tuned.Sample(p))
	}
}

// TestFractalValidation covers octave and parameter checks.
func TestFractalValidation(t *testing.T) {
	f := noise.NewFbm[noise.Point2](0)
	requireConfigError(t, noise.ErrOctaves, func() { f.WithOctaves(0) })
	requireConfigError(t, noise.ErrOctaves, func() { f.WithOctaves(noise.MaxOctaves + 1) })
	requireConfigError(t, noise.ErrNonFinite, func() { f.WithFrequency(math.Inf(1)) })
	requireConfigError(t, noise.ErrNonFinite, func() { f.WithLacunarity(math.NaN()) })
	requireConfigError(t, noise.ErrOctaves, func() {
		f.ApplyFractal(noise.FractalConfig{Octaves: -1, Frequency: 1, Lacunarity: 2, Persistence: 0.5})
	})

	assert.NotPanics(t, func() { f.WithOctaves(noise.MaxOctaves) })

	err := noise.FractalConfig{Octaves: 3, Frequency: 1, Lacunarity: math.NaN()}.Validate()
	require.ErrorIs(t, err, noise.ErrNonFinite)
	require.NoError(t, noise.DefaultFractalConfig().Validate())
}

// TestFractalHelpersThroughModifiers reaches a fractal through a modifier
// chain and checks the modifier's own settings survive.
func TestFractalHelpersThroughModifiers(t *testing.T) {
	graph := noise.NewExponent[noise.Point3](noise.NewBillow[noise.Point3](4)).WithExponent(2)

	out := noise.WithOctaves[noise.Point3](graph, 3)
	out = noise.WithFrequency(out, 0.5)
	out = noise.WithLacunarity(out, 2.5)
	out = noise.WithPersistence(out, 0.4)

	exp, ok := out.(noise.Exponent[noise.Point3])
	require.True(t, ok)
	assert.Equal(t, 2.0, exp.Exponent())

	cfg, ok := noise.FractalOf[noise.Point3](exp)
	require.True(t, ok)
	assert.Equal(t, noise.FractalConfig{Octaves: 3, Frequency: 0.5, Lacunarity: 2.5, Persistence: 0.4}, cfg)

	// Non-fractal graphs decline every helper.
	plain := noise.NewAbs[noise.Point3](noise.NewPerlin[noise.Point3](1))
	assert.Equal(t, noise.Source[noise.Point3](plain), noise.WithOctaves[noise.Point3](plain, 2))
	perlin := noise.NewPerlin[noise.Point3](1)
	assert.Equal(t, noise.Source[noise.Point3](perlin), noise.WithFractal[noise.Point3](perlin, noise.DefaultFractalConfig()))
}

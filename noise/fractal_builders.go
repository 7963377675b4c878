// SPDX-License-Identifier: MIT

package noise

// Builder methods shared in shape by every aggregator. Each returns a copy;
// invalid values panic with *ConfigurationError.

// WithSeed returns a copy whose octave i is seeded seed+i.
func (f Fbm[P]) WithSeed(seed uint32) Fbm[P] {
	f.octaves = f.reseeded(seed)

	return f
}

// WithOctaves sets the octave count, 1..MaxOctaves.
func (f Fbm[P]) WithOctaves(n int) Fbm[P] {
	f.octaves = f.withOctaves(NodeFbm, n)

	return f
}

// WithFrequency sets the frequency of the first octave.
func (f Fbm[P]) WithFrequency(frequency float64) Fbm[P] {
	f.octaves = f.withFrequency(NodeFbm, frequency)

	return f
}

// WithLacunarity sets the per-octave frequency multiplier.
func (f Fbm[P]) WithLacunarity(lacunarity float64) Fbm[P] {
	f.octaves = f.withLacunarity(NodeFbm, lacunarity)

	return f
}

// WithPersistence sets the per-octave amplitude multiplier.
func (f Fbm[P]) WithPersistence(persistence float64) Fbm[P] {
	f.octaves = f.withPersistence(NodeFbm, persistence)

	return f
}

// WithGenerator replaces the octave primitive and rebuilds every octave.
func (f Fbm[P]) WithGenerator(gen Generator[P]) Fbm[P] {
	f.octaves = f.generated(NodeFbm, gen)

	return f
}

// Reseed implements Seedable.
func (f Fbm[P]) Reseed(seed uint32) Source[P] { return f.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (f Fbm[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	f.octaves = f.configured(NodeFbm, cfg)

	return f
}

// WithSeed returns a copy whose octave i is seeded seed+i.
func (f Billow[P]) WithSeed(seed uint32) Billow[P] {
	f.octaves = f.reseeded(seed)

	return f
}

// WithOctaves sets the octave count, 1..MaxOctaves.
func (f Billow[P]) WithOctaves(n int) Billow[P] {
	f.octaves = f.withOctaves(NodeBillow, n)

	return f
}

// WithFrequency sets the frequency of the first octave.
func (f Billow[P]) WithFrequency(frequency float64) Billow[P] {
	f.octaves = f.withFrequency(NodeBillow, frequency)

	return f
}

// WithLacunarity sets the per-octave frequency multiplier.
func (f Billow[P]) WithLacunarity(lacunarity float64) Billow[P] {
	f.octaves = f.withLacunarity(NodeBillow, lacunarity)

	return f
}

// WithPersistence sets the per-octave amplitude multiplier.
func (f Billow[P]) WithPersistence(persistence float64) Billow[P] {
	f.octaves = f.withPersistence(NodeBillow, persistence)

	return f
}

// WithGenerator replaces the octave primitive and rebuilds every octave.
func (f Billow[P]) WithGenerator(gen Generator[P]) Billow[P] {
	f.octaves = f.generated(NodeBillow, gen)

	return f
}

// Reseed implements Seedable.
func (f Billow[P]) Reseed(seed uint32) Source[P] { return f.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (f Billow[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	f.octaves = f.configured(NodeBillow, cfg)

	return f
}

// WithSeed returns a copy whose octave i is seeded seed+i.
func (f RidgedMulti[P]) WithSeed(seed uint32) RidgedMulti[P] {
	f = f.resolved()
	f.octaves = f.reseeded(seed)

	return f
}

// WithOctaves sets the octave count, 1..MaxOctaves.
func (f RidgedMulti[P]) WithOctaves(n int) RidgedMulti[P] {
	f = f.resolved()
	f.octaves = f.withOctaves(NodeRidgedMulti, n)

	return f
}

// WithFrequency sets the frequency of the first octave.
func (f RidgedMulti[P]) WithFrequency(frequency float64) RidgedMulti[P] {
	f = f.resolved()
	f.octaves = f.withFrequency(NodeRidgedMulti, frequency)

	return f
}

// WithLacunarity sets the per-octave frequency multiplier.
func (f RidgedMulti[P]) WithLacunarity(lacunarity float64) RidgedMulti[P] {
	f = f.resolved()
	f.octaves = f.withLacunarity(NodeRidgedMulti, lacunarity)

	return f
}

// WithPersistence sets the per-octave amplitude multiplier.
func (f RidgedMulti[P]) WithPersistence(persistence float64) RidgedMulti[P] {
	f = f.resolved()
	f.octaves = f.withPersistence(NodeRidgedMulti, persistence)

	return f
}

// WithGenerator replaces the octave primitive and rebuilds every octave.
func (f RidgedMulti[P]) WithGenerator(gen Generator[P]) RidgedMulti[P] {
	f = f.resolved()
	f.octaves = f.generated(NodeRidgedMulti, gen)

	return f
}

// Reseed implements Seedable.
func (f RidgedMulti[P]) Reseed(seed uint32) Source[P] { return f.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (f RidgedMulti[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	f = f.resolved()
	f.octaves = f.configured(NodeRidgedMulti, cfg)

	return f
}

// WithSeed returns a copy whose octave i is seeded seed+i.
func (f HybridMulti[P]) WithSeed(seed uint32) HybridMulti[P] {
	f.octaves = f.reseeded(seed)

	return f
}

// WithOctaves sets the octave count, 1..MaxOctaves.
func (f HybridMulti[P]) WithOctaves(n int) HybridMulti[P] {
	f.octaves = f.withOctaves(NodeHybridMulti, n)

	return f
}

// WithFrequency sets the frequency of the first octave.
func (f HybridMulti[P]) WithFrequency(frequency float64) HybridMulti[P] {
	f.octaves = f.withFrequency(NodeHybridMulti, frequency)

	return f
}

// WithLacunarity sets the per-octave frequency multiplier.
func (f HybridMulti[P]) WithLacunarity(lacunarity float64) HybridMulti[P] {
	f.octaves = f.withLacunarity(NodeHybridMulti, lacunarity)

	return f
}

// WithPersistence sets the per-octave amplitude multiplier.
func (f HybridMulti[P]) WithPersistence(persistence float64) HybridMulti[P] {
	f.octaves = f.withPersistence(NodeHybridMulti, persistence)

	return f
}

// WithGenerator replaces the octave primitive and rebuilds every octave.
func (f HybridMulti[P]) WithGenerator(gen Generator[P]) HybridMulti[P] {
	f.octaves = f.generated(NodeHybridMulti, gen)

	return f
}

// Reseed implements Seedable.
func (f HybridMulti[P]) Reseed(seed uint32) Source[P] { return f.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (f HybridMulti[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	f.octaves = f.configured(NodeHybridMulti, cfg)

	return f
}

// WithSeed returns a copy whose octave i is seeded seed+i.
func (f BasicMulti[P]) WithSeed(seed uint32) BasicMulti[P] {
	f.octaves = f.reseeded(seed)

	return f
}

// WithOctaves sets the octave count, 1..MaxOctaves.
func (f BasicMulti[P]) WithOctaves(n int) BasicMulti[P] {
	f.octaves = f.withOctaves(NodeBasicMulti, n)

	return f
}

// WithFrequency sets the frequency of the first octave.
func (f BasicMulti[P]) WithFrequency(frequency float64) BasicMulti[P] {
	f.octaves = f.withFrequency(NodeBasicMulti, frequency)

	return f
}

// WithLacunarity sets the per-octave frequency multiplier.
func (f BasicMulti[P]) WithLacunarity(lacunarity float64) BasicMulti[P] {
	f.octaves = f.withLacunarity(NodeBasicMulti, lacunarity)

	return f
}

// WithPersistence sets the per-octave amplitude multiplier.
func (f BasicMulti[P]) WithPersistence(persistence float64) BasicMulti[P] {
	f.octaves = f.withPersistence(NodeBasicMulti, persistence)

	return f
}

// WithGenerator replaces the octave primitive and rebuilds every octave.
func (f BasicMulti[P]) WithGenerator(gen Generator[P]) BasicMulti[P] {
	f.octaves = f.generated(NodeBasicMulti, gen)

	return f
}

// Reseed implements Seedable.
func (f BasicMulti[P]) Reseed(seed uint32) Source[P] { return f.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (f BasicMulti[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	f.octaves = f.configured(NodeBasicMulti, cfg)

	return f
}

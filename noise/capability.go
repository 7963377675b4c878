// SPDX-License-Identifier: MIT

package noise

// WithSeed reseeds src if it is Seedable and returns it unchanged otherwise.
func WithSeed[P Point](src Source[P], seed uint32) Source[P] {
	if s, ok := src.(Seedable[P]); ok {
		return s.Reseed(seed)
	}

	return src
}

// seedReporter is implemented by wrapping nodes, which are seedable only
// when something below them is.
type seedReporter interface {
	seedOf() (uint32, bool)
}

// SeedOf reports the seed of src, if it has one. A wrapping node reports
// ok = false when none of its sources is seedable.
func SeedOf[P Point](src Source[P]) (uint32, bool) {
	if r, ok := src.(seedReporter); ok {
		return r.seedOf()
	}
	if s, ok := src.(Seedable[P]); ok {
		return s.Seed(), true
	}

	return 0, false
}

// FractalOf reports the fractal configuration of src, if it has one.
func FractalOf[P Point](src Source[P]) (FractalConfig, bool) {
	if m, ok := src.(MultiFractal[P]); ok {
		return m.Fractal()
	}

	return FractalConfig{}, false
}

// WithFractal applies cfg to src if it is MultiFractal and returns it
// unchanged otherwise. Invalid cfg panics with *ConfigurationError.
func WithFractal[P Point](src Source[P], cfg FractalConfig) Source[P] {
	if m, ok := src.(MultiFractal[P]); ok {
		return m.ApplyFractal(cfg)
	}

	return src
}

// WithOctaves changes only the octave count of a fractal src.
func WithOctaves[P Point](src Source[P], octaves int) Source[P] {
	return updateFractal(src, func(c *FractalConfig) { c.Octaves = octaves })
}

// WithFrequency changes only the base frequency of a fractal src.
func WithFrequency[P Point](src Source[P], frequency float64) Source[P] {
	return updateFractal(src, func(c *FractalConfig) { c.Frequency = frequency })
}

// WithLacunarity changes only the lacunarity of a fractal src.
func WithLacunarity[P Point](src Source[P], lacunarity float64) Source[P] {
	return updateFractal(src, func(c *FractalConfig) { c.Lacunarity = lacunarity })
}

// WithPersistence changes only the persistence of a fractal src.
func WithPersistence[P Point](src Source[P], persistence float64) Source[P] {
	return updateFractal(src, func(c *FractalConfig) { c.Persistence = persistence })
}

func updateFractal[P Point](src Source[P], edit func(*FractalConfig)) Source[P] {
	m, ok := src.(MultiFractal[P])
	if !ok {
		return src
	}
	cfg, ok := m.Fractal()
	if !ok {
		return src
	}
	edit(&cfg)

	return m.ApplyFractal(cfg)
}

// firstSeed returns the seed of the first seedable source. Nil sources are
// skipped.
func firstSeed[P Point](srcs ...Source[P]) (uint32, bool) {
	for _, s := range srcs {
		if s == nil {
			continue
		}
		if seed, ok := SeedOf(s); ok {
			return seed, true
		}
	}

	return 0, false
}

// firstFractal returns the configuration of the first fractal source.
func firstFractal[P Point](srcs ...Source[P]) (FractalConfig, bool) {
	for _, s := range srcs {
		if cfg, ok := FractalOf(s); ok {
			return cfg, true
		}
	}

	return FractalConfig{}, false
}

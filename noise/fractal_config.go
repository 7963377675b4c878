// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"
)

// FractalConfig is the octave layout shared by every MultiFractal node.
type FractalConfig struct {
	// Octaves is the number of summed layers, 1..MaxOctaves.
	Octaves int
	// Frequency is the input scale of the first octave.
	Frequency float64
	// Lacunarity multiplies the frequency from one octave to the next.
	Lacunarity float64
	// Persistence multiplies the amplitude from one octave to the next.
	Persistence float64
}

// DefaultFractalConfig returns (DefaultOctaves, DefaultFrequency,
// DefaultLacunarity, DefaultPersistence).
func DefaultFractalConfig() FractalConfig {
	return FractalConfig{
		Octaves:     DefaultOctaves,
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
	}
}

// Validate reports the first invalid field as a *ConfigurationError.
func (c FractalConfig) Validate() error {
	if c.Octaves < 1 || c.Octaves > MaxOctaves {
		return &ConfigurationError{
			Node: NodeFractalConfig,
			Err:  fmt.Errorf("%w: got %d, want [1,%d]", ErrOctaves, c.Octaves, MaxOctaves),
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"frequency", c.Frequency},
		{"lacunarity", c.Lacunarity},
		{"persistence", c.Persistence},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigurationError{
				Node: NodeFractalConfig,
				Err:  fmt.Errorf("%w: %s=%v", ErrNonFinite, f.name, f.v),
			}
		}
	}

	return nil
}

// mustValid panics with the Validate error, re-labelled with node.
func (c FractalConfig) mustValid(node string) {
	if err := c.Validate(); err != nil {
		configPanic(node, err.(*ConfigurationError).Err)
	}
}

// amplitudeSum returns Σ|persistence|^i for i < octaves.
func (c FractalConfig) amplitudeSum() float64 {
	var (
		sum float64
		amp = 1.0
	)
	for i := 0; i < c.Octaves; i++ {
		sum += amp
		amp *= math.Abs(c.Persistence)
	}

	return sum
}

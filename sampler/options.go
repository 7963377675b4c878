// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
)

// Option customises Plane.
type Option func(*config)

// config is resolved once per Plane call.
type config struct {
	x0, x1 float64
	y0, y1 float64
	fixed  []float64
}

// Deterministic defaults: the unit square, extra axes at zero.
const (
	defaultX0 = 0.0
	defaultX1 = 1.0
	defaultY0 = 0.0
	defaultY1 = 1.0
)

func newConfig(opts ...Option) config {
	cfg := config{x0: defaultX0, x1: defaultX1, y0: defaultY0, y1: defaultY1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBounds sets the sampled rectangle [x0, x1) × [y0, y1).
// Panics unless every corner is finite, x0 < x1 and y0 < y1.
func WithBounds(x0, x1, y0, y1 float64) Option {
	for _, v := range []float64{x0, x1, y0, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Errorf("%w: non-finite corner %v", ErrBadBounds, v))
		}
	}
	if x0 >= x1 || y0 >= y1 {
		panic(fmt.Errorf("%w: [%v,%v)×[%v,%v)", ErrBadBounds, x0, x1, y0, y1))
	}

	return func(c *config) {
		c.x0, c.x1, c.y0, c.y1 = x0, x1, y0, y1
	}
}

// WithFixed holds the axes after x and y at coords: z for a 3D source,
// z and w for a 4D one. Missing coordinates stay at zero.
// Panics on non-finite coordinates.
func WithFixed(coords ...float64) Option {
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Errorf("%w: non-finite fixed coordinate %v", ErrBadBounds, v))
		}
	}
	fixed := append([]float64(nil), coords...)

	return func(c *config) {
		c.fixed = fixed
	}
}

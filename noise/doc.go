// SPDX-License-Identifier: MIT

// Package noise builds coherent-noise graphs: seedable primitives composed
// through modifiers, combiners, domain transformers and fractal aggregators,
// then sampled pointwise.
//
// 🚀 What is a noise graph?
//
//	Every node is a Source[P]: a pure function Sample(p P) float64 over 2D,
//	3D or 4D points. Leaves are primitives; inner nodes own their sources by
//	value and post-process them:
//
//	  • Primitives:   Value, Perlin, Simplex, Worley, OpenSimplex,
//	                  ClassicPerlin (2D), Constant
//	  • Modifiers:    Abs, Invert, Exponent, Clamp, ScaleBias, Terrace, Curve
//	  • Combiners:    Add, Multiply, Min, Max, Power, Blend, Select
//	  • Transformers: TranslatePoint, ScalePoint, RotatePoint, Displace,
//	                  Turbulence
//	  • Fractals:     Fbm, Billow, RidgedMulti, HybridMulti, BasicMulti
//
// ✨ Contract:
//   - Determinism: a graph whose seeds are fixed is a pure function of p.
//   - Range: primitives stay in [−1, 1]; modifiers may leave it.
//   - Continuity: every primitive except Worley in value mode is continuous.
//   - Concurrency: nodes are immutable after construction; Sample is safe
//     from any number of goroutines.
//   - Sampling never fails. Non-finite input propagates or is clamped.
//
// ⚙️ Usage:
//
//	base := noise.NewRidgedMulti[noise.Point3](7).WithOctaves(5)
//	warped := noise.NewTurbulence[noise.Point3](base).WithPower(0.125)
//	terrain := noise.NewScaleBias[noise.Point3](warped).WithScale(0.5)
//
//	v := terrain.Sample(noise.Point3{x, y, z})
//
//	// Reseed every seedable leaf of the whole graph.
//	other := noise.WithSeed[noise.Point3](terrain, 99)
//
// Capabilities:
//
//	Seedable and MultiFractal are optional. Wrapping nodes always implement
//	both and forward to their sources; a source lacking the capability
//	declines silently. The helpers WithSeed, SeedOf, WithFractal, FractalOf
//	and WithOctaves/WithFrequency/WithLacunarity/WithPersistence operate on
//	any Source.
//
// Configuration errors:
//
//	Builders validate eagerly and panic with *ConfigurationError, never at
//	sample time. Wrap construction in Build to receive an error instead:
//
//	  n, err := noise.Build(func() noise.Fbm[noise.Point2] {
//	      return noise.NewFbm[noise.Point2](1).WithOctaves(octaves)
//	  })
//	  if errors.Is(err, noise.ErrOctaves) { ... }
//
// Primitive and fractal zero values behave as DefaultSeed. Wrapping nodes
// and RotatePoint must be built with their New functions.
package noise

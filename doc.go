// SPDX-License-Identifier: MIT

// Package lvnoise is a seedable coherent-noise toolkit: build terrain,
// clouds, marble or any smooth pseudo-random field from small composable
// nodes and sample it at 2D, 3D or 4D points.
//
// 🚀 What is lvnoise?
//
//	A deterministic noise graph library that brings together:
//		• Lattice primitives: Value, Perlin, Simplex, Worley (cellular)
//		• Wrapped generators: OpenSimplex, classic 2D Perlin
//		• Modifiers: Abs, Invert, Exponent, Clamp, ScaleBias, Terrace, Curve
//		• Combiners: Add, Multiply, Min, Max, Power, Blend, Select
//		• Domain transforms: translate, scale, rotate, displace, turbulence
//		• Fractals: fBm, Billow, RidgedMulti, HybridMulti, BasicMulti
//		• Sampling: parallel grid fill and threshold region analysis
//
// ✨ Why choose lvnoise?
//
//   - Reproducible – same seed, same field, on every platform
//   - Type-safe dimensions – a 3D graph only accepts 3D points
//   - Immutable nodes – every graph is safe for concurrent sampling
//   - Whole-graph control – reseed or re-octave a graph in one call
//
// Under the hood, everything is organized under five subpackages:
//
//	mathx/     — interpolation, s-curves and fixed-size vector helpers
//	permtable/ — seeded permutation table and lattice hashing
//	kernel/    — raw Value/Perlin/Simplex/Worley kernels over a hasher
//	noise/     — the node types, capabilities and configuration errors
//	sampler/   — grid sampling of any noise.Source and region labelling
//
// Quick example:
//
//	terrain := noise.NewRidgedMulti[noise.Point2](7).WithOctaves(5)
//	grid, err := sampler.Plane[noise.Point2](terrain, 256, 256,
//	    sampler.WithBounds(0, 4, 0, 4))
//
//	go get github.com/katalvlaran/lvnoise
package lvnoise

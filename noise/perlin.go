// SPDX-License-Identifier: MIT

package noise

import "github.com/katalvlaran/lvnoise/kernel"

var perlinKernels = kernelFuncs{kernel.Perlin2D, kernel.Perlin3D, kernel.Perlin4D}

// Perlin is improved gradient noise over the seeded lattice. It is zero at
// every integer point. The zero value is usable and samples with DefaultSeed.
type Perlin[P Point] struct {
	lattice
}

// NewPerlin returns gradient noise for seed.
func NewPerlin[P Point](seed uint32) Perlin[P] {
	return Perlin[P]{lattice: newLattice(seed)}
}

// Sample returns the noise value at p, in [−1, 1].
func (n Perlin[P]) Sample(p P) float64 {
	return sampleLattice(n.hasher(), perlinKernels, p)
}

// WithSeed returns a copy using seed.
func (n Perlin[P]) WithSeed(seed uint32) Perlin[P] {
	n.lattice = newLattice(seed)

	return n
}

// Reseed implements Seedable.
func (n Perlin[P]) Reseed(seed uint32) Source[P] {
	return n.WithSeed(seed)
}

// SPDX-License-Identifier: MIT

package noise

import "github.com/katalvlaran/lvnoise/kernel"

var simplexKernels = kernelFuncs{kernel.Simplex2D, kernel.Simplex3D, kernel.Simplex4D}

// Simplex is gradient noise summed over the corners of the enclosing simplex
// instead of the enclosing hypercube: n+1 corners rather than 2ⁿ.
type Simplex[P Point] struct {
	lattice
}

// NewSimplex returns simplex noise for seed.
func NewSimplex[P Point](seed uint32) Simplex[P] {
	return Simplex[P]{lattice: newLattice(seed)}
}

// Sample returns the noise value at p, in [−1, 1].
func (n Simplex[P]) Sample(p P) float64 {
	return sampleLattice(n.hasher(), simplexKernels, p)
}

// WithSeed returns a copy using seed.
func (n Simplex[P]) WithSeed(seed uint32) Simplex[P] {
	n.lattice = newLattice(seed)

	return n
}

// Reseed implements Seedable.
func (n Simplex[P]) Reseed(seed uint32) Source[P] {
	return n.WithSeed(seed)
}

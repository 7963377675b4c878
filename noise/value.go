// SPDX-License-Identifier: MIT

package noise

import "github.com/katalvlaran/lvnoise/kernel"

var valueKernels = kernelFuncs{kernel.Value2D, kernel.Value3D, kernel.Value4D}

// Value is lattice value noise: hashed corner values blended with the
// quintic s-curve. The zero value is usable and samples with DefaultSeed.
type Value[P Point] struct {
	lattice
}

// NewValue returns value noise for seed.
func NewValue[P Point](seed uint32) Value[P] {
	return Value[P]{lattice: newLattice(seed)}
}

// Sample returns the noise value at p, in [−1, 1].
func (n Value[P]) Sample(p P) float64 {
	return sampleLattice(n.hasher(), valueKernels, p)
}

// WithSeed returns a copy using seed.
func (n Value[P]) WithSeed(seed uint32) Value[P] {
	n.lattice = newLattice(seed)

	return n
}

// Reseed implements Seedable.
func (n Value[P]) Reseed(seed uint32) Source[P] {
	return n.WithSeed(seed)
}

// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/lvnoise/mathx"
	"github.com/katalvlaran/lvnoise/permtable"
)

// defaultTable backs zero-value primitives, which behave as seed DefaultSeed.
var defaultTable = permtable.New(DefaultSeed)

// lattice is the seed and permutation table shared by the lattice primitives.
// The table is immutable and may be shared between copies.
type lattice struct {
	seed  uint32
	table *permtable.Table
}

func newLattice(seed uint32) lattice {
	return lattice{seed: seed, table: permtable.New(seed)}
}

// Seed returns the seed the permutation table was built from.
func (l lattice) Seed() uint32 {
	return l.seed
}

func (l lattice) hasher() *permtable.Table {
	if l.table == nil {
		return defaultTable
	}

	return l.table
}

// kernelFuncs is one kernel per dimension.
type kernelFuncs struct {
	k2 func(permtable.Hasher, [2]float64) float64
	k3 func(permtable.Hasher, [3]float64) float64
	k4 func(permtable.Hasher, [4]float64) float64
}

// sampleLattice dispatches p to the kernel matching its dimension.
func sampleLattice[P Point](h permtable.Hasher, k kernelFuncs, p P) float64 {
	w := mathx.Widen(p)
	switch len(p) {
	case 2:
		return k.k2(h, [2]float64{w[0], w[1]})
	case 3:
		return k.k3(h, [3]float64{w[0], w[1], w[2]})
	default:
		return k.k4(h, w)
	}
}

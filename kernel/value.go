// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/lvnoise/mathx"
	"github.com/katalvlaran/lvnoise/permtable"
)

// unit maps a hash byte onto [0,1].
func unit(b uint8) float64 {
	return float64(b) / 255.0
}

// Value2D samples 2D value noise.
//
// Steps:
//  1. Split p into lattice cell c and fraction f; weights w = quintic(f).
//  2. Corner values hash(c+δ)/255 for δ ∈ {0,1}².
//  3. Bilinear contraction, x first, then y.
//  4. Map [0,1] → [−1,1].
func Value2D(h permtable.Hasher, p [2]float64) float64 {
	c, f := mathx.Split(p)
	w := mathx.MapQuintic(f)

	f00 := unit(h.Hash2(c[0], c[1]))
	f10 := unit(h.Hash2(c[0]+1, c[1]))
	f01 := unit(h.Hash2(c[0], c[1]+1))
	f11 := unit(h.Hash2(c[0]+1, c[1]+1))

	d0 := mathx.Lerp(f00, f10, w[0])
	d1 := mathx.Lerp(f01, f11, w[0])

	return mathx.Lerp(d0, d1, w[1])*2 - 1
}

// Value3D samples 3D value noise with trilinear contraction.
func Value3D(h permtable.Hasher, p [3]float64) float64 {
	c, f := mathx.Split(p)
	w := mathx.MapQuintic(f)

	var corners [8]float64
	for i := 0; i < 8; i++ {
		corners[i] = unit(h.Hash3(c[0]+(i&1), c[1]+(i>>1&1), c[2]+(i>>2&1)))
	}

	return contract(corners[:], w[:])*2 - 1
}

// Value4D samples 4D value noise with quadrilinear contraction.
func Value4D(h permtable.Hasher, p [4]float64) float64 {
	c, f := mathx.Split(p)
	w := mathx.MapQuintic(f)

	var corners [16]float64
	for i := 0; i < 16; i++ {
		corners[i] = unit(h.Hash4(c[0]+(i&1), c[1]+(i>>1&1), c[2]+(i>>2&1), c[3]+(i>>3&1)))
	}

	return contract(corners[:], w[:])*2 - 1
}

// contract performs N-linear interpolation in place. vals holds 2^n corner
// samples where bit k of the index is the offset along axis k; axes are
// contracted in order, x first. vals is clobbered.
func contract(vals []float64, w []float64) float64 {
	n := len(vals)
	for _, wk := range w {
		n >>= 1
		for i := 0; i < n; i++ {
			vals[i] = mathx.Lerp(vals[2*i], vals[2*i+1], wk)
		}
	}

	return vals[0]
}

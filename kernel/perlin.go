// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/lvnoise/mathx"
	"github.com/katalvlaran/lvnoise/permtable"
)

// Normalisation factors bringing each gradient kernel close to [−1,1].
const (
	perlin2Scale = math.Sqrt2
	perlin4Scale = 2.0 / 3.0
)

const diag = 1 / math.Sqrt2

// grad2 holds eight unit gradients: the axes and the diagonals.
var grad2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{diag, diag}, {-diag, diag}, {diag, -diag}, {-diag, -diag},
}

// grad3 holds the twelve cube-edge midpoints of improved Perlin noise.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// grad4 holds the 32 edge midpoints of the tesseract: one zero component,
// the rest ±1.
var grad4 = [32][4]float64{
	{0, 1, 1, 1}, {0, 1, 1, -1}, {0, 1, -1, 1}, {0, 1, -1, -1},
	{0, -1, 1, 1}, {0, -1, 1, -1}, {0, -1, -1, 1}, {0, -1, -1, -1},
	{1, 0, 1, 1}, {1, 0, 1, -1}, {1, 0, -1, 1}, {1, 0, -1, -1},
	{-1, 0, 1, 1}, {-1, 0, 1, -1}, {-1, 0, -1, 1}, {-1, 0, -1, -1},
	{1, 1, 0, 1}, {1, 1, 0, -1}, {1, -1, 0, 1}, {1, -1, 0, -1},
	{-1, 1, 0, 1}, {-1, 1, 0, -1}, {-1, -1, 0, 1}, {-1, -1, 0, -1},
	{1, 1, 1, 0}, {1, 1, -1, 0}, {1, -1, 1, 0}, {1, -1, -1, 0},
	{-1, 1, 1, 0}, {-1, 1, -1, 0}, {-1, -1, 1, 0}, {-1, -1, -1, 0},
}

// Perlin2D samples 2D gradient noise.
func Perlin2D(h permtable.Hasher, p [2]float64) float64 {
	c, f := mathx.Split(p)
	w := mathx.MapQuintic(f)

	var corners [4]float64
	for i := 0; i < 4; i++ {
		dx, dy := i&1, i>>1&1
		g := grad2[h.Hash2(c[0]+dx, c[1]+dy)&7]
		corners[i] = g[0]*(f[0]-float64(dx)) + g[1]*(f[1]-float64(dy))
	}

	return mathx.Clamp(contract(corners[:], w[:])*perlin2Scale, -1, 1)
}

// Perlin3D samples improved Perlin noise: the gradient is grad3[hash % 12].
func Perlin3D(h permtable.Hasher, p [3]float64) float64 {
	c, f := mathx.Split(p)
	w := mathx.MapQuintic(f)

	var corners [8]float64
	for i := 0; i < 8; i++ {
		dx, dy, dz := i&1, i>>1&1, i>>2&1
		g := grad3[h.Hash3(c[0]+dx, c[1]+dy, c[2]+dz)%12]
		corners[i] = g[0]*(f[0]-float64(dx)) + g[1]*(f[1]-float64(dy)) + g[2]*(f[2]-float64(dz))
	}

	return mathx.Clamp(contract(corners[:], w[:]), -1, 1)
}

// Perlin4D samples 4D gradient noise over the tesseract edge gradients.
func Perlin4D(h permtable.Hasher, p [4]float64) float64 {
	c, f := mathx.Split(p)
	w := mathx.MapQuintic(f)

	var corners [16]float64
	for i := 0; i < 16; i++ {
		var d [4]int
		for k := 0; k < 4; k++ {
			d[k] = i >> k & 1
		}
		g := grad4[h.Hash4(c[0]+d[0], c[1]+d[1], c[2]+d[2], c[3]+d[3])&31]
		for k := 0; k < 4; k++ {
			corners[i] += g[k] * (f[k] - float64(d[k]))
		}
	}

	return mathx.Clamp(contract(corners[:], w[:])*perlin4Scale, -1, 1)
}

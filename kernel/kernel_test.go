// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/kernel"
	"github.com/katalvlaran/lvnoise/permtable"
)

const eps = 1e-9

// fixedHasher returns the same byte for every lattice point.
type fixedHasher uint8

func (f fixedHasher) Hash2(_, _ int) uint8       { return uint8(f) }
func (f fixedHasher) Hash3(_, _, _ int) uint8    { return uint8(f) }
func (f fixedHasher) Hash4(_, _, _, _ int) uint8 { return uint8(f) }

// kernels2/3/4 list every kernel per dimension for the shared property tests.
func kernels2() map[string]func(permtable.Hasher, [2]float64) float64 {
	return map[string]func(permtable.Hasher, [2]float64) float64{
		"value":   kernel.Value2D,
		"perlin":  kernel.Perlin2D,
		"simplex": kernel.Simplex2D,
		"worley": func(h permtable.Hasher, p [2]float64) float64 {
			return kernel.Worley2D(h, p, kernel.Euclidean, kernel.ReturnDistance)
		},
	}
}

func kernels3() map[string]func(permtable.Hasher, [3]float64) float64 {
	return map[string]func(permtable.Hasher, [3]float64) float64{
		"value":   kernel.Value3D,
		"perlin":  kernel.Perlin3D,
		"simplex": kernel.Simplex3D,
		"worley": func(h permtable.Hasher, p [3]float64) float64 {
			return kernel.Worley3D(h, p, kernel.EuclideanSquared, kernel.ReturnDistance)
		},
	}
}

func kernels4() map[string]func(permtable.Hasher, [4]float64) float64 {
	return map[string]func(permtable.Hasher, [4]float64) float64{
		"value":   kernel.Value4D,
		"perlin":  kernel.Perlin4D,
		"simplex": kernel.Simplex4D,
		"worley": func(h permtable.Hasher, p [4]float64) float64 {
			return kernel.Worley4D(h, p, kernel.Chebyshev, kernel.ReturnDistance)
		},
	}
}

// TestValue2DPinned locks the seed-0 table through value noise.
func TestValue2DPinned(t *testing.T) {
	tab := permtable.New(0)

	// At a lattice point the weights vanish: P[P[0]]/255·2 − 1 with P[P[0]] = 50.
	assert.InDelta(t, 50.0/255.0*2-1, kernel.Value2D(tab, [2]float64{0, 0}), 1e-12)
	assert.InDelta(t, -0.607843137254902, kernel.Value2D(tab, [2]float64{0, 0}), 1e-12)

	// At the cell centre all four corners weigh 1/4: hashes 50, 38, 199, 166.
	want := (50.0+38.0+199.0+166.0)/4/255*2 - 1
	assert.InDelta(t, want, kernel.Value2D(tab, [2]float64{0.5, 0.5}), 1e-12)
	assert.InDelta(t, -0.11176470588235288, kernel.Value2D(tab, [2]float64{0.5, 0.5}), 1e-12)
}

// TestPerlin3DPinned is a regression value for seed 42.
func TestPerlin3DPinned(t *testing.T) {
	tab := permtable.New(42)
	assert.InDelta(t, 0.125, kernel.Perlin3D(tab, [3]float64{1.5, 2.5, 3.5}), 1e-12)
}

// TestGradientZeroAtLattice checks gradient noise vanishes at integer points.
func TestGradientZeroAtLattice(t *testing.T) {
	tab := permtable.New(3)
	for _, c := range []int{-7, 0, 1, 12} {
		assert.Equal(t, 0.0, kernel.Perlin2D(tab, [2]float64{float64(c), 2}))
		assert.Equal(t, 0.0, kernel.Perlin3D(tab, [3]float64{float64(c), 2, -1}))
		assert.Equal(t, 0.0, kernel.Perlin4D(tab, [4]float64{float64(c), 2, -1, 5}))
	}
}

// TestValueConstantHasher shows value noise reproduces a constant lattice.
func TestValueConstantHasher(t *testing.T) {
	h := fixedHasher(255)
	for _, x := range []float64{-3.3, 0, 0.25, 9.9} {
		assert.InDelta(t, 1.0, kernel.Value2D(h, [2]float64{x, x * 2}), eps)
		assert.InDelta(t, 1.0, kernel.Value3D(h, [3]float64{x, 1, -x}), eps)
		assert.InDelta(t, 1.0, kernel.Value4D(h, [4]float64{x, 1, -x, 0.5}), eps)
	}
	assert.InDelta(t, -1.0, kernel.Value2D(fixedHasher(0), [2]float64{0.3, 0.7}), eps)
}

// TestRange samples every kernel at random points and checks |v| ≤ 1.
func TestRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	coord := func() float64 { return (rng.Float64() - 0.5) * 512 }

	for _, seed := range []uint32{0, 1, 77} {
		tab := permtable.New(seed)
		for name, k := range kernels2() {
			for i := 0; i < 5000; i++ {
				v := k(tab, [2]float64{coord(), coord()})
				require.LessOrEqualf(t, math.Abs(v), 1+eps, "%s2D seed=%d", name, seed)
			}
		}
		for name, k := range kernels3() {
			for i := 0; i < 5000; i++ {
				v := k(tab, [3]float64{coord(), coord(), coord()})
				require.LessOrEqualf(t, math.Abs(v), 1+eps, "%s3D seed=%d", name, seed)
			}
		}
		for name, k := range kernels4() {
			for i := 0; i < 5000; i++ {
				v := k(tab, [4]float64{coord(), coord(), coord(), coord()})
				require.LessOrEqualf(t, math.Abs(v), 1+eps, "%s4D seed=%d", name, seed)
			}
		}
	}
}

// TestNotFlat guards against a kernel collapsing to a constant.
func TestNotFlat(t *testing.T) {
	tab := permtable.New(5)
	rng := rand.New(rand.NewSource(2))
	for name, k := range kernels3() {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < 2000; i++ {
			v := k(tab, [3]float64{rng.Float64() * 40, rng.Float64() * 40, rng.Float64() * 40})
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		assert.Greaterf(t, hi-lo, 0.25, "%s3D spread", name)
	}
}

// TestContinuity nudges random points by 1e-7 along a random unit vector and
// across integer boundaries.
func TestContinuity(t *testing.T) {
	const (
		step = 1e-7
		tol  = 1e-4
	)
	tab := permtable.New(11)
	rng := rand.New(rand.NewSource(3))

	unit4 := func() [4]float64 {
		var v [4]float64
		var n float64
		for a := range v {
			v[a] = rng.NormFloat64()
			n += v[a] * v[a]
		}
		n = math.Sqrt(n)
		for a := range v {
			v[a] /= n
		}

		return v
	}

	for i := 0; i < 2000; i++ {
		// Half the samples sit right on a lattice plane.
		var p [4]float64
		for a := range p {
			p[a] = (rng.Float64() - 0.5) * 64
		}
		if i%2 == 0 {
			p[i%4] = math.Round(p[i%4])
		}
		v := unit4()
		q := [4]float64{p[0] + step*v[0], p[1] + step*v[1], p[2] + step*v[2], p[3] + step*v[3]}

		for name, k := range kernels2() {
			d := math.Abs(k(tab, [2]float64{p[0], p[1]}) - k(tab, [2]float64{q[0], q[1]}))
			require.Lessf(t, d, tol, "%s2D at %v", name, p)
		}
		for name, k := range kernels3() {
			d := math.Abs(k(tab, [3]float64{p[0], p[1], p[2]}) - k(tab, [3]float64{q[0], q[1], q[2]}))
			require.Lessf(t, d, tol, "%s3D at %v", name, p)
		}
		for name, k := range kernels4() {
			d := math.Abs(k(tab, p) - k(tab, q))
			require.Lessf(t, d, tol, "%s4D at %v", name, p)
		}
	}
}

// TestDeterminism samples twice from separately built tables.
func TestDeterminism(t *testing.T) {
	a, b := permtable.New(99), permtable.New(99)
	p := [3]float64{12.34, -5.6, 0.001}
	for name, k := range kernels3() {
		assert.Equalf(t, k(a, p), k(b, p), "%s3D", name)
	}
}

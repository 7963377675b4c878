// SPDX-License-Identifier: MIT

package sampler_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/noise"
	"github.com/katalvlaran/lvnoise/sampler"
)

// TestPlaneCoordinates checks the lattice spacing with a linear source.
func TestPlaneCoordinates(t *testing.T) {
	src := noise.SourceFunc[noise.Point2](func(p noise.Point2) float64 { return p[0] + 10*p[1] })

	g, err := sampler.Plane[noise.Point2](src, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Width)
	require.Equal(t, 4, g.Height)
	require.Len(t, g.Values, 16)

	assert.Equal(t, 0.0, g.At(0, 0))
	assert.Equal(t, 0.75, g.At(3, 0))
	assert.Equal(t, 5.75, g.At(3, 2))

	g, err = sampler.Plane[noise.Point2](src, 2, 1, sampler.WithBounds(-1, 1, 4, 6))
	require.NoError(t, err)
	assert.Equal(t, []float64{39, 40}, g.Values)
}

// TestPlaneFixedAxes holds z and w at the fixed coordinates.
func TestPlaneFixedAxes(t *testing.T) {
	src3 := noise.SourceFunc[noise.Point3](func(p noise.Point3) float64 { return p[2] })
	g, err := sampler.Plane[noise.Point3](src3, 3, 2, sampler.WithFixed(2.5))
	require.NoError(t, err)
	for _, v := range g.Values {
		assert.Equal(t, 2.5, v)
	}

	src4 := noise.SourceFunc[noise.Point4](func(p noise.Point4) float64 { return p[2] - p[3] })
	g, err = sampler.Plane[noise.Point4](src4, 2, 2, sampler.WithFixed(1))
	require.NoError(t, err)
	lo, hi := g.Range()
	assert.Equal(t, 1.0, lo, "missing w stays at zero")
	assert.Equal(t, 1.0, hi)
}

// TestPlaneMatchesSequential compares the parallel fill with direct sampling.
func TestPlaneMatchesSequential(t *testing.T) {
	src := noise.NewRidgedMulti[noise.Point3](5).WithOctaves(3)
	g, err := sampler.Plane[noise.Point3](src, 37, 23, sampler.WithBounds(-2, 3, 1, 4), sampler.WithFixed(0.3))
	require.NoError(t, err)

	dx, dy := 5.0/37, 3.0/23
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := noise.Point3{-2 + float64(x)*dx, 1 + float64(y)*dy, 0.3}
			require.Equal(t, src.Sample(p), g.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestPlaneErrors covers the returned error classes.
func TestPlaneErrors(t *testing.T) {
	src := noise.NewPerlin[noise.Point2](1)

	_, err := sampler.Plane[noise.Point2](src, 0, 4)
	require.ErrorIs(t, err, sampler.ErrBadSize)
	_, err = sampler.Plane[noise.Point2](src, 4, -1)
	require.ErrorIs(t, err, sampler.ErrBadSize)

	_, err = sampler.Plane[noise.Point2](src, 4, 4, sampler.WithFixed(1))
	require.ErrorIs(t, err, sampler.ErrTooManyAxes)
	_, err = sampler.Plane[noise.Point3](noise.NewPerlin[noise.Point3](1), 4, 4, sampler.WithFixed(1, 2))
	require.ErrorIs(t, err, sampler.ErrTooManyAxes)

	_, err = sampler.Plane[noise.Point2](nil, 4, 4)
	require.ErrorIs(t, err, noise.ErrNilSource)
}

// TestOptionPanics verifies option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { sampler.WithBounds(1, 1, 0, 1) })
	require.Panics(t, func() { sampler.WithBounds(0, 1, 2, 1) })
	require.Panics(t, func() { sampler.WithBounds(math.NaN(), 1, 0, 1) })
	require.Panics(t, func() { sampler.WithFixed(math.Inf(-1)) })
	require.NotPanics(t, func() { sampler.WithBounds(-1, 1, -1, 1) })
}

// TestGridRange skips NaN cells.
func TestGridRange(t *testing.T) {
	g := &sampler.Grid{Width: 2, Height: 2, Values: []float64{0.5, math.NaN(), -0.25, 0.75}}
	lo, hi := g.Range()
	assert.Equal(t, -0.25, lo)
	assert.Equal(t, 0.75, hi)

	empty := &sampler.Grid{Width: 1, Height: 1, Values: []float64{math.NaN()}}
	lo, hi = empty.Range()
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
}

// fromRows builds a grid from rows of equal length.
func fromRows(rows [][]float64) *sampler.Grid {
	g := &sampler.Grid{Width: len(rows[0]), Height: len(rows)}
	for _, r := range rows {
		g.Values = append(g.Values, r...)
	}

	return g
}

func regionSizes(regions [][]int) []int {
	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	sort.Ints(sizes)

	return sizes
}

// TestRegionsConn4 finds two islands with orthogonal connectivity.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
func TestRegionsConn4(t *testing.T) {
	g := fromRows([][]float64{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	regions := g.Regions(0.5, sampler.Conn4)
	require.Len(t, regions, 2)
	assert.Equal(t, []int{2, 4}, regionSizes(regions))
	assert.Equal(t, 1, regions[0][0], "regions start at their first cell in row-major order")
	assert.InDelta(t, 6.0/12, g.Coverage(0.5), 1e-15)
}

// TestRegionsConn8 joins diagonal neighbours into one island.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestRegionsConn8(t *testing.T) {
	g := fromRows([][]float64{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	assert.Len(t, g.Regions(1, sampler.Conn4), 9)
	regions := g.Regions(1, sampler.Conn8)
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 9)

	x, y := g.Coordinate(regions[0][0])
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
}

// TestRegionsOfNoise checks that regions partition the land cells of a
// sampled heightmap.
func TestRegionsOfNoise(t *testing.T) {
	g, err := sampler.Plane[noise.Point2](noise.NewFbm[noise.Point2](11), 64, 64, sampler.WithBounds(0, 8, 0, 8))
	require.NoError(t, err)

	regions := g.Regions(0, sampler.Conn8)
	seen := make(map[int]bool)
	for _, r := range regions {
		for _, idx := range r {
			require.False(t, seen[idx], "cell %d in two regions", idx)
			require.GreaterOrEqual(t, g.Values[idx], 0.0)
			seen[idx] = true
		}
	}
	assert.InDelta(t, g.Coverage(0), float64(len(seen))/float64(len(g.Values)), 1e-15)
}

// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/katalvlaran/lvnoise/noise"
)

// Plane samples src on a width×height lattice. Cell (x, y) is evaluated at
//
//	(x0 + x·(x1−x0)/width, y0 + y·(y1−y0)/height, fixed…)
//
// so the grid tiles [x0, x1) × [y0, y1) without repeating the far edge.
// Rows are filled concurrently; the result does not depend on scheduling.
//
// Returns noise.ErrNilSource for a nil src, ErrBadSize for width or
// height < 1 and ErrTooManyAxes when WithFixed supplies more coordinates than
// P has beyond x and y.
func Plane[P noise.Point](src noise.Source[P], width, height int, opts ...Option) (*Grid, error) {
	if src == nil {
		return nil, noise.ErrNilSource
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadSize, width, height)
	}
	cfg := newConfig(opts...)

	var base P
	if extra := len(base) - 2; len(cfg.fixed) > extra {
		return nil, fmt.Errorf("%w: %d given, %d available", ErrTooManyAxes, len(cfg.fixed), extra)
	}
	for i, v := range cfg.fixed {
		base[i+2] = v
	}

	dx := (cfg.x1 - cfg.x0) / float64(width)
	dy := (cfg.y1 - cfg.y0) / float64(height)
	g := &Grid{Width: width, Height: height, Values: make([]float64, width*height)}

	parallel.For(height, func(y, _ int) {
		p := base
		p[1] = cfg.y0 + float64(y)*dy
		row := g.Values[y*width : (y+1)*width]
		for x := range row {
			p[0] = cfg.x0 + float64(x)*dx
			row[x] = src.Sample(p)
		}
	})

	return g, nil
}

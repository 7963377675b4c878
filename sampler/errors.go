// SPDX-License-Identifier: MIT

package sampler

import "errors"

var (
	// ErrBadSize indicates a grid width or height below 1.
	ErrBadSize = errors.New("sampler: grid dimensions must be at least 1×1")
	// ErrBadBounds indicates a sampling rectangle with x0 ≥ x1, y0 ≥ y1 or a
	// non-finite corner.
	ErrBadBounds = errors.New("sampler: invalid sampling bounds")
	// ErrTooManyAxes indicates more fixed coordinates than the source's point
	// type has beyond x and y.
	ErrTooManyAxes = errors.New("sampler: too many fixed coordinates")
)

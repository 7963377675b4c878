// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/lvnoise/kernel"
	"github.com/katalvlaran/lvnoise/mathx"
)

// Worley is cellular noise: every lattice cell holds one jittered feature
// point and the output depends on the feature nearest to p.
//
// With kernel.ReturnDistance (default) the output is the normalised F1
// distance and is continuous. With kernel.ReturnValue it is the nearest
// cell's hash, constant inside each Voronoi region.
type Worley[P Point] struct {
	lattice
	distance kernel.Distance
	ret      kernel.ReturnType
}

// NewWorley returns Euclidean F1 cellular noise for seed.
func NewWorley[P Point](seed uint32) Worley[P] {
	return Worley[P]{lattice: newLattice(seed)}
}

// Sample returns the noise value at p, in [−1, 1].
func (n Worley[P]) Sample(p P) float64 {
	h := n.hasher()
	w := mathx.Widen(p)
	switch len(p) {
	case 2:
		return kernel.Worley2D(h, [2]float64{w[0], w[1]}, n.distance, n.ret)
	case 3:
		return kernel.Worley3D(h, [3]float64{w[0], w[1], w[2]}, n.distance, n.ret)
	default:
		return kernel.Worley4D(h, w, n.distance, n.ret)
	}
}

// Distance returns the configured metric.
func (n Worley[P]) Distance() kernel.Distance {
	return n.distance
}

// ReturnType returns the configured output mode.
func (n Worley[P]) ReturnType() kernel.ReturnType {
	return n.ret
}

// WithDistance selects the metric. Undefined values panic with ErrUnknownMode.
func (n Worley[P]) WithDistance(d kernel.Distance) Worley[P] {
	if !d.Valid() {
		configPanicf(NodeWorley, ErrUnknownMode, "distance %d", int(d))
	}
	n.distance = d

	return n
}

// WithReturnType selects the output mode. Undefined values panic with
// ErrUnknownMode.
func (n Worley[P]) WithReturnType(r kernel.ReturnType) Worley[P] {
	if !r.Valid() {
		configPanicf(NodeWorley, ErrUnknownMode, "return type %d", int(r))
	}
	n.ret = r

	return n
}

// WithSeed returns a copy using seed; metric and mode are kept.
func (n Worley[P]) WithSeed(seed uint32) Worley[P] {
	n.lattice = newLattice(seed)

	return n
}

// Reseed implements Seedable.
func (n Worley[P]) Reseed(seed uint32) Source[P] {
	return n.WithSeed(seed)
}

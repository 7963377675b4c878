// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvnoise/mathx"
)

// RotatePoint rotates the input point about the origin before sampling the
// source. Angles are in degrees.
//
//   - 2D: rotation by the z angle.
//   - 3D: R = Ry · Rx · Rz.
//   - 4D: the 3D rotation on xyz followed by a rotation of the z–w plane by
//     the w angle.
//
// The matrices are built once per configuration. Construct with
// NewRotatePoint; the zero value has degenerate matrices.
type RotatePoint[P Point] struct {
	unary[P]
	angles [4]float64
	m2     mgl64.Mat2
	m3     mgl64.Mat3
	m4     mgl64.Mat4
}

// NewRotatePoint wraps src with all angles zero.
func NewRotatePoint[P Point](src Source[P]) RotatePoint[P] {
	r := RotatePoint[P]{unary: newUnary(NodeRotate, src)}
	r.build()

	return r
}

func (r *RotatePoint[P]) build() {
	x := mgl64.DegToRad(r.angles[0])
	y := mgl64.DegToRad(r.angles[1])
	z := mgl64.DegToRad(r.angles[2])
	w := mgl64.DegToRad(r.angles[3])

	r.m2 = mgl64.Rotate2D(z)
	r.m3 = mgl64.Rotate3DY(y).Mul3(mgl64.Rotate3DX(x)).Mul3(mgl64.Rotate3DZ(z))

	zw := mgl64.Rotate2D(w)
	plane := mgl64.Mat4FromRows(
		mgl64.Vec4{1, 0, 0, 0},
		mgl64.Vec4{0, 1, 0, 0},
		mgl64.Vec4{0, 0, zw.At(0, 0), zw.At(0, 1)},
		mgl64.Vec4{0, 0, zw.At(1, 0), zw.At(1, 1)},
	)
	r.m4 = plane.Mul4(r.m3.Mat4())
}

// Sample returns src(R·p).
func (r RotatePoint[P]) Sample(p P) float64 {
	v := mathx.Widen(p)
	switch len(p) {
	case 2:
		q := r.m2.Mul2x1(mgl64.Vec2{v[0], v[1]})
		v[0], v[1] = q[0], q[1]
	case 3:
		q := r.m3.Mul3x1(mgl64.Vec3{v[0], v[1], v[2]})
		v[0], v[1], v[2] = q[0], q[1], q[2]
	default:
		v = r.m4.Mul4x1(mgl64.Vec4(v))
	}

	return r.source.Sample(mathx.Narrow[P](v))
}

// Angles returns the x, y, z and w angles in degrees.
func (r RotatePoint[P]) Angles() (x, y, z, w float64) {
	return r.angles[0], r.angles[1], r.angles[2], r.angles[3]
}

// WithAngles sets all four angles, in degrees. The w angle only affects 4D
// points and x and y only affect 3D and 4D points.
func (r RotatePoint[P]) WithAngles(x, y, z, w float64) RotatePoint[P] {
	for _, a := range []float64{x, y, z, w} {
		mustFinite(NodeRotate, "angle", a)
	}
	r.angles = [4]float64{x, y, z, w}
	r.build()

	return r
}

// WithXAngle sets the rotation about the x axis.
func (r RotatePoint[P]) WithXAngle(deg float64) RotatePoint[P] {
	return r.WithAngles(deg, r.angles[1], r.angles[2], r.angles[3])
}

// WithYAngle sets the rotation about the y axis.
func (r RotatePoint[P]) WithYAngle(deg float64) RotatePoint[P] {
	return r.WithAngles(r.angles[0], deg, r.angles[2], r.angles[3])
}

// WithZAngle sets the rotation about the z axis, the only angle used in 2D.
func (r RotatePoint[P]) WithZAngle(deg float64) RotatePoint[P] {
	return r.WithAngles(r.angles[0], r.angles[1], deg, r.angles[3])
}

// WithWAngle sets the rotation of the z–w plane.
func (r RotatePoint[P]) WithWAngle(deg float64) RotatePoint[P] {
	return r.WithAngles(r.angles[0], r.angles[1], r.angles[2], deg)
}

// WithSeed reseeds the source; angles are kept.
func (r RotatePoint[P]) WithSeed(seed uint32) RotatePoint[P] {
	r.unary = r.reseeded(seed)

	return r
}

// Reseed implements Seedable.
func (r RotatePoint[P]) Reseed(seed uint32) Source[P] { return r.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (r RotatePoint[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	r.unary = r.withFractal(cfg)

	return r
}

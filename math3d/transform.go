// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"fmt"
	"math"
)

// Transform is a 4x4 homogeneous coordinate transform in column-major
// storage order, so the translation occupies elements 12-14.
// The rotation sub-block is expected, but not enforced, to be orthonormal,
// and the bottom row is conventionally [0, 0, 0, 1].
//
// Since we work with 3-component vectors, [Transform.MulVector3] applies
// only the affine 3x4 part: the last row is stored but never applied,
// and there is no perspective divide.
type Transform struct {
	Data [16]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	var t Transform
	t.Data[0] = 1
	t.Data[5] = 1
	t.Data[10] = 1
	t.Data[15] = 1
	return t
}

// NewTransform returns a transform from 16 raw values in
// column-major order.
func NewTransform(data [16]float64) Transform {
	return Transform{Data: data}
}

// RPYTransform returns a transform from intrinsic roll-pitch-yaw angles
// (radians, applied as yaw around Z, then pitch around Y, then roll
// around X) and a translation.
func RPYTransform(rotation, translation Vector3) Transform {
	var t Transform
	t.SetRPY(rotation, translation)
	return t
}

// AxisAngleTransform returns a transform from an axis-angle rotation
// (Rodrigues) and a translation. The axis must be unit length: callers
// are responsible for normalizing it first.
func AxisAngleTransform(axis Vector3, angle float64, translation Vector3) Transform {
	var t Transform
	t.SetAxisAngle(axis, angle, translation)
	return t
}

// Rotation returns a pure rotation transform from intrinsic
// roll-pitch-yaw angles, with zero translation.
func Rotation(rotation Vector3) Transform {
	return RPYTransform(rotation, Vector3{})
}

// Translation returns a pure translation transform with identity rotation.
func Translation(translation Vector3) Transform {
	return RPYTransform(Vector3{}, translation)
}

// SetRPY sets the transform from intrinsic roll-pitch-yaw angles and a
// translation.
func (t *Transform) SetRPY(rotation, translation Vector3) {
	sa, ca := math.Sincos(rotation.Z)
	sb, cb := math.Sincos(rotation.Y)
	sg, cg := math.Sincos(rotation.X)

	t.Data[0] = ca * cb
	t.Data[4] = ca*sb*sg - sa*cg
	t.Data[8] = ca*sb*cg + sa*sg
	t.Data[1] = sa * cb
	t.Data[5] = sa*sb*sg + ca*cg
	t.Data[9] = sa*sb*cg - ca*sg
	t.Data[2] = -sb
	t.Data[6] = cb * sg
	t.Data[10] = cb * cg
	t.Data[3] = 0
	t.Data[7] = 0
	t.Data[11] = 0

	t.SetTranslation(translation)
	t.Data[15] = 1
}

// SetAxisAngle sets the transform from a unit axis, rotation angle in
// radians, and a translation.
func (t *Transform) SetAxisAngle(axis Vector3, angle float64, translation Vector3) {
	s, c := math.Sincos(angle)
	c1 := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	t.Data[0] = c + x*x*c1
	t.Data[4] = x*y*c1 - z*s
	t.Data[8] = x*z*c1 + y*s
	t.Data[1] = y*x*c1 + z*s
	t.Data[5] = c + y*y*c1
	t.Data[9] = y*z*c1 - x*s
	t.Data[2] = z*x*c1 - y*s
	t.Data[6] = z*y*c1 + x*s
	t.Data[10] = c + z*z*c1
	t.Data[3] = 0
	t.Data[7] = 0
	t.Data[11] = 0

	t.SetTranslation(translation)
	t.Data[15] = 1
}

// SetTranslation sets the translation part of the transform, leaving the
// rotation sub-block untouched.
func (t *Transform) SetTranslation(translation Vector3) {
	t.Data[12] = translation.X
	t.Data[13] = translation.Y
	t.Data[14] = translation.Z
}

// TranslationOf returns the translation part of the transform.
func (t Transform) TranslationOf() Vector3 {
	return Vector3{t.Data[12], t.Data[13], t.Data[14]}
}

// Mul returns the matrix product of this transform and other.
// Composition is non-commutative: the right operand applies first,
// so a.Mul(b).MulVector3(p) == a.MulVector3(b.MulVector3(p)).
func (t Transform) Mul(other Transform) Transform {
	var result Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += t.Data[i+k*4] * other.Data[j*4+k]
			}
			result.Data[i+j*4] = sum
		}
	}
	return result
}

// MulVector3 applies the affine 3x4 part of the transform to the given
// point. The fourth row is never applied and no perspective divide takes
// place.
func (t Transform) MulVector3(v Vector3) Vector3 {
	return Vector3{
		t.Data[0]*v.X + t.Data[4]*v.Y + t.Data[8]*v.Z + t.Data[12],
		t.Data[1]*v.X + t.Data[5]*v.Y + t.Data[9]*v.Z + t.Data[13],
		t.Data[2]*v.X + t.Data[6]*v.Y + t.Data[10]*v.Z + t.Data[14],
	}
}

func (t Transform) String() string {
	d := t.Data
	return fmt.Sprintf("[%v, %v, %v, %v\n %v, %v, %v, %v\n %v, %v, %v, %v\n %v, %v, %v, %v]",
		d[0], d[4], d[8], d[12],
		d[1], d[5], d[9], d[13],
		d[2], d[6], d[10], d[14],
		d[3], d[7], d[11], d[15])
}

// Align returns the transform placing a canonical origin-centered,
// Z-aligned shape of length |end-start| so that it spans start to end,
// along with that length. The local origin maps to the midpoint, local
// (0, 0, -len/2) to start and (0, 0, +len/2) to end.
//
// When the direction is parallel or antiparallel to +Z the rotation axis
// degenerates to zero length; the fallback axis (1, 0, 0) is used, which
// is a no-op at angle 0 and maps +Z to -Z at angle pi.
func Align(start, end Vector3) (Transform, float64) {
	dir := end.Sub(start)
	length := dir.Norm()
	u := dir.DivScalar(length)

	// normalization rounding can push u.Z a hair outside [-1, 1],
	// which would make Acos return NaN
	angle := math.Acos(math.Max(-1, math.Min(1, u.Z)))
	axis := Vector3{-u.Y, u.X, 0} // cross(Z, u): unit length unless u is parallel to Z
	if axis.NormSq() < 1e-24 {
		axis = Vector3{1, 0, 0}
	} else {
		axis = axis.Normal()
	}

	return AxisAngleTransform(axis, angle, start).Mul(Translation(Vector3{0, 0, length / 2})), length
}

// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"fmt"
	"math"
)

// Vector3 is a 3D vector/point with X, Y and Z components.
// All arithmetic methods are value methods returning new vectors.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the
// given scalar value.
func Vector3Scalar(scalar float64) Vector3 {
	return Vector3{X: scalar, Y: scalar, Z: scalar}
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3) Set(x, y, z float64) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Add returns the vector sum of this vector and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the vector difference of this vector and other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MulScalar returns the vector scaled by the given scalar.
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the elementwise product of this vector and other.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// DivScalar returns the vector divided by the given scalar.
func (v Vector3) DivScalar(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Div returns the elementwise quotient of this vector and other.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Pow returns the vector with each component raised to the given power.
func (v Vector3) Pow(exp float64) Vector3 {
	return Vector3{math.Pow(v.X, exp), math.Pow(v.Y, exp), math.Pow(v.Z, exp)}
}

// Dot returns the dot product of this vector and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector and other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Norm returns the length of the vector.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// NormSq returns the squared length of the vector.
func (v Vector3) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normal returns the vector scaled to unit length.
// It returns the zero vector unchanged.
func (v Vector3) Normal() Vector3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.DivScalar(n)
}

// IsNil returns true if all components are zero.
func (v Vector3) IsNil() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}

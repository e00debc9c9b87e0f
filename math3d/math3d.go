// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math3d provides the vector and homogeneous-transform algebra
// underlying the prim scene graph: a float64 3-component vector and a
// column-major 4x4 transform, with constructors for roll-pitch-yaw and
// axis-angle rotations.
package math3d

import "math"

// DegToRad converts a number of degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// RadToDeg converts a number of radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * (180 / math.Pi)
}

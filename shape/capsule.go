// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// NewCapsule returns a capsule mesh: a cylinder of the given length
// along Z with hemispherical end caps of the given radius. The whole
// surface is built as one continuous meridian sweep that transitions
// from the bottom-cap regime through the body to the top-cap regime via
// an index/offset discontinuity. Each vertex normal is computed against
// its own regime's cap center. facets must be divisible by 4.
func NewCapsule(length, radius float32, facets int) *Mesh {
	ms := &Mesh{}

	// vertex whose normal points away from the cap center at z = zadj
	capVtx := func(theta, r, z, zadj float32) uint32 {
		x := r * math32.Cos(theta)
		y := r * math32.Sin(theta)
		nx, ny, nz := normalize(x, y, z-zadj)
		return ms.AddVertex(x, y, z, nx, ny, nz)
	}

	// start at the bottom cap
	jadj1, jadj2 := 0, 1
	zadj1, zadj2 := -length/2, -length/2

	for j := 0; j <= facets/2; j++ {
		switch j {
		case facets / 4: // move to body
			jadj2--
			zadj2 += length
		case facets/4 + 1: // move to top cap
			jadj1--
			zadj1 += length
		}

		phi1 := float32(j+jadj1) * 2 * math32.Pi / float32(facets)
		phi2 := float32(j+jadj2) * 2 * math32.Pi / float32(facets)
		r1, z1 := radius*math32.Sin(phi1), -radius*math32.Cos(phi1)+zadj1
		r2, z2 := radius*math32.Sin(phi2), -radius*math32.Cos(phi2)+zadj2

		for i := 0; i < facets; i++ {
			theta1 := float32(i) * 2 * math32.Pi / float32(facets)
			theta2 := float32(i+1) * 2 * math32.Pi / float32(facets)

			a := capVtx(theta1, r1, z1, zadj1)
			b := capVtx(theta2, r1, z1, zadj1)
			c := capVtx(theta2, r2, z2, zadj2)
			d := capVtx(theta1, r2, z2, zadj2)
			ms.AddQuad(a, b, c, d)
		}
	}

	return ms
}

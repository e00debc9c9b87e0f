// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// NewSphere returns a sphere mesh with the given radius, tessellated as
// a latitude/longitude grid of facets/2 x facets quads. Vertex normals
// point along the normalized vertex position. facets must be divisible
// by 4.
func NewSphere(radius float32, facets int) *Mesh {
	ms := &Mesh{}

	addVtx := func(theta, r, z float32) uint32 {
		x := r * math32.Cos(theta)
		y := r * math32.Sin(theta)
		nx, ny, nz := normalize(x, y, z)
		return ms.AddVertex(x, y, z, nx, ny, nz)
	}

	for j := 0; j < facets/2; j++ {
		phi1 := float32(j) * 2 * math32.Pi / float32(facets)
		phi2 := float32(j+1) * 2 * math32.Pi / float32(facets)
		r1, z1 := radius*math32.Sin(phi1), -radius*math32.Cos(phi1)
		r2, z2 := radius*math32.Sin(phi2), -radius*math32.Cos(phi2)

		for i := 0; i < facets; i++ {
			theta1 := float32(i) * 2 * math32.Pi / float32(facets)
			theta2 := float32(i+1) * 2 * math32.Pi / float32(facets)

			a := addVtx(theta1, r1, z1)
			b := addVtx(theta2, r1, z1)
			c := addVtx(theta2, r2, z2)
			d := addVtx(theta1, r2, z2)
			ms.AddQuad(a, b, c, d)
		}
	}

	return ms
}

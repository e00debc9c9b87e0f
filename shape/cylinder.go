// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// NewCylinder returns a generalized cylinder mesh of the given length
// along Z, with the radius circle at z = -length/2 and the endRadius
// circle at z = +length/2. Pass endRadius == radius for a straight
// cylinder, or 0 for a cone (see [NewCone]). Lateral normals are purely
// radial (zero Z component); the end discs are triangle fans with +-Z
// normals, the bottom wound in reverse to stay outward-facing.
// facets must be divisible by 4.
func NewCylinder(length, radius, endRadius float32, facets int) *Mesh {
	ms := &Mesh{}
	hl := length / 2

	// lateral surface
	lateral := func(theta, r, z float32) uint32 {
		x := r * math32.Cos(theta)
		y := r * math32.Sin(theta)
		nx, ny, _ := normalize(x, y, 0)
		if r == 0 {
			// apex of a cone: keep the radial direction of the facet
			nx, ny = math32.Cos(theta), math32.Sin(theta)
		}
		return ms.AddVertex(x, y, z, nx, ny, 0)
	}

	for i := 0; i < facets; i++ {
		theta1 := float32(i) * 2 * math32.Pi / float32(facets)
		theta2 := float32(i+1) * 2 * math32.Pi / float32(facets)

		a := lateral(theta1, radius, -hl)
		b := lateral(theta2, radius, -hl)
		c := lateral(theta2, endRadius, hl)
		d := lateral(theta1, endRadius, hl)
		ms.AddQuad(a, b, c, d)
	}

	// top disc
	if endRadius > 0 {
		var ring []uint32
		for i := 0; i < facets; i++ {
			theta := float32(i) * 2 * math32.Pi / float32(facets)
			ring = append(ring, ms.AddVertex(endRadius*math32.Cos(theta), endRadius*math32.Sin(theta), hl, 0, 0, 1))
		}
		for i := 1; i < facets-1; i++ {
			ms.AddTri(ring[0], ring[i], ring[i+1])
		}
	}

	// bottom disc, wound in reverse so it faces -Z
	if radius > 0 {
		var ring []uint32
		for i := 0; i < facets; i++ {
			theta := -float32(i) * 2 * math32.Pi / float32(facets)
			ring = append(ring, ms.AddVertex(radius*math32.Cos(theta), radius*math32.Sin(theta), -hl, 0, 0, -1))
		}
		for i := 1; i < facets-1; i++ {
			ms.AddTri(ring[0], ring[i], ring[i+1])
		}
	}

	return ms
}

// NewCone returns a cone mesh: a cylinder ending in a point.
func NewCone(length, radius float32, facets int) *Mesh {
	return NewCylinder(length, radius, 0, facets)
}

// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/primlib/prim/math3d"

// NewPlane returns a quad mesh centered on the origin and spanned by
// the two vectors a and b, of arbitrary size and orientation. The
// normal is the normalized cross product of a and b. Texture
// coordinates run from (0,0) to texRepeat across the quad, so a repeat
// greater than 1 tiles a repeating texture; pass (1,1) for a plain
// stretch.
func NewPlane(a, b math3d.Vector3, texRepeatX, texRepeatY float32) *Mesh {
	n := a.Cross(b).Normal()
	nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

	ha := a.MulScalar(0.5)
	hb := b.MulScalar(0.5)
	corners := []math3d.Vector3{
		ha.Negate().Sub(hb),
		ha.Sub(hb),
		ha.Add(hb),
		hb.Sub(ha),
	}
	uvs := [][2]float32{{0, 0}, {texRepeatX, 0}, {texRepeatX, texRepeatY}, {0, texRepeatY}}

	ms := &Mesh{}
	for i, c := range corners {
		ms.AddVertex(float32(c.X), float32(c.Y), float32(c.Z), nx, ny, nz)
		ms.AddTexCoord(uvs[i][0], uvs[i][1])
	}
	ms.AddQuad(0, 1, 2, 3)
	return ms
}

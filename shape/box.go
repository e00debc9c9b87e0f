// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// NewBox returns a box mesh with the given size along each dimension,
// centered on the origin, with outward axis-aligned face normals.
func NewBox(width, height, depth float32) *Mesh {
	hx, hy, hz := width/2, height/2, depth/2
	ms := &Mesh{}

	addFace := func(nx, ny, nz float32, corners [4][3]float32) {
		i := ms.AddVertex(corners[0][0], corners[0][1], corners[0][2], nx, ny, nz)
		ms.AddVertex(corners[1][0], corners[1][1], corners[1][2], nx, ny, nz)
		ms.AddVertex(corners[2][0], corners[2][1], corners[2][2], nx, ny, nz)
		ms.AddVertex(corners[3][0], corners[3][1], corners[3][2], nx, ny, nz)
		ms.AddQuad(i, i+1, i+2, i+3)
	}

	// corner naming: p/n per axis, e.g. pnp = +x, -y, +z
	ppp := [3]float32{hx, hy, hz}
	npp := [3]float32{-hx, hy, hz}
	nnp := [3]float32{-hx, -hy, hz}
	pnp := [3]float32{hx, -hy, hz}
	ppn := [3]float32{hx, hy, -hz}
	npn := [3]float32{-hx, hy, -hz}
	nnn := [3]float32{-hx, -hy, -hz}
	pnn := [3]float32{hx, -hy, -hz}

	addFace(0, 0, 1, [4][3]float32{nnp, pnp, ppp, npp})  // Z+
	addFace(0, 0, -1, [4][3]float32{nnn, npn, ppn, pnn}) // Z-
	addFace(1, 0, 0, [4][3]float32{pnn, ppn, ppp, pnp})  // X+
	addFace(-1, 0, 0, [4][3]float32{nnn, nnp, npp, npn}) // X-
	addFace(0, 1, 0, [4][3]float32{npn, npp, ppp, ppn})  // Y+
	addFace(0, -1, 0, [4][3]float32{nnn, pnn, pnp, nnp}) // Y-

	return ms
}

// NewWireBox returns a wireframe box mesh with the given size, as 12
// independent line edges with no faces or normals.
func NewWireBox(width, height, depth float32) *Mesh {
	hx, hy, hz := width/2, height/2, depth/2
	ms := &Mesh{}

	// 4 edges along each axis
	ms.AddLine(-hx, -hy, hz, hx, -hy, hz)
	ms.AddLine(-hx, -hy, -hz, hx, -hy, -hz)
	ms.AddLine(-hx, hy, hz, hx, hy, hz)
	ms.AddLine(-hx, hy, -hz, hx, hy, -hz)

	ms.AddLine(-hx, -hy, hz, -hx, hy, hz)
	ms.AddLine(-hx, -hy, -hz, -hx, hy, -hz)
	ms.AddLine(hx, -hy, hz, hx, hy, hz)
	ms.AddLine(hx, -hy, -hz, hx, hy, -hz)

	ms.AddLine(-hx, -hy, -hz, -hx, -hy, hz)
	ms.AddLine(hx, -hy, -hz, hx, -hy, hz)
	ms.AddLine(-hx, hy, -hz, -hx, hy, hz)
	ms.AddLine(hx, hy, -hz, hx, hy, hz)

	return ms
}

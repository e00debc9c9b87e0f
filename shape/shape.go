// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides procedural generators for the standard prim
// primitives: box, wire box, sphere, generalized cylinder, capsule and
// plane, plus a binary STL model importer.
//
// Each generator is a pure function from shape parameters to a [Mesh]:
// an indexed triangle list (and, for wireframe shapes, a line list) with
// per-vertex positions and normals in the canonical local frame, centered
// on the origin and aligned along the Z axis. Curved shapes take a facet
// count which must be divisible by 4.
package shape

import (
	"github.com/chewxy/math32"
)

// DefaultFacets is the facet count used by the convenience constructors
// in the scene package. Facet counts must be divisible by 4.
const DefaultFacets = 20

// Mesh is a pre-tessellated geometry batch: flat arrays of vertex
// positions, normals and optional texture coordinates, indexed as a
// triangle list, plus an optional line list for wireframe shapes.
// A Mesh is built once by a generator and replayed unchanged on every
// draw.
type Mesh struct {
	// Vertex holds the vertex positions, 3 floats per vertex.
	Vertex []float32

	// Normal holds the vertex normals, 3 floats per vertex,
	// parallel to Vertex.
	Normal []float32

	// TexCoord holds texture coordinates, 2 floats per vertex,
	// parallel to Vertex. Empty for untextured shapes.
	TexCoord []float32

	// Index holds the triangle list: 3 indexes into the vertex
	// arrays per triangle.
	Index []uint32

	// Lines holds independent line segments as endpoint pairs,
	// 6 floats per segment. Only wireframe shapes fill this.
	Lines []float32
}

// NumVertex returns the number of vertex points in the mesh.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// NumTri returns the number of triangles in the mesh.
func (ms *Mesh) NumTri() int {
	return len(ms.Index) / 3
}

// NumLines returns the number of line segments in the mesh.
func (ms *Mesh) NumLines() int {
	return len(ms.Lines) / 6
}

// HasTexCoords returns true if the mesh carries texture coordinates.
func (ms *Mesh) HasTexCoords() bool {
	return len(ms.TexCoord) > 0
}

// AddVertex appends one vertex with position p and normal n,
// returning its index.
func (ms *Mesh) AddVertex(px, py, pz, nx, ny, nz float32) uint32 {
	idx := uint32(ms.NumVertex())
	ms.Vertex = append(ms.Vertex, px, py, pz)
	ms.Normal = append(ms.Normal, nx, ny, nz)
	return idx
}

// AddTexCoord appends one texture coordinate pair. Callers must keep
// TexCoord parallel to Vertex: either all vertices get one or none do.
func (ms *Mesh) AddTexCoord(u, v float32) {
	ms.TexCoord = append(ms.TexCoord, u, v)
}

// AddTri appends one triangle from existing vertex indexes,
// in counter-clockwise winding.
func (ms *Mesh) AddTri(a, b, c uint32) {
	ms.Index = append(ms.Index, a, b, c)
}

// AddQuad appends a four-sided polygon as two triangles.
// Assuming the corners are in counter-clockwise order, the triangles
// are as well.
func (ms *Mesh) AddQuad(a, b, c, d uint32) {
	ms.AddTri(a, b, c)
	ms.AddTri(c, d, a)
}

// AddLine appends one independent line segment.
func (ms *Mesh) AddLine(x1, y1, z1, x2, y2, z2 float32) {
	ms.Lines = append(ms.Lines, x1, y1, z1, x2, y2, z2)
}

// normalize scales the given components to unit length in place.
func normalize(x, y, z float32) (float32, float32, float32) {
	n := math32.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return x, y, z
	}
	return x / n, y / n, z / n
}

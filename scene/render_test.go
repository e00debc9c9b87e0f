// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/primlib/prim/math3d"
)

// recorder is a Renderer double recording the call sequence and its
// interesting arguments.
type recorder struct {
	width, height int

	ops        []string
	clears     []math3d.Vector3
	projection math3d.Transform
	pushed     []math3d.Transform
	colors     []math3d.Vector3
	bound      []*Texture
	vertices   int
	normals    int
	texCoords  int
	depth      int
	maxDepth   int
}

func newRecorder(width, height int) *recorder {
	return &recorder{width: width, height: height}
}

func (r *recorder) op(name string) {
	r.ops = append(r.ops, name)
}

func (r *recorder) Viewport() (int, int) {
	return r.width, r.height
}

func (r *recorder) Clear(color math3d.Vector3) {
	r.op("clear")
	r.clears = append(r.clears, color)
}

func (r *recorder) LoadProjection(m math3d.Transform) {
	r.op("projection")
	r.projection = m
}

func (r *recorder) PushMatrix(m math3d.Transform) {
	r.op("push")
	r.pushed = append(r.pushed, m)
	r.depth++
	r.maxDepth = max(r.maxDepth, r.depth)
}

func (r *recorder) PopMatrix() {
	r.op("pop")
	r.depth--
}

func (r *recorder) SetColor(color math3d.Vector3) {
	r.op("color")
	r.colors = append(r.colors, color)
}

func (r *recorder) BindTexture(tx *Texture) {
	r.op("bind")
	r.bound = append(r.bound, tx)
}

func (r *recorder) UnbindTexture()         { r.op("unbind") }
func (r *recorder) BeginTriangles()        { r.op("triangles") }
func (r *recorder) BeginLines()            { r.op("lines") }
func (r *recorder) End()                   { r.op("end") }
func (r *recorder) Normal(x, y, z float32) { r.normals++ }
func (r *recorder) TexCoord(u, v float32)  { r.texCoords++ }
func (r *recorder) Vertex(x, y, z float32) { r.vertices++ }

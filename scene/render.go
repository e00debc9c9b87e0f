// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/primlib/prim/math3d"

// Renderer is the rendering sink consumed by the draw traversal.
// The scene graph issues an ordered sequence of these calls once per
// [Scene.Render]; it never rasterizes anything itself. The glrender
// package provides an OpenGL implementation; tests use lightweight
// recording doubles.
//
// All calls happen synchronously on the calling goroutine.
type Renderer interface {
	// Viewport returns the current drawable size in pixels,
	// used to derive the projection aspect ratio.
	Viewport() (width, height int)

	// Clear clears the color and depth buffers to the given
	// background color.
	Clear(color math3d.Vector3)

	// LoadProjection loads the given projection matrix, replacing any
	// previous one. Called once per frame before any geometry.
	LoadProjection(m math3d.Transform)

	// PushMatrix pushes the transform stack and multiplies in m.
	// The stack is reset to identity at the start of every frame,
	// so m is always the full composed world transform of a node.
	PushMatrix(m math3d.Transform)

	// PopMatrix pops the transform stack.
	PopMatrix()

	// SetColor sets the color applied to subsequent vertices.
	SetColor(color math3d.Vector3)

	// BindTexture enables 2D texturing with the given texture for
	// subsequent geometry. Only valid textures are bound.
	BindTexture(tx *Texture)

	// UnbindTexture disables 2D texturing.
	UnbindTexture()

	// BeginTriangles starts a triangle batch.
	BeginTriangles()

	// BeginLines starts a line-segment batch.
	BeginLines()

	// End finishes the current batch.
	End()

	// Normal sets the normal for subsequent vertices.
	Normal(x, y, z float32)

	// TexCoord sets the texture coordinate for the next vertex.
	TexCoord(u, v float32)

	// Vertex emits one vertex.
	Vertex(x, y, z float32)
}

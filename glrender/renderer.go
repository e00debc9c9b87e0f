// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glrender renders prim scenes through the OpenGL 2.1 fixed
// pipeline in a GLFW window. It is the only package in the module that
// touches the GPU; everything in it must run on the main OS thread,
// which [Window.Run] arranges.
package glrender

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/primlib/prim/math3d"
	"github.com/primlib/prim/scene"
)

// Renderer implements [scene.Renderer] with immediate-mode OpenGL
// calls against the window's context.
type Renderer struct {
	win *glfw.Window

	// lighting is turned off while a line batch is open
	inLines bool
}

// Viewport returns the drawable framebuffer size in pixels.
func (r *Renderer) Viewport() (width, height int) {
	return r.win.GetFramebufferSize()
}

// Clear starts a frame: sets the viewport, clears the buffers to the
// given color and resets the fixed-pipeline state the traversal
// assumes.
func (r *Renderer) Clear(color math3d.Vector3) {
	width, height := r.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	gl.ClearColor(float32(color.X), float32(color.Y), float32(color.Z), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.NORMALIZE)
	gl.Enable(gl.COLOR_MATERIAL)
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
}

// LoadProjection loads the projection matrix and resets the modelview
// stack to identity.
func (r *Renderer) LoadProjection(m math3d.Transform) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&m.Data[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

// PushMatrix pushes the modelview stack and multiplies in m.
func (r *Renderer) PushMatrix(m math3d.Transform) {
	gl.PushMatrix()
	gl.MultMatrixd(&m.Data[0])
}

// PopMatrix pops the modelview stack.
func (r *Renderer) PopMatrix() {
	gl.PopMatrix()
}

// SetColor sets the current color.
func (r *Renderer) SetColor(color math3d.Vector3) {
	gl.Color3d(color.X, color.Y, color.Z)
}

// BindTexture enables texturing with tx, uploading its pixels on first
// use. The GPU texture name is kept in tx.Handle.
func (r *Renderer) BindTexture(tx *scene.Texture) {
	if tx.Handle == 0 {
		gl.GenTextures(1, &tx.Handle)
		gl.BindTexture(gl.TEXTURE_2D, tx.Handle)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB,
			int32(tx.Width), int32(tx.Height), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(tx.Pix))
	} else {
		gl.BindTexture(gl.TEXTURE_2D, tx.Handle)
	}
	gl.Enable(gl.TEXTURE_2D)
}

// UnbindTexture disables texturing.
func (r *Renderer) UnbindTexture() {
	gl.Disable(gl.TEXTURE_2D)
}

// BeginTriangles starts a lit triangle batch.
func (r *Renderer) BeginTriangles() {
	gl.Begin(gl.TRIANGLES)
}

// BeginLines starts an unlit line batch.
func (r *Renderer) BeginLines() {
	gl.Disable(gl.LIGHTING)
	r.inLines = true
	gl.Begin(gl.LINES)
}

// End finishes the current batch.
func (r *Renderer) End() {
	gl.End()
	if r.inLines {
		gl.Enable(gl.LIGHTING)
		r.inLines = false
	}
}

func (r *Renderer) Normal(x, y, z float32) { gl.Normal3f(x, y, z) }
func (r *Renderer) TexCoord(u, v float32)  { gl.TexCoord2f(u, v) }
func (r *Renderer) Vertex(x, y, z float32) { gl.Vertex3f(x, y, z) }

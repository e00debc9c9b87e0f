// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/primlib/prim/math3d"
)

// Scene default view parameters.
const (
	// DefaultFOV is the default vertical field of view in radians.
	DefaultFOV = 0.92

	// NearPlane and FarPlane bound the view frustum depth.
	NearPlane = 1
	FarPlane  = 100
)

// Scene is the root of the node tree. Its own transform holds the view
// transform, normally driven by an [OrbitControls]; its children are
// the world content. Rendering a frame clears the sink, loads a
// perspective projection derived from the current viewport, and draws
// the tree.
type Scene struct {
	NodeBase

	// Background is the clear color. The default is black.
	Background math3d.Vector3

	// FOV is the vertical field of view in radians.
	FOV float64
}

// NewScene returns a new empty scene with default view parameters.
func NewScene() *Scene {
	sc := &Scene{FOV: DefaultFOV}
	sc.Transform = math3d.Identity()
	return sc
}

// Render draws one frame of the scene to the given sink.
func (sc *Scene) Render(r Renderer) {
	r.Clear(sc.Background)

	width, height := r.Viewport()
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	proj := mgl64.Perspective(sc.FOV, aspect, NearPlane, FarPlane)
	r.LoadProjection(math3d.NewTransform([16]float64(proj)))

	sc.NodeBase.Render(r, math3d.Identity())
}

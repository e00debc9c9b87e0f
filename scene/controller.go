// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"

	"github.com/primlib/prim/math3d"
)

// Button identifies a mouse button reported to [OrbitControls].
type Button int32

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Action identifies a button state change reported to [OrbitControls].
type Action int32

const (
	Release Action = iota
	Press
)

// Drag sensitivities and defaults for [OrbitControls].
const (
	orbitSensitivity = 0.005 // radians per pixel
	panSensitivity   = 0.02  // world units per pixel
	dollySensitivity = 0.02  // world units per pixel

	DefaultAzimuth   = 60 * math.Pi / 180
	DefaultElevation = 35 * math.Pi / 180
	DefaultDistance  = 2
)

// dragState is the controller's input state between events.
type dragState int32

const (
	dragIdle dragState = iota
	dragOrbit
	dragPan
	dragDolly
)

// OrbitControls turns mouse input into an orbiting camera view,
// rewriting the scene's transform after every input event. The camera
// looks at Center from the given Distance, with Azimuth rotating it
// about the world Z axis and Elevation tilting it above the horizon;
// the world Z axis stays vertical on screen.
//
// Dragging with the left button orbits, the right button pans the
// center in the view plane, and the middle button dollies; the scroll
// wheel dollies exponentially. Feed input with [OrbitControls.MouseButton],
// [OrbitControls.MouseMotion] and [OrbitControls.MouseScroll], or set
// the pose directly with [OrbitControls.SetView].
type OrbitControls struct {
	// Azimuth and Elevation are the view angles in radians, and
	// Distance the camera distance from Center in world units.
	Azimuth   float64
	Elevation float64
	Distance  float64

	// Center is the look-at point in world coordinates.
	Center math3d.Vector3

	scene *Scene
	state dragState

	// pointer position at the last motion or press event
	lastX, lastY float64
}

// NewOrbitControls returns a controller driving the given scene's view
// transform, set to the default pose: azimuth 60 degrees, elevation 35
// degrees, distance 2, centered on the origin.
func NewOrbitControls(sc *Scene) *OrbitControls {
	oc := &OrbitControls{
		Azimuth:   DefaultAzimuth,
		Elevation: DefaultElevation,
		Distance:  DefaultDistance,
		scene:     sc,
	}
	oc.apply()
	return oc
}

// SetView sets the camera pose directly and updates the scene.
func (oc *OrbitControls) SetView(azimuth, elevation, distance float64, center math3d.Vector3) {
	oc.Azimuth = azimuth
	oc.Elevation = elevation
	oc.Distance = distance
	oc.Center = center
	oc.apply()
}

// MouseButton reports a button press or release at pointer position
// (x, y) in pixels. A press begins the drag mode for that button; a
// release of the dragging button returns to idle. Button events during
// an active drag of another button are ignored.
func (oc *OrbitControls) MouseButton(button Button, action Action, x, y float64) {
	if action == Press {
		if oc.state != dragIdle {
			return
		}
		switch button {
		case ButtonLeft:
			oc.state = dragOrbit
		case ButtonRight:
			oc.state = dragPan
		case ButtonMiddle:
			oc.state = dragDolly
		default:
			return
		}
		oc.lastX, oc.lastY = x, y
		return
	}

	switch {
	case oc.state == dragOrbit && button == ButtonLeft,
		oc.state == dragPan && button == ButtonRight,
		oc.state == dragDolly && button == ButtonMiddle:
		oc.state = dragIdle
	}
}

// MouseMotion reports pointer movement to (x, y) in pixels. Motion
// while idle only records the position.
func (oc *OrbitControls) MouseMotion(x, y float64) {
	dx := x - oc.lastX
	dy := y - oc.lastY

	switch oc.state {
	case dragOrbit:
		oc.Azimuth -= orbitSensitivity * dx
		oc.Elevation += orbitSensitivity * dy
	case dragPan:
		// drag in the view plane, derotated into world coordinates
		d := math3d.Vec3(-dx, dy, 0).MulScalar(panSensitivity)
		oc.Center = oc.Center.Add(math3d.Rotation(math3d.Vec3(0, 0, -oc.Azimuth)).MulVector3(d))
	case dragDolly:
		oc.Distance += dollySensitivity * dy
	default:
		oc.lastX, oc.lastY = x, y
		return
	}

	oc.lastX, oc.lastY = x, y
	oc.apply()
}

// MouseScroll reports scroll-wheel movement. Horizontal scroll is
// ignored. Each unit scrolled vertically scales the distance by a
// factor of sqrt(2), up for closer and down for farther, so zooming is
// symmetric and never crosses zero.
func (oc *OrbitControls) MouseScroll(dx, dy float64) {
	oc.Distance *= math.Pow(math.Sqrt2, -dy)
	oc.apply()
}

// apply rewrites the scene's view transform from the camera pose:
// recenter on Center, spin the world by -Azimuth about Z, then tilt it
// in front of a camera backed off by Distance.
func (oc *OrbitControls) apply() {
	tilt := math3d.RPYTransform(
		math3d.Vec3(-math.Pi/2+oc.Elevation, 0, 0),
		math3d.Vec3(0, 0, -oc.Distance),
	)
	spin := math3d.Rotation(math3d.Vec3(0, 0, -oc.Azimuth))
	oc.scene.Transform = tilt.Mul(spin).Mul(math3d.Translation(oc.Center.Negate()))
}

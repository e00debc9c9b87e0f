// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glrender

import (
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/primlib/prim/scene"
)

func init() {
	// GLFW event handling and GL contexts are bound to the main thread.
	runtime.LockOSThread()
}

// Window is a GLFW window with an OpenGL 2.1 context, displaying one
// scene and optionally feeding its input to an orbit controller.
type Window struct {
	glw      *glfw.Window
	renderer Renderer
}

// Open initializes GLFW and opens a window with the given title and
// size, making its context current.
func Open(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glrender: initializing glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glw, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "glrender: creating window")
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, errors.Wrap(err, "glrender: initializing gl")
	}

	w := &Window{glw: glw}
	w.renderer.win = glw
	return w, nil
}

// Renderer returns the window's rendering sink.
func (w *Window) Renderer() *Renderer {
	return &w.renderer
}

// AttachControls forwards the window's mouse input to the given orbit
// controller, replacing any previously attached one.
func (w *Window) AttachControls(oc *scene.OrbitControls) {
	w.glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.glw.GetCursorPos()
		oc.MouseButton(mapButton(button), mapAction(action), x, y)
	})
	w.glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		oc.MouseMotion(x, y)
	})
	w.glw.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		oc.MouseScroll(dx, dy)
	})
}

// Run drives the display loop until the window is closed: render the
// scene, swap buffers, wait for input. Must be called from the main
// goroutine. The window and GLFW are torn down on return.
func (w *Window) Run(sc *scene.Scene) {
	for !w.glw.ShouldClose() {
		sc.Render(&w.renderer)
		w.glw.SwapBuffers()
		glfw.WaitEvents()
	}
	w.glw.Destroy()
	glfw.Terminate()
}

// RunAnimated drives the display loop at a fixed frame interval,
// calling step before each frame, until the window is closed. Must be
// called from the main goroutine. The window and GLFW are torn down on
// return.
func (w *Window) RunAnimated(sc *scene.Scene, interval time.Duration, step func()) {
	for !w.glw.ShouldClose() {
		glfw.PollEvents()
		step()
		sc.Render(&w.renderer)
		w.glw.SwapBuffers()
		time.Sleep(interval)
	}
	w.glw.Destroy()
	glfw.Terminate()
}

func mapButton(button glfw.MouseButton) scene.Button {
	switch button {
	case glfw.MouseButtonRight:
		return scene.ButtonRight
	case glfw.MouseButtonMiddle:
		return scene.ButtonMiddle
	default:
		return scene.ButtonLeft
	}
}

func mapAction(action glfw.Action) scene.Action {
	if action == glfw.Press {
		return scene.Press
	}
	return scene.Release
}

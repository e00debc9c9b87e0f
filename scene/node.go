// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the prim scene graph: an ownership tree of
// nodes carrying local transforms, drawable solids backed by
// pre-tessellated [shape.Mesh] batches, and an orbit-camera controller.
//
// Everything is single-threaded and synchronous: mesh generation, tree
// mutation, traversal and controller updates all run to completion on
// the calling goroutine, driven once per frame or once per input event
// by the embedding application's main loop.
package scene

import "github.com/primlib/prim/math3d"

// Node is the interface for all elements of the scene tree.
type Node interface {
	// AsNodeBase returns the [NodeBase] for this node, which provides
	// the transform and child ownership.
	AsNodeBase() *NodeBase

	// Render draws this node and its subtree to the given sink.
	// accum is the composed transform of all ancestors; the node
	// composes accum * its local transform and passes that down.
	Render(r Renderer, accum math3d.Transform)

	// Destroy releases the node's resources and destroys its subtree,
	// children before the node itself. A node must be destroyed
	// exactly once.
	Destroy()
}

// NodeBase is the base scene tree element: a local transform
// specifying position and orientation, and a list of exclusively owned
// child nodes drawn relative to it. It does not draw anything itself.
type NodeBase struct {
	// Transform is the node's pose relative to its parent.
	Transform math3d.Transform

	// Children are the owned sub-nodes, drawn in stable attachment
	// order. Destroying this node destroys them.
	Children []Node
}

// NewGroup returns a new empty grouping node with an identity transform.
func NewGroup() *NodeBase {
	return &NodeBase{Transform: math3d.Identity()}
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// AddChild appends child to the node's children, transferring
// ownership. Most callers want the typed [Attach] instead.
func (nb *NodeBase) AddChild(child Node) {
	nb.Children = append(nb.Children, child)
}

// Render draws the children relative to this node.
func (nb *NodeBase) Render(r Renderer, accum math3d.Transform) {
	nb.RenderChildren(r, accum.Mul(nb.Transform))
}

// RenderChildren draws the children with the given composed transform.
func (nb *NodeBase) RenderChildren(r Renderer, m math3d.Transform) {
	for _, child := range nb.Children {
		child.Render(r, m)
	}
}

// Destroy destroys the subtree depth-first, children before the node.
func (nb *NodeBase) Destroy() {
	for _, child := range nb.Children {
		child.Destroy()
	}
	nb.Children = nil
}

// Attach attaches child to parent, transferring ownership, and returns
// the child, so that it can be configured immediately:
//
//	scene.Attach(sc, scene.NewSphere(0.5)).Color = math3d.Vec3(1, 0, 0)
//
// The parent only needs a [NodeBase]; a [Scene] can parent children but,
// not being a [Node] itself, can never be attached as a child.
func Attach[T Node](parent interface{ AsNodeBase() *NodeBase }, child T) T {
	parent.AsNodeBase().AddChild(child)
	return child
}

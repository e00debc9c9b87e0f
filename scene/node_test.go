// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primlib/prim/math3d"
)

// countingNode records how often it was rendered and destroyed.
type countingNode struct {
	NodeBase
	renders  int
	destroys int
}

func newCountingNode() *countingNode {
	return &countingNode{NodeBase: NodeBase{Transform: math3d.Identity()}}
}

func (n *countingNode) Render(r Renderer, accum math3d.Transform) {
	n.renders++
	n.NodeBase.Render(r, accum)
}

func (n *countingNode) Destroy() {
	n.destroys++
	n.NodeBase.Destroy()
}

func TestAttachOrder(t *testing.T) {
	root := NewGroup()
	a := Attach(root, newCountingNode())
	b := Attach(root, newCountingNode())
	c := Attach(root, newCountingNode())

	assert.Len(t, root.Children, 3)
	assert.Same(t, a, root.Children[0].(*countingNode))
	assert.Same(t, b, root.Children[1].(*countingNode))
	assert.Same(t, c, root.Children[2].(*countingNode))
}

func TestDestroyExactlyOnce(t *testing.T) {
	root := newCountingNode()
	child := Attach(root, newCountingNode())
	grandchild := Attach(child, newCountingNode())

	root.Destroy()
	assert.Equal(t, 1, root.destroys)
	assert.Equal(t, 1, child.destroys)
	assert.Equal(t, 1, grandchild.destroys)
	assert.Nil(t, root.Children)
	assert.Nil(t, child.Children)
}

func TestAttachToScene(t *testing.T) {
	sc := NewScene()
	sld := Attach(sc, NewBox(math3d.Vec3(1, 1, 1)))
	require.Len(t, sc.Children, 1)
	assert.Same(t, sld, sc.Children[0].(*Solid))
}

func TestRenderTraversal(t *testing.T) {
	root := newCountingNode()
	child := Attach(root, newCountingNode())
	grandchild := Attach(child, newCountingNode())
	sibling := Attach(root, newCountingNode())

	rec := newRecorder(100, 100)
	root.Render(rec, math3d.Identity())
	for _, n := range []*countingNode{root, child, grandchild, sibling} {
		assert.Equal(t, 1, n.renders)
	}
}

func TestRenderComposesTransforms(t *testing.T) {
	root := NewGroup()
	root.Transform = math3d.Translation(math3d.Vec3(1, 0, 0))

	mid := Attach(root, NewGroup())
	mid.Transform = math3d.Translation(math3d.Vec3(0, 2, 0))

	leaf := Attach(mid, NewBox(math3d.Vec3(1, 1, 1)))
	leaf.Transform = math3d.Translation(math3d.Vec3(0, 0, 3))

	rec := newRecorder(100, 100)
	root.Render(rec, math3d.Identity())

	// the solid pushes its full composed world transform
	assert.Len(t, rec.pushed, 1)
	got := rec.pushed[0].TranslationOf()
	assert.Equal(t, math3d.Vec3(1, 2, 3), got)
	assert.Equal(t, 1, rec.maxDepth)
}

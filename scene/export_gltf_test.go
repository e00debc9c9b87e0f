// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primlib/prim/math3d"
)

func TestExportGLTF(t *testing.T) {
	sc := NewScene()

	box := Attach(sc, NewBoxAt(math3d.Vec3(1, 2, 3), math3d.Vec3(0, 0, 5)))
	box.Color = math3d.Vec3(1, 0, 0)

	group := Attach(sc, NewGroup())
	Attach(group, NewSphere(1))
	Attach(sc, NewWireBox(math3d.Vec3(1, 1, 1)))

	path := filepath.Join(t.TempDir(), "scene.glb")
	require.NoError(t, sc.ExportGLTF(path))

	doc, err := gltf.Open(path)
	require.NoError(t, err)

	// box, group, sphere, wirebox
	require.Len(t, doc.Nodes, 4)
	require.Len(t, doc.Scenes, 1)
	assert.Len(t, doc.Scenes[0].Nodes, 3)

	// box and sphere carry meshes; the group and the wireframe box are
	// plain transform nodes
	assert.Len(t, doc.Meshes, 2)
	assert.Len(t, doc.Materials, 2)

	boxNode := doc.Nodes[doc.Scenes[0].Nodes[0]]
	require.NotNil(t, boxNode.Mesh)
	assert.Equal(t, [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 5, 1,
	}, boxNode.Matrix)

	boxPrim := doc.Meshes[*boxNode.Mesh].Primitives[0]
	require.NotNil(t, boxPrim.Material)
	color := doc.Materials[*boxPrim.Material].PBRMetallicRoughness.BaseColorFactor
	require.NotNil(t, color)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, *color)

	assert.Contains(t, boxPrim.Attributes, "POSITION")
	assert.Contains(t, boxPrim.Attributes, "NORMAL")
	require.NotNil(t, boxPrim.Indices)
	assert.Equal(t, uint32(36), doc.Accessors[*boxPrim.Indices].Count)

	groupNode := doc.Nodes[doc.Scenes[0].Nodes[1]]
	assert.Nil(t, groupNode.Mesh)
	require.Len(t, groupNode.Children, 1)
	sphereNode := doc.Nodes[groupNode.Children[0]]
	assert.NotNil(t, sphereNode.Mesh)
}

func TestExportGLTFArrow(t *testing.T) {
	sc := NewScene()
	ar := Attach(sc, NewArrow(2, 0.1, -1, -1))
	ar.Color = math3d.Vec3(0, 1, 0)

	path := filepath.Join(t.TempDir(), "arrow.glb")
	require.NoError(t, sc.ExportGLTF(path))

	doc, err := gltf.Open(path)
	require.NoError(t, err)

	// the arrow itself is a transform node; body and head carry meshes
	// with the propagated color
	require.Len(t, doc.Nodes, 3)
	assert.Len(t, doc.Meshes, 2)
	for _, mat := range doc.Materials {
		require.NotNil(t, mat.PBRMetallicRoughness.BaseColorFactor)
		assert.Equal(t, [4]float32{0, 1, 0, 1}, *mat.PBRMetallicRoughness.BaseColorFactor)
	}
}

func TestExportGLTFEmptyScene(t *testing.T) {
	sc := NewScene()
	path := filepath.Join(t.TempDir(), "empty.glb")
	require.NoError(t, sc.ExportGLTF(path))

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Nodes)
}

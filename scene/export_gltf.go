// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/primlib/prim/math3d"
)

// ExportGLTF writes the scene's content to the named file as binary
// glTF (.glb), preserving the node hierarchy and per-node transforms.
// Each solid becomes one mesh node with a base color material;
// wireframe-only solids and empty groups export as plain transform
// nodes. The scene's own transform is the camera view and is not
// exported.
func (sc *Scene) ExportGLTF(filename string) error {
	doc := gltf.NewDocument()

	for _, child := range sc.Children {
		ni, err := exportNode(doc, child)
		if err != nil {
			return err
		}
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, ni)
	}

	return gltf.SaveBinary(doc, filename)
}

// exportNode appends node's subtree to doc and returns its node index.
func exportNode(doc *gltf.Document, node Node) (uint32, error) {
	nb := node.AsNodeBase()

	gn := &gltf.Node{Matrix: nodeMatrix(nb.Transform)}
	if sld := exportSolid(node); sld != nil && sld.Mesh != nil && len(sld.Mesh.Index) > 0 {
		mi, err := exportMesh(doc, sld)
		if err != nil {
			return 0, err
		}
		gn.Mesh = gltf.Index(mi)
	}

	doc.Nodes = append(doc.Nodes, gn)
	ni := uint32(len(doc.Nodes) - 1)

	for _, child := range nb.Children {
		ci, err := exportNode(doc, child)
		if err != nil {
			return 0, err
		}
		gn.Children = append(gn.Children, ci)
	}
	return ni, nil
}

// nodeMatrix narrows a transform to the single-precision column-major
// matrix glTF nodes carry.
func nodeMatrix(t math3d.Transform) [16]float32 {
	var m [16]float32
	for i, v := range t.Data {
		m[i] = float32(v)
	}
	return m
}

// exportSolid returns the node's drawable solid, if any, with composite
// colors propagated the same way drawing propagates them.
func exportSolid(node Node) *Solid {
	switch n := node.(type) {
	case *Solid:
		return n
	case *Arrow:
		n.body.Color = n.Color
		n.head.Color = n.Color
		return &n.Solid
	}
	return nil
}

// exportMesh appends the solid's triangle batch and material to doc and
// returns the mesh index.
func exportMesh(doc *gltf.Document, sld *Solid) (uint32, error) {
	ms := sld.Mesh
	nv := ms.NumVertex()
	if len(ms.Normal) != len(ms.Vertex) {
		return 0, fmt.Errorf("gltf: mesh has %d normals for %d vertices", len(ms.Normal)/3, nv)
	}

	positions := make([][3]float32, nv)
	normals := make([][3]float32, nv)
	for i := 0; i < nv; i++ {
		positions[i] = [3]float32{ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2]}
		normals[i] = [3]float32{ms.Normal[i*3], ms.Normal[i*3+1], ms.Normal[i*3+2]}
	}

	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(doc, positions),
		"NORMAL":   modeler.WriteNormal(doc, normals),
	}
	if ms.HasTexCoords() {
		uvs := make([][2]float32, nv)
		for i := 0; i < nv; i++ {
			uvs[i] = [2]float32{ms.TexCoord[i*2], ms.TexCoord[i*2+1]}
		}
		attributes["TEXCOORD_0"] = modeler.WriteTextureCoord(doc, uvs)
	}
	indices := modeler.WriteIndices(doc, ms.Index)

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        fmt.Sprintf("color%d", len(doc.Materials)),
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{
				float32(sld.Color.X), float32(sld.Color.Y), float32(sld.Color.Z), 1,
			},
		},
	})
	material := uint32(len(doc.Materials) - 1)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indices),
			Attributes: attributes,
			Material:   gltf.Index(material),
		}},
	})
	return uint32(len(doc.Meshes) - 1), nil
}

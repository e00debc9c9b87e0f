// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"github.com/primlib/prim/math3d"
	"github.com/primlib/prim/shape"
)

// Solid is a drawable node: a [NodeBase] plus a color and an opaque
// pre-tessellated geometry batch built once at construction and
// replayed unchanged on every draw. The batch is exclusively owned and
// released exactly once at destruction.
type Solid struct {
	NodeBase

	// Color is the solid's color. The default is white.
	Color math3d.Vector3

	// Mesh is the geometry batch. Solids constructed from shapes are
	// aligned along the local Z axis and centered on the local origin.
	Mesh *shape.Mesh

	// Texture is an optional shared texture, retained on set and
	// released on destroy.
	Texture *Texture
}

// NewSolid returns a new white solid drawing the given geometry batch.
func NewSolid(ms *shape.Mesh) *Solid {
	return &Solid{
		NodeBase: NodeBase{Transform: math3d.Identity()},
		Color:    math3d.Vec3(1, 1, 1),
		Mesh:     ms,
	}
}

// SetTexture sets the solid's texture, retaining a reference.
// Any previous texture is released. A nil or invalid texture draws as
// a plain colored surface.
func (sld *Solid) SetTexture(tx *Texture) *Solid {
	if tx != nil {
		tx.Retain()
	}
	if sld.Texture != nil {
		sld.Texture.Release()
	}
	sld.Texture = tx
	return sld
}

// Render emits the solid's color and batch with the composed transform,
// then draws the children.
func (sld *Solid) Render(r Renderer, accum math3d.Transform) {
	m := accum.Mul(sld.Transform)

	r.SetColor(sld.Color)
	if sld.Mesh != nil {
		textured := sld.Texture.Valid() && sld.Mesh.HasTexCoords()
		if textured {
			r.BindTexture(sld.Texture)
		}

		r.PushMatrix(m)
		sld.emit(r, textured)
		r.PopMatrix()

		if textured {
			r.UnbindTexture()
		}
	}

	sld.RenderChildren(r, m)
}

// emit replays the batch into the sink.
func (sld *Solid) emit(r Renderer, textured bool) {
	ms := sld.Mesh
	if len(ms.Index) > 0 {
		r.BeginTriangles()
		for _, vi := range ms.Index {
			r.Normal(ms.Normal[vi*3], ms.Normal[vi*3+1], ms.Normal[vi*3+2])
			if textured {
				r.TexCoord(ms.TexCoord[vi*2], ms.TexCoord[vi*2+1])
			}
			r.Vertex(ms.Vertex[vi*3], ms.Vertex[vi*3+1], ms.Vertex[vi*3+2])
		}
		r.End()
	}
	if len(ms.Lines) > 0 {
		r.BeginLines()
		for i := 0; i+5 < len(ms.Lines); i += 6 {
			r.Vertex(ms.Lines[i], ms.Lines[i+1], ms.Lines[i+2])
			r.Vertex(ms.Lines[i+3], ms.Lines[i+4], ms.Lines[i+5])
		}
		r.End()
	}
}

// Destroy releases the batch and texture reference, then the subtree.
func (sld *Solid) Destroy() {
	sld.Mesh = nil
	if sld.Texture != nil {
		sld.Texture.Release()
		sld.Texture = nil
	}
	sld.NodeBase.Destroy()
}

////////////////////////////////////////////////////////////////////
//  Shape constructors

// NewBox returns a box solid with the given size along each dimension.
func NewBox(size math3d.Vector3) *Solid {
	return NewSolid(shape.NewBox(float32(size.X), float32(size.Y), float32(size.Z)))
}

// NewBoxAt returns a box solid with the given size, translated by offset.
func NewBoxAt(size, offset math3d.Vector3) *Solid {
	sld := NewBox(size)
	sld.Transform = math3d.Translation(offset)
	return sld
}

// NewBoxFromTo returns a box solid of the given thickness spanning
// start to end.
func NewBoxFromTo(start, end math3d.Vector3, thickness float64) *Solid {
	tf, length := math3d.Align(start, end)
	sld := NewBox(math3d.Vec3(thickness, thickness, length))
	sld.Transform = tf
	return sld
}

// NewWireBox returns a wireframe box solid with the given size.
func NewWireBox(size math3d.Vector3) *Solid {
	return NewSolid(shape.NewWireBox(float32(size.X), float32(size.Y), float32(size.Z)))
}

// NewWireBoxAt returns a wireframe box solid with the given size,
// translated by offset.
func NewWireBoxAt(size, offset math3d.Vector3) *Solid {
	sld := NewWireBox(size)
	sld.Transform = math3d.Translation(offset)
	return sld
}

// NewSphere returns a sphere solid with the given radius.
func NewSphere(radius float64) *Solid {
	return NewSolid(shape.NewSphere(float32(radius), shape.DefaultFacets))
}

// NewSphereAt returns a sphere solid with the given radius, translated
// by offset.
func NewSphereAt(radius float64, offset math3d.Vector3) *Solid {
	sld := NewSphere(radius)
	sld.Transform = math3d.Translation(offset)
	return sld
}

// NewCylinder returns a generalized cylinder solid of the given length
// along Z. endRadius may differ from radius; pass them equal for a
// straight cylinder.
func NewCylinder(length, radius, endRadius float64) *Solid {
	return NewSolid(shape.NewCylinder(float32(length), float32(radius), float32(endRadius), shape.DefaultFacets))
}

// NewCylinderFromTo returns a generalized cylinder solid spanning start
// to end.
func NewCylinderFromTo(start, end math3d.Vector3, radius, endRadius float64) *Solid {
	tf, length := math3d.Align(start, end)
	sld := NewCylinder(length, radius, endRadius)
	sld.Transform = tf
	return sld
}

// NewCone returns a cone solid: a cylinder ending in a point.
func NewCone(length, radius float64) *Solid {
	return NewCylinder(length, radius, 0)
}

// NewConeFromTo returns a cone solid spanning start to end.
func NewConeFromTo(start, end math3d.Vector3, radius float64) *Solid {
	return NewCylinderFromTo(start, end, radius, 0)
}

// NewCapsule returns a capsule solid: a cylinder of the given length
// along Z with hemispherical end caps.
func NewCapsule(length, radius float64) *Solid {
	return NewSolid(shape.NewCapsule(float32(length), float32(radius), shape.DefaultFacets))
}

// NewCapsuleFromTo returns a capsule solid spanning start to end.
func NewCapsuleFromTo(start, end math3d.Vector3, radius float64) *Solid {
	tf, length := math3d.Align(start, end)
	sld := NewCapsule(length, radius)
	sld.Transform = tf
	return sld
}

// NewPlane returns a textured-capable plane solid spanned by the two
// given vectors, with texture coordinates repeated texRepeatX by
// texRepeatY times.
func NewPlane(a, b math3d.Vector3, texRepeatX, texRepeatY float64) *Solid {
	return NewSolid(shape.NewPlane(a, b, float32(texRepeatX), float32(texRepeatY)))
}

// NewModel returns a solid drawing the binary STL model in the named
// file. A truncated file is reported to the log and yields the partial
// geometry read so far; an unreadable file yields a solid with no
// geometry, which draws as a no-op.
func NewModel(filename string) *Solid {
	ms, err := shape.OpenSTL(filename)
	if err != nil {
		slog.Error("scene.NewModel: loading model", "file", filename, "error", err)
	}
	return NewSolid(ms)
}

////////////////////////////////////////////////////////////////////
//  Arrow

// Arrow is a composite solid: a cylinder body with a cone head
// translated to the body's forward (+Z) end. The arrow itself draws no
// geometry; on every draw its color is propagated to both children, so
// recoloring the arrow after construction recolors both parts.
type Arrow struct {
	Solid

	body *Solid
	head *Solid
}

// NewArrow returns an arrow solid of the given length along Z.
// Pass headLength < 0 for the default of 6 times the radius, and
// headRadius < 0 for the default of a third of the head length.
func NewArrow(length, radius, headLength, headRadius float64) *Arrow {
	ar := &Arrow{}
	ar.NodeBase.Transform = math3d.Identity()
	ar.Color = math3d.Vec3(1, 1, 1)
	ar.make(length, radius, headLength, headRadius)
	return ar
}

// NewArrowFromTo returns an arrow solid spanning start to end, pointing
// at end. See [NewArrow] for the head defaults.
func NewArrowFromTo(start, end math3d.Vector3, radius, headLength, headRadius float64) *Arrow {
	tf, length := math3d.Align(start, end)
	ar := NewArrow(length, radius, headLength, headRadius)
	ar.Transform = tf
	return ar
}

func (ar *Arrow) make(length, radius, headLength, headRadius float64) {
	if headLength < 0 {
		headLength = radius * 6
	}
	if headRadius < 0 {
		headRadius = headLength / 3
	}
	ar.body = Attach(ar, NewCylinder(length, radius, radius))
	ar.head = Attach(ar, NewCone(headLength, headRadius))
	ar.head.Transform = math3d.Translation(math3d.Vec3(0, 0, length/2))
}

// Render propagates the arrow's color to the body and head, then draws
// them.
func (ar *Arrow) Render(r Renderer, accum math3d.Transform) {
	ar.body.Color = ar.Color
	ar.head.Color = ar.Color
	ar.Solid.Render(r, accum)
}

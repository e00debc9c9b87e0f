// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewBox(t *testing.T) {
	ms := NewBox(2, 4, 6)
	assert.Equal(t, 24, ms.NumVertex())
	assert.Equal(t, 12, ms.NumTri())
	assert.False(t, ms.HasTexCoords())

	// every corner lies on the box surface at half-extents
	want := math32.Sqrt(1 + 4 + 9)
	for i := 0; i < ms.NumVertex(); i++ {
		x, y, z := ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2]
		assert.Equal(t, float32(1), math32.Abs(x))
		assert.Equal(t, float32(2), math32.Abs(y))
		assert.Equal(t, float32(3), math32.Abs(z))
		assert.InDelta(t, want, math32.Sqrt(x*x+y*y+z*z), 1e-5)

		// outward unit axis-aligned normal
		nx, ny, nz := ms.Normal[i*3], ms.Normal[i*3+1], ms.Normal[i*3+2]
		assert.Equal(t, float32(1), math32.Abs(nx)+math32.Abs(ny)+math32.Abs(nz))
		assert.Greater(t, nx*x+ny*y+nz*z, float32(0))
	}
}

func TestNewBoxUnitCubeDiagonal(t *testing.T) {
	ms := NewBox(1, 1, 1)
	for i := 0; i < ms.NumVertex(); i++ {
		x, y, z := ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2]
		assert.InDelta(t, math32.Sqrt(3)/2, math32.Sqrt(x*x+y*y+z*z), 1e-6)
	}
}

func TestNewWireBox(t *testing.T) {
	ms := NewWireBox(2, 4, 6)
	assert.Equal(t, 12, ms.NumLines())
	assert.Equal(t, 0, ms.NumVertex())
	assert.Equal(t, 0, ms.NumTri())

	// every endpoint is a box corner
	for i := 0; i+2 < len(ms.Lines); i += 3 {
		assert.Equal(t, float32(1), math32.Abs(ms.Lines[i]))
		assert.Equal(t, float32(2), math32.Abs(ms.Lines[i+1]))
		assert.Equal(t, float32(3), math32.Abs(ms.Lines[i+2]))
	}

	// each corner meets exactly 3 edges
	ends := map[[3]float32]int{}
	for i := 0; i+2 < len(ms.Lines); i += 3 {
		ends[[3]float32{ms.Lines[i], ms.Lines[i+1], ms.Lines[i+2]}]++
	}
	assert.Len(t, ends, 8)
	for corner, n := range ends {
		assert.Equal(t, 3, n, "corner %v", corner)
	}
}

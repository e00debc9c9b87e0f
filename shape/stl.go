// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// stlRecordSize is the size of one binary STL triangle record:
// 12 little-endian float32 (normal + 3 vertices) and a 2-byte
// attribute count, which is ignored.
const stlRecordSize = 50

// ReadSTL reads a binary STL model from r: an 80-byte header (ignored),
// a little-endian uint32 triangle count, and that many 50-byte triangle
// records. Stored normals with zero magnitude are recomputed from the
// triangle winding.
//
// A truncated payload is recoverable: ReadSTL returns the triangles read
// so far together with a wrapped error, so partial geometry still
// renders. A well-formed model with triangle count 0 yields an empty
// but valid mesh.
func ReadSTL(r io.Reader) (*Mesh, error) {
	ms := &Mesh{}

	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return ms, errors.Wrap(err, "stl: reading header")
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return ms, errors.Wrap(err, "stl: reading triangle count")
	}

	var rec [stlRecordSize]byte
	for t := uint32(0); t < count; t++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return ms, errors.Wrapf(err, "stl: truncated at triangle %d of %d", t, count)
		}

		var f [12]float32
		for i := range f {
			f[i] = float32frombytes(rec[i*4 : i*4+4])
		}
		nx, ny, nz := f[0], f[1], f[2]
		if nx == 0 && ny == 0 && nz == 0 {
			// recompute from winding
			ux, uy, uz := f[6]-f[3], f[7]-f[4], f[8]-f[5]
			vx, vy, vz := f[9]-f[3], f[10]-f[4], f[11]-f[5]
			nx, ny, nz = normalize(uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx)
		}

		a := ms.AddVertex(f[3], f[4], f[5], nx, ny, nz)
		b := ms.AddVertex(f[6], f[7], f[8], nx, ny, nz)
		c := ms.AddVertex(f[9], f[10], f[11], nx, ny, nz)
		ms.AddTri(a, b, c)
	}

	return ms, nil
}

// OpenSTL reads a binary STL model from the named file. See [ReadSTL]
// for truncation semantics.
func OpenSTL(filename string) (*Mesh, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "stl: opening %s", filename)
	}
	defer f.Close()
	return ReadSTL(f)
}

func float32frombytes(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

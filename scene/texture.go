// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// Texture is a shared RGB texture image, loaded from a binary PPM
// (P6) file. Textures are reference counted so that many solids can
// share one image: each [Solid.SetTexture] retains a reference and
// each destroy releases one, and the pixel data is dropped when the
// count reaches zero.
//
// A texture that failed to load stays usable as an invalid no-op:
// solids carrying it draw untextured rather than failing.
type Texture struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// Pix holds the packed RGB pixel rows, top row first,
	// 3 bytes per pixel.
	Pix []byte

	refs  int
	valid bool

	// Handle is scratch for the rendering backend, typically a GPU
	// texture name. Zero means not uploaded.
	Handle uint32
}

// NewTexture returns a texture loaded from the named binary PPM file,
// with one reference held by the caller. Load failures are reported to
// the log and yield an invalid texture, never a nil one.
func NewTexture(filename string) *Texture {
	tx := &Texture{refs: 1}
	f, err := os.Open(filename)
	if err != nil {
		slog.Error("scene.NewTexture: opening texture", "file", filename, "error", err)
		return tx
	}
	defer f.Close()
	if err := tx.decodePPM(f); err != nil {
		slog.Error("scene.NewTexture: decoding texture", "file", filename, "error", err)
		tx.Pix = nil
		return tx
	}
	tx.valid = true
	return tx
}

// Valid reports whether the texture loaded successfully and still
// holds pixel data. Safe to call on a nil texture.
func (tx *Texture) Valid() bool {
	return tx != nil && tx.valid
}

// Retain adds a reference to the texture.
func (tx *Texture) Retain() {
	tx.refs++
}

// Release drops one reference. When the last reference is released the
// pixel data is dropped and the texture becomes invalid.
func (tx *Texture) Release() {
	tx.refs--
	if tx.refs == 0 {
		tx.Pix = nil
		tx.valid = false
	}
}

// decodePPM reads a binary PPM (P6) image: the "P6" magic, ASCII width,
// height and maximum value separated by whitespace and optional
// #-comments, a single whitespace byte, then packed binary RGB rows.
// Only a maximum value of 255 is supported.
func (tx *Texture) decodePPM(r io.Reader) error {
	br := bufio.NewReader(r)

	var magic string
	if err := readPPMToken(br, &magic); err != nil {
		return errors.Wrap(err, "ppm: reading magic")
	}
	if magic != "P6" {
		return errors.Errorf("ppm: bad magic %q, want P6", magic)
	}

	var width, height, maxval int
	for _, v := range []*int{&width, &height, &maxval} {
		var tok string
		if err := readPPMToken(br, &tok); err != nil {
			return errors.Wrap(err, "ppm: reading header")
		}
		for _, c := range []byte(tok) {
			if c < '0' || c > '9' {
				return errors.Errorf("ppm: bad header token %q", tok)
			}
			*v = *v*10 + int(c-'0')
		}
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("ppm: bad dimensions %dx%d", width, height)
	}
	if maxval != 255 {
		return errors.Errorf("ppm: unsupported maximum value %d, want 255", maxval)
	}

	pix := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, pix); err != nil {
		return errors.Wrapf(err, "ppm: reading %dx%d pixel data", width, height)
	}

	tx.Width = width
	tx.Height = height
	tx.Pix = pix
	return nil
}

// readPPMToken reads the next whitespace-delimited header token,
// skipping #-comments, which run to end of line.
func readPPMToken(br *bufio.Reader, tok *string) error {
	var buf []byte
	inComment := false
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				*tok = string(buf)
				return nil
			}
			return err
		}
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			}
		case c == '#':
			inComment = true
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			if len(buf) > 0 {
				*tok = string(buf)
				return nil
			}
		default:
			buf = append(buf, c)
		}
	}
}

// Copyright (c) 2026, The Prim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTextureFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tx.ppm")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestNewTexture(t *testing.T) {
	data := append([]byte("P6\n2 2\n255\n"),
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	)
	tx := NewTexture(writeTextureFile(t, data))
	assert.True(t, tx.Valid())
	assert.Equal(t, 2, tx.Width)
	assert.Equal(t, 2, tx.Height)
	assert.Len(t, tx.Pix, 12)
	assert.Equal(t, []byte{255, 0, 0}, tx.Pix[:3])
}

func TestNewTextureComments(t *testing.T) {
	data := append([]byte("P6 # rgb image\n# size\n1 1\n# depth\n255\n"), 9, 8, 7)
	tx := NewTexture(writeTextureFile(t, data))
	assert.True(t, tx.Valid())
	assert.Equal(t, []byte{9, 8, 7}, tx.Pix)
}

func TestNewTextureErrors(t *testing.T) {
	cases := map[string][]byte{
		"bad magic":     append([]byte("P5\n1 1\n255\n"), 1, 2, 3),
		"bad maxval":    append([]byte("P6\n1 1\n65535\n"), 1, 2, 3),
		"bad dimension": append([]byte("P6\n0 1\n255\n"), 1, 2, 3),
		"junk header":   []byte("P6\n1 one\n255\n"),
		"short pixels":  append([]byte("P6\n2 2\n255\n"), 1, 2, 3),
		"empty":         {},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			tx := NewTexture(writeTextureFile(t, data))
			require.NotNil(t, tx)
			assert.False(t, tx.Valid())
			assert.Nil(t, tx.Pix)
		})
	}

	tx := NewTexture(filepath.Join(t.TempDir(), "missing.ppm"))
	require.NotNil(t, tx)
	assert.False(t, tx.Valid())
}

func TestTextureRefCounting(t *testing.T) {
	data := append([]byte("P6\n1 1\n255\n"), 1, 2, 3)
	tx := NewTexture(writeTextureFile(t, data))

	tx.Retain()
	tx.Retain()
	tx.Release()
	tx.Release()
	assert.True(t, tx.Valid(), "live references must keep the pixels")

	tx.Release() // caller's reference
	assert.False(t, tx.Valid())
	assert.Nil(t, tx.Pix)
}

func TestTextureValidNilSafe(t *testing.T) {
	var tx *Texture
	assert.False(t, tx.Valid())
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"encoding/binary"
	"fmt"
	"image/color"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/swr"
)

// RowAlignment is the byte alignment of each Texture row.
const RowAlignment = 64

// Texture is a streaming texture. Lock hands out a staging buffer whose rows
// are padded to RowAlignment bytes; Unlock publishes the staging buffer as
// the texture contents and bumps the version.
type Texture struct {
	width, height int
	pitch         int
	format        swr.PixelFormat

	staging []byte
	pixels  []byte
	version uint64

	locked bool
	closed bool
}

// NewTexture creates a streaming texture packed as format.
func NewTexture(width, height int, format swr.PixelFormat) *Texture {
	width, height = clampSize(width, height)
	pitch := (width*4 + RowAlignment - 1) / RowAlignment * RowAlignment
	return &Texture{
		width:   width,
		height:  height,
		pitch:   pitch,
		format:  format,
		staging: make([]byte, pitch*height),
		pixels:  make([]byte, pitch*height),
	}
}

// NewTextureFormat creates a streaming texture for an 8-bit color texel
// format.
func NewTextureFormat(width, height int, format gputypes.TextureFormat) (*Texture, error) {
	pf, ok := swr.PixelFormatFor(format)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return NewTexture(width, height, pf), nil
}

// Size returns the texture dimensions.
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// PixelFormat returns the packing of the texture.
func (t *Texture) PixelFormat() swr.PixelFormat {
	return t.format
}

// Pitch returns the number of bytes per row, including padding.
func (t *Texture) Pitch() int {
	return t.pitch
}

// Lock returns the staging buffer. The contents of the previous frame are
// preserved.
func (t *Texture) Lock() ([]byte, int, error) {
	if t.closed {
		return nil, 0, ErrClosed
	}
	if t.locked {
		return nil, 0, ErrLocked
	}
	t.locked = true
	return t.staging, t.pitch, nil
}

// Unlock publishes the staging buffer. Calling Unlock without a Lock does
// nothing.
func (t *Texture) Unlock() {
	if !t.locked {
		return
	}
	t.locked = false
	copy(t.pixels, t.staging)
	t.version++
}

// Version returns the number of frames published.
func (t *Texture) Version() uint64 {
	return t.version
}

// Pixels returns the published texture bytes, pitch bytes per row.
func (t *Texture) Pixels() []byte {
	return t.pixels
}

// RGBAAt unpacks the published pixel at (x, y). Out of range pixels are
// transparent black.
func (t *Texture) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return color.RGBA{}
	}
	p := binary.LittleEndian.Uint32(t.pixels[y*t.pitch+x*4:])
	f := t.format
	return color.RGBA{
		R: uint8((p & f.Rmask) >> f.Rshift),
		G: uint8((p & f.Gmask) >> f.Gshift),
		B: uint8((p & f.Bmask) >> f.Bshift),
		A: uint8((p & f.Amask) >> f.Ashift),
	}
}

// Close releases the texture.
func (t *Texture) Close() error {
	t.closed = true
	t.staging = nil
	return nil
}

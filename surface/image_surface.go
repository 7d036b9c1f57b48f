// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/png"
	"os"

	"github.com/gogpu/swr"
)

// ImageSurface is a CPU surface backed by an *image.RGBA.
//
// Pixels are packed as swr.PixelFormatABGR8888, which is the byte order of
// image.RGBA, so Present writes straight into the image.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	if err := dev.Present(s); err != nil {
//	    return err
//	}
//	err := s.SavePNG("frame.png")
type ImageSurface struct {
	img    *image.RGBA
	locked bool

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a surface with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width, height = clampSize(width, height)
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Size returns the surface dimensions.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// PixelFormat returns swr.PixelFormatABGR8888.
func (s *ImageSurface) PixelFormat() swr.PixelFormat {
	return swr.PixelFormatABGR8888
}

// Lock returns the image pixels and stride.
func (s *ImageSurface) Lock() ([]byte, int, error) {
	if s.closed {
		return nil, 0, ErrClosed
	}
	if s.locked {
		return nil, 0, ErrLocked
	}
	s.locked = true
	return s.img.Pix, s.img.Stride, nil
}

// Unlock ends a Lock.
func (s *ImageSurface) Unlock() {
	s.locked = false
}

// Image returns the underlying image. It is not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// SavePNG saves the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases the surface.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/swr"
)

// Surface is a presentation target that can be closed.
type Surface interface {
	swr.Surface

	// Close releases the surface. Lock fails afterwards.
	Close() error
}

// Options configures surface creation through Open.
type Options struct {
	// Width and Height are the surface dimensions in pixels.
	Width  int
	Height int

	// Format is the requested texel format. Zero selects
	// gputypes.TextureFormatRGBA8Unorm.
	Format gputypes.TextureFormat
}

func (o Options) format() gputypes.TextureFormat {
	if o.Format == 0 {
		return gputypes.TextureFormatRGBA8Unorm
	}
	return o.Format
}

// Errors.
var (
	// ErrClosed is returned by Lock after Close.
	ErrClosed = errors.New("surface: closed")

	// ErrLocked is returned by Lock while the surface is already locked.
	ErrLocked = errors.New("surface: already locked")

	// ErrUnsupportedFormat is returned for texel formats without a packed
	// 32-bit layout.
	ErrUnsupportedFormat = errors.New("surface: unsupported format")
)

func clampSize(width, height int) (int, int) {
	return max(width, 1), max(height, 1)
}

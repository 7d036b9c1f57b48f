// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides presentation targets for swr.Device.
//
// A surface is locked, written row by row and unlocked by Device.Present.
// Two implementations are provided:
//
//   - ImageSurface wraps an *image.RGBA and can be saved as PNG
//   - Texture is a streaming texture with padded rows and any packed format
//
// # Backends
//
// Each implementation is also a named backend, so callers can pick one from
// configuration and check the texel formats it presents:
//
//	s, err := surface.Open("image", surface.Options{Width: 800, Height: 600})
//	// or the first backend that presents BGRA:
//	s, err := surface.Open("", surface.Options{
//	    Width: 800, Height: 600, Format: gputypes.TextureFormatBGRA8Unorm,
//	})
package surface

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/gputypes"
)

// Backend is a named surface implementation.
type Backend struct {
	// Name selects the backend in Open.
	Name string

	// Formats lists the texel formats the backend can present.
	Formats []gputypes.TextureFormat

	create func(width, height int, format gputypes.TextureFormat) (Surface, error)
}

// Supports reports whether the backend accepts format.
func (b Backend) Supports(format gputypes.TextureFormat) bool {
	return slices.Contains(b.Formats, format)
}

var backends = []Backend{
	{
		Name:    "image",
		Formats: []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm},
		create: func(width, height int, _ gputypes.TextureFormat) (Surface, error) {
			return NewImageSurface(width, height), nil
		},
	},
	{
		Name: "texture",
		Formats: []gputypes.TextureFormat{
			gputypes.TextureFormatRGBA8Unorm,
			gputypes.TextureFormatBGRA8Unorm,
		},
		create: func(width, height int, format gputypes.TextureFormat) (Surface, error) {
			return NewTextureFormat(width, height, format)
		},
	},
}

// Backends returns the built-in backends in lookup order.
func Backends() []Backend {
	return slices.Clone(backends)
}

// Lookup returns the backend called name.
func Lookup(name string) (Backend, bool) {
	i := slices.IndexFunc(backends, func(b Backend) bool { return b.Name == name })
	if i < 0 {
		return Backend{}, false
	}
	return backends[i], true
}

// Open creates a surface with the named backend. An empty name picks the
// first backend that supports opts.Format.
func Open(name string, opts Options) (Surface, error) {
	format := opts.format()
	if name == "" {
		for _, b := range backends {
			if b.Supports(format) {
				return b.create(opts.Width, opts.Height, format)
			}
		}
		return nil, fmt.Errorf("%w: no backend presents %v", ErrUnsupportedFormat, format)
	}

	b, ok := Lookup(name)
	if !ok {
		return nil, &UnknownBackendError{Name: name}
	}
	if !b.Supports(format) {
		return nil, fmt.Errorf("%w: %s backend cannot present %v", ErrUnsupportedFormat, name, format)
	}
	return b.create(opts.Width, opts.Height, format)
}

// UnknownBackendError is returned by Open for a name no backend has.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name
	}
	return fmt.Sprintf("surface: unknown backend %q (have %s)", e.Name, strings.Join(names, ", "))
}

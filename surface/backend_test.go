// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBackends(t *testing.T) {
	got := Backends()
	if len(got) != 2 || got[0].Name != "image" || got[1].Name != "texture" {
		t.Fatalf("Backends() = %v, want image then texture", got)
	}

	got[0].Name = "changed"
	if b, _ := Lookup("image"); b.Name != "image" {
		t.Error("Backends() should return a copy")
	}
}

func TestBackendSupports(t *testing.T) {
	tests := []struct {
		backend string
		format  gputypes.TextureFormat
		want    bool
	}{
		{"image", gputypes.TextureFormatRGBA8Unorm, true},
		{"image", gputypes.TextureFormatBGRA8Unorm, false},
		{"texture", gputypes.TextureFormatRGBA8Unorm, true},
		{"texture", gputypes.TextureFormatBGRA8Unorm, true},
		{"texture", gputypes.TextureFormatDepth24PlusStencil8, false},
	}

	for _, tt := range tests {
		b, ok := Lookup(tt.backend)
		if !ok {
			t.Fatalf("Lookup(%s) failed", tt.backend)
		}
		if got := b.Supports(tt.format); got != tt.want {
			t.Errorf("%s.Supports(%v) = %v, want %v", tt.backend, tt.format, got, tt.want)
		}
	}
}

func TestOpen(t *testing.T) {
	s, err := Open("image", Options{Width: 16, Height: 8})
	if err != nil {
		t.Fatalf("Open(image) error = %v", err)
	}
	defer s.Close()
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("Open(image) = %T, want *ImageSurface", s)
	}
	if w, h := s.Size(); w != 16 || h != 8 {
		t.Errorf("Size() = %dx%d, want 16x8", w, h)
	}

	tex, err := Open("texture", Options{Width: 4, Height: 4, Format: gputypes.TextureFormatBGRA8Unorm})
	if err != nil {
		t.Fatalf("Open(texture, BGRA8Unorm) error = %v", err)
	}
	if got := tex.PixelFormat().Name; got != "ARGB8888" {
		t.Errorf("PixelFormat() = %s, want ARGB8888", got)
	}
}

func TestOpenPicksFirstSupportingBackend(t *testing.T) {
	tests := []struct {
		format gputypes.TextureFormat
		want   string
	}{
		{0, "image"},
		{gputypes.TextureFormatRGBA8Unorm, "image"},
		{gputypes.TextureFormatBGRA8Unorm, "texture"},
	}

	for _, tt := range tests {
		s, err := Open("", Options{Width: 2, Height: 2, Format: tt.format})
		if err != nil {
			t.Fatalf("Open(%v) error = %v", tt.format, err)
		}
		var got string
		switch s.(type) {
		case *ImageSurface:
			got = "image"
		case *Texture:
			got = "texture"
		}
		if got != tt.want {
			t.Errorf("Open(%v) = %T, want %s backend", tt.format, s, tt.want)
		}
	}
}

func TestOpenErrors(t *testing.T) {
	var unknown *UnknownBackendError
	if _, err := Open("gpu", Options{}); !errors.As(err, &unknown) {
		t.Errorf("Open(gpu) error = %v, want UnknownBackendError", err)
	} else if unknown.Name != "gpu" {
		t.Errorf("Name = %q, want gpu", unknown.Name)
	}

	_, err := Open("image", Options{Format: gputypes.TextureFormatBGRA8Unorm})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open(image, BGRA8Unorm) error = %v, want ErrUnsupportedFormat", err)
	}

	_, err = Open("", Options{Format: gputypes.TextureFormatDepth24PlusStencil8})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open(depth format) error = %v, want ErrUnsupportedFormat", err)
	}
}

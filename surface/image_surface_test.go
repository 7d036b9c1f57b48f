// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/swr"
	"golang.org/x/image/math/f32"
)

// TestNewImageSurface tests surface creation.
func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	defer s.Close()

	w, h := s.Size()
	if w != 100 || h != 50 {
		t.Errorf("Size() = %dx%d, want 100x50", w, h)
	}
	if s.PixelFormat() != swr.PixelFormatABGR8888 {
		t.Errorf("PixelFormat() = %v, want ABGR8888", s.PixelFormat())
	}
}

// TestNewImageSurfaceInvalidSize tests handling of invalid dimensions.
func TestNewImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface(0, -3)
	defer s.Close()

	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("expected 1x1, got %dx%d", w, h)
	}
}

// TestImageSurfacePresent tests presenting a device frame into the image.
func TestImageSurfacePresent(t *testing.T) {
	dev := swr.New(8, 4, swr.WithClearColor(f32.Vec4{1, 0, 0, 1}))
	s := NewImageSurface(8, 4)
	defer s.Close()

	if err := dev.Present(s); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	want := color.RGBA{R: 255, A: 255}
	if got := s.Image().RGBAAt(7, 3); got != want {
		t.Errorf("pixel (7, 3) = %v, want %v", got, want)
	}
}

// TestImageSurfaceLockState tests lock bookkeeping.
func TestImageSurfaceLockState(t *testing.T) {
	s := NewImageSurface(2, 2)

	if _, _, err := s.Lock(); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	if _, _, err := s.Lock(); !errors.Is(err, ErrLocked) {
		t.Errorf("second Lock() error = %v, want ErrLocked", err)
	}
	s.Unlock()

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, _, err := s.Lock(); !errors.Is(err, ErrClosed) {
		t.Errorf("Lock() after Close error = %v, want ErrClosed", err)
	}

	dev := swr.New(2, 2)
	if err := dev.Present(s); !errors.Is(err, swr.ErrSurfaceLock) || !errors.Is(err, ErrClosed) {
		t.Errorf("Present() on closed surface error = %v", err)
	}
}

// TestImageSurfaceSavePNG tests PNG export.
func TestImageSurfaceSavePNG(t *testing.T) {
	dev := swr.New(3, 2, swr.WithClearColor(f32.Vec4{0, 1, 0, 1}))
	s := NewImageSurface(3, 2)
	if err := dev.Present(s); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded bounds = %v, want 3x2", img.Bounds())
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0 || g != 0xFFFF || b != 0 || a != 0xFFFF {
		t.Errorf("decoded pixel = %v %v %v %v, want opaque green", r, g, b, a)
	}
}

// TestImageSurfaceSavePNGBadPath tests that file errors are reported.
func TestImageSurfaceSavePNGBadPath(t *testing.T) {
	s := NewImageSurface(1, 1)
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

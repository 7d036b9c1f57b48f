package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/swr"
)

var errScreenClosed = errors.New("screen surface closed")

// screenSurface is a streaming texture backed by an ebiten image. Present
// writes into a CPU staging buffer and Unlock uploads it.
type screenSurface struct {
	width, height int
	pixels        []byte
	img           *ebiten.Image
}

func newScreenSurface(width, height int) *screenSurface {
	return &screenSurface{
		width:  width,
		height: height,
		pixels: make([]byte, 4*width*height),
		img:    ebiten.NewImage(width, height),
	}
}

func (s *screenSurface) Size() (int, int) {
	return s.width, s.height
}

// PixelFormat is RGBA byte order, which WritePixels expects.
func (s *screenSurface) PixelFormat() swr.PixelFormat {
	return swr.PixelFormatABGR8888
}

func (s *screenSurface) Lock() ([]byte, int, error) {
	if s.pixels == nil {
		return nil, 0, errScreenClosed
	}
	return s.pixels, 4 * s.width, nil
}

func (s *screenSurface) Unlock() {
	s.img.WritePixels(s.pixels)
}

func (s *screenSurface) Close() {
	s.img.Deallocate()
	s.pixels = nil
}

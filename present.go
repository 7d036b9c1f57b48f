package swr

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// PixelFormat describes a 32-bit packed pixel. Each channel is converted to
// 8 bits, shifted into place and masked. Packed pixels are stored
// little-endian.
type PixelFormat struct {
	Name string

	Rmask, Gmask, Bmask, Amask     uint32
	Rshift, Gshift, Bshift, Ashift uint8
}

var (
	// PixelFormatRGBA8888 stores R in the most significant byte.
	PixelFormatRGBA8888 = PixelFormat{
		Name:  "RGBA8888",
		Rmask: 0xFF000000, Gmask: 0x00FF0000, Bmask: 0x0000FF00, Amask: 0x000000FF,
		Rshift: 24, Gshift: 16, Bshift: 8, Ashift: 0,
	}

	// PixelFormatABGR8888 stores bytes in R, G, B, A memory order, matching
	// image.RGBA and gputypes.TextureFormatRGBA8Unorm.
	PixelFormatABGR8888 = PixelFormat{
		Name:  "ABGR8888",
		Rmask: 0x000000FF, Gmask: 0x0000FF00, Bmask: 0x00FF0000, Amask: 0xFF000000,
		Rshift: 0, Gshift: 8, Bshift: 16, Ashift: 24,
	}

	// PixelFormatARGB8888 stores bytes in B, G, R, A memory order, matching
	// gputypes.TextureFormatBGRA8Unorm.
	PixelFormatARGB8888 = PixelFormat{
		Name:  "ARGB8888",
		Rmask: 0x00FF0000, Gmask: 0x0000FF00, Bmask: 0x000000FF, Amask: 0xFF000000,
		Rshift: 16, Gshift: 8, Bshift: 0, Ashift: 24,
	}
)

// PixelFormatFor returns the packed format matching an 8-bit texture format.
func PixelFormatFor(format gputypes.TextureFormat) (PixelFormat, bool) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		return PixelFormatABGR8888, true
	case gputypes.TextureFormatBGRA8Unorm:
		return PixelFormatARGB8888, true
	default:
		return PixelFormat{}, false
	}
}

// Pack clamps each channel of c to [0, 1], scales it to [0, 255] and packs
// the result.
func (f PixelFormat) Pack(c f32.Vec4) uint32 {
	return uint32(unorm8(c[0]))<<f.Rshift&f.Rmask |
		uint32(unorm8(c[1]))<<f.Gshift&f.Gmask |
		uint32(unorm8(c[2]))<<f.Bshift&f.Bmask |
		uint32(unorm8(c[3]))<<f.Ashift&f.Amask
}

func (f PixelFormat) String() string {
	return f.Name
}

func unorm8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Surface is a presentation target that can be locked for CPU writes, such
// as a streaming texture.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// PixelFormat returns the packing of the locked pixels.
	PixelFormat() PixelFormat

	// Lock returns writable pixel memory and the number of bytes per row.
	Lock() (pixels []byte, pitch int, err error)

	// Unlock publishes the pixels written since Lock.
	Unlock()
}

// Present copies the color buffer into s, converting every pixel to the
// surface's packed format row by row. Only the region covered by both the
// frame and the surface is written.
//
// If s cannot be locked the failure is logged, the frame is dropped and an
// error wrapping ErrSurfaceLock is returned.
func (d *Device) Present(s Surface) error {
	pixels, pitch, err := s.Lock()
	if err != nil {
		Logger().Warn("swr: surface lock failed, frame dropped", "err", err)
		return fmt.Errorf("%w: %w", ErrSurfaceLock, err)
	}
	defer s.Unlock()

	w, h := s.Size()
	d.writePixels(pixels, pitch, min(w, d.width), min(h, d.height), s.PixelFormat())
	return nil
}

// Image returns a snapshot of the color buffer as an 8-bit RGBA image,
// converted the same way as Present.
func (d *Device) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	d.writePixels(img.Pix, img.Stride, d.width, d.height, PixelFormatABGR8888)
	return img
}

func (d *Device) writePixels(dst []byte, pitch, w, h int, f PixelFormat) {
	for y := 0; y < h; y++ {
		row := dst[y*pitch:]
		src := d.color[y*d.width : y*d.width+w]
		for x, c := range src {
			binary.LittleEndian.PutUint32(row[x*4:], f.Pack(c))
		}
	}
}

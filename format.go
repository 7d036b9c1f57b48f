package swr

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// BufferFormat is the logical format tag of a Buffer.
// Index buffers must use BufferFormatR16Uint or BufferFormatR32Uint.
type BufferFormat uint8

const (
	BufferFormatUnknown BufferFormat = iota
	BufferFormatR8G8B8A8Unorm
	BufferFormatD24UnormS8Uint
	BufferFormatR16Uint
	BufferFormatR32Uint
)

var bufferFormatNames = [...]string{
	BufferFormatUnknown:        "Unknown",
	BufferFormatR8G8B8A8Unorm:  "R8G8B8A8_UNORM",
	BufferFormatD24UnormS8Uint: "D24_UNORM_S8_UINT",
	BufferFormatR16Uint:        "R16_UINT",
	BufferFormatR32Uint:        "R32_UINT",
}

// String returns the DXGI-style name of the format.
func (f BufferFormat) String() string {
	if int(f) < len(bufferFormatNames) {
		return bufferFormatNames[f]
	}
	return fmt.Sprintf("BufferFormat(%d)", uint8(f))
}

// IndexFormat reports the index format for the two integer formats usable
// as index buffers.
func (f BufferFormat) IndexFormat() (gputypes.IndexFormat, bool) {
	switch f {
	case BufferFormatR16Uint:
		return gputypes.IndexFormatUint16, true
	case BufferFormatR32Uint:
		return gputypes.IndexFormatUint32, true
	default:
		return 0, false
	}
}

// Semantic names the role of a vertex attribute independent of its byte offset.
type Semantic uint8

const (
	Position0 Semantic = iota
	Color0
	TexCoord0
	Normal0
)

var semanticNames = [...]string{
	Position0: "POSITION0",
	Color0:    "COLOR0",
	TexCoord0: "TEXCOORD0",
	Normal0:   "NORMAL0",
}

func (s Semantic) String() string {
	if int(s) < len(semanticNames) {
		return semanticNames[s]
	}
	return fmt.Sprintf("Semantic(%d)", uint8(s))
}

// vertexFormatComponents returns the number of packed float32 components of
// a vertex format, or 0 if the format is not a float format.
func vertexFormatComponents(f gputypes.VertexFormat) int {
	switch f {
	case gputypes.VertexFormatFloat32:
		return 1
	case gputypes.VertexFormatFloat32x2:
		return 2
	case gputypes.VertexFormatFloat32x3:
		return 3
	case gputypes.VertexFormatFloat32x4:
		return 4
	default:
		return 0
	}
}

// Viewport is the screen rectangle NDC coordinates are mapped onto.
// MinDepth and MaxDepth are carried for completeness; depth is tested in
// NDC z.
type Viewport struct {
	X, Y          int
	Width, Height int
	MinDepth      float32
	MaxDepth      float32
}

// Valid reports whether the viewport has a positive area. The rasterizer
// falls back to the full frame for invalid viewports.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// FullViewport returns a viewport covering a width x height frame with the
// depth range [0, 1].
func FullViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height, MaxDepth: 1}
}

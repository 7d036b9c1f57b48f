package swr

import (
	"unsafe"

	"golang.org/x/image/math/f32"
)

// VSOutput is the per-vertex result of the vertex stage.
type VSOutput struct {
	// Position is the homogeneous clip-space position.
	Position f32.Vec4
	// Color is interpolated perspective-correctly across the triangle.
	Color f32.Vec3
}

// PSInput holds the interpolated attributes of one covered sample.
type PSInput struct {
	Color f32.Vec3
	// Barycentric holds the screen-space weights of the three vertices.
	Barycentric f32.Vec3
	Depth       float32
}

// VertexShader transforms one vertex record into clip space.
type VertexShader interface {
	ShadeVertex(in *VertexInputView, ctx *ShaderContext) VSOutput
}

// VertexShaderFunc adapts a function to the VertexShader interface.
type VertexShaderFunc func(in *VertexInputView, ctx *ShaderContext) VSOutput

// ShadeVertex calls f(in, ctx).
func (f VertexShaderFunc) ShadeVertex(in *VertexInputView, ctx *ShaderContext) VSOutput {
	return f(in, ctx)
}

// PixelShader computes the RGBA color of one covered sample.
type PixelShader interface {
	ShadePixel(in *PSInput, ctx *ShaderContext) f32.Vec4
}

// PixelShaderFunc adapts a function to the PixelShader interface.
type PixelShaderFunc func(in *PSInput, ctx *ShaderContext) f32.Vec4

// ShadePixel calls f(in, ctx).
func (f PixelShaderFunc) ShadePixel(in *PSInput, ctx *ShaderContext) f32.Vec4 {
	return f(in, ctx)
}

// ShaderContext exposes the constant buffers bound to the vertex and pixel
// stages. It references the stage slot arrays; it does not copy them.
type ShaderContext struct {
	vs *[]*Buffer
	ps *[]*Buffer
}

func slotBuffer(slots *[]*Buffer, slot int) *Buffer {
	if slots == nil || slot < 0 || slot >= len(*slots) {
		return nil
	}
	return (*slots)[slot]
}

// VSBuffer returns the buffer bound to a vertex-stage slot, or nil.
func (c *ShaderContext) VSBuffer(slot int) *Buffer {
	return slotBuffer(c.vs, slot)
}

// PSBuffer returns the buffer bound to a pixel-stage slot, or nil.
func (c *ShaderContext) PSBuffer(slot int) *Buffer {
	return slotBuffer(c.ps, slot)
}

func constant[T any](b *Buffer) *T {
	var zero T
	if b == nil || len(b.data) == 0 || len(b.data) < int(unsafe.Sizeof(zero)) {
		return nil
	}
	return (*T)(unsafe.Pointer(&b.data[0]))
}

// VSConstant returns the vertex-stage constant buffer at slot viewed as *T,
// or nil if the slot is unbound, out of range or smaller than T. The
// buffer's element size is not checked against T.
func VSConstant[T any](ctx *ShaderContext, slot int) *T {
	return constant[T](ctx.VSBuffer(slot))
}

// PSConstant is the pixel-stage counterpart of VSConstant.
func PSConstant[T any](ctx *ShaderContext, slot int) *T {
	return constant[T](ctx.PSBuffer(slot))
}

package swr

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// DefaultConstantBufferSlots is the initial number of constant buffer slots
// of the vertex and pixel stages.
const DefaultConstantBufferSlots = 8

// IAStage is the input assembler state: where vertices come from and how
// they are decoded and grouped into primitives.
type IAStage struct {
	vertexBuffer *Buffer
	indexBuffer  *Buffer
	inputLayout  *InputLayout
	topology     gputypes.PrimitiveTopology
}

// SetVertexBuffer binds the vertex source.
func (s *IAStage) SetVertexBuffer(b *Buffer) {
	s.vertexBuffer = b
}

// SetIndexBuffer binds the index source used by DrawIndexed.
func (s *IAStage) SetIndexBuffer(b *Buffer) {
	s.indexBuffer = b
}

// SetInputLayout binds the layout used to decode vertex records.
func (s *IAStage) SetInputLayout(l *InputLayout) {
	s.inputLayout = l
}

// SetPrimitiveTopology sets how vertices are grouped. Only
// gputypes.PrimitiveTopologyTriangleList can be drawn.
func (s *IAStage) SetPrimitiveTopology(t gputypes.PrimitiveTopology) {
	s.topology = t
}

// VertexBuffer returns the bound vertex buffer, or nil.
func (s *IAStage) VertexBuffer() *Buffer {
	return s.vertexBuffer
}

// IndexBuffer returns the bound index buffer, or nil.
func (s *IAStage) IndexBuffer() *Buffer {
	return s.indexBuffer
}

// InputLayout returns the bound input layout, or nil.
func (s *IAStage) InputLayout() *InputLayout {
	return s.inputLayout
}

// PrimitiveTopology returns the current primitive topology.
func (s *IAStage) PrimitiveTopology() gputypes.PrimitiveTopology {
	return s.topology
}

// setSlot binds b to slot, growing slots on demand.
func setSlot(slots *[]*Buffer, slot int, b *Buffer) {
	if slot < 0 {
		panic(fmt.Sprintf("swr: negative constant buffer slot %d", slot))
	}
	if slot >= len(*slots) {
		*slots = append(*slots, make([]*Buffer, slot+1-len(*slots))...)
	}
	(*slots)[slot] = b
}

// VSStage is the vertex shader stage state.
type VSStage struct {
	shader          VertexShader
	constantBuffers []*Buffer
}

// SetVertexShader replaces the bound vertex shader.
func (s *VSStage) SetVertexShader(vs VertexShader) {
	s.shader = vs
}

// VertexShader returns the bound vertex shader.
func (s *VSStage) VertexShader() VertexShader {
	return s.shader
}

// SetConstantBuffer binds b to slot, growing the slot array if needed.
// Passing nil unbinds the slot.
func (s *VSStage) SetConstantBuffer(slot int, b *Buffer) {
	setSlot(&s.constantBuffers, slot, b)
}

// ConstantBufferSlots returns the current size of the slot array.
func (s *VSStage) ConstantBufferSlots() int {
	return len(s.constantBuffers)
}

// RSStage is the rasterizer state.
type RSStage struct {
	viewport     Viewport
	cullBackface bool
	wireframe    bool
}

// SetViewport sets the target rectangle. A viewport without positive width
// and height selects the full frame.
func (s *RSStage) SetViewport(vp Viewport) {
	s.viewport = vp
}

// SetCullBackface enables skipping triangles with negative screen-space area.
func (s *RSStage) SetCullBackface(cull bool) {
	s.cullBackface = cull
}

// SetWireframe restricts shading to samples within about one pixel of a
// triangle edge.
func (s *RSStage) SetWireframe(wireframe bool) {
	s.wireframe = wireframe
}

// Viewport returns the current viewport.
func (s *RSStage) Viewport() Viewport {
	return s.viewport
}

// CullBackface reports whether back-facing triangles are discarded.
func (s *RSStage) CullBackface() bool {
	return s.cullBackface
}

// Wireframe reports whether only triangle edges are shaded.
func (s *RSStage) Wireframe() bool {
	return s.wireframe
}

// PSStage is the pixel shader stage state.
type PSStage struct {
	shader          PixelShader
	constantBuffers []*Buffer
}

// SetPixelShader replaces the bound pixel shader.
func (s *PSStage) SetPixelShader(ps PixelShader) {
	s.shader = ps
}

// PixelShader returns the bound pixel shader.
func (s *PSStage) PixelShader() PixelShader {
	return s.shader
}

// SetConstantBuffer binds b to slot, growing the slot array if needed.
// Passing nil unbinds the slot.
func (s *PSStage) SetConstantBuffer(slot int, b *Buffer) {
	setSlot(&s.constantBuffers, slot, b)
}

// ConstantBufferSlots returns the current size of the slot array.
func (s *PSStage) ConstantBufferSlots() int {
	return len(s.constantBuffers)
}

// OMStage is the output merger state read by Device.Clear and Device.Resize.
type OMStage struct {
	clearColor f32.Vec4
	clearDepth float32
}

// SetClearColor sets the color written by Clear.
func (s *OMStage) SetClearColor(c f32.Vec4) {
	s.clearColor = c
}

// ClearColor returns the color written by Clear.
func (s *OMStage) ClearColor() f32.Vec4 {
	return s.clearColor
}

// SetDepthClearValue sets the depth written by Clear. The default is 1, the
// far plane.
func (s *OMStage) SetDepthClearValue(d float32) {
	s.clearDepth = d
}

// DepthClearValue returns the depth written by Clear.
func (s *OMStage) DepthClearValue() float32 {
	return s.clearDepth
}

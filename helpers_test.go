package swr

import (
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// vertexPC is a position + color vertex record.
type vertexPC struct {
	Position [3]float32
	Color    [3]float32
}

var layoutPC = InputLayoutDesc{
	Elements: []InputElementDesc{
		{Semantic: Position0, Format: gputypes.VertexFormatFloat32x3, Offset: int(unsafe.Offsetof(vertexPC{}.Position))},
		{Semantic: Color0, Format: gputypes.VertexFormatFloat32x3, Offset: int(unsafe.Offsetof(vertexPC{}.Color))},
	},
	Stride: int(unsafe.Sizeof(vertexPC{})),
}

var (
	blue  = f32.Vec4{0, 0, 1, 1}
	white = f32.Vec4{1, 1, 1, 1}
	red   = f32.Vec4{1, 0, 0, 1}
)

// exampleTriangle maps to screen (400,150), (600,450), (200,450) in an
// 800x600 frame. Its screen-space area is negative.
var exampleTriangle = []vertexPC{
	{Position: [3]float32{0, 0.5, 0}, Color: [3]float32{1, 0, 0}},
	{Position: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}},
}

func passthroughVS(in *VertexInputView, _ *ShaderContext) VSOutput {
	p := in.ReadFloat3(Position0)
	return VSOutput{
		Position: f32.Vec4{p[0], p[1], p[2], 1},
		Color:    in.ReadFloat3(Color0),
	}
}

func solidPS(c f32.Vec4) PixelShader {
	return PixelShaderFunc(func(*PSInput, *ShaderContext) f32.Vec4 { return c })
}

// newTestDevice creates an 800x600 device cleared to blue with verts bound
// as a vertex buffer, the passthrough vertex shader and a white pixel shader.
func newTestDevice(t *testing.T, verts []vertexPC) (*Device, *Buffer) {
	t.Helper()

	d := New(800, 600, WithClearColor(blue))
	vb := d.CreateBuffer(int(unsafe.Sizeof(vertexPC{})), len(verts), BufferFormatUnknown)
	if err := Upload(vb, verts, 0); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	layout, err := d.CreateInputLayout(layoutPC)
	if err != nil {
		t.Fatalf("CreateInputLayout() error = %v", err)
	}

	d.IA().SetVertexBuffer(vb)
	d.IA().SetInputLayout(layout)
	d.VS().SetVertexShader(VertexShaderFunc(passthroughVS))
	d.PS().SetPixelShader(solidPS(white))
	return d, vb
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// fakeSurface is an in-memory Surface with configurable pitch.
type fakeSurface struct {
	w, h     int
	pitch    int
	format   PixelFormat
	pixels   []byte
	lockErr  error
	unlocked int
}

func newFakeSurface(w, h, pitch int, format PixelFormat) *fakeSurface {
	return &fakeSurface{w: w, h: h, pitch: pitch, format: format, pixels: make([]byte, pitch*h)}
}

func (s *fakeSurface) Size() (int, int)         { return s.w, s.h }
func (s *fakeSurface) PixelFormat() PixelFormat { return s.format }
func (s *fakeSurface) Unlock()                  { s.unlocked++ }

func (s *fakeSurface) Lock() ([]byte, int, error) {
	if s.lockErr != nil {
		return nil, 0, s.lockErr
	}
	return s.pixels, s.pitch, nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/swr"
	"golang.org/x/image/math/f32"
)

// TriangleName is the registered name of the Triangle scene.
const TriangleName = "Triangle"

// DefaultAngularSpeed is the Triangle rotation speed in radians per second.
const DefaultAngularSpeed = 1.0

type triangleVertex struct {
	Position [3]float32
	Color    [3]float32
}

type triangleConstants struct {
	Angle float32
	_     [3]float32
}

var triangleVertices = []triangleVertex{
	{Position: [3]float32{0, 0.5, 0}, Color: [3]float32{1, 0, 0}},
	{Position: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}},
}

// Triangle draws one colored triangle rotating about the Z axis on a blue
// background.
//
// Keys: W toggles wireframe, C toggles backface culling, V toggles a
// centered viewport covering half the frame, A toggles animation and O
// flips the winding by swapping the second and third vertices.
type Triangle struct {
	Base

	// AngularSpeed is the rotation speed in radians per second.
	AngularSpeed float32

	vb     *swr.Buffer
	cb     *swr.Buffer
	layout *swr.InputLayout

	angle         float32
	animate       bool
	wireframe     bool
	cull          bool
	smallViewport bool
}

// NewTriangle creates the scene. Call Init before rendering.
func NewTriangle(dev *swr.Device) *Triangle {
	return &Triangle{
		Base:         NewBase(dev),
		AngularSpeed: DefaultAngularSpeed,
		animate:      true,
	}
}

// Init creates the vertex and constant buffers and binds the pipeline.
func (s *Triangle) Init() error {
	dev := s.Device()
	dev.OM().SetClearColor(f32.Vec4{0, 0, 1, 1})

	s.vb = dev.CreateBuffer(int(unsafe.Sizeof(triangleVertex{})), len(triangleVertices), swr.BufferFormatUnknown)
	if err := swr.Upload(s.vb, triangleVertices, 0); err != nil {
		return fmt.Errorf("triangle: vertex upload: %w", err)
	}

	layout, err := dev.CreateInputLayout(swr.InputLayoutDesc{
		Elements: []swr.InputElementDesc{
			{Semantic: swr.Position0, Format: gputypes.VertexFormatFloat32x3, Offset: 0},
			{Semantic: swr.Color0, Format: gputypes.VertexFormatFloat32x3, Offset: 12},
		},
		Stride: int(unsafe.Sizeof(triangleVertex{})),
	})
	if err != nil {
		return fmt.Errorf("triangle: %w", err)
	}
	s.layout = layout

	s.cb = dev.CreateBuffer(int(unsafe.Sizeof(triangleConstants{})), 1, swr.BufferFormatUnknown)
	if err := s.uploadConstants(); err != nil {
		return err
	}

	dev.IA().SetVertexBuffer(s.vb)
	dev.IA().SetIndexBuffer(nil)
	dev.IA().SetInputLayout(s.layout)
	dev.IA().SetPrimitiveTopology(gputypes.PrimitiveTopologyTriangleList)
	dev.VS().SetConstantBuffer(0, s.cb)
	dev.VS().SetVertexShader(swr.VertexShaderFunc(triangleVS))
	dev.PS().SetPixelShader(swr.PixelShaderFunc(colorPS))
	dev.RS().SetViewport(fullViewport(dev.Width(), dev.Height()))
	return nil
}

func triangleVS(in *swr.VertexInputView, ctx *swr.ShaderContext) swr.VSOutput {
	var angle float32
	if cb := swr.VSConstant[triangleConstants](ctx, 0); cb != nil {
		angle = cb.Angle
	}

	p := in.ReadFloat3(swr.Position0)
	c, s := math32.Cos(angle), math32.Sin(angle)
	return swr.VSOutput{
		Position: f32.Vec4{p[0]*c - p[1]*s, p[0]*s + p[1]*c, p[2], 1},
		Color:    in.ReadFloat3(swr.Color0),
	}
}

func colorPS(in *swr.PSInput, _ *swr.ShaderContext) f32.Vec4 {
	return f32.Vec4{in.Color[0], in.Color[1], in.Color[2], 1}
}

func (s *Triangle) uploadConstants() error {
	if err := swr.Upload(s.cb, []triangleConstants{{Angle: s.angle}}, 0); err != nil {
		return fmt.Errorf("triangle: constant upload: %w", err)
	}
	return nil
}

// PrepareFrame advances the rotation and reapplies the rasterizer state.
func (s *Triangle) PrepareFrame(dt float32) {
	if s.animate {
		s.angle = wrapAngle(s.angle + s.AngularSpeed*dt)
		if err := s.uploadConstants(); err != nil {
			swr.Logger().Error("scene: frame update failed", "scene", TriangleName, "err", err)
		}
	}

	dev := s.Device()
	dev.RS().SetWireframe(s.wireframe)
	dev.RS().SetCullBackface(s.cull)
	s.applyViewport(dev.Width(), dev.Height())
}

// RenderFrame draws the triangle.
func (s *Triangle) RenderFrame() {
	s.Device().Draw(len(triangleVertices), 0)
}

// HandleKey toggles the scene options.
func (s *Triangle) HandleKey(k Key) {
	rs := s.Device().RS()
	log := swr.Logger()

	switch k {
	case KeyW:
		s.wireframe = !s.wireframe
		rs.SetWireframe(s.wireframe)
		log.Info("scene: wireframe", "on", s.wireframe)
	case KeyC:
		s.cull = !s.cull
		rs.SetCullBackface(s.cull)
		log.Info("scene: cull backface", "on", s.cull)
	case KeyV:
		s.smallViewport = !s.smallViewport
		s.applyViewport(s.Device().Width(), s.Device().Height())
		log.Info("scene: small viewport", "on", s.smallViewport)
	case KeyA:
		s.animate = !s.animate
		log.Info("scene: animation", "on", s.animate)
	case KeyO:
		if s.vb == nil {
			return
		}
		v := swr.Elements[triangleVertex](s.vb)
		v[1], v[2] = v[2], v[1]
		log.Info("scene: winding flipped")
	}
}

// OnResize fits the viewport to the new frame size.
func (s *Triangle) OnResize(width, height int) {
	s.applyViewport(width, height)
}

func (s *Triangle) applyViewport(width, height int) {
	vp := fullViewport(width, height)
	if s.smallViewport {
		vp = centeredViewport(width, height, 0.5)
	}
	s.Device().RS().SetViewport(vp)
}

// Angle returns the current rotation in radians.
func (s *Triangle) Angle() float32 {
	return s.angle
}

// Animating reports whether the rotation advances each frame.
func (s *Triangle) Animating() bool {
	return s.animate
}

// wrapAngle keeps a within one turn of zero.
func wrapAngle(a float32) float32 {
	turn := float32(2 * math32.Pi)
	if a > turn {
		a -= turn
	}
	if a < -turn {
		a += turn
	}
	return a
}

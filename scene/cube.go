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

// CubeName is the registered name of the Cube scene.
const CubeName = "Cube"

const (
	cubeFovY     = math32.Pi / 3
	cubeNear     = 0.1
	cubeFar      = 100
	cubeDistance = 4

	// radians per pixel of mouse drag
	dragSensitivity = 0.01
)

type cubeVertex struct {
	Position [3]float32
	Color    [3]float32
}

type cubeConstants struct {
	MVP f32.Mat4
}

// Corners are colored by position so every face shows a gradient.
var cubeVertices = []cubeVertex{
	{Position: [3]float32{-1, -1, -1}, Color: [3]float32{0, 0, 0}},
	{Position: [3]float32{1, -1, -1}, Color: [3]float32{1, 0, 0}},
	{Position: [3]float32{1, 1, -1}, Color: [3]float32{1, 1, 0}},
	{Position: [3]float32{-1, 1, -1}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{-1, -1, 1}, Color: [3]float32{0, 0, 1}},
	{Position: [3]float32{1, -1, 1}, Color: [3]float32{1, 0, 1}},
	{Position: [3]float32{1, 1, 1}, Color: [3]float32{1, 1, 1}},
	{Position: [3]float32{-1, 1, 1}, Color: [3]float32{0, 1, 1}},
}

// Faces wind counterclockwise seen from outside.
var cubeIndices = []uint16{
	4, 5, 6, 4, 6, 7, // +z
	1, 0, 3, 1, 3, 2, // -z
	5, 1, 2, 5, 2, 6, // +x
	0, 4, 7, 0, 7, 3, // -x
	7, 6, 2, 7, 2, 3, // +y
	0, 1, 5, 0, 5, 4, // -y
}

// Cube draws an indexed, depth-tested cube in perspective. Dragging with
// the left mouse button rotates it.
//
// Keys: W toggles wireframe, C toggles backface culling and A toggles the
// idle spin.
type Cube struct {
	Base

	vb, ib, cb *swr.Buffer
	layout     *swr.InputLayout

	yaw, pitch float32
	dragging   bool
	spin       bool
	wireframe  bool
	cull       bool
	aspect     float32
}

// NewCube creates the scene. Call Init before rendering.
func NewCube(dev *swr.Device) *Cube {
	return &Cube{
		Base: NewBase(dev),
		cull: true,
	}
}

// Init creates the vertex, index and constant buffers and binds the pipeline.
func (s *Cube) Init() error {
	dev := s.Device()
	dev.OM().SetClearColor(f32.Vec4{0.1, 0.1, 0.12, 1})
	dev.OM().SetDepthClearValue(1)

	stride := int(unsafe.Sizeof(cubeVertex{}))
	s.vb = dev.CreateBuffer(stride, len(cubeVertices), swr.BufferFormatUnknown)
	if err := swr.Upload(s.vb, cubeVertices, 0); err != nil {
		return fmt.Errorf("cube: vertex upload: %w", err)
	}

	s.ib = dev.CreateBuffer(2, len(cubeIndices), swr.BufferFormatR16Uint)
	if err := swr.Upload(s.ib, cubeIndices, 0); err != nil {
		return fmt.Errorf("cube: index upload: %w", err)
	}

	layout, err := dev.CreateInputLayout(swr.InputLayoutDesc{
		Elements: []swr.InputElementDesc{
			{Semantic: swr.Position0, Format: gputypes.VertexFormatFloat32x3, Offset: 0},
			{Semantic: swr.Color0, Format: gputypes.VertexFormatFloat32x3, Offset: 12},
		},
		Stride: stride,
	})
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	s.layout = layout

	s.cb = dev.CreateBuffer(int(unsafe.Sizeof(cubeConstants{})), 1, swr.BufferFormatUnknown)

	dev.IA().SetVertexBuffer(s.vb)
	dev.IA().SetIndexBuffer(s.ib)
	dev.IA().SetInputLayout(s.layout)
	dev.IA().SetPrimitiveTopology(gputypes.PrimitiveTopologyTriangleList)
	dev.VS().SetConstantBuffer(0, s.cb)
	dev.VS().SetVertexShader(swr.VertexShaderFunc(cubeVS))
	dev.PS().SetPixelShader(swr.PixelShaderFunc(colorPS))

	s.OnResize(dev.Width(), dev.Height())
	return s.uploadMVP()
}

func cubeVS(in *swr.VertexInputView, ctx *swr.ShaderContext) swr.VSOutput {
	mvp := identity()
	if cb := swr.VSConstant[cubeConstants](ctx, 0); cb != nil {
		mvp = cb.MVP
	}
	p := in.ReadFloat3(swr.Position0)
	return swr.VSOutput{
		Position: transform(mvp, f32.Vec4{p[0], p[1], p[2], 1}),
		Color:    in.ReadFloat3(swr.Color0),
	}
}

// MVP returns the model-view-projection matrix for the current rotation.
func (s *Cube) MVP() f32.Mat4 {
	model := mul(rotationX(s.pitch), rotationY(s.yaw))
	view := translation(0, 0, -cubeDistance)
	aspect := s.aspect
	if aspect <= 0 {
		aspect = 1
	}
	proj := perspective(cubeFovY, aspect, cubeNear, cubeFar)
	return mul(proj, mul(view, model))
}

func (s *Cube) uploadMVP() error {
	if err := swr.Upload(s.cb, []cubeConstants{{MVP: s.MVP()}}, 0); err != nil {
		return fmt.Errorf("cube: constant upload: %w", err)
	}
	return nil
}

// PrepareFrame advances the idle spin and uploads the transform.
func (s *Cube) PrepareFrame(dt float32) {
	if s.spin && !s.dragging {
		s.yaw = wrapAngle(s.yaw + 0.5*dt)
	}

	rs := s.Device().RS()
	rs.SetWireframe(s.wireframe)
	rs.SetCullBackface(s.cull)

	if err := s.uploadMVP(); err != nil {
		swr.Logger().Error("scene: frame update failed", "scene", CubeName, "err", err)
	}
}

// RenderFrame draws the cube.
func (s *Cube) RenderFrame() {
	s.Device().DrawIndexed(len(cubeIndices), 0, 0)
}

// HandleKey toggles the scene options.
func (s *Cube) HandleKey(k Key) {
	log := swr.Logger()
	switch k {
	case KeyW:
		s.wireframe = !s.wireframe
		log.Info("scene: wireframe", "on", s.wireframe)
	case KeyC:
		s.cull = !s.cull
		log.Info("scene: cull backface", "on", s.cull)
	case KeyA:
		s.spin = !s.spin
		log.Info("scene: spin", "on", s.spin)
	}
}

// HandleMouseButton starts and stops drag rotation.
func (s *Cube) HandleMouseButton(e MouseButtonEvent) {
	if e.Button == MouseButtonLeft {
		s.dragging = e.Pressed
	}
}

// HandleMouseMove rotates the cube while dragging.
func (s *Cube) HandleMouseMove(e MouseMoveEvent) {
	if !s.dragging {
		return
	}
	s.yaw = wrapAngle(s.yaw + e.DX*dragSensitivity)
	limit := float32(math32.Pi / 2)
	s.pitch = math32.Max(-limit, math32.Min(limit, s.pitch+e.DY*dragSensitivity))
}

// OnResize updates the aspect ratio and uses the full frame.
func (s *Cube) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.aspect = float32(width) / float32(height)
	s.Device().RS().SetViewport(fullViewport(width, height))
}

// Rotation returns the yaw and pitch in radians.
func (s *Cube) Rotation() (yaw, pitch float32) {
	return s.yaw, s.pitch
}

// Package swr provides a CPU-only graphics pipeline modeled on a
// fixed-function/programmable GPU.
//
// # Overview
//
// A Device owns a float color buffer and a depth buffer and exposes five
// configurable pipeline stages: the input assembler (IA), the vertex shader
// stage (VS), the rasterizer (RS), the pixel shader stage (PS) and the output
// merger (OM). Draw and DrawIndexed run the vertex shader over a batch of
// vertices and rasterize the resulting triangle list into the frame buffers.
//
// # Quick Start
//
//	dev := swr.New(800, 600)
//
//	vb := dev.CreateBuffer(int(unsafe.Sizeof(vertex{})), 3, swr.BufferFormatUnknown)
//	_ = swr.Upload(vb, vertices, 0)
//
//	layout, _ := dev.CreateInputLayout(swr.InputLayoutDesc{
//	    Elements: []swr.InputElementDesc{
//	        {Semantic: swr.Position0, Format: gputypes.VertexFormatFloat32x3, Offset: 0},
//	        {Semantic: swr.Color0, Format: gputypes.VertexFormatFloat32x3, Offset: 12},
//	    },
//	    Stride: 24,
//	})
//
//	dev.IA().SetVertexBuffer(vb)
//	dev.IA().SetInputLayout(layout)
//	dev.VS().SetVertexShader(swr.VertexShaderFunc(vs))
//	dev.PS().SetPixelShader(swr.PixelShaderFunc(ps))
//
//	dev.Clear()
//	dev.Draw(3, 0)
//	_ = dev.Present(target)
//
// # Coordinate System
//
// Vertex shaders output homogeneous clip-space positions. After the
// perspective divide, NDC x and y in [-1, 1] map onto the viewport with the
// origin at the top-left: screen X increases right and screen Y increases
// down, while NDC Y increases up.
//
// Triangles with a positive signed screen-space area are front facing.
// There is no clipping against the frustum planes; the viewport rectangle is
// the only scissor.
//
// # Errors
//
// Invalid pipeline state at draw time (missing vertex buffer, input layout or
// shader, unsupported topology or index format) is a programming error and
// panics. Data-dependent failures such as uploading past the end of a Buffer
// are returned as errors.
//
// # Concurrency
//
// A Device is not safe for concurrent use. Shaders run synchronously on the
// calling goroutine and must not mutate pipeline or buffer state. A panic
// inside a shader leaves the frame buffers partially written.
package swr

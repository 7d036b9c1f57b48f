// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene provides demo scenes driving an swr.Device and a Manager
// that switches between them.
//
// A frame of the host loop looks like:
//
//	dev.Clear()
//	s.PrepareFrame(dt)
//	s.RenderFrame()
//	s.EndFrame()
//	dev.Present(target)
//
// Scenes receive input and resize notifications from the host. They own
// their buffers and reconfigure the device pipeline in Init, so switching
// scenes only requires calling Init and OnResize on the new scene.
package scene

import (
	"github.com/gogpu/swr"
)

// Scene is a demo scene.
type Scene interface {
	// Init creates resources and binds pipeline state.
	Init() error

	// PrepareFrame advances the scene by dt seconds.
	PrepareFrame(dt float32)

	// RenderFrame issues draw calls.
	RenderFrame()

	// EndFrame runs after RenderFrame.
	EndFrame()

	HandleKey(k Key)
	HandleMouseButton(e MouseButtonEvent)
	HandleMouseMove(e MouseMoveEvent)

	// OnResize reports the new frame size in pixels.
	OnResize(width, height int)
}

// Base implements every Scene method except RenderFrame as a no-op.
// Scenes embed it to get the device handle.
type Base struct {
	dev *swr.Device
}

// NewBase returns a Base bound to dev.
func NewBase(dev *swr.Device) Base {
	return Base{dev: dev}
}

// Device returns the device the scene renders with.
func (b *Base) Device() *swr.Device {
	return b.dev
}

func (b *Base) Init() error {
	return nil
}

func (b *Base) PrepareFrame(float32) {}

func (b *Base) EndFrame() {}

func (b *Base) HandleKey(Key) {}

func (b *Base) HandleMouseButton(MouseButtonEvent) {}

func (b *Base) HandleMouseMove(MouseMoveEvent) {}

func (b *Base) OnResize(int, int) {}

// fullViewport covers the whole frame.
func fullViewport(width, height int) swr.Viewport {
	return swr.Viewport{Width: width, Height: height, MinDepth: 0, MaxDepth: 1}
}

// centeredViewport covers scale of the frame in each dimension, centered.
func centeredViewport(width, height int, scale float32) swr.Viewport {
	w := max(1, int(float32(width)*scale))
	h := max(1, int(float32(height)*scale))
	return swr.Viewport{
		X:        (width - w) / 2,
		Y:        (height - h) / 2,
		Width:    w,
		Height:   h,
		MinDepth: 0,
		MaxDepth: 1,
	}
}

package swr

import "golang.org/x/image/math/f32"

// DeviceOption configures a Device during creation.
//
// Example:
//
//	// Default: transparent black, depth cleared to the far plane
//	dev := swr.New(800, 600)
//
//	// Blue background
//	dev := swr.New(800, 600, swr.WithClearColor(f32.Vec4{0, 0, 1, 1}))
type DeviceOption func(*deviceOptions)

// deviceOptions holds optional configuration for Device creation.
type deviceOptions struct {
	clearColor f32.Vec4
	clearDepth float32
	slots      int
}

// defaultOptions returns the default device options.
func defaultOptions() deviceOptions {
	return deviceOptions{
		clearDepth: 1,
		slots:      DefaultConstantBufferSlots,
	}
}

// WithClearColor sets the initial OM clear color. The frame buffers are
// filled with it on creation.
func WithClearColor(c f32.Vec4) DeviceOption {
	return func(o *deviceOptions) {
		o.clearColor = c
	}
}

// WithClearDepth sets the initial OM depth clear value.
func WithClearDepth(d float32) DeviceOption {
	return func(o *deviceOptions) {
		o.clearDepth = d
	}
}

// WithConstantBufferSlots sets the initial number of VS and PS constant
// buffer slots. Slots still grow on demand when a higher slot is bound.
// Non-positive values keep the default.
func WithConstantBufferSlots(n int) DeviceOption {
	return func(o *deviceOptions) {
		if n > 0 {
			o.slots = n
		}
	}
}

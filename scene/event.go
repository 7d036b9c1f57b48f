// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

// Key identifies a keyboard key delivered to a scene.
type Key int

// Keys understood by the built-in scenes.
const (
	KeyUnknown Key = iota
	KeyA
	KeyC
	KeyO
	KeyV
	KeyW
	KeyLeft
	KeyRight
	KeyEscape
)

var keyNames = [...]string{
	KeyUnknown: "Unknown",
	KeyA:       "A",
	KeyC:       "C",
	KeyO:       "O",
	KeyV:       "V",
	KeyW:       "W",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyEscape:  "Escape",
}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// MouseButtonEvent reports a button press or release at a frame position.
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
	X, Y    float32
}

// MouseMoveEvent reports cursor motion. DX and DY are relative to the
// previous event.
type MouseMoveEvent struct {
	X, Y   float32
	DX, DY float32
}

package swr

import (
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

func TestNewDefaults(t *testing.T) {
	d := New(800, 600)

	if d.Width() != 800 || d.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", d.Width(), d.Height())
	}
	if len(d.ColorBuffer()) != 800*600 || len(d.DepthBuffer()) != 800*600 {
		t.Errorf("buffer sizes = %d, %d, want %d", len(d.ColorBuffer()), len(d.DepthBuffer()), 800*600)
	}
	if got := d.OM().DepthClearValue(); got != 1 {
		t.Errorf("DepthClearValue() = %v, want 1", got)
	}
	if got := d.DepthAt(0, 0); got != 1 {
		t.Errorf("DepthAt(0, 0) = %v, want 1", got)
	}
	if got := d.IA().PrimitiveTopology(); got != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("PrimitiveTopology() = %v, want TriangleList", got)
	}
	if d.RS().CullBackface() || d.RS().Wireframe() {
		t.Error("cull and wireframe should default to off")
	}
	if d.RS().Viewport().Valid() {
		t.Error("default viewport should be unset")
	}
}

func TestNewOptions(t *testing.T) {
	d := New(4, 4, WithClearColor(blue), WithClearDepth(0.5))

	if got := d.ColorAt(3, 3); got != blue {
		t.Errorf("ColorAt(3, 3) = %v, want clear color", got)
	}
	if got := d.DepthAt(3, 3); got != 0.5 {
		t.Errorf("DepthAt(3, 3) = %v, want 0.5", got)
	}

	mustPanic(t, "negative size", func() { New(-1, 4) })
}

func TestResizeThenClear(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"grow", 1024, 768},
		{"shrink", 16, 9},
		{"wide", 300, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(800, 600)
			clear := f32.Vec4{0.2, 0.4, 0.6, 1}
			d.OM().SetClearColor(clear)

			d.Resize(tt.w, tt.h)
			d.Clear()

			if d.Width() != tt.w || d.Height() != tt.h {
				t.Fatalf("size = %dx%d, want %dx%d", d.Width(), d.Height(), tt.w, tt.h)
			}
			color, depth := d.ColorBuffer(), d.DepthBuffer()
			if len(color) != tt.w*tt.h || len(depth) != tt.w*tt.h {
				t.Fatalf("buffer sizes = %d, %d, want %d", len(color), len(depth), tt.w*tt.h)
			}
			for i, c := range color {
				if c != clear {
					t.Fatalf("color[%d] = %v, want %v", i, c, clear)
				}
			}
		})
	}
}

func TestResizeFillsFromClearValues(t *testing.T) {
	d := New(2, 2)
	d.OM().SetClearColor(red)
	d.OM().SetDepthClearValue(0.25)
	d.Resize(3, 3)

	if got := d.ColorAt(2, 2); got != red {
		t.Errorf("ColorAt(2, 2) = %v, want red", got)
	}
	if got := d.DepthAt(2, 2); got != 0.25 {
		t.Errorf("DepthAt(2, 2) = %v, want 0.25", got)
	}
}

func TestResizeIgnoresZeroDimensions(t *testing.T) {
	d, _ := newTestDevice(t, exampleTriangle)
	d.Clear()
	d.Draw(3, 0)
	before := append([]f32.Vec4(nil), d.ColorBuffer()...)

	d.Resize(0, 600)
	d.Resize(800, 0)
	d.Resize(-5, 10)

	if d.Width() != 800 || d.Height() != 600 {
		t.Fatalf("size = %dx%d, want unchanged 800x600", d.Width(), d.Height())
	}
	after := d.ColorBuffer()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("color[%d] changed from %v to %v", i, before[i], after[i])
		}
	}
}

func TestClearResetsStats(t *testing.T) {
	d, _ := newTestDevice(t, exampleTriangle)
	d.Clear()
	d.Draw(3, 0)
	if d.Stats().PixelsShaded == 0 {
		t.Fatal("expected shaded pixels")
	}
	d.Clear()
	if d.Stats() != (Stats{}) {
		t.Errorf("Stats() after Clear = %+v, want zero", d.Stats())
	}
}

func TestOutOfFrameAccessors(t *testing.T) {
	d := New(2, 2, WithClearColor(white))
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := d.ColorAt(p[0], p[1]); got != (f32.Vec4{}) {
			t.Errorf("ColorAt(%d, %d) = %v, want zero", p[0], p[1], got)
		}
		if got := d.DepthAt(p[0], p[1]); got != 0 {
			t.Errorf("DepthAt(%d, %d) = %v, want zero", p[0], p[1], got)
		}
	}
}

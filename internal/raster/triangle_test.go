// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"
)

func TestEdgeFunction(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    float32
	}{
		{"example triangle", Point{400, 150}, Point{600, 450}, Point{200, 450}, -120000},
		{"flipped winding", Point{400, 150}, Point{200, 450}, Point{600, 450}, 120000},
		{"collinear", Point{0, 0}, Point{1, 1}, Point{2, 2}, 0},
		{"unit right", Point{0, 0}, Point{1, 0}, Point{0, 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgeFunction(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("EdgeFunction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToScreen(t *testing.T) {
	tests := []struct {
		name       string
		ndcX, ndcY float32
		want       Point
	}{
		{"center", 0, 0, Point{400, 300}},
		{"top left", -1, 1, Point{0, 0}},
		{"bottom right", 1, -1, Point{800, 600}},
		{"apex", 0, 0.5, Point{400, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToScreen(tt.ndcX, tt.ndcY, 0, 0, 800, 600)
			if got != tt.want {
				t.Errorf("ToScreen(%v, %v) = %v, want %v", tt.ndcX, tt.ndcY, got, tt.want)
			}
		})
	}

	// Offset viewport shifts the result.
	got := ToScreen(-1, 1, 200, 150, 400, 300)
	if got != (Point{200, 150}) {
		t.Errorf("ToScreen with offset = %v, want {200 150}", got)
	}
}

func TestBounds(t *testing.T) {
	clip := Rect{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

	r := Bounds(Point{400.5, 150.2}, Point{600.1, 450}, Point{199.9, 449.5}, clip)
	want := Rect{MinX: 199, MinY: 150, MaxX: 601, MaxY: 450}
	if r != want {
		t.Errorf("Bounds() = %+v, want %+v", r, want)
	}

	r = Bounds(Point{-100, -100}, Point{900, 50}, Point{50, 700}, clip)
	if r != clip {
		t.Errorf("Bounds() should clamp to clip, got %+v", r)
	}

	r = Bounds(Point{900, 900}, Point{950, 900}, Point{900, 950}, clip)
	if !r.Empty() {
		t.Errorf("Bounds() outside clip should be empty, got %+v", r)
	}

	inf := float32(math.Inf(1))
	r = Bounds(Point{0, 0}, Point{inf, 0}, Point{0, float32(math.NaN())}, clip)
	if r.MaxX != 800 {
		t.Errorf("Bounds() with infinite coordinate: MaxX = %d, want 800", r.MaxX)
	}
}

func TestTriangleWeightsSumToArea(t *testing.T) {
	tri := Setup(Point{400, 150}, Point{600, 450}, Point{200, 450})

	samples := []Point{{400.5, 300.5}, {350, 400}, {500, 420}, {10, 10}}
	for _, p := range samples {
		w0, w1, w2 := tri.Weights(p)
		sum := w0 + w1 + w2
		if diff := math.Abs(float64(sum - tri.Area)); diff > 0.5 {
			t.Errorf("weights at %v sum to %v, want %v", p, sum, tri.Area)
		}
	}
}

func TestTriangleInside(t *testing.T) {
	cw := Setup(Point{400, 150}, Point{600, 450}, Point{200, 450})
	ccw := Setup(Point{400, 150}, Point{200, 450}, Point{600, 450})

	if !cw.Backfacing() || ccw.Backfacing() {
		t.Fatalf("winding: cw.Area=%v ccw.Area=%v", cw.Area, ccw.Area)
	}

	for _, tri := range []Triangle{cw, ccw} {
		w0, w1, w2 := tri.Weights(Point{400.5, 300.5})
		if !tri.Inside(w0, w1, w2) {
			t.Errorf("center should be inside (area %v)", tri.Area)
		}
		w0, w1, w2 = tri.Weights(Point{10.5, 10.5})
		if tri.Inside(w0, w1, w2) {
			t.Errorf("corner should be outside (area %v)", tri.Area)
		}
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tri := Setup(Point{0, 0}, Point{10, 10}, Point{20, 20})
	if !tri.Degenerate() {
		t.Errorf("collinear triangle should be degenerate, area %v", tri.Area)
	}
}

func TestTriangleNearEdge(t *testing.T) {
	tri := Setup(Point{400, 150}, Point{600, 450}, Point{200, 450})

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"centroid", Point{400.5, 350.5}, false},
		{"on bottom edge", Point{400.5, 449.5}, true},
		{"two pixels above bottom edge", Point{400.5, 447.5}, false},
		{"near apex", Point{400.5, 151.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w0, w1, w2 := tri.Weights(tt.p)
			if got := tri.NearEdge(w0, w1, w2, WireframeTolerance); got != tt.want {
				t.Errorf("NearEdge(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

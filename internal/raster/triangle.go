// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the screen-space geometry of triangle
// rasterization: viewport mapping, clamped bounding boxes and edge functions.
package raster

import "github.com/chewxy/math32"

// WireframeTolerance is the maximum distance, in pixels, from a sample to a
// triangle edge for the sample to be shaded in wireframe mode.
const WireframeTolerance = 0.75

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float32
}

// Rect is a half-open integer pixel rectangle [MinX, MaxX) x [MinY, MaxY).
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Intersect returns the largest rectangle contained in both r and s.
func (r Rect) Intersect(s Rect) Rect {
	return Rect{
		MinX: max(r.MinX, s.MinX),
		MinY: max(r.MinY, s.MinY),
		MaxX: min(r.MaxX, s.MaxX),
		MaxY: min(r.MaxY, s.MaxY),
	}
}

// EdgeFunction returns the signed edge function of c against the directed
// segment a->b:
//
//	(c.x-a.x)*(b.y-a.y) - (c.y-a.y)*(b.x-a.x)
//
// Its magnitude is twice the area of the triangle (a, b, c).
func EdgeFunction(a, b, c Point) float32 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

// ToScreen maps NDC x and y onto a viewport at (x, y) of size w x h.
// Screen Y grows downward while NDC Y grows upward.
func ToScreen(ndcX, ndcY, x, y, w, h float32) Point {
	return Point{
		X: (ndcX*0.5+0.5)*w + x,
		Y: (1-(ndcY*0.5+0.5))*h + y,
	}
}

// Bounds returns the pixel box covering the three points, clamped to clip.
func Bounds(p0, p1, p2 Point, clip Rect) Rect {
	minX := math32.Min(p0.X, math32.Min(p1.X, p2.X))
	minY := math32.Min(p0.Y, math32.Min(p1.Y, p2.Y))
	maxX := math32.Max(p0.X, math32.Max(p1.X, p2.X))
	maxY := math32.Max(p0.Y, math32.Max(p1.Y, p2.Y))

	r := Rect{
		MinX: floorInt(minX),
		MinY: floorInt(minY),
		MaxX: ceilInt(maxX),
		MaxY: ceilInt(maxY),
	}
	return r.Intersect(clip)
}

// floorInt and ceilInt saturate non-finite and huge values, which appear
// when a vertex lies on the w=0 plane.
func floorInt(v float32) int {
	return saturate(math32.Floor(v))
}

func ceilInt(v float32) int {
	return saturate(math32.Ceil(v))
}

const maxCoord = 1 << 24

func saturate(v float32) int {
	switch {
	case math32.IsNaN(v):
		return 0
	case v < -maxCoord:
		return -maxCoord
	case v > maxCoord:
		return maxCoord
	}
	return int(v)
}

// Triangle holds the setup of one screen-space triangle.
type Triangle struct {
	P [3]Point
	// Area is the signed edge function of P[2] against P[0]->P[1].
	// Positive area is front facing.
	Area float32

	// edgeLenSq[i] is the squared length of the edge opposite P[i].
	edgeLenSq [3]float32
}

// Setup computes the signed area and edge lengths of a triangle.
func Setup(p0, p1, p2 Point) Triangle {
	t := Triangle{
		P:    [3]Point{p0, p1, p2},
		Area: EdgeFunction(p0, p1, p2),
	}
	t.edgeLenSq[0] = lenSq(p1, p2)
	t.edgeLenSq[1] = lenSq(p2, p0)
	t.edgeLenSq[2] = lenSq(p0, p1)
	return t
}

func lenSq(a, b Point) float32 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

// Degenerate reports whether the triangle has zero area.
func (t *Triangle) Degenerate() bool {
	return t.Area == 0
}

// Backfacing reports whether the triangle winds against the front-face
// convention.
func (t *Triangle) Backfacing() bool {
	return t.Area < 0
}

// Weights evaluates the three edge functions at p. Weight i belongs to
// vertex i and is measured against the edge opposite it, so the weights sum
// to Area.
func (t *Triangle) Weights(p Point) (w0, w1, w2 float32) {
	w0 = EdgeFunction(t.P[1], t.P[2], p)
	w1 = EdgeFunction(t.P[2], t.P[0], p)
	w2 = EdgeFunction(t.P[0], t.P[1], p)
	return w0, w1, w2
}

// Inside reports whether all weights share the sign of Area. Samples on an
// edge count as inside for both windings.
func (t *Triangle) Inside(w0, w1, w2 float32) bool {
	if t.Area > 0 {
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	}
	return w0 <= 0 && w1 <= 0 && w2 <= 0
}

// NearEdge reports whether a sample with the given weights lies within
// tol pixels of any edge. The distance to edge i is |w_i| / len(edge_i);
// comparing squares avoids the square root.
func (t *Triangle) NearEdge(w0, w1, w2, tol float32) bool {
	tolSq := tol * tol
	return w0*w0 <= tolSq*t.edgeLenSq[0] ||
		w1*w1 <= tolSq*t.edgeLenSq[1] ||
		w2*w2 <= tolSq*t.edgeLenSq[2]
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func assertVec4InDelta(t *testing.T, want, got f32.Vec4, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestMulIdentity(t *testing.T) {
	m := mul(rotationX(0.3), translation(1, 2, 3))
	assert.Equal(t, m, mul(identity(), m))
	assert.Equal(t, m, mul(m, identity()))
}

func TestTransform(t *testing.T) {
	p := f32.Vec4{1, 0, 0, 1}

	assertVec4InDelta(t, f32.Vec4{2, 2, 3, 1}, transform(translation(1, 2, 3), p), 1e-6)
	assertVec4InDelta(t, f32.Vec4{0, 0, -1, 1}, transform(rotationY(math32.Pi/2), p), 1e-6)
	assertVec4InDelta(t, f32.Vec4{0, 0, 1, 1}, transform(rotationX(math32.Pi/2), f32.Vec4{0, 1, 0, 1}), 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := perspective(math32.Pi/2, 1, 1, 10)

	near := transform(proj, f32.Vec4{0, 0, -1, 1})
	far := transform(proj, f32.Vec4{0, 0, -10, 1})

	assert.InDelta(t, -1, near[2]/near[3], 1e-5)
	assert.InDelta(t, 1, far[2]/far[3], 1e-5)
	assert.InDelta(t, 10, far[3], 1e-6, "w holds the distance in front of the camera")

	edge := transform(proj, f32.Vec4{1, 0, -1, 1})
	assert.InDelta(t, 1, edge[0]/edge[3], 1e-5, "a 90 degree field of view spans x = -z")
}

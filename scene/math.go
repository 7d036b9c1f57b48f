// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Matrices are row major and transform column vectors: v' = M * v.

func identity() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func mul(a, b f32.Mat4) f32.Mat4 {
	var m f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[4*r+k] * b[4*k+c]
			}
			m[4*r+c] = sum
		}
	}
	return m
}

func transform(m f32.Mat4, v f32.Vec4) f32.Vec4 {
	var out f32.Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[4*r]*v[0] + m[4*r+1]*v[1] + m[4*r+2]*v[2] + m[4*r+3]*v[3]
	}
	return out
}

func translation(x, y, z float32) f32.Mat4 {
	m := identity()
	m[3], m[7], m[11] = x, y, z
	return m
}

func rotationX(a float32) f32.Mat4 {
	s, c := math32.Sincos(a)
	return f32.Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

func rotationY(a float32) f32.Mat4 {
	s, c := math32.Sincos(a)
	return f32.Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// perspective is a right-handed projection looking down -Z that maps
// [near, far] to NDC z in [-1, 1] and stores -z in w.
func perspective(fovY, aspect, near, far float32) f32.Mat4 {
	f := 1 / math32.Tan(fovY/2)
	return f32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements the 4-vector and matrix primitives the
// rasterization pipeline treats as externally supplied: clip-space
// positions, and the transforms a vertex shader composes to produce
// them.
package linear

import "github.com/chewxy/math32"

// V3 is a 3-component vector of float32.
type V3 [3]float32

// Add sets v to contain l + r.
func (v *V3) Add(l, r *V3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3) Sub(l, r *V3) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3) Scale(s float32, w *V3) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3) Dot(w *V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
func (v *V3) Norm(w *V3) { v.Scale(1/w.Len(), w) }

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) {
	v[0] = l[1]*r[2] - l[2]*r[1]
	v[1] = l[2]*r[0] - l[0]*r[2]
	v[2] = l[0]*r[1] - l[1]*r[0]
}

// V4 is a 4-component vector of float32: a homogeneous clip-space
// position (x, y, z, w), or any other length-4 quantity a vertex
// shader chooses to carry through the pipeline.
type V4 [4]float32

// Lerp sets v to (1-t)*a + t*b. This is the affine blend the clipper
// uses to build a new vertex position at a plane intersection.
func (v *V4) Lerp(a, b *V4, t float32) {
	for i := range v {
		v[i] = a[i] + t*(b[i]-a[i])
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V4) Mul(m *M4, w *V4) {
	*v = V4{}
	for i := range v {
		for j := range v {
			v[i] += m[j][i] * w[j]
		}
	}
}

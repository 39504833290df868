// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

import "github.com/gfxkit/raster3d/linear"

// The six planes of the canonical homogeneous view volume, indexed by
// face 0..5:
//
//	0: x >= -w   1: x <= +w
//	2: y >= -w   3: y <= +w
//	4: z >= -w   5: z <= +w
const numFaces = 6

// planeDist returns the signed distance of pos from the given face's
// plane, chosen so that a nonnegative value means INSIDE the
// half-space.
func planeDist(pos *linear.V4, face int) float32 {
	switch face {
	case 0:
		return pos[0] + pos[3]
	case 1:
		return pos[3] - pos[0]
	case 2:
		return pos[1] + pos[3]
	case 3:
		return pos[3] - pos[1]
	case 4:
		return pos[2] + pos[3]
	default:
		return pos[3] - pos[2]
	}
}

// clipTriangle recursively clips tri against the canonical view volume
// planes starting at face, handing every surviving triangle to the
// rasterizer once face reaches numFaces. flatAttr is the attribute
// vector of the original (pre-clip) primitive's first vertex: FLAT
// floats on every vertex of a clipped sub-triangle, synthesized or
// carried over, always come from here, never from the edge being
// split, so that flat shading reflects the
// primitive's provoking vertex regardless of how many planes clipped
// it.
func (s *State) clipTriangle(tri [3]*GeometryVertex, face int, flatAttr []float32) {
	if face == numFaces {
		if s.clipSink != nil {
			s.clipSink(tri)
		} else {
			s.rasterizeTriangle(tri)
		}
		return
	}

	var inside [3]bool
	var d [3]float32
	k := 0
	for i := 0; i < 3; i++ {
		d[i] = planeDist(&tri[i].Pos, face)
		inside[i] = d[i] >= 0
		if inside[i] {
			k++
		}
	}

	switch k {
	case 3:
		s.clipTriangle(tri, face+1, flatAttr)

	case 0:
		// Fully outside: discard.

	case 1:
		var inIdx int
		for i, v := range inside {
			if v {
				inIdx = i
				break
			}
		}
		next := (inIdx + 1) % 3
		prev := (inIdx + 2) % 3
		p1 := s.clipVertex(tri[inIdx], d[inIdx], tri[next], d[next], flatAttr)
		p2 := s.clipVertex(tri[inIdx], d[inIdx], tri[prev], d[prev], flatAttr)
		s.clipTriangle([3]*GeometryVertex{s.flatVertex(tri[inIdx], flatAttr), p1, p2}, face+1, flatAttr)

	case 2:
		var outIdx int
		for i, v := range inside {
			if !v {
				outIdx = i
				break
			}
		}
		in0 := (outIdx + 1) % 3
		in1 := (outIdx + 2) % 3
		p1 := s.clipVertex(tri[in1], d[in1], tri[outIdx], d[outIdx], flatAttr)
		p0 := s.clipVertex(tri[in0], d[in0], tri[outIdx], d[outIdx], flatAttr)
		v0 := s.flatVertex(tri[in0], flatAttr)
		v1 := s.flatVertex(tri[in1], flatAttr)
		s.clipTriangle([3]*GeometryVertex{v0, v1, p1}, face+1, flatAttr)
		s.clipTriangle([3]*GeometryVertex{v0, p1, p0}, face+1, flatAttr)
	}
}

// flatVertex returns a fresh copy of v whose FLAT floats come from
// flatAttr. v itself is left unchanged.
func (s *State) flatVertex(v *GeometryVertex, flatAttr []float32) *GeometryVertex {
	c := &GeometryVertex{Pos: v.Pos, Attr: s.attrs.Get()}
	copy(c.Attr, v.Attr)
	for i, rule := range s.InterpRules {
		if rule == Flat {
			c.Attr[i] = flatAttr[i]
		}
	}
	return c
}

// clipVertex builds the new geometry vertex at the intersection of
// edge (a, b) with the current face's plane, given their already
// computed plane distances da (>=0, a is INSIDE) and db (<0, b is
// OUTSIDE).
func (s *State) clipVertex(a *GeometryVertex, da float32, b *GeometryVertex, db float32, flatAttr []float32) *GeometryVertex {
	t := da / (da - db)

	v := &GeometryVertex{Attr: s.attrs.Get()}
	v.Pos.Lerp(&a.Pos, &b.Pos, t)

	for i, rule := range s.InterpRules {
		if rule == Flat {
			v.Attr[i] = flatAttr[i]
		} else {
			v.Attr[i] = a.Attr[i] + t*(b.Attr[i]-a.Attr[i])
		}
	}
	return v
}

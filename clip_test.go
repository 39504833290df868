// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

import (
	"testing"

	"github.com/gfxkit/raster3d/linear"
)

func gv(x, y, z, w float32, attr ...float32) *GeometryVertex {
	return &GeometryVertex{Pos: linear.V4{x, y, z, w}, Attr: attr}
}

func collectClipped(s *State) *[][3]*GeometryVertex {
	out := &[][3]*GeometryVertex{}
	s.clipSink = func(tri [3]*GeometryVertex) {
		*out = append(*out, tri)
	}
	return out
}

func TestClipAllInside(t *testing.T) {
	var s State
	s.InterpRules = []InterpRule{NoPerspective}
	s.attrs.Init(1)
	out := collectClipped(&s)

	tri := [3]*GeometryVertex{
		gv(0, 0, 0, 1, 1),
		gv(1, 0, 0, 1, 2),
		gv(0, 1, 0, 1, 3),
	}
	s.clipTriangle(tri, 0, tri[0].Attr)

	if len(*out) != 1 {
		t.Fatalf("TestClipAllInside: len\nhave %d\nwant 1", len(*out))
	}
	got := (*out)[0]
	if got != tri {
		t.Fatalf("TestClipAllInside: triangle mutated\nhave %v\nwant %v", got, tri)
	}
}

func TestClipAllOutside(t *testing.T) {
	var s State
	s.InterpRules = []InterpRule{NoPerspective}
	s.attrs.Init(1)
	out := collectClipped(&s)

	tri := [3]*GeometryVertex{
		gv(5, 0, 0, 1, 1),
		gv(6, 0, 0, 1, 2),
		gv(7, 0, 0, 1, 3),
	}
	s.clipTriangle(tri, 1, tri[0].Attr) // face 1: x <= w, all three violate it

	if len(*out) != 0 {
		t.Fatalf("TestClipAllOutside: len\nhave %d\nwant 0", len(*out))
	}
}

func TestClipOneVertexOutside(t *testing.T) {
	// x <= w plane (face 1): two vertices inside, one outside — the
	// quadrilateral case, which splits into two triangles.
	var s State
	s.InterpRules = []InterpRule{NoPerspective}
	s.attrs.Init(1)
	out := collectClipped(&s)

	tri := [3]*GeometryVertex{
		gv(0, 0, 0, 1, 0),
		gv(0, 1, 0, 1, 1),
		gv(3, 0, 0, 1, 2), // outside x<=w
	}
	s.clipTriangle(tri, 1, tri[0].Attr)

	if len(*out) != 2 {
		t.Fatalf("TestClipOneVertexOutside: len\nhave %d\nwant 2", len(*out))
	}
	for _, tri := range *out {
		for _, v := range tri {
			if d := planeDist(&v.Pos, 1); d < -1e-5 {
				t.Fatalf("TestClipOneVertexOutside: vertex %v still outside plane 1: dist=%v", v.Pos, d)
			}
		}
	}
}

func TestClipTwoVerticesOutside(t *testing.T) {
	// One vertex inside, two outside — a single new triangle.
	var s State
	s.InterpRules = []InterpRule{NoPerspective}
	s.attrs.Init(1)
	out := collectClipped(&s)

	tri := [3]*GeometryVertex{
		gv(0, 0, 0, 1, 0),
		gv(3, 0, 0, 1, 1), // outside
		gv(3, 1, 0, 1, 2), // outside
	}
	s.clipTriangle(tri, 1, tri[0].Attr)

	if len(*out) != 1 {
		t.Fatalf("TestClipTwoVerticesOutside: len\nhave %d\nwant 1", len(*out))
	}
	for _, tri := range *out {
		for _, v := range tri {
			if d := planeDist(&v.Pos, 1); d < -1e-5 {
				t.Fatalf("TestClipTwoVerticesOutside: vertex %v still outside plane 1: dist=%v", v.Pos, d)
			}
		}
	}
}

func TestClipVertexExactlyOnPlaneCountsInside(t *testing.T) {
	var s State
	s.InterpRules = []InterpRule{NoPerspective}
	s.attrs.Init(1)
	out := collectClipped(&s)

	// face 1: x <= w. Vertex 2 sits exactly on the plane (x == w).
	tri := [3]*GeometryVertex{
		gv(0, 0, 0, 1, 0),
		gv(0, 1, 0, 1, 1),
		gv(1, 0, 0, 1, 2),
	}
	s.clipTriangle(tri, 1, tri[0].Attr)

	if len(*out) != 1 {
		t.Fatalf("TestClipVertexExactlyOnPlaneCountsInside: len\nhave %d\nwant 1", len(*out))
	}
	if got := (*out)[0]; got != tri {
		t.Fatalf("TestClipVertexExactlyOnPlaneCountsInside: triangle mutated\nhave %v\nwant %v", got, tri)
	}
}

func TestClipFlatUsesOriginalFirstVertex(t *testing.T) {
	var s State
	s.InterpRules = []InterpRule{Flat}
	s.attrs.Init(1)
	out := collectClipped(&s)

	// Vertex 0 is the one that ends up OUTSIDE, so naively reusing "A"
	// or "B" of the split edge would lose its flat value; the
	// provoking-vertex value must still win.
	tri := [3]*GeometryVertex{
		gv(3, 0, 0, 1, 99), // outside, but this is the provoking vertex
		gv(0, 0, 0, 1, 1),
		gv(0, 1, 0, 1, 2),
	}
	s.clipTriangle(tri, 1, tri[0].Attr)

	if len(*out) != 2 {
		t.Fatalf("TestClipFlatUsesOriginalFirstVertex: len\nhave %d\nwant 2", len(*out))
	}
	for _, got := range *out {
		for _, v := range got {
			if v.Attr[0] != 99 {
				t.Fatalf("TestClipFlatUsesOriginalFirstVertex: Attr\nhave %v\nwant 99", v.Attr[0])
			}
		}
	}
}

func TestClipConservesAllInsideUnchangedThroughAllPlanes(t *testing.T) {
	var s State
	s.InterpRules = []InterpRule{NoPerspective}
	s.attrs.Init(1)
	out := collectClipped(&s)

	tri := [3]*GeometryVertex{
		gv(0, 0, 0, 1, 0),
		gv(0.5, 0, 0, 1, 1),
		gv(0, 0.5, 0, 1, 2),
	}
	s.clipTriangle(tri, 0, tri[0].Attr)

	if len(*out) != 1 || (*out)[0] != tri {
		t.Fatalf("TestClipConservesAllInsideUnchangedThroughAllPlanes: have %v", *out)
	}
}

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

import "github.com/gfxkit/raster3d/linear"

// MaxFloatsPerVertex bounds the length of a vertex attribute vector.
const MaxFloatsPerVertex = 32

// InterpRule selects how one attribute float is interpolated across
// a triangle during rasterization.
type InterpRule int

// Interpolation rules.
const (
	// Flat takes the value from the triangle's first vertex.
	Flat InterpRule = iota
	// Smooth performs perspective-correct (w-divided) interpolation.
	Smooth
	// NoPerspective performs linear interpolation in screen space.
	NoPerspective
)

// RenderType selects how the primitive assembler walks the vertex
// (and, for Indexed, index) arrays into triangles.
type RenderType int

// Render types.
const (
	// List groups vertices in consecutive triples: (0,1,2), (3,4,5), ...
	List RenderType = iota
	// Indexed groups indices in consecutive triples into triangles.
	Indexed
	// Fan emits (0,1,2), (0,2,3), (0,3,4), ...
	Fan
	// Strip emits (0,1,2), (1,2,3), (2,3,4), ... without alternating
	// winding.
	Strip
)

// VertexInput is what the vertex shader reads: one vertex's worth of
// caller-supplied attribute floats.
type VertexInput struct {
	Attr []float32
}

// GeometryVertex is what the vertex shader writes, and what the
// clipper and rasterizer consume: a clip-space position plus the
// interpolated attribute vector belonging to that vertex alone.
type GeometryVertex struct {
	Pos  linear.V4
	Attr []float32
}

// FragmentInput is the attribute vector the rasterizer hands to the
// fragment shader for one covered pixel, already interpolated
// according to the State's InterpRules.
type FragmentInput struct {
	Attr []float32
}

// Color is an RGBA color with channels in [0,1].
type Color [4]float32

// FragmentOutput is what the fragment shader writes.
type FragmentOutput struct {
	Color Color
}

// VertexShader transforms one vertex's input attributes into a
// clip-space position and an output attribute vector. It must write
// both out.Pos and every float of out.Attr.
type VertexShader func(in *VertexInput, out *GeometryVertex, uniform any)

// FragmentShader computes the color of one covered pixel from its
// interpolated attributes. It must write all four channels of
// out.Color.
type FragmentShader func(in *FragmentInput, out *FragmentOutput, uniform any)

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

import "github.com/gfxkit/raster3d/internal/arena"

// State is the pipeline's configuration and target. The zero value is
// not ready for rendering: populate the fields below, then call
// InitializeRender before the first Render.
type State struct {
	fb   Framebuffer
	init bool

	// VertexData holds NumVertices vertices of FloatsPerVertex floats
	// each, laid out contiguously.
	VertexData []float32
	// NumVertices is the number of vertices in VertexData.
	NumVertices int
	// FloatsPerVertex is F, the number of floats per vertex. Must be
	// in [1, MaxFloatsPerVertex].
	FloatsPerVertex int

	// IndexData holds 3*NumTriangles indices into VertexData. Only
	// read when Render is called with Indexed.
	IndexData []int
	// NumTriangles is T, the number of triangles described by
	// IndexData. Only read for Indexed.
	NumTriangles int

	// Uniform is passed through to both shaders unread.
	Uniform any

	// InterpRules holds one InterpRule per attribute float, indices
	// [0, FloatsPerVertex).
	InterpRules []InterpRule

	VertexShader   VertexShader
	FragmentShader FragmentShader

	attrs arena.Pool

	// clipSink, when non-nil, receives triangles that survive
	// clipping instead of the rasterizer. Tests use it to inspect the
	// clipper in isolation.
	clipSink func([3]*GeometryVertex)
}

// Framebuffer returns the state's color/depth target. Its contents
// are only meaningful after InitializeRender.
func (s *State) Framebuffer() *Framebuffer { return &s.fb }

// InitializeRender allocates a W-by-H framebuffer, filling Color with
// opaque black and Depth with the no-fragment-yet sentinel. W and H
// must both be >= 1.
func (s *State) InitializeRender(w, h int) error {
	if w <= 0 || h <= 0 {
		return newErr(InvalidDimensions, "W and H must both be >= 1")
	}
	s.fb.free()
	s.fb.init(w, h)
	s.init = true
	return nil
}

// Free releases the framebuffer and any pooled attribute storage.
// After Free, s must be re-initialized before rendering again.
func (s *State) Free() {
	s.fb.free()
	s.attrs = arena.Pool{}
	s.init = false
}

func (s *State) validate() error {
	if !s.init {
		return newErr(Uninitialized, "InitializeRender has not been called")
	}
	if s.VertexShader == nil || s.FragmentShader == nil {
		return newErr(Uninitialized, "VertexShader and FragmentShader must both be set")
	}
	if s.FloatsPerVertex < 1 || s.FloatsPerVertex > MaxFloatsPerVertex {
		return newErr(Uninitialized, "FloatsPerVertex out of range")
	}
	return nil
}

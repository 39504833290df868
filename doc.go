// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package raster3d implements the fixed-function portion of a forward
// graphics pipeline: primitive assembly, homogeneous-space clipping,
// perspective-correct attribute interpolation, triangle rasterization
// and depth buffering.
//
// The pipeline sits between a caller-supplied vertex shader and a
// caller-supplied fragment shader. It owns neither: callers populate
// a [State], call [State.InitializeRender] once to size the
// framebuffer, then call [State.Render] once per primitive batch.
// Vertex attribute semantics, image output, windowing and command
// parsing are all the caller's concern.
package raster3d

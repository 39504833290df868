// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

// Render assembles triangles from the State's vertex (and, for
// Indexed, index) data under rt, runs the vertex shader on every
// vertex, and clips and rasterizes each resulting triangle.
func (s *State) Render(rt RenderType) error {
	if err := s.validate(); err != nil {
		return err
	}

	var numTriangles int
	switch rt {
	case List:
		numTriangles = s.NumVertices / 3
	case Indexed:
		numTriangles = s.NumTriangles
	case Fan, Strip:
		if s.NumVertices >= 2 {
			numTriangles = s.NumVertices - 2
		}
	default:
		return newErr(InvalidRenderType, "unrecognized render type")
	}

	s.attrs.Init(s.FloatsPerVertex)

	for t := 0; t < numTriangles; t++ {
		i0, i1, i2, ok := s.triangleIndices(rt, t)
		if !ok {
			Logger().Warn("raster3d: skipping triangle with out-of-range index",
				"triangle", t, "numVertices", s.NumVertices)
			continue
		}

		s.attrs.Reset()
		tri := [3]*GeometryVertex{
			s.assembleVertex(i0),
			s.assembleVertex(i1),
			s.assembleVertex(i2),
		}
		s.clipTriangle(tri, 0, tri[0].Attr)
	}
	return nil
}

// triangleIndices returns the three vertex-data indices of triangle t
// under rt, and whether they are all in range. Only Indexed can fail
// the range check; the other modes derive indices arithmetically from
// t and are always in range when t < numTriangles.
func (s *State) triangleIndices(rt RenderType, t int) (i0, i1, i2 int, ok bool) {
	switch rt {
	case List:
		i0, i1, i2 = 3*t, 3*t+1, 3*t+2
	case Indexed:
		base := 3 * t
		i0, i1, i2 = s.IndexData[base], s.IndexData[base+1], s.IndexData[base+2]
		if i0 < 0 || i0 >= s.NumVertices ||
			i1 < 0 || i1 >= s.NumVertices ||
			i2 < 0 || i2 >= s.NumVertices {
			return 0, 0, 0, false
		}
	case Fan:
		i0, i1, i2 = 0, t+1, t+2
	case Strip:
		i0, i1, i2 = t, t+1, t+2
	}
	return i0, i1, i2, true
}

// assembleVertex builds a fresh geometry vertex for vertex-data index
// i, running the vertex shader to fill its position and attributes.
func (s *State) assembleVertex(i int) *GeometryVertex {
	v := &GeometryVertex{Attr: s.attrs.Get()}
	base := i * s.FloatsPerVertex
	in := VertexInput{Attr: s.VertexData[base : base+s.FloatsPerVertex]}
	s.VertexShader(&in, v, s.Uniform)
	return v
}

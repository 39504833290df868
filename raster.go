// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

import "github.com/chewxy/math32"

// rasterizeTriangle scan-converts one triangle that has survived all
// six clip planes: viewport transform, bounding box, barycentric
// coverage test, depth test, attribute interpolation and fragment
// shader invocation, in that order. tri's vertices are never mutated.
func (s *State) rasterizeTriangle(tri [3]*GeometryVertex) {
	w := float32(s.fb.Width)
	h := float32(s.fb.Height)

	var ix, jy, invW, ndcZ [3]float32
	for k := 0; k < 3; k++ {
		p := &tri[k].Pos
		invW[k] = 1 / p[3]
		ix[k] = w/2*(p[0]*invW[k]) + w/2 - 0.5
		jy[k] = h/2*(p[1]*invW[k]) + h/2 - 0.5
		ndcZ[k] = p[2] * invW[k]
	}

	minI := math32.Max(math32.Floor(math32.Min(ix[0], math32.Min(ix[1], ix[2]))), 0)
	maxI := math32.Min(math32.Ceil(math32.Max(ix[0], math32.Max(ix[1], ix[2]))), w-1)
	minJ := math32.Max(math32.Floor(math32.Min(jy[0], math32.Min(jy[1], jy[2]))), 0)
	maxJ := math32.Min(math32.Ceil(math32.Max(jy[0], math32.Max(jy[1], jy[2]))), h-1)
	if minI > maxI || minJ > maxJ {
		return
	}

	// Signed area of the whole triangle, and (unnormalized) signed
	// sub-areas for a candidate pixel; all three sub-areas share the
	// full triangle's sign iff the pixel center lies inside it. A zero
	// area triangle covers nothing.
	area := (ix[1]-ix[0])*(jy[2]-jy[0]) - (ix[2]-ix[0])*(jy[1]-jy[0])
	if area == 0 {
		return
	}

	var ip interpolator
	attr := make([]float32, len(s.InterpRules))
	fin := FragmentInput{Attr: attr}
	var fout FragmentOutput

	pi0, pi1 := int(minI), int(maxI)
	pj0, pj1 := int(minJ), int(maxJ)

	for q := pj0; q <= pj1; q++ {
		py := float32(q)
		for p := pi0; p <= pi1; p++ {
			px := float32(p)

			a0 := (ix[1]-px)*(jy[2]-py) - (ix[2]-px)*(jy[1]-py)
			a1 := (ix[2]-px)*(jy[0]-py) - (ix[0]-px)*(jy[2]-py)
			a2 := (ix[0]-px)*(jy[1]-py) - (ix[1]-px)*(jy[0]-py)
			if area > 0 {
				if a0 < 0 || a1 < 0 || a2 < 0 {
					continue
				}
			} else if a0 > 0 || a1 > 0 || a2 > 0 {
				continue
			}
			alpha, beta, gamma := a0/area, a1/area, a2/area

			z := alpha*ndcZ[0] + beta*ndcZ[1] + gamma*ndcZ[2]
			idx := s.fb.index(p, q)
			if z > s.fb.Depth[idx] {
				continue
			}

			ip.set(s.InterpRules, tri[0].Attr, tri[1].Attr, tri[2].Attr,
				tri[0].Pos[3], tri[1].Pos[3], tri[2].Pos[3], alpha, beta, gamma)
			ip.interpolate(attr)

			s.FragmentShader(&fin, &fout, s.Uniform)

			s.fb.Depth[idx] = z
			s.fb.Color[idx] = packColor(fout.Color)
		}
	}
}

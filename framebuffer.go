// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

import "github.com/chewxy/math32"

// opaqueBlack is the packed pixel value every Framebuffer starts
// with: channels (0,0,0), alpha opaque.
const opaqueBlack uint32 = 0xff000000

// depthSentinel marks a pixel no fragment has touched yet.
const depthSentinel = math32.MaxFloat32

// Framebuffer owns the color and depth grids a render targets. Row 0
// is the bottom row of the image; Color[q*Width+p] and
// Depth[q*Width+p] describe column p, row q.
//
// Color is packed 0xAABBGGRR: alpha in the high byte, red in the low
// byte, matching the byte order of a little-endian RGBA8 image.
type Framebuffer struct {
	Width, Height int
	Color         []uint32
	Depth         []float32
}

// init allocates Color and Depth for the given dimensions and resets
// them to their initial values (opaque black, +sentinel depth).
func (f *Framebuffer) init(w, h int) {
	n := w * h
	f.Width, f.Height = w, h
	f.Color = make([]uint32, n)
	f.Depth = make([]float32, n)
	f.clear()
}

// clear resets every pixel to its initial value without reallocating.
func (f *Framebuffer) clear() {
	for i := range f.Color {
		f.Color[i] = opaqueBlack
	}
	for i := range f.Depth {
		f.Depth[i] = depthSentinel
	}
}

// free releases the backing arrays.
func (f *Framebuffer) free() {
	f.Color = nil
	f.Depth = nil
	f.Width, f.Height = 0, 0
}

// index returns the linear offset of pixel (p, q).
func (f *Framebuffer) index(p, q int) int { return q*f.Width + p }

// packColor converts an RGBA color in [0,1] to the Framebuffer's
// packed pixel format, clamping and rounding each channel to 8 bits.
func packColor(c Color) uint32 {
	var ch [4]uint32
	for i, v := range c {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		ch[i] = uint32(v*255 + 0.5)
	}
	return ch[3]<<24 | ch[2]<<16 | ch[1]<<8 | ch[0]
}

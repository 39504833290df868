// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package arena defines a bump allocator for per-vertex attribute
// buffers, scoped to the lifetime of a single source primitive.
//
// Clipping a triangle against the six frustum planes can produce new
// interior vertices at every plane, each needing its own length-F
// attribute buffer. Allocating and freeing these individually churns
// the GC once per plane per triangle; a Pool instead hands out slices
// of one growable backing array and releases all of them at once when
// the primitive is done, via Reset.
package arena

// Pool hands out []float32 buffers of a fixed width and reclaims them
// in bulk. The zero value is not ready for use; call Init.
type Pool struct {
	width int
	back  []float32
	used  int
}

// Init prepares p to hand out buffers of the given width (the
// floats-per-vertex count for the primitive currently being
// processed). It is valid to call Init on a Pool that already holds
// buffers; doing so is equivalent to Reset followed by a width change.
func (p *Pool) Init(width int) {
	p.width = width
	p.used = 0
}

// Get returns a fresh length-width buffer. The returned slice aliases
// no buffer previously returned by this Pool and is zeroed.
func (p *Pool) Get() []float32 {
	need := p.used + p.width
	if need > cap(p.back) {
		grown := make([]float32, need, need*2)
		copy(grown, p.back)
		p.back = grown
	}
	buf := p.back[p.used:need:need]
	p.used = need
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Reset reclaims every buffer handed out so far, making the Pool's
// backing storage available for the next primitive without
// reallocating it.
func (p *Pool) Reset() { p.used = 0 }

// Width returns the buffer width the Pool was last Init'd with.
func (p *Pool) Width() int { return p.width }

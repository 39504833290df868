// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package arena

import "testing"

func TestGetDistinct(t *testing.T) {
	var p Pool
	p.Init(3)
	a := p.Get()
	b := p.Get()
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("Pool.Get: len\nhave %d, %d\nwant 3, 3", len(a), len(b))
	}
	a[0] = 1
	b[0] = 2
	if a[0] != 1 || b[0] != 2 {
		t.Fatalf("Pool.Get: buffers alias each other\na=%v b=%v", a, b)
	}
}

func TestGetZeroed(t *testing.T) {
	var p Pool
	p.Init(2)
	a := p.Get()
	a[0], a[1] = 5, 6
	p.Reset()
	b := p.Get()
	if b[0] != 0 || b[1] != 0 {
		t.Fatalf("Pool.Get after Reset: not zeroed\nhave %v\nwant [0 0]", b)
	}
}

func TestGetGrowsWithoutInvalidatingPriorBuffers(t *testing.T) {
	var p Pool
	p.Init(1)
	bufs := make([][]float32, 0, 64)
	for i := 0; i < 64; i++ {
		b := p.Get()
		b[0] = float32(i)
		bufs = append(bufs, b)
	}
	for i, b := range bufs {
		if b[0] != float32(i) {
			t.Fatalf("buffer %d corrupted by later Get: have %v want %v", i, b[0], i)
		}
	}
}

func TestResetReusesBacking(t *testing.T) {
	var p Pool
	p.Init(4)
	_ = p.Get()
	_ = p.Get()
	if p.used == 0 {
		t.Fatalf("Pool.used should be nonzero after Get")
	}
	p.Reset()
	if p.used != 0 {
		t.Fatalf("Pool.Reset: used\nhave %d\nwant 0", p.used)
	}
}

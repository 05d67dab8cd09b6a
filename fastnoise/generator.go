// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fastnoise

import (
	"math"

	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// MinMax is the range of values written by a bulk generation call.
type MinMax struct {
	Min, Max float32
}

// EmptyMinMax returns the range of zero samples: Min is +Inf and Max is
// -Inf, so merging it with any range returns that range.
func EmptyMinMax() MinMax {
	return MinMax{Min: float32(math.Inf(1)), Max: float32(math.Inf(-1))}
}

// Empty reports whether no sample contributed to m.
func (m MinMax) Empty() bool { return m.Min > m.Max }

// Merge returns the range covering both m and o.
func (m MinMax) Merge(o MinMax) MinMax {
	return MinMax{Min: min(m.Min, o.Min), Max: max(m.Max, o.Max)}
}

// Generator is a level-erased handle to one algorithm instantiated for one
// capability level. It is immutable and safe for concurrent use.
//
// Uniform grids are row-major with x varying fastest: the sample at
// (x, y, z) is written to out[(z*ySize+y)*xSize+x] and its position is
// (xStart+x, yStart+y, zStart+z) * frequency. Position arrays evaluate
// (xs[i]+xOffset, ys[i]+yOffset, ...) for every i in xs.
//
// Bulk calls panic if out or a coordinate slice is shorter than the work
// requested.
type Generator interface {
	Level() fastsimd.Level
	Algorithm() Algorithm

	GenSingle2D(x, y float32, seed int32) float32
	GenSingle3D(x, y, z float32, seed int32) float32
	GenSingle4D(x, y, z, w float32, seed int32) float32

	GenUniformGrid2D(out []float32, xStart, yStart int32, xSize, ySize int, frequency float32, seed int32) MinMax
	GenUniformGrid3D(out []float32, xStart, yStart, zStart int32, xSize, ySize, zSize int, frequency float32, seed int32) MinMax
	GenUniformGrid4D(out []float32, xStart, yStart, zStart, wStart int32, xSize, ySize, zSize, wSize int, frequency float32, seed int32) MinMax

	GenPositionArray2D(out, xs, ys []float32, xOffset, yOffset float32, seed int32) MinMax
	GenPositionArray3D(out, xs, ys, zs []float32, xOffset, yOffset, zOffset float32, seed int32) MinMax
	GenPositionArray4D(out, xs, ys, zs, ws []float32, xOffset, yOffset, zOffset, wOffset float32, seed int32) MinMax
}

type generator[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M], K kernel[F, I]] struct {
	b   B
	alg Algorithm
	k   K
}

func newGenerator[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M], K kernel[F, I]](b B, a Algorithm, k K) *generator[F, I, M, B, K] {
	return &generator[F, I, M, B, K]{b: b, alg: a, k: k}
}

func (g *generator[F, I, M, B, K]) Level() fastsimd.Level { return g.b.Level() }
func (g *generator[F, I, M, B, K]) Algorithm() Algorithm  { return g.alg }

func (g *generator[F, I, M, B, K]) eval(seed I, dims int, p *[4]F) F {
	switch dims {
	case 2:
		return g.k.gen2(seed, p[0], p[1])
	case 3:
		return g.k.gen3(seed, p[0], p[1], p[2])
	default:
		return g.k.gen4(seed, p[0], p[1], p[2], p[3])
	}
}

func (g *generator[F, I, M, B, K]) single(seed int32, coords ...float32) float32 {
	var p [4]F
	for i, c := range coords {
		p[i] = g.b.SetF(c)
	}
	return g.b.GetLaneF(g.eval(g.b.SetI(seed), len(coords), &p), 0)
}

func (g *generator[F, I, M, B, K]) GenSingle2D(x, y float32, seed int32) float32 {
	return g.single(seed, x, y)
}

func (g *generator[F, I, M, B, K]) GenSingle3D(x, y, z float32, seed int32) float32 {
	return g.single(seed, x, y, z)
}

func (g *generator[F, I, M, B, K]) GenSingle4D(x, y, z, w float32, seed int32) float32 {
	return g.single(seed, x, y, z, w)
}

func (g *generator[F, I, M, B, K]) GenUniformGrid2D(out []float32, xStart, yStart int32, xSize, ySize int, frequency float32, seed int32) MinMax {
	return g.uniformGrid(out, []int32{xStart, yStart}, []int{xSize, ySize}, frequency, seed)
}

func (g *generator[F, I, M, B, K]) GenUniformGrid3D(out []float32, xStart, yStart, zStart int32, xSize, ySize, zSize int, frequency float32, seed int32) MinMax {
	return g.uniformGrid(out, []int32{xStart, yStart, zStart}, []int{xSize, ySize, zSize}, frequency, seed)
}

func (g *generator[F, I, M, B, K]) GenUniformGrid4D(out []float32, xStart, yStart, zStart, wStart int32, xSize, ySize, zSize, wSize int, frequency float32, seed int32) MinMax {
	return g.uniformGrid(out, []int32{xStart, yStart, zStart, wStart}, []int{xSize, ySize, zSize, wSize}, frequency, seed)
}

func (g *generator[F, I, M, B, K]) GenPositionArray2D(out, xs, ys []float32, xOffset, yOffset float32, seed int32) MinMax {
	return g.positionArray(out, [][]float32{xs, ys}, []float32{xOffset, yOffset}, seed)
}

func (g *generator[F, I, M, B, K]) GenPositionArray3D(out, xs, ys, zs []float32, xOffset, yOffset, zOffset float32, seed int32) MinMax {
	return g.positionArray(out, [][]float32{xs, ys, zs}, []float32{xOffset, yOffset, zOffset}, seed)
}

func (g *generator[F, I, M, B, K]) GenPositionArray4D(out, xs, ys, zs, ws []float32, xOffset, yOffset, zOffset, wOffset float32, seed int32) MinMax {
	return g.positionArray(out, [][]float32{xs, ys, zs, ws}, []float32{xOffset, yOffset, zOffset, wOffset}, seed)
}

func (g *generator[F, I, M, B, K]) uniformGrid(out []float32, start []int32, size []int, frequency float32, seed int32) MinMax {
	total := 1
	for _, s := range size {
		if s < 0 {
			panic("fastnoise: negative grid size")
		}
		total *= s
	}
	if len(out) < total {
		panic("fastnoise: output slice too short for grid")
	}
	if total == 0 {
		return EmptyMinMax()
	}

	b := g.b
	dims := len(size)
	cur := newGridCursor[F, I, M](b, start, size)
	freq := b.SetF(frequency)
	vSeed := b.SetI(seed)
	acc := newRangeAcc[F, I, M](b)

	var p [4]F
	coords := func() *[4]F {
		for d := range dims {
			p[d] = b.ConvertF(cur.pos[d]).Mul(freq)
		}
		return &p
	}

	fastsimd.ProcessWithTail(total, b.Size(),
		func(offset int) {
			v := g.eval(vSeed, dims, coords())
			b.StoreF(v, out[offset:])
			acc.add(v)
			cur.advance()
		},
		func(offset, count int) {
			m := b.FirstN(count)
			v := g.eval(vSeed, dims, coords())
			b.MaskStoreF(m, v, out[offset:])
			acc.addMasked(m, v)
		},
	)
	return acc.result()
}

func (g *generator[F, I, M, B, K]) positionArray(out []float32, coords [][]float32, offsets []float32, seed int32) MinMax {
	count := len(coords[0])
	if len(out) < count {
		panic("fastnoise: output slice too short for positions")
	}
	for _, c := range coords[1:] {
		if len(c) < count {
			panic("fastnoise: coordinate slice too short")
		}
	}

	b := g.b
	dims := len(coords)
	vSeed := b.SetI(seed)
	acc := newRangeAcc[F, I, M](b)

	var off, p [4]F
	for d, o := range offsets {
		off[d] = b.SetF(o)
	}

	fastsimd.ProcessWithTail(count, b.Size(),
		func(offset int) {
			for d := range dims {
				p[d] = b.LoadF(coords[d][offset:]).Add(off[d])
			}
			v := g.eval(vSeed, dims, &p)
			b.StoreF(v, out[offset:])
			acc.add(v)
		},
		func(offset, n int) {
			m := b.FirstN(n)
			for d := range dims {
				p[d] = b.MaskLoadF(m, coords[d][offset:]).Add(off[d])
			}
			v := g.eval(vSeed, dims, &p)
			b.MaskStoreF(m, v, out[offset:])
			acc.addMasked(m, v)
		},
	)
	return acc.result()
}

// rangeAcc tracks per-lane minima and maxima and reduces them at the end.
type rangeAcc[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]] struct {
	b      B
	lo, hi F
}

func newRangeAcc[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]](b B) *rangeAcc[F, I, M, B] {
	e := EmptyMinMax()
	return &rangeAcc[F, I, M, B]{b: b, lo: b.SetF(e.Min), hi: b.SetF(e.Max)}
}

func (a *rangeAcc[F, I, M, B]) add(v F) {
	a.lo = a.b.MinF(v, a.lo)
	a.hi = a.b.MaxF(v, a.hi)
}

func (a *rangeAcc[F, I, M, B]) addMasked(m M, v F) {
	a.lo = a.b.MinF(a.b.SelectF(m, v, a.lo), a.lo)
	a.hi = a.b.MaxF(a.b.SelectF(m, v, a.hi), a.hi)
}

func (a *rangeAcc[F, I, M, B]) result() MinMax {
	r := EmptyMinMax()
	for i := range a.b.Size() {
		r.Min = min(r.Min, a.b.GetLaneF(a.lo, i))
		r.Max = max(r.Max, a.b.GetLaneF(a.hi, i))
	}
	return r
}

// gridCursor holds the integer grid position of every lane. Lane j starts
// at linear index j and each advance moves every lane forward by the lane
// count, carrying between axes in mixed radix.
type gridCursor[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]] struct {
	b    B
	dims int
	pos  [4]I
	step [4]I
	max  [4]I
	size [4]I
}

func newGridCursor[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]](b B, start []int32, size []int) *gridCursor[F, I, M, B] {
	c := &gridCursor[F, I, M, B]{b: b, dims: len(size)}
	lanes := b.Size()
	last := c.dims - 1

	var buf [fastsimd.MaxLanes]int32
	for d := range c.dims {
		stride := 1
		for _, s := range size[:d] {
			stride *= s
		}
		for j := range lanes {
			k := j / stride
			if d < last {
				k %= size[d]
			}
			buf[j] = start[d] + int32(k)
		}
		c.pos[d] = b.LoadI(buf[:])

		step := lanes / stride
		if d < last {
			step %= size[d]
		}
		c.step[d] = b.SetI(int32(step))
		c.max[d] = b.SetI(start[d] + int32(size[d]) - 1)
		c.size[d] = b.SetI(int32(size[d]))
	}
	return c
}

func (c *gridCursor[F, I, M, B]) advance() {
	b := c.b
	last := c.dims - 1
	var carry M
	for d := range c.dims {
		p := c.pos[d].Add(c.step[d])
		if d > 0 {
			p = b.MaskedIncrementI(carry, p)
		}
		if d < last {
			carry = b.GreaterThanI(p, c.max[d])
			p = b.MaskedSubI(carry, p, c.size[d])
		}
		c.pos[d] = p
	}
}

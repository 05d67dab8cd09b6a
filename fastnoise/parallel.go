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
	"sync"

	"github.com/ajroetker/go-fastsimd/fastsimd/contrib/workerpool"
)

// positionBatch is the number of positions handed to a worker at a time.
const positionBatch = 4096

// rangeMerger collects MinMax results from concurrent workers.
type rangeMerger struct {
	mu sync.Mutex
	r  MinMax
}

func (m *rangeMerger) merge(r MinMax) {
	m.mu.Lock()
	m.r = m.r.Merge(r)
	m.mu.Unlock()
}

// ParallelUniformGrid3D fills the same grid as g.GenUniformGrid3D, with
// z slabs generated concurrently on pool. Each worker starts on a whole
// vector of out. The output is identical to the serial call.
func ParallelUniformGrid3D(pool *workerpool.Pool, g Generator, out []float32, xStart, yStart, zStart int32, xSize, ySize, zSize int, frequency float32, seed int32) MinMax {
	if xSize < 0 || ySize < 0 || zSize < 0 {
		panic("fastnoise: negative grid size")
	}
	slab := xSize * ySize
	if len(out) < slab*zSize {
		panic("fastnoise: output slice too short for grid")
	}

	m := rangeMerger{r: EmptyMinMax()}
	align := workerpool.SlabAlign(slab, g.Level().Lanes())
	pool.ParallelForAligned(zSize, align, func(start, end int) {
		r := g.GenUniformGrid3D(out[start*slab:end*slab],
			xStart, yStart, zStart+int32(start), xSize, ySize, end-start, frequency, seed)
		m.merge(r)
	})
	return m.r
}

// ParallelPositionArray3D evaluates the same positions as
// g.GenPositionArray3D, handing batches of positions to pool workers.
func ParallelPositionArray3D(pool *workerpool.Pool, g Generator, out, xs, ys, zs []float32, xOffset, yOffset, zOffset float32, seed int32) MinMax {
	n := len(xs)
	if len(out) < n || len(ys) < n || len(zs) < n {
		panic("fastnoise: slice too short for positions")
	}

	m := rangeMerger{r: EmptyMinMax()}
	pool.ParallelForBatched(n, positionBatch, func(start, end int) {
		r := g.GenPositionArray3D(out[start:end], xs[start:end], ys[start:end], zs[start:end],
			xOffset, yOffset, zOffset, seed)
		m.merge(r)
	})
	return m.r
}

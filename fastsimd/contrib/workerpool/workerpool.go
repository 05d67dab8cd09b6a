// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for filling large
// noise buffers in parallel. A Pool is created once and reused for every
// fill, so a grid split into slabs does not pay for goroutine spawns or
// channel allocation on each call.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	align := workerpool.SlabAlign(xSize*ySize, lanes)
//	pool.ParallelForAligned(zSize, align, func(start, end int) {
//	    fillSlabs(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs range tasks on a fixed set of goroutines.
type Pool struct {
	workers int
	tasks   chan task
	once    sync.Once
	closed  atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with n workers. If n <= 0 it uses GOMAXPROCS.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan task, n*2),
	}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close stops the workers after queued tasks finish. It is safe to call
// more than once; a closed pool runs later calls on the caller's goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// submit runs every fn on the pool and waits for all of them.
func (p *Pool) submit(fns []func()) {
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.tasks <- task{run: fn, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) for each one concurrently. It blocks until all ranges
// are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	fns := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		fns = append(fns, func() { fn(start, end) })
	}
	p.submit(fns)
}

// ParallelForAligned is ParallelFor with every chunk boundary other than n
// a multiple of align. A chunk of z slabs that starts on a whole vector of
// the flat output leaves the partial tail vector to the last chunk only.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	align = max(align, 1)
	units := (n + align - 1) / align
	workers := min(p.workers, units)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (units + workers - 1) / workers * align
	fns := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		fns = append(fns, func() { fn(start, end) })
	}
	p.submit(fns)
}

// SlabAlign returns the smallest number of slabs of slabSize elements that
// together hold a whole number of lanes-wide vectors.
func SlabAlign(slabSize, lanes int) int {
	if slabSize <= 0 || lanes <= 1 {
		return 1
	}
	a, b := slabSize, lanes
	for b != 0 {
		a, b = b, a%b
	}
	return lanes / a
}

// ParallelForBatched hands out [0, n) in batches of batchSize through an
// atomic counter, so workers that finish early take more batches. Use it when
// the cost per index varies. It blocks until every batch is done.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.workers, batches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	steal := func() {
		for {
			start := int(next.Add(int64(batchSize)) - int64(batchSize))
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}
	fns := make([]func(), workers)
	for i := range fns {
		fns[i] = steal
	}
	p.submit(fns)
}

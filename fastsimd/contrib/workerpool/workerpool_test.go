// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 7, 100, 101} {
		hits := make([]atomic.Int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				hits[i].Add(1)
			}
		})
		for i := range hits {
			if got := hits[i].Load(); got != 1 {
				t.Errorf("n=%d: index %d visited %d times, want 1", n, i, got)
			}
		}
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	hits := make([]atomic.Int32, n)
	var calls atomic.Int32
	pool.ParallelForBatched(n, 10, func(start, end int) {
		calls.Add(1)
		if end-start > 10 {
			t.Errorf("batch [%d, %d) larger than 10", start, end)
		}
		for i := start; i < end; i++ {
			hits[i].Add(1)
		}
	})
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
	if calls.Load() != 11 {
		t.Errorf("calls = %d, want 11", calls.Load())
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct{ n, align int }{{13, 4}, {100, 8}, {7, 16}, {33, 1}, {64, 16}, {5, 0}} {
		hits := make([]atomic.Int32, tc.n)
		pool.ParallelForAligned(tc.n, tc.align, func(start, end int) {
			if tc.align > 1 && start%tc.align != 0 {
				t.Errorf("n=%d align=%d: chunk starts at %d", tc.n, tc.align, start)
			}
			if end != tc.n && tc.align > 1 && end%tc.align != 0 {
				t.Errorf("n=%d align=%d: chunk ends at %d", tc.n, tc.align, end)
			}
			for i := start; i < end; i++ {
				hits[i].Add(1)
			}
		})
		for i := range hits {
			if got := hits[i].Load(); got != 1 {
				t.Errorf("n=%d align=%d: index %d visited %d times, want 1", tc.n, tc.align, i, got)
			}
		}
	}
}

func TestSlabAlign(t *testing.T) {
	tests := []struct {
		slab, lanes, want int
	}{
		{133, 8, 8},
		{12, 8, 2},
		{64, 16, 1},
		{6, 4, 2},
		{7, 1, 1},
		{0, 8, 1},
		{10, 16, 8},
	}
	for _, tt := range tests {
		got := SlabAlign(tt.slab, tt.lanes)
		if got != tt.want {
			t.Errorf("SlabAlign(%d, %d) = %d, want %d", tt.slab, tt.lanes, got, tt.want)
		}
		if tt.slab > 0 && tt.lanes > 1 && got*tt.slab%tt.lanes != 0 {
			t.Errorf("SlabAlign(%d, %d) = %d does not fill whole vectors", tt.slab, tt.lanes, got)
		}
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForBatched(0, 4, func(start, end int) { called = true })
	pool.ParallelForAligned(0, 4, func(start, end int) { called = true })
	if called {
		t.Error("fn called for n=0")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 50
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAligned(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelForAligned(1000, 16, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelForBatched(1000, 16, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

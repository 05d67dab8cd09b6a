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

package fastsimd

import "testing"

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size, lanes   int
		full, tailOff int
		tailCount     int
	}{
		{size: 16, lanes: 4, full: 4},
		{size: 19, lanes: 8, full: 2, tailOff: 16, tailCount: 3},
		{size: 3, lanes: 16, full: 0, tailOff: 0, tailCount: 3},
		{size: 0, lanes: 4},
	}
	for _, tt := range tests {
		var full []int
		tailCalls := 0
		ProcessWithTail(tt.size, tt.lanes,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) {
				tailCalls++
				if offset != tt.tailOff || count != tt.tailCount {
					t.Errorf("size %d: tail(%d, %d), want (%d, %d)", tt.size, offset, count, tt.tailOff, tt.tailCount)
				}
			})
		if len(full) != tt.full {
			t.Errorf("size %d: %d full vectors, want %d", tt.size, len(full), tt.full)
		}
		for i, off := range full {
			if off != i*tt.lanes {
				t.Errorf("size %d: full[%d] = %d, want %d", tt.size, i, off, i*tt.lanes)
			}
		}
		wantTail := 0
		if tt.tailCount > 0 {
			wantTail = 1
		}
		if tailCalls != wantTail {
			t.Errorf("size %d: tail called %d times, want %d", tt.size, tailCalls, wantTail)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct{ size, lanes, want int }{
		{0, 4, 0},
		{1, 4, 4},
		{8, 8, 8},
		{9, 8, 16},
		{5, 1, 5},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := AlignedSize(tt.size, tt.lanes); got != tt.want {
			t.Errorf("AlignedSize(%d, %d) = %d, want %d", tt.size, tt.lanes, got, tt.want)
		}
		if got := IsAligned(tt.size, tt.lanes); got != (tt.want == tt.size) {
			t.Errorf("IsAligned(%d, %d) = %v", tt.size, tt.lanes, got)
		}
	}
}

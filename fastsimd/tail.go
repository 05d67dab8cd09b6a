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

// ProcessWithTail splits size elements into vectors of the given lane count.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the remainder if size is not a multiple of lanes
//
// Example:
//
//	b := fastsimd.AVX2{}
//	fastsimd.ProcessWithTail(len(data), b.Size(),
//	    func(offset int) {
//	        v := b.LoadF(data[offset:])
//	        b.StoreF(v.Add(v), out[offset:])
//	    },
//	    func(offset, count int) {
//	        m := b.FirstN(count)
//	        v := b.MaskLoadF(m, data[offset:])
//	        b.MaskStoreF(m, v.Add(v), out[offset:])
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of lanes.
// This is useful for allocating buffers that will be processed whole vectors
// at a time.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(size, lanes int) bool {
	if lanes <= 0 {
		return true
	}
	return size%lanes == 0
}

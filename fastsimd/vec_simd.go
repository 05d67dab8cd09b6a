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

//go:build amd64 && goexperiment.simd

package fastsimd

// Helpers shared by the archsimd backends. Operations without a vector form
// go through a stack buffer, one lane at a time.

// laneIndexF and laneIndexI hold 0, 1, 2, ... for IncrementedF, IncrementedI
// and FirstN.
var (
	laneIndexF = [MaxLanes]float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	laneIndexI = [MaxLanes]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
)

// clampLanes limits a FirstN count to [0, lanes].
func clampLanes(n, lanes int) int32 {
	return int32(min(max(n, 0), lanes))
}

// loadBitsF copies p[i] into r[i] for every set bit i. Other lanes keep
// their value.
func loadBitsF(r []float32, bits uint32, p []float32) {
	for i := range r {
		if bits&(1<<i) != 0 {
			r[i] = p[i]
		}
	}
}

func storeBitsF(bits uint32, v []float32, p []float32) {
	for i := range v {
		if bits&(1<<i) != 0 {
			p[i] = v[i]
		}
	}
}

func storeBitsI(bits uint32, v []int32, p []int32) {
	for i := range v {
		if bits&(1<<i) != 0 {
			p[i] = v[i]
		}
	}
}

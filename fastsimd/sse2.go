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

//go:build amd64 && !goexperiment.simd && !fastsimd_nosse2

package fastsimd

// SSE2 is the x86-64 baseline backend (4 lanes). Its lanes are emulated in
// Go, so it is only used when requested explicitly, and it is left out of
// GOEXPERIMENT=simd builds where Float32x4 holds a VEX register.
//
// SSE2 has no blend or round instructions: selects are and/andnot/or on a
// sign-extended mask, and Floor, Ceil and Round go through an int32
// conversion. Those three return +0 where SSE4.1 returns -0.
type SSE2 struct {
	vec128[sse2Traits]
}

var _ Backend[Float32x4, Int32x4, Mask32x4] = SSE2{}

func init() {
	compiled[LevelSSE2] = true
}

type sse2Traits struct {
	x86Traits
}

func (sse2Traits) level() Level { return LevelSSE2 }

func (sse2Traits) selectF(r []float32, m []int32, a, b []float32) { bitSelectF(r, m, a, b) }
func (sse2Traits) selectI(r []int32, m []int32, a, b []int32)     { bitSelectI(r, m, a, b) }
func (sse2Traits) floor(x float32) float32                        { return floorViaInt(x) }
func (sse2Traits) ceil(x float32) float32                         { return ceilViaInt(x) }
func (sse2Traits) round(x float32) float32                        { return roundViaInt(x) }

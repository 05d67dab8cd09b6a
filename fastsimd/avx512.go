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

//go:build amd64 && !goexperiment.simd && !fastsimd_noavx512

package fastsimd

// AVX512 is the 512-bit backend (16 lanes) with bit-per-lane masks.
// ReciprocalF and InvSqrtF use the 14-bit rcp14/rsqrt14 estimates.
//
// This is the emulated build, used without GOEXPERIMENT=simd; see
// avx512_simd.go.
type AVX512 struct {
	vec512[avx512Traits]
}

var _ Backend[Float32x16, Int32x16, Mask32x16] = AVX512{}

func init() {
	compiled[LevelAVX512] = true
}

type avx512Traits struct {
	x86Traits
}

func (avx512Traits) level() Level                 { return LevelAVX512 }
func (avx512Traits) fusedMulAdd() bool            { return true }
func (avx512Traits) reciprocal(x float32) float32 { return recipEstimate(x, 14) }
func (avx512Traits) invSqrt(x float32) float32    { return rsqrtEstimate(x, 14) }

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

//go:build amd64 && !goexperiment.simd && !fastsimd_noavx2

package fastsimd

// AVX2 is the 256-bit backend (8 lanes). MulAddF is fused unless built with
// fastsimd_nofma.
//
// This is the emulated build, used without GOEXPERIMENT=simd; see
// avx2_simd.go.
type AVX2 struct {
	vec256[avx2Traits]
}

var _ Backend[Float32x8, Int32x8, Mask32x8] = AVX2{}

func init() {
	compiled[LevelAVX2] = true
}

type avx2Traits struct {
	x86Traits
}

func (avx2Traits) level() Level      { return LevelAVX2 }
func (avx2Traits) fusedMulAdd() bool { return true }

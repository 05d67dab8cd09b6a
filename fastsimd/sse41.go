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

//go:build amd64 && !goexperiment.simd && !fastsimd_nosse41

package fastsimd

// SSE41 is the SSE4.1 backend (4 lanes). It requires SSE3 and SSSE3 as well.
//
// Without GOEXPERIMENT=simd its lanes are emulated in Go and it is only used
// when requested explicitly; sse41_simd.go holds the native backend.
type SSE41 struct {
	vec128[sse41Traits]
}

var _ Backend[Float32x4, Int32x4, Mask32x4] = SSE41{}

func init() {
	compiled[LevelSSE41] = true
}

type sse41Traits struct {
	x86Traits
}

func (sse41Traits) level() Level { return LevelSSE41 }

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

//go:build arm64 && !fastsimd_noneon

package fastsimd

import "github.com/chewxy/math32"

// NEON is the ARM Advanced SIMD backend (4 lanes). Its lanes are emulated in
// Go, so it is only used when requested explicitly.
//
// It differs from the x86 backends at the edges: MinF and MaxF propagate
// NaN, ConvertI saturates and maps NaN to 0, and ReciprocalF/InvSqrtF refine
// an 8-bit estimate with one Newton-Raphson step.
type NEON struct {
	vec128[neonTraits]
}

var _ Backend[Float32x4, Int32x4, Mask32x4] = NEON{}

func init() {
	compiled[LevelNEON] = true
}

type neonTraits struct{}

func (neonTraits) level() Level                                   { return LevelNEON }
func (neonTraits) selectF(r []float32, m []int32, a, b []float32) { bitSelectF(r, m, a, b) }
func (neonTraits) selectI(r []int32, m []int32, a, b []int32)     { bitSelectI(r, m, a, b) }
func (neonTraits) minF(a, b float32) float32                      { return minNEON(a, b) }
func (neonTraits) maxF(a, b float32) float32                      { return maxNEON(a, b) }
func (neonTraits) floor(x float32) float32                        { return math32.Floor(x) }
func (neonTraits) ceil(x float32) float32                         { return math32.Ceil(x) }
func (neonTraits) round(x float32) float32                        { return roundLane(x) }
func (neonTraits) convertI(x float32) int32                       { return cvtNEON(x) }
func (neonTraits) reciprocal(x float32) float32                   { return recipNEON(x) }
func (neonTraits) invSqrt(x float32) float32                      { return rsqrtNEON(x) }
func (neonTraits) fusedMulAdd() bool                              { return true }

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

//go:build !amd64 || !goexperiment.simd

package fastsimd

import "github.com/chewxy/math32"

// laneTraits supplies the per-lane behaviour that differs between levels
// sharing a register width. Implementations are empty structs.
type laneTraits interface {
	level() Level
	selectF(r []float32, m []int32, a, b []float32)
	selectI(r []int32, m []int32, a, b []int32)
	minF(a, b float32) float32
	maxF(a, b float32) float32
	floor(x float32) float32
	ceil(x float32) float32
	round(x float32) float32
	convertI(x float32) int32
	reciprocal(x float32) float32
	invSqrt(x float32) float32
	fusedMulAdd() bool
}

// x86Traits is the SSE4.1 instruction mapping: blendvps, roundps, minps and
// maxps, cvtps2dq, and the 12-bit rcpps/rsqrtps estimates.
type x86Traits struct{}

func (x86Traits) selectF(r []float32, m []int32, a, b []float32) { blendF(r, m, a, b) }
func (x86Traits) selectI(r []int32, m []int32, a, b []int32)     { blendI(r, m, a, b) }
func (x86Traits) minF(a, b float32) float32                      { return minX86(a, b) }
func (x86Traits) maxF(a, b float32) float32                      { return maxX86(a, b) }
func (x86Traits) floor(x float32) float32                        { return math32.Floor(x) }
func (x86Traits) ceil(x float32) float32                         { return math32.Ceil(x) }
func (x86Traits) round(x float32) float32                        { return roundLane(x) }
func (x86Traits) convertI(x float32) int32                       { return cvtX86(x) }
func (x86Traits) reciprocal(x float32) float32                   { return recipEstimate(x, 12) }
func (x86Traits) invSqrt(x float32) float32                      { return rsqrtEstimate(x, 12) }
func (x86Traits) fusedMulAdd() bool                              { return false }

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

import (
	"math"
	"simd/archsimd"
)

// Float32x4 holds 4 float32 lanes in an XMM register, used by the SSE41 backend.
type Float32x4 struct {
	data archsimd.Float32x4
}

// Int32x4 holds 4 int32 lanes in an XMM register.
type Int32x4 struct {
	data archsimd.Int32x4
}

// Mask32x4 is a 4-lane comparison mask.
type Mask32x4 struct {
	data archsimd.Mask32x4
}

// splatF4 and splatI4 fill a register through memory. The register
// broadcast forms need AVX2.
func splatF4(x float32) archsimd.Float32x4 {
	b := [4]float32{x, x, x, x}
	return archsimd.LoadFloat32x4Slice(b[:])
}

func splatI4(x int32) archsimd.Int32x4 {
	b := [4]int32{x, x, x, x}
	return archsimd.LoadInt32x4Slice(b[:])
}

var (
	_ Float32v[Float32x4] = Float32x4{}
	_ Int32v[Int32x4]     = Int32x4{}
)

func (a Float32x4) Add(b Float32x4) Float32x4 { return Float32x4{a.data.Add(b.data)} }
func (a Float32x4) Sub(b Float32x4) Float32x4 { return Float32x4{a.data.Sub(b.data)} }
func (a Float32x4) Mul(b Float32x4) Float32x4 { return Float32x4{a.data.Mul(b.data)} }
func (a Float32x4) Div(b Float32x4) Float32x4 { return Float32x4{a.data.Div(b.data)} }
func (a Float32x4) Size() int                 { return 4 }

// Neg flips the sign bit, so Neg of +0 is -0.
func (a Float32x4) Neg() Float32x4 {
	return Float32x4{a.data.AsInt32x4().Xor(splatI4(math.MinInt32)).AsFloat32x4()}
}

func (a Int32x4) Add(b Int32x4) Int32x4    { return Int32x4{a.data.Add(b.data)} }
func (a Int32x4) Sub(b Int32x4) Int32x4    { return Int32x4{a.data.Sub(b.data)} }
func (a Int32x4) Mul(b Int32x4) Int32x4    { return Int32x4{a.data.Mul(b.data)} }
func (a Int32x4) And(b Int32x4) Int32x4    { return Int32x4{a.data.And(b.data)} }
func (a Int32x4) Or(b Int32x4) Int32x4     { return Int32x4{a.data.Or(b.data)} }
func (a Int32x4) Xor(b Int32x4) Int32x4    { return Int32x4{a.data.Xor(b.data)} }
func (a Int32x4) AndNot(b Int32x4) Int32x4 { return Int32x4{a.data.AndNot(b.data)} }
func (a Int32x4) Shl(n uint) Int32x4       { return Int32x4{a.data.ShiftAllLeft(uint64(n))} }
func (a Int32x4) Shr(n uint) Int32x4       { return Int32x4{a.data.ShiftAllRight(uint64(n))} }
func (a Int32x4) Not() Int32x4             { return Int32x4{a.data.Xor(splatI4(-1))} }
func (a Int32x4) Neg() Int32x4             { return Int32x4{splatI4(0).Sub(a.data)} }
func (a Int32x4) Size() int                { return 4 }
